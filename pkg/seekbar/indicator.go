package seekbar

import "image"

// Indicator 浮动数值气泡协作方接口
//
// 气泡的绘制和开合动画由外部实现（见 pkg/render），
// 核心只负责：设置显示文本、跟随滑块移动、在合适的时机
// 请求展示/收起，以及通过回调感知开合动画完成。
type Indicator interface {
	// SetValue 更新气泡显示的文本
	SetValue(text string)
	// Move 气泡水平跟随到指定中心 X（控件本地坐标）
	Move(centerX int)
	// Show 从滑块位置展开气泡
	Show(thumbBounds image.Rectangle)
	// Dismiss 播放收起动画后隐藏
	Dismiss()
	// DismissComplete 立即隐藏（控件拆除或重新布局时）
	DismissComplete()
	// UpdateSizes 按可能出现的最宽文本重新计算气泡尺寸
	UpdateSizes(widest string)
	// SetCallbacks 注册开合动画完成回调
	SetCallbacks(cb IndicatorCallbacks)
}

// IndicatorCallbacks 气泡开合动画完成回调
type IndicatorCallbacks interface {
	// OnOpeningComplete 展开动画完成
	OnOpeningComplete()
	// OnClosingComplete 收起动画完成
	OnClosingComplete()
}

// ProgressListener 单值变化监听
type ProgressListener interface {
	// OnProgressChanged 数值变化；fromUser 区分用户操作和程序设置
	OnProgressChanged(s *SeekBar, value int, fromUser bool)
	// OnStartTrackingTouch 用户开始拖动
	OnStartTrackingTouch(s *SeekBar)
	// OnStopTrackingTouch 用户结束拖动
	OnStopTrackingTouch(s *SeekBar)
}

// RangeListener 区间变化监听（区间模式）
type RangeListener interface {
	OnRangeChanged(s *SeekBar, lower, upper int, fromUser bool)
	OnStartTrackingTouch(s *SeekBar)
	OnStopTrackingTouch(s *SeekBar)
}

// NumericTransformer 数值显示变换
//
// 把内部整数值变换为展示给用户的形式。与指示器格式串配合，
// 可完全控制气泡里显示的内容。
type NumericTransformer interface {
	// Transform 返回展示用整数（随后套用格式串）
	Transform(value int) int
	// TransformToString 返回展示用字符串（原样显示，不再格式化）
	TransformToString(value int) string
	// UseStringTransform 为 true 时使用 TransformToString，
	// 否则使用 Transform
	UseStringTransform() bool
}

// defaultTransformer 恒等变换
type defaultTransformer struct{}

func (defaultTransformer) Transform(value int) int            { return value }
func (defaultTransformer) TransformToString(value int) string { return "" }
func (defaultTransformer) UseStringTransform() bool           { return false }
