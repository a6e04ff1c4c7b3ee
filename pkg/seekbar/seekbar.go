// Package seekbar 实现离散数值滑杆控件的核心
//
// 核心只做三件事：把指针/按键输入换算成数值变化、维持三套
// 坐标系（逻辑区间、可用像素区间、RTL 镜像）的一致性、以及
// 驱动数值过渡动画。绘制、气泡窗口和平台输入由协作方实现
// （见 pkg/render），核心不依赖任何 UI 工具包类型。
//
// 单线程事件驱动：所有输入（指针、按键、尺寸变化、动画帧）
// 都在宿主的更新循环里串行送达，核心内部没有并行执行。
package seekbar

import (
	"fmt"
	"image"

	"github.com/gonewx/seekbar/pkg/config"
	"github.com/gonewx/seekbar/pkg/utils"
)

// IndicatorDelayForTaps 气泡延迟展示时间（秒）
// 快速点按时避免气泡闪烁：按下后延迟一小段时间才展示，
// 期间松手则取消
const IndicatorDelayForTaps = 0.15

// SeekBar 离散数值滑杆
//
// 一条水平轨道加一或两个可拖动滑块，把像素位置映射为
// [min, max] 内的整数值。
//
// 职责：
//   - 指针拖动、轨道点击、按键步进与程序设值五路输入的仲裁
//   - 区间模式下的滑块顺序约束（另一滑块是硬屏障）
//   - 数值过渡动画（按键与程序触发的变化平滑过渡）
//   - 数值状态的序列化/恢复（宿主拆除重建场景）
type SeekBar struct {
	rng  *ValueRange
	geom Geometry

	// 外观参数（渲染协作方读取）
	trackHeight         int
	scrubberHeight      int
	thumbSize           int
	indicatorSeparation int

	trackRect    image.Rectangle
	scrubberRect image.Rectangle

	allowTrackClick       bool
	indicatorPopupEnabled bool
	mirrorForRtl          bool
	rtl                   bool
	enabled               bool

	formatter   string
	transformer NumericTransformer

	progressListener ProgressListener
	rangeListener    RangeListener

	// OnRelease 拖动释放时的可选回调（宿主常用来播放音效）
	OnRelease func()

	// ClaimDrag 进入拖动时向可滚动祖先申请输入独占
	// 每次拖动只调用一次，不随移动事件重复申请
	ClaimDrag func()

	// InScrollingContainer 宿主告知控件是否位于可滚动容器内
	// 位于可滚动容器时，按下不会立即吸附轨道点击
	InScrollingContainer func() bool

	indicator     Indicator
	indicatorOpen bool

	drag dragSession
	anim TransitionAnimator

	activeThumb *Thumb

	pressed     bool
	focused     bool
	forceBubble bool
	hovered     bool

	// revealTimer 气泡延迟展示计时（秒），< 0 表示未挂起
	revealTimer float64

	touchSlop float64
	detached  bool
}

// New 按配置构造滑杆
// 所有配置项可选；非法值被静默钳制（见 config.Normalize）
func New(cfg config.SeekBarConfig) *SeekBar {
	cfg.Normalize()

	s := &SeekBar{
		rng:                   newValueRange(cfg.Min, cfg.Max, cfg.Value, cfg.UpperValue, cfg.RangeMode),
		trackHeight:           cfg.TrackHeight,
		scrubberHeight:        cfg.ScrubberHeight,
		thumbSize:             cfg.ThumbSize,
		indicatorSeparation:   cfg.IndicatorSeparation,
		allowTrackClick:       cfg.AllowTrackClickToDrag,
		indicatorPopupEnabled: cfg.IndicatorPopupEnabled,
		mirrorForRtl:          cfg.MirrorForRtl,
		enabled:               true,
		formatter:             cfg.IndicatorFormatter,
		transformer:           defaultTransformer{},
		revealTimer:           -1,
		touchSlop:             cfg.TouchSlop,
	}
	s.geom = Geometry{
		PaddingLeft:   cfg.PaddingLeft,
		PaddingRight:  cfg.PaddingRight,
		PaddingTop:    cfg.PaddingTop,
		PaddingBottom: cfg.PaddingBottom,
		ThumbWidth:    cfg.ThumbSize,
		TouchInset:    cfg.TouchInset(),
	}
	s.activeThumb = s.rng.thumbs[0]
	s.anim.onFrame = s.setAnimationPosition
	return s
}

// ---------------------------------------------------------------------------
// 程序化 API
// ---------------------------------------------------------------------------

// GetProgress 当前数值（区间模式下为下限滑块）
func (s *SeekBar) GetProgress() int {
	return s.rng.thumbs[0].value
}

// SetProgress 程序设置数值（fromUser=false）
// 超出区间的输入被钳制到 [min, max]
func (s *SeekBar) SetProgress(value int) {
	s.setValue(s.rng.thumbs[0], value, false)
}

// SetLowerValue 区间模式设置下限
func (s *SeekBar) SetLowerValue(value int) {
	s.setValue(s.rng.thumbs[0], value, false)
}

// SetUpperValue 区间模式设置上限
func (s *SeekBar) SetUpperValue(value int) {
	s.setValue(s.rng.thumbs[1], value, false)
}

// LowerValue 区间下限
func (s *SeekBar) LowerValue() int { return s.rng.thumbs[0].value }

// UpperValue 区间上限
func (s *SeekBar) UpperValue() int { return s.rng.thumbs[1].value }

// GetMin 当前下界
func (s *SeekBar) GetMin() int { return s.rng.min }

// GetMax 当前上界
func (s *SeekBar) GetMax() int { return s.rng.max }

// SetMin 设置下界
// 若新下界大于当前上界，上界被顶到 min+1；
// 越界的滑块数值被拉回区间内，并重算按键步长
func (s *SeekBar) SetMin(min int) {
	s.rng.setMinBound(min)
	s.reclampThumbs()
}

// SetMax 设置上界
// 若新上界小于当前下界，下界被压到 max-1；
// 越界的滑块数值被拉回区间内，并重算按键步长
func (s *SeekBar) SetMax(max int) {
	s.rng.setMaxBound(max)
	s.reclampThumbs()
	s.updateIndicatorSizes()
}

// reclampThumbs 界变化后把滑块数值拉回合法状态
// 下限滑块越界时回到 min；
// 上限滑块违反顺序或越界时回到下限滑块的值
func (s *SeekBar) reclampThumbs() {
	lower := s.rng.thumbs[0]
	upper := s.rng.thumbs[1]
	if lower.value < s.rng.min || lower.value > s.rng.max {
		s.setValue(lower, s.rng.min, false)
	} else {
		// 界变了，像素映射也变了
		s.updateThumbPosFromValue(lower)
	}
	if !s.rng.rangeMode {
		return
	}
	if upper.value < lower.value || upper.value > s.rng.max {
		s.setValue(upper, lower.value, false)
	} else {
		s.updateThumbPosFromValue(upper)
	}
}

// KeyIncrement 当前按键步长
func (s *SeekBar) KeyIncrement() int { return s.rng.keyIncrement }

// RangeMode 是否区间模式
func (s *SeekBar) RangeMode() bool { return s.rng.rangeMode }

// SetEnabled 启用/禁用控件
// 禁用期间所有输入被忽略
func (s *SeekBar) SetEnabled(enabled bool) {
	s.enabled = enabled
	if !enabled {
		s.updateFromState()
	}
}

// Enabled 是否启用
func (s *SeekBar) Enabled() bool { return s.enabled }

// SetRtl 宿主布局方向为从右到左
// 只有同时开启 mirrorForRtl 才实际镜像
func (s *SeekBar) SetRtl(rtl bool) {
	if s.rtl == rtl {
		return
	}
	s.rtl = rtl
	s.geom.Mirrored = s.IsMirrored()
	s.relayout()
}

// IsMirrored 是否镜像布局（RTL 且开启镜像）
func (s *SeekBar) IsMirrored() bool {
	return s.rtl && s.mirrorForRtl
}

// ---------------------------------------------------------------------------
// 数值写入（五路输入的汇聚点）
// ---------------------------------------------------------------------------

// setValue 唯一的数值提交路径
//
// 钳制到 [min, max]；任何写入先取消运行中的过渡动画（即使
// 数值未变）。区间模式下违反顺序的更新被整体拒绝：不通知、
// 不移动。数值未变时无任何副作用。
func (s *SeekBar) setValue(t *Thumb, value int, fromUser bool) {
	value = s.rng.Clamp(value)
	if s.anim.Running() {
		s.anim.Cancel()
	}

	if t.value == value {
		return
	}
	if !s.rng.accepts(t, value) {
		return
	}
	t.value = value
	s.notifyProgress(fromUser)
	s.updateProgressMessage(value)
	s.updateThumbPosFromValue(t)
}

// notifyProgress 通知监听方
// 区间模式走区间形状 (lower, upper, fromUser)，
// 否则走单值形状 (value, fromUser)
func (s *SeekBar) notifyProgress(fromUser bool) {
	if s.rng.rangeMode {
		if s.rangeListener != nil {
			s.rangeListener.OnRangeChanged(s, s.rng.thumbs[0].value, s.rng.thumbs[1].value, fromUser)
		}
		return
	}
	if s.progressListener != nil {
		s.progressListener.OnProgressChanged(s, s.rng.thumbs[0].value, fromUser)
	}
}

// notifyStartTracking 通知开始拖动
func (s *SeekBar) notifyStartTracking() {
	if s.rng.rangeMode {
		if s.rangeListener != nil {
			s.rangeListener.OnStartTrackingTouch(s)
		}
		return
	}
	if s.progressListener != nil {
		s.progressListener.OnStartTrackingTouch(s)
	}
}

// notifyStopTracking 通知结束拖动
func (s *SeekBar) notifyStopTracking() {
	if s.rng.rangeMode {
		if s.rangeListener != nil {
			s.rangeListener.OnStopTrackingTouch(s)
		}
		return
	}
	if s.progressListener != nil {
		s.progressListener.OnStopTrackingTouch(s)
	}
}

// SetOnProgressChangeListener 注册单值监听
func (s *SeekBar) SetOnProgressChangeListener(l ProgressListener) {
	s.progressListener = l
}

// SetOnRangeChangeListener 注册区间监听
func (s *SeekBar) SetOnRangeChangeListener(l RangeListener) {
	s.rangeListener = l
}

// ---------------------------------------------------------------------------
// 布局与滑块摆放
// ---------------------------------------------------------------------------

// SetSize 宿主布局/尺寸变化
//
// 重算几何并把所有滑块按当前数值重新摆放。尺寸变化会取消
// 挂起的气泡展示并立即收起气泡，避免气泡悬在旧位置。
func (s *SeekBar) SetSize(width, height int) {
	s.geom.Width = width
	s.geom.Height = height
	s.geom.Mirrored = s.IsMirrored()
	s.relayout()
}

func (s *SeekBar) relayout() {
	s.revealTimer = -1
	if s.indicator != nil {
		s.indicator.DismissComplete()
	}
	s.indicatorOpen = false

	s.trackRect = s.geom.TrackRect(s.trackHeight)
	s.updateThumbPosFromValue(s.rng.thumbs[0])
	if s.rng.rangeMode {
		s.updateThumbPosFromValue(s.rng.thumbs[1])
	}
	s.updateFromState()
}

// updateThumbPosFromValue 按滑块当前数值重摆其可视矩形
func (s *SeekBar) updateThumbPosFromValue(t *Thumb) {
	offset := s.geom.ValueToOffset(t.value, s.rng.min, s.rng.max)
	s.updateThumbPos(t, offset)
}

// updateThumbPos 把滑块摆到可用区间内的指定像素偏移
// 同一逻辑步内完成：滑块矩形、已选段矩形、气泡跟随，
// 监听方看到的数值与位置始终一致
func (s *SeekBar) updateThumbPos(t *Thumb, offset int) {
	t.rect = s.geom.ThumbRect(offset, s.thumbSize)
	s.updateScrubberRect()
	if s.indicator != nil {
		cx := (t.rect.Min.X + t.rect.Max.X) / 2
		s.indicator.Move(cx)
	}
}

// updateScrubberRect 重算已选段矩形
//
// 单值模式从轨道起始端（镜像时为右端）铺到滑块中心；
// 区间模式横跨两个滑块中心之间（镜像与否都成立）。
func (s *SeekBar) updateScrubberRect() {
	half := s.scrubberHeight / 2
	if half < 2 {
		half = 2
	}
	centerY := s.geom.scrubberCenterY()

	lowerC := s.thumbCenterX(s.rng.thumbs[0])
	var left, right int
	if s.rng.rangeMode {
		upperC := s.thumbCenterX(s.rng.thumbs[1])
		left, right = minInt(lowerC, upperC), maxInt(lowerC, upperC)
	} else if s.geom.Mirrored {
		left, right = lowerC, s.geom.trackRight()
	} else {
		left, right = s.geom.trackLeft(), lowerC
	}
	s.scrubberRect = image.Rect(left, centerY-half, right, centerY+half)
}

func (s *SeekBar) thumbCenterX(t *Thumb) int {
	return (t.rect.Min.X + t.rect.Max.X) / 2
}

// TrackRect 轨道矩形（渲染协作方读取）
func (s *SeekBar) TrackRect() image.Rectangle { return s.trackRect }

// ScrubberRect 已选段矩形（渲染协作方读取）
func (s *SeekBar) ScrubberRect() image.Rectangle { return s.scrubberRect }

// Thumb 取滑块（渲染协作方读取数值和矩形）
func (s *SeekBar) Thumb(id ThumbID) *Thumb { return s.rng.Thumb(id) }

// Geom 当前几何信息
func (s *SeekBar) Geom() Geometry { return s.geom }

// ThumbSize 滑块可视尺寸
func (s *SeekBar) ThumbSize() int { return s.thumbSize }

// IndicatorSeparation 气泡与滑块的垂直间距
func (s *SeekBar) IndicatorSeparation() int { return s.indicatorSeparation }

// ---------------------------------------------------------------------------
// 数值过渡动画
// ---------------------------------------------------------------------------

// AnimateSetProgress 以动画过渡到目标数值
//
// 已有过渡在运行时先取消，新过渡从当前插值位置出发，
// 保证改向平滑。目标被钳制到 [min, max]，区间模式下还被
// 另一滑块的屏障钳制，插值过程不会越过顺序约束。
func (s *SeekBar) AnimateSetProgress(target int) {
	cur := float64(s.activeThumb.value)
	if s.anim.Running() {
		cur = s.anim.Position()
		s.anim.Cancel()
	}

	target = s.rng.Clamp(target)
	if s.rng.rangeMode {
		if s.activeThumb == s.rng.thumbs[0] {
			target = minInt(target, s.rng.thumbs[1].value)
		} else {
			target = maxInt(target, s.rng.thumbs[0].value)
		}
	}

	s.anim.Start(cur, target)
}

// animatedProgress 按键步进的基准值：
// 过渡运行中取其目标值，否则取活动滑块的已提交数值
func (s *SeekBar) animatedProgress() int {
	if s.anim.Running() {
		return s.anim.Target()
	}
	return s.activeThumb.value
}

// setAnimationPosition 动画每帧回调
//
// 插值位置驱动滑块可视矩形和气泡文本，但对外可见的已提交
// 数值只在四舍五入结果跨过整数边界时更新并通知，中间的
// 亚整数位置不产生通知。
func (s *SeekBar) setAnimationPosition(position float64) {
	scale := s.rng.scale(position)
	progress := s.rng.roundScale(scale)
	if progress != s.activeThumb.value {
		s.activeThumb.value = progress
		s.notifyProgress(true)
		s.updateProgressMessage(progress)
	}
	offset := utils.RoundHalfUp(scale * float64(s.geom.Available()))
	s.updateThumbPos(s.activeThumb, offset)
}

// TransitionRunning 是否有过渡动画在运行
func (s *SeekBar) TransitionRunning() bool { return s.anim.Running() }

// ---------------------------------------------------------------------------
// 帧推进
// ---------------------------------------------------------------------------

// Update 每帧推进
// 宿主更新循环调用；推进过渡动画和气泡延迟展示计时
//
// 参数：
//   - deltaTime: 距上一帧的时间（秒）
func (s *SeekBar) Update(deltaTime float64) {
	if s.detached {
		return
	}
	if s.revealTimer >= 0 {
		s.revealTimer -= deltaTime
		if s.revealTimer < 0 {
			s.revealTimer = -1
			s.showFloater()
		}
	}
	s.anim.Update(deltaTime)
}

// ---------------------------------------------------------------------------
// 气泡指示器
// ---------------------------------------------------------------------------

// SetIndicator 注册气泡协作方
func (s *SeekBar) SetIndicator(ind Indicator) {
	s.indicator = ind
	if ind != nil {
		ind.SetCallbacks(s)
		s.updateIndicatorSizes()
		s.updateProgressMessage(s.rng.thumbs[0].value)
	}
}

// OnOpeningComplete 实现 IndicatorCallbacks
func (s *SeekBar) OnOpeningComplete() {}

// OnClosingComplete 实现 IndicatorCallbacks
func (s *SeekBar) OnClosingComplete() {
	s.indicatorOpen = false
}

// IndicatorOpen 气泡当前是否展开（渲染协作方读取，
// 展开期间滑块绘制为按压态）
func (s *SeekBar) IndicatorOpen() bool { return s.indicatorOpen }

// ForceBubble 强制气泡常开/恢复自动
func (s *SeekBar) ForceBubble(force bool) {
	s.forceBubble = force
	s.setPressed(force)
}

// setPressed 按压状态变化
// 进入按压时挂起延迟展示（重复按压重置计时），
// 退出按压时取消挂起并收起气泡
func (s *SeekBar) setPressed(pressed bool) {
	s.pressed = pressed
	s.updateFromState()
}

// SetFocused 焦点状态变化（键盘导航）
func (s *SeekBar) SetFocused(focused bool) {
	s.focused = focused
	s.updateFromState()
}

func (s *SeekBar) updateFromState() {
	if s.enabled && (s.pressed || s.focused || s.forceBubble) && s.indicatorPopupEnabled {
		// 重置而不是叠加：每次相关状态变化都重新计时
		s.revealTimer = IndicatorDelayForTaps
		return
	}
	s.hideFloater()
}

func (s *SeekBar) showFloater() {
	if s.indicator == nil {
		return
	}
	s.indicatorOpen = true
	s.indicator.Show(s.activeThumb.rect)
}

func (s *SeekBar) hideFloater() {
	s.revealTimer = -1
	if s.indicator != nil {
		s.indicator.Dismiss()
	}
}

// Detach 宿主拆除控件
// 同步取消所有挂起的延迟效果：气泡计时、过渡动画。
// 拆除后不会再有任何回调复活已丢弃的状态
func (s *SeekBar) Detach() {
	s.detached = true
	s.revealTimer = -1
	s.anim.Cancel()
	if s.indicator != nil {
		s.indicator.DismissComplete()
	}
	s.indicatorOpen = false
}

// ---------------------------------------------------------------------------
// 数值显示
// ---------------------------------------------------------------------------

// SetIndicatorFormatter 更新气泡文本格式串并立即刷新
func (s *SeekBar) SetIndicatorFormatter(formatter string) {
	if formatter == "" {
		formatter = config.DefaultIndicatorFormatter
	}
	s.formatter = formatter
	s.updateProgressMessage(s.rng.thumbs[0].value)
}

// SetNumericTransformer 更新数值显示变换
// nil 恢复恒等变换；气泡按变换后的最大值重新定尺寸
func (s *SeekBar) SetNumericTransformer(t NumericTransformer) {
	if t == nil {
		t = defaultTransformer{}
	}
	s.transformer = t
	s.updateIndicatorSizes()
	s.updateProgressMessage(s.rng.thumbs[0].value)
}

// Transformer 当前数值显示变换
func (s *SeekBar) Transformer() NumericTransformer { return s.transformer }

// ValueAsString 数值的展示文本（套用变换和格式串）
func (s *SeekBar) ValueAsString(value int) string {
	if s.transformer.UseStringTransform() {
		return s.transformer.TransformToString(value)
	}
	return fmt.Sprintf(s.formatter, s.transformer.Transform(value))
}

func (s *SeekBar) updateProgressMessage(value int) {
	if s.indicator != nil {
		s.indicator.SetValue(s.ValueAsString(value))
	}
}

func (s *SeekBar) updateIndicatorSizes() {
	if s.indicator != nil {
		s.indicator.UpdateSizes(s.ValueAsString(s.rng.max))
	}
}

// ---------------------------------------------------------------------------
// 渲染协作方读取的交互状态
// ---------------------------------------------------------------------------

// Pressed 是否按压中
func (s *SeekBar) Pressed() bool { return s.pressed }

// Hovered 指针是否悬停在滑块上
func (s *SeekBar) Hovered() bool { return s.hovered }

// SetHovered 输入适配器更新悬停状态
func (s *SeekBar) SetHovered(hovered bool) { s.hovered = hovered }

// ActiveThumb 当前活动滑块
func (s *SeekBar) ActiveThumb() *Thumb { return s.activeThumb }
