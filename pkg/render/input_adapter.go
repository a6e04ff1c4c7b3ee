package render

import (
	"image"

	"github.com/gonewx/seekbar/pkg/seekbar"
	"github.com/gonewx/seekbar/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputAdapter 指针/按键输入适配器
//
// 每帧读取鼠标和触摸状态（通过接口调用，支持测试 mock），
// 翻译成控件核心的类型化事件：
//   - 在控件区域内按下 → PointerDown，开始跟踪
//   - 跟踪期间每帧 → PointerMove（即使指针已移出控件区域）
//   - 跟踪期间释放 → PointerUp，结束跟踪
//   - 方向键左/右 → 按键步进
type InputAdapter struct {
	bar *seekbar.SeekBar

	// 控件在屏幕上的位置和尺寸
	OriginX int
	OriginY int
	Width   int
	Height  int

	input    PointerInput
	tracking bool
}

// PointerInput 指针输入接口
// 用于依赖注入，支持测试时 mock
type PointerInput interface {
	PointerState() (pressed bool, x, y int)
	KeyJustPressed(key ebiten.Key) bool
}

// ebitenPointerInput Ebitengine 默认实现
type ebitenPointerInput struct{}

func (ebitenPointerInput) PointerState() (bool, int, int) {
	utils.UpdateLastTouchPosition()
	return utils.GetPointerState()
}

func (ebitenPointerInput) KeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// NewInputAdapter 创建输入适配器
func NewInputAdapter(bar *seekbar.SeekBar, originX, originY, width, height int) *InputAdapter {
	return &InputAdapter{
		bar:     bar,
		OriginX: originX,
		OriginY: originY,
		Width:   width,
		Height:  height,
		input:   ebitenPointerInput{},
	}
}

// NewInputAdapterWithInput 创建带自定义输入源的适配器（用于测试）
func NewInputAdapterWithInput(bar *seekbar.SeekBar, originX, originY, width, height int, input PointerInput) *InputAdapter {
	a := NewInputAdapter(bar, originX, originY, width, height)
	a.input = input
	return a
}

// Update 每帧翻译输入
func (a *InputAdapter) Update() {
	pressed, sx, sy := a.input.PointerState()
	// 转为控件本地坐标
	lx := sx - a.OriginX
	ly := sy - a.OriginY
	inside := image.Pt(lx, ly).In(image.Rect(0, 0, a.Width, a.Height))

	switch {
	case pressed && !a.tracking:
		if inside {
			a.tracking = true
			a.bar.HandlePointer(seekbar.PointerEvent{Kind: seekbar.PointerDown, X: lx, Y: ly})
		}
	case pressed && a.tracking:
		a.bar.HandlePointer(seekbar.PointerEvent{Kind: seekbar.PointerMove, X: lx, Y: ly})
	case !pressed && a.tracking:
		a.tracking = false
		a.bar.HandlePointer(seekbar.PointerEvent{Kind: seekbar.PointerUp, X: lx, Y: ly})
	}

	// 悬停：未按下时指针落在活动滑块的可视矩形内
	if !pressed {
		a.bar.SetHovered(inside && image.Pt(lx, ly).In(a.bar.ActiveThumb().Rect()))
	}

	if a.input.KeyJustPressed(ebiten.KeyArrowLeft) {
		a.bar.HandleKey(seekbar.KeyDecrement)
	}
	if a.input.KeyJustPressed(ebiten.KeyArrowRight) {
		a.bar.HandleKey(seekbar.KeyIncrement)
	}
}

// Cancel 宿主要求中断当前跟踪（例如切换场景）
// 给核心送一个 PointerCancel，已提交的数值保持
func (a *InputAdapter) Cancel() {
	if a.tracking {
		a.tracking = false
		a.bar.HandlePointer(seekbar.PointerEvent{Kind: seekbar.PointerCancel})
	}
}
