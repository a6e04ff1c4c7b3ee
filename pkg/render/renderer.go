// Package render 滑杆控件的 Ebitengine 渲染与输入协作方
//
// 核心（pkg/seekbar）只计算矩形和数值，这里负责：
//   - 绘制轨道、已选段和滑块
//   - 浮动数值气泡的绘制与开合动画
//   - 把平台指针/按键状态翻译成核心的类型化事件
package render

import (
	"image"
	"image/color"

	"github.com/gonewx/seekbar/pkg/seekbar"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 默认配色
var (
	// 轨道颜色（未选中部分）
	trackColor = color.RGBA{R: 158, G: 158, B: 158, A: 255}

	// 已选段与滑块颜色
	scrubberColor = color.RGBA{R: 0, G: 150, B: 136, A: 255}

	// 按压/悬停时滑块的加深色
	thumbActiveColor = color.RGBA{R: 0, G: 121, B: 107, A: 255}

	// 禁用状态颜色
	disabledColor = color.RGBA{R: 189, G: 189, B: 189, A: 255}
)

// Renderer 滑杆渲染器
// 读取核心摆好的矩形按屏幕坐标绘制；不修改核心状态
type Renderer struct {
	bar *seekbar.SeekBar

	// 控件左上角在屏幕上的位置
	OriginX int
	OriginY int
}

// NewRenderer 创建渲染器
func NewRenderer(bar *seekbar.SeekBar, originX, originY int) *Renderer {
	return &Renderer{bar: bar, OriginX: originX, OriginY: originY}
}

// Draw 绘制轨道、已选段和滑块
func (r *Renderer) Draw(screen *ebiten.Image) {
	trackClr := trackColor
	fillClr := scrubberColor
	if !r.bar.Enabled() {
		trackClr = disabledColor
		fillClr = disabledColor
	}

	r.fillRect(screen, r.bar.TrackRect(), trackClr)
	r.fillRect(screen, r.bar.ScrubberRect(), fillClr)

	r.drawThumb(screen, r.bar.Thumb(seekbar.ThumbLower), fillClr)
	if r.bar.RangeMode() {
		r.drawThumb(screen, r.bar.Thumb(seekbar.ThumbUpper), fillClr)
	}
}

func (r *Renderer) drawThumb(screen *ebiten.Image, t *seekbar.Thumb, clr color.RGBA) {
	rect := t.Rect()
	cx := float32(r.OriginX) + float32(rect.Min.X+rect.Max.X)/2
	cy := float32(r.OriginY) + float32(rect.Min.Y+rect.Max.Y)/2
	radius := float32(rect.Dx()) / 2

	active := r.bar.ActiveThumb() == t
	if active && (r.bar.Pressed() || r.bar.IndicatorOpen()) {
		// 按压态：滑块加深并放大一圈
		vector.DrawFilledCircle(screen, cx, cy, radius+2, thumbActiveColor, true)
		return
	}
	if active && r.bar.Hovered() {
		vector.DrawFilledCircle(screen, cx, cy, radius+1, clr, true)
		return
	}
	vector.DrawFilledCircle(screen, cx, cy, radius, clr, true)
}

func (r *Renderer) fillRect(screen *ebiten.Image, rect image.Rectangle, clr color.RGBA) {
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return
	}
	vector.DrawFilledRect(screen,
		float32(r.OriginX+rect.Min.X), float32(r.OriginY+rect.Min.Y),
		float32(rect.Dx()), float32(rect.Dy()),
		clr, true)
}
