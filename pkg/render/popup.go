package render

import (
	"image"
	"image/color"

	"github.com/gonewx/seekbar/pkg/seekbar"
	"github.com/gonewx/seekbar/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 气泡开合动画时长（秒）
const (
	popupOpenDuration  = 0.2
	popupCloseDuration = 0.15
)

// 气泡配色
var (
	popupColor     = color.RGBA{R: 0, G: 150, B: 136, A: 255}
	popupTextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Popup 浮动数值气泡
// 实现 seekbar.Indicator：展示当前数值、跟随滑块移动，
// 带缩放式开合动画，动画完成后回调核心
type Popup struct {
	value   string
	centerX int

	// 气泡尺寸（UpdateSizes 按最宽文本计算）
	width  int
	height int

	// 与滑块顶部的垂直间距
	separation int

	// 开合动画：scale 0（收起）..1（展开）
	scale   float64
	opening bool
	closing bool
	visible bool

	thumbTop int

	callbacks seekbar.IndicatorCallbacks

	// 可选字体；为 nil 时用调试字体绘制
	Font *text.GoTextFace
}

// NewPopup 创建气泡
//
// 参数：
//   - separation: 气泡与滑块顶部的垂直间距（像素）
func NewPopup(separation int) *Popup {
	return &Popup{
		separation: separation,
		width:      32,
		height:     24,
	}
}

// SetCallbacks 实现 seekbar.Indicator
func (p *Popup) SetCallbacks(cb seekbar.IndicatorCallbacks) {
	p.callbacks = cb
}

// SetValue 实现 seekbar.Indicator
func (p *Popup) SetValue(textValue string) {
	p.value = textValue
}

// Move 实现 seekbar.Indicator
func (p *Popup) Move(centerX int) {
	p.centerX = centerX
}

// Show 实现 seekbar.Indicator：从滑块位置展开
func (p *Popup) Show(thumbBounds image.Rectangle) {
	p.thumbTop = thumbBounds.Min.Y
	p.centerX = (thumbBounds.Min.X + thumbBounds.Max.X) / 2
	p.visible = true
	p.opening = true
	p.closing = false
}

// Dismiss 实现 seekbar.Indicator：播放收起动画后隐藏
func (p *Popup) Dismiss() {
	if !p.visible && p.scale == 0 {
		return
	}
	p.opening = false
	p.closing = true
}

// DismissComplete 实现 seekbar.Indicator：立即隐藏，无动画
func (p *Popup) DismissComplete() {
	p.visible = false
	p.opening = false
	p.closing = false
	p.scale = 0
}

// UpdateSizes 实现 seekbar.Indicator：按最宽文本重算气泡尺寸
func (p *Popup) UpdateSizes(widest string) {
	if p.Font != nil {
		w, h := text.Measure(widest, p.Font, 0)
		p.width = int(w) + 16
		p.height = int(h) + 10
		return
	}
	// 调试字体为 6x16 等宽
	p.width = len(widest)*6 + 16
	p.height = 26
}

// Update 推进开合动画
// 展开完成与收起完成各回调核心一次
func (p *Popup) Update(deltaTime float64) {
	if p.opening {
		p.scale = utils.Clamp(p.scale+deltaTime/popupOpenDuration, 0, 1)
		if p.scale >= 1 {
			p.opening = false
			if p.callbacks != nil {
				p.callbacks.OnOpeningComplete()
			}
		}
	} else if p.closing {
		p.scale = utils.Clamp(p.scale-deltaTime/popupCloseDuration, 0, 1)
		if p.scale <= 0 {
			p.closing = false
			p.visible = false
			if p.callbacks != nil {
				p.callbacks.OnClosingComplete()
			}
		}
	}
}

// Visible 气泡当前是否可见（含动画中）
func (p *Popup) Visible() bool { return p.visible }

// Draw 绘制气泡
// originX/originY 为控件左上角的屏幕位置
func (p *Popup) Draw(screen *ebiten.Image, originX, originY int) {
	if !p.visible || p.scale <= 0 {
		return
	}
	eased := utils.EaseOutCubic(p.scale)
	if p.closing {
		eased = utils.EaseOutQuad(p.scale)
	}
	w := float32(p.width) * float32(eased)
	h := float32(p.height) * float32(eased)

	cx := float32(originX + p.centerX)
	bottom := float32(originY+p.thumbTop-p.separation) - 2

	vector.DrawFilledRect(screen, cx-w/2, bottom-h, w, h, popupColor, true)
	// 指向滑块的小三角
	vector.StrokeLine(screen, cx-3*float32(eased), bottom, cx+3*float32(eased), bottom, 4*float32(eased), popupColor, true)

	if p.scale >= 1 {
		p.drawText(screen, cx, bottom-h/2)
	}
}

func (p *Popup) drawText(screen *ebiten.Image, cx, cy float32) {
	if p.Font != nil {
		w, fh := text.Measure(p.value, p.Font, 0)
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(cx)-w/2, float64(cy)-fh/2)
		op.ColorScale.ScaleWithColor(popupTextColor)
		text.Draw(screen, p.value, p.Font, op)
		return
	}
	ebitenutil.DebugPrintAt(screen, p.value, int(cx)-len(p.value)*3, int(cy)-8)
}
