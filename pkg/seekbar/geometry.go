package seekbar

import (
	"image"

	"github.com/gonewx/seekbar/pkg/utils"
)

// Geometry 滑杆几何信息
//
// 统一三套坐标系：逻辑数值区间 [min, max]、去掉内边距和
// 触摸外扩后的可用像素区间、以及可选的 RTL 镜像反射。
// 每次尺寸变化时重算，从不持久化。
type Geometry struct {
	Width  int // 控件总宽度（像素）
	Height int // 控件总高度（像素）

	PaddingLeft   int
	PaddingRight  int
	PaddingTop    int
	PaddingBottom int

	ThumbWidth int // 滑块可视宽度
	TouchInset int // 滑块四周额外的不可见触摸外扩
	Mirrored   bool
}

// halfThumb 滑块可视宽度的一半
// 数值↔像素换算以滑块可视中心为准，而不是滑块边缘
func (g Geometry) halfThumb() int {
	return g.ThumbWidth / 2
}

// trackLeft 可用像素区间左端（滑块中心能到达的最左位置）
func (g Geometry) trackLeft() int {
	return g.PaddingLeft + g.halfThumb() + g.TouchInset
}

// trackRight 可用像素区间右端
func (g Geometry) trackRight() int {
	return g.Width - g.PaddingRight - g.halfThumb() - g.TouchInset
}

// Available 可用像素区间长度
func (g Geometry) Available() int {
	return g.trackRight() - g.trackLeft()
}

// OffsetToValue 把控件本地 X 像素坐标换算为逻辑数值
//
// 先把坐标钳制到可用区间再换算，越界的指针位置饱和到
// min/max 而不是外推；镜像布局反射比例值（1 - scale）。
func (g Geometry) OffsetToValue(pixelX, min, max int) int {
	left := g.trackLeft()
	right := g.trackRight()
	available := right - left
	if available <= 0 {
		return min
	}
	if pixelX < left {
		pixelX = left
	} else if pixelX > right {
		pixelX = right
	}
	scale := float64(pixelX-left) / float64(available)
	if g.Mirrored {
		scale = 1 - scale
	}
	return utils.RoundHalfUp(scale*float64(max-min)) + min
}

// ValueToOffset 把逻辑数值换算为可用区间内的像素偏移（0..available）
// 偏移尚未做镜像反射，反射在摆放滑块矩形时统一处理
func (g Geometry) ValueToOffset(value, min, max int) int {
	available := g.Available()
	if available <= 0 || max <= min {
		return 0
	}
	scaleDraw := float64(value-min) / float64(max-min)
	return utils.RoundHalfUp(scaleDraw * float64(available))
}

// ThumbRect 根据可用区间内的像素偏移计算滑块可视矩形
//
// 镜像布局从右端反向摆放：posX = start - offset - thumbWidth。
// 垂直方向贴着下内边距。
func (g Geometry) ThumbRect(offset, thumbHeight int) image.Rectangle {
	var posX int
	if g.Mirrored {
		start := g.Width - g.PaddingRight - g.TouchInset
		posX = start - offset - g.ThumbWidth
	} else {
		start := g.PaddingLeft + g.TouchInset
		posX = start + offset
	}
	bottom := g.Height - g.PaddingBottom - g.TouchInset
	return image.Rect(posX, bottom-thumbHeight, posX+g.ThumbWidth, bottom)
}

// TrackRect 轨道矩形（横跨整个可用区间）
func (g Geometry) TrackRect(trackHeight int) image.Rectangle {
	half := trackHeight / 2
	if half < 1 {
		half = 1
	}
	centerY := g.scrubberCenterY()
	return image.Rect(g.trackLeft(), centerY-half, g.trackRight(), centerY+half)
}

// scrubberCenterY 已选段的垂直中心
func (g Geometry) scrubberCenterY() int {
	bottom := g.Height - g.PaddingBottom - g.TouchInset
	return bottom - g.halfThumb()
}
