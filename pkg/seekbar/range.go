package seekbar

import (
	"image"
	"math"

	"github.com/gonewx/seekbar/pkg/utils"
)

// ThumbID 滑块标识
type ThumbID int

const (
	// ThumbLower 下限滑块（单值模式下唯一的滑块）
	ThumbLower ThumbID = iota
	// ThumbUpper 上限滑块（仅区间模式存在）
	ThumbUpper
)

// Thumb 一个可拖动的滑块
// 数值由核心维护，可视矩形由核心摆放、渲染协作方绘制
type Thumb struct {
	id    ThumbID
	value int
	rect  image.Rectangle
}

// ID 滑块标识
func (t *Thumb) ID() ThumbID { return t.id }

// Value 当前数值
func (t *Thumb) Value() int { return t.value }

// Rect 当前可视矩形（控件本地坐标）
func (t *Thumb) Rect() image.Rectangle { return t.rect }

// ValueRange 数值区间
//
// 持有 min/max 和一或两个滑块的数值，负责钳制和区间模式的
// 顺序约束。任何时刻（单次原子更新之外）满足：
//   - min < max
//   - 每个滑块 min ≤ value ≤ max
//   - 区间模式下 lower.value ≤ upper.value
//   - keyIncrement ≥ 1
type ValueRange struct {
	min          int
	max          int
	keyIncrement int
	rangeMode    bool
	thumbs       [2]*Thumb
}

// newValueRange 构造数值区间并按初始配置钳制
// max 至少为 min+1；upper 至少为 lower 的初值
func newValueRange(min, max, value, upperValue int, rangeMode bool) *ValueRange {
	r := &ValueRange{
		min:          min,
		max:          maxInt(min+1, max),
		keyIncrement: 1,
		rangeMode:    rangeMode,
		thumbs: [2]*Thumb{
			{id: ThumbLower},
			{id: ThumbUpper},
		},
	}
	r.thumbs[0].value = utils.ClampInt(value, r.min, r.max)
	r.thumbs[1].value = maxInt(r.thumbs[0].value, minInt(r.max, upperValue))
	r.updateKeyIncrement()
	return r
}

// Min 当前下界
func (r *ValueRange) Min() int { return r.min }

// Max 当前上界
func (r *ValueRange) Max() int { return r.max }

// KeyIncrement 当前按键步长
func (r *ValueRange) KeyIncrement() int { return r.keyIncrement }

// RangeMode 是否区间模式
func (r *ValueRange) RangeMode() bool { return r.rangeMode }

// Thumb 取滑块
func (r *ValueRange) Thumb(id ThumbID) *Thumb { return r.thumbs[id] }

// Clamp 把 v 钳制到 [min, max]
func (r *ValueRange) Clamp(v int) int {
	return utils.ClampInt(v, r.min, r.max)
}

// accepts 区间模式的顺序约束：另一个滑块是硬屏障，
// 不会被推着走。违反顺序的更新被整体拒绝（无副作用）。
func (r *ValueRange) accepts(t *Thumb, value int) bool {
	if !r.rangeMode {
		return true
	}
	if t == r.thumbs[0] && value > r.thumbs[1].value {
		return false
	}
	if t == r.thumbs[1] && value < r.thumbs[0].value {
		return false
	}
	return true
}

// updateKeyIncrement 重算按键步长
// 只有当前步长为 0 或走完全程超过 20 步时才调整，
// 保证键盘从一端走到另一端不超过约 20 次按键
func (r *ValueRange) updateKeyIncrement() {
	span := r.max - r.min
	if r.keyIncrement == 0 || span/r.keyIncrement > 20 {
		r.keyIncrement = maxInt(1, utils.RoundHalfUp(float64(span)/20))
	}
}

// setMinBound 仅调整下界本身，上界冲突时把上界顶到 min+1
// 返回上界是否被连带调整
func (r *ValueRange) setMinBound(min int) bool {
	r.min = min
	adjusted := false
	if r.min > r.max {
		r.max = r.min + 1
		adjusted = true
	}
	r.updateKeyIncrement()
	return adjusted
}

// setMaxBound 仅调整上界本身，下界冲突时把下界压到 max-1
// 返回下界是否被连带调整
func (r *ValueRange) setMaxBound(max int) bool {
	r.max = max
	adjusted := false
	if r.max < r.min {
		r.min = r.max - 1
		adjusted = true
	}
	r.updateKeyIncrement()
	return adjusted
}

// scale 把数值换算为 [0,1] 比例
func (r *ValueRange) scale(v float64) float64 {
	if r.max <= r.min {
		return 0
	}
	return (v - float64(r.min)) / float64(r.max-r.min)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// roundScale 把比例值换算回整数数值
func (r *ValueRange) roundScale(scale float64) int {
	return int(math.Floor(scale*float64(r.max-r.min)+0.5)) + r.min
}
