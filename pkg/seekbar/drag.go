package seekbar

import (
	"image"
	"math"
)

// 拖动状态机
//
// 三态：空闲 → 待确认（按下但位移未超阈值、未命中滑块）→ 拖动。
// 按下命中外扩后的滑块矩形立即进入拖动；未命中且允许轨道点击
// 时，把滑块吸附到按下位置再进入拖动；否则记录按下点等待位移
// 超过阈值后重新判定。

// dragSession 一次按下到抬起之间的临时状态
type dragSession struct {
	dragging bool
	downX    float64
	// offset 抓取时指针与滑块可视左缘的像素差，
	// 拖动期间保持，避免滑块跳到指针正下方
	offset int
}

// Dragging 是否正在拖动
func (s *SeekBar) Dragging() bool { return s.drag.dragging }

// HandlePointer 派发一次指针事件
// 返回事件是否被消费（控件禁用时不消费）
func (s *SeekBar) HandlePointer(ev PointerEvent) bool {
	if !s.enabled || s.detached {
		return false
	}
	switch ev.Kind {
	case PointerDown:
		s.drag.downX = float64(ev.X)
		s.startDragging(ev, s.isInScrollingContainer())
	case PointerMove:
		if s.drag.dragging {
			s.updateDragging(ev)
		} else if math.Abs(float64(ev.X)-s.drag.downX) > s.touchSlop {
			// 位移超过阈值，按当前位置重新判定
			s.startDragging(ev, false)
		}
	case PointerUp:
		if !s.drag.dragging && s.allowTrackClick {
			// 点击即设值：在抬起位置合成一次按下+拖动+提交
			s.startDragging(ev, false)
			s.updateDragging(ev)
		}
		s.stopDragging()
	case PointerCancel:
		// 取消不回滚数值，最后一次提交的值保持
		s.stopDragging()
	}
	return true
}

func (s *SeekBar) isInScrollingContainer() bool {
	return s.InScrollingContainer != nil && s.InScrollingContainer()
}

// startDragging 按下/确认时的滑块命中与抓取
//
// 区间模式先按水平距离选最近的滑块。命中外扩矩形直接抓取；
// 未命中且允许轨道点击（且不在可滚动容器内）时，先把滑块
// 吸附到指针映射的数值，再用移动后的新矩形重算抓取偏移——
// 命中判定用的是吸附前的旧矩形，这次二段式解析不可省略。
func (s *SeekBar) startDragging(ev PointerEvent, ignoreTrackIfInScrollContainer bool) bool {
	if s.rng.rangeMode {
		d0 := absInt(s.thumbCenterX(s.rng.thumbs[0]) - ev.X)
		d1 := absInt(s.thumbCenterX(s.rng.thumbs[1]) - ev.X)
		if d0 < d1 {
			s.activeThumb = s.rng.thumbs[0]
		} else {
			s.activeThumb = s.rng.thumbs[1]
		}
	}

	inset := s.geom.TouchInset
	bounds := s.activeThumb.rect.Inset(-inset)
	s.drag.dragging = image.Pt(ev.X, ev.Y).In(bounds)
	if !s.drag.dragging && s.allowTrackClick && !ignoreTrackIfInScrollContainer {
		s.drag.dragging = true
		s.drag.offset = bounds.Dx()/2 - inset
		s.updateDragging(ev)
		// 滑块已经移动，重取矩形
		bounds = s.activeThumb.rect.Inset(-inset)
	}
	if s.drag.dragging {
		s.setPressed(true)
		if s.ClaimDrag != nil {
			// 每次拖动只申请一次输入独占
			s.ClaimDrag()
		}
		s.drag.offset = ev.X - bounds.Min.X - inset
		s.notifyStartTracking()
	}
	return s.drag.dragging
}

// updateDragging 拖动中的移动事件
// 指针 X 减去抓取偏移再加半滑块宽，得到滑块可视中心的
// 目标位置，交给坐标映射换算成数值后提交
func (s *SeekBar) updateDragging(ev PointerEvent) {
	halfThumb := s.activeThumb.rect.Dx() / 2
	newX := ev.X - s.drag.offset + halfThumb
	value := s.geom.OffsetToValue(newX, s.rng.min, s.rng.max)
	s.setValue(s.activeThumb, value, true)
}

// stopDragging 抬起/取消
// 每次抬起恰好发出一次结束通知，即使这次按下从未进入拖动
func (s *SeekBar) stopDragging() {
	wasDragging := s.drag.dragging
	s.notifyStopTracking()
	s.drag.dragging = false
	if !s.forceBubble {
		s.setPressed(false)
	}
	if wasDragging && s.OnRelease != nil {
		s.OnRelease()
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
