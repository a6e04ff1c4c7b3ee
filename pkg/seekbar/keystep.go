package seekbar

// 按键步进
//
// 与拖动相互独立：拖动期间按键不可动作（拖动优先）。
// 所有按键驱动的变化都走过渡动画；过渡运行中再次按键时，
// 基准值取过渡的目标值而不是当前已提交值，连按多下可以
// 连续叠加目标。

// HandleKey 派发一次按键步进
// 返回按键是否被消费。已在边界上的步进被消费但不产生变化。
// 镜像布局下按键方向不反转：左键始终减小、右键始终增大。
func (s *SeekBar) HandleKey(key KeyKind) bool {
	if !s.enabled || s.detached {
		return false
	}
	if s.drag.dragging {
		// 拖动优先于键盘触发的动画
		return false
	}

	progress := s.animatedProgress()
	switch key {
	case KeyDecrement:
		if progress <= s.rng.min {
			return true
		}
		s.AnimateSetProgress(progress - s.rng.keyIncrement)
	case KeyIncrement:
		if progress >= s.rng.max {
			return true
		}
		s.AnimateSetProgress(progress + s.rng.keyIncrement)
	}
	return true
}
