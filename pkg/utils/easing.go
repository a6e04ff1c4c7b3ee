package utils

import "math"

// Easing Functions (缓动函数)
//
// 用于控制滑杆动画的速度曲线。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。

// EaseLinear 线性缓动（无缓动）
// 数值过渡动画使用线性插值，保证显示值单调逼近目标
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（用于气泡指示器的展开动画）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢（用于气泡指示器的收起动画）
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 将 v 限制在 [lo, hi] 范围内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt 将 v 限制在 [lo, hi] 范围内（整数版本）
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundHalfUp 四舍五入到最近整数
// 滑杆的像素↔数值换算在两个方向使用同一个舍入策略，
// 保证往返转换在 ±1 像素内幂等
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
