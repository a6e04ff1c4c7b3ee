package seekbar

import (
	"github.com/gonewx/seekbar/pkg/utils"
)

// TransitionDuration 数值过渡动画时长（秒）
const TransitionDuration = 0.25

// TransitionAnimator 数值过渡动画
//
// 按帧推进的线性插值：宿主游戏循环每帧调用 Update(deltaTime)，
// 动画器只负责插值数学，不持有任何调度原语。
// 同一时刻最多一个过渡在运行；重定目标从当前插值位置出发，
// 而不是原始起点，保证中途改向平滑不跳变。
type TransitionAnimator struct {
	from     float64
	target   int
	position float64
	elapsed  float64
	running  bool

	// onFrame 每帧回调当前插值位置（含最后一帧的精确目标值）
	onFrame func(position float64)
}

// Running 是否有过渡在运行
func (a *TransitionAnimator) Running() bool { return a.running }

// Target 当前过渡的目标值
func (a *TransitionAnimator) Target() int { return a.target }

// Position 当前插值位置（仅运行期间有意义）
func (a *TransitionAnimator) Position() float64 { return a.position }

// Start 启动一个新过渡
// 调用方负责先取消旧过渡并决定 from（运行中取当前插值位置）
func (a *TransitionAnimator) Start(from float64, target int) {
	a.from = from
	a.target = target
	a.position = from
	a.elapsed = 0
	a.running = true
}

// Cancel 同步取消过渡
// 取消后不会再有任何回调，丢弃的插值状态不会复活
func (a *TransitionAnimator) Cancel() {
	a.running = false
}

// Update 推进动画
// scale 钳制到 [0,1]；到达 1 时位置精确等于目标值（无舍入漂移）
// 并清除过渡
func (a *TransitionAnimator) Update(deltaTime float64) {
	if !a.running {
		return
	}
	a.elapsed += deltaTime
	scale := utils.Clamp(a.elapsed/TransitionDuration, 0, 1)
	a.position = utils.Lerp(a.from, float64(a.target), utils.EaseLinear(scale))
	done := scale >= 1
	if done {
		a.position = float64(a.target)
		a.running = false
	}
	if a.onFrame != nil {
		a.onFrame(a.position)
	}
}
