package seekbar

import (
	"testing"

	"github.com/gonewx/seekbar/pkg/config"
)

// stepFrames 以固定帧长推进 n 帧
func stepFrames(bar *SeekBar, n int, dt float64) {
	for i := 0; i < n; i++ {
		bar.Update(dt)
	}
}

// TestAnimateSetProgressCompletes 测试过渡走完精确落在目标值
func TestAnimateSetProgressCompletes(t *testing.T) {
	bar := newTestBar(nil)

	bar.AnimateSetProgress(100)
	if !bar.TransitionRunning() {
		t.Fatal("启动后应有过渡在运行")
	}

	// 5 帧 × 0.05s = 0.25s，恰好走完
	stepFrames(bar, 5, 0.05)

	if bar.TransitionRunning() {
		t.Error("时长走完后过渡应结束")
	}
	if got := bar.GetProgress(); got != 100 {
		t.Errorf("完成后 GetProgress() = %d, 期望精确 100", got)
	}
}

// TestAnimationIntermediateFrames 测试中间帧线性插值
func TestAnimationIntermediateFrames(t *testing.T) {
	bar := newTestBar(nil)

	bar.AnimateSetProgress(100)
	bar.Update(0.05) // scale = 0.2
	if got := bar.GetProgress(); got != 20 {
		t.Errorf("0.05s 后 GetProgress() = %d, 期望 20", got)
	}
	bar.Update(0.05) // scale = 0.4
	if got := bar.GetProgress(); got != 40 {
		t.Errorf("0.10s 后 GetProgress() = %d, 期望 40", got)
	}
}

// TestAnimationNotifiesEachIntegerOnce 测试整数边界通知
// 对外通知只在四舍五入结果跨过整数时发出，每个整数恰好一次
func TestAnimationNotifiesEachIntegerOnce(t *testing.T) {
	bar := newTestBar(func(c *config.SeekBarConfig) { c.Max = 10 })
	listener := &recordingListener{}
	bar.SetOnProgressChangeListener(listener)

	bar.AnimateSetProgress(10)
	stepFrames(bar, 25, 0.01)

	if len(listener.changes) != 10 {
		t.Fatalf("通知次数 = %d, 期望 10（1..10 各一次）", len(listener.changes))
	}
	for i, c := range listener.changes {
		if c.value != i+1 {
			t.Errorf("第 %d 次通知值 = %d, 期望 %d", i, c.value, i+1)
		}
		if !c.fromUser {
			t.Errorf("第 %d 次通知 fromUser 应为 true", i)
		}
	}
}

// TestRetargetStartsFromCurrentPosition 测试中途改向
// 新过渡从当前插值位置出发，位置连续不跳变
func TestRetargetStartsFromCurrentPosition(t *testing.T) {
	bar := newTestBar(nil)

	bar.AnimateSetProgress(100)
	stepFrames(bar, 2, 0.05) // 位置 40

	bar.AnimateSetProgress(0)
	if !bar.TransitionRunning() {
		t.Fatal("改向后过渡应继续运行")
	}
	if got := bar.GetProgress(); got != 40 {
		t.Fatalf("改向瞬间不应跳变, GetProgress() = %d", got)
	}

	bar.Update(0.05) // 新过渡 scale = 0.2, 位置 40 → 32
	if got := bar.GetProgress(); got != 32 {
		t.Errorf("改向一帧后 GetProgress() = %d, 期望 32", got)
	}

	stepFrames(bar, 4, 0.05)
	if bar.TransitionRunning() {
		t.Error("新过渡走完后应结束")
	}
	if got := bar.GetProgress(); got != 0 {
		t.Errorf("回程完成后 GetProgress() = %d, 期望 0", got)
	}
}

// TestAnimationTargetClampedToBarrier 测试区间模式动画目标钳制
// 下限滑块的动画目标不会越过上限滑块
func TestAnimationTargetClampedToBarrier(t *testing.T) {
	bar := newTestBar(func(c *config.SeekBarConfig) {
		c.RangeMode = true
		c.Value = 20
		c.UpperValue = 60
	})

	bar.AnimateSetProgress(90)
	stepFrames(bar, 5, 0.05)

	if got := bar.LowerValue(); got != 60 {
		t.Errorf("动画完成后 LowerValue() = %d, 期望钳制到 60", got)
	}
	if bar.UpperValue() != 60 {
		t.Errorf("上限滑块不应被推动, 实际 %d", bar.UpperValue())
	}
}

// TestDetachCancelsTransition 测试拆除取消过渡
func TestDetachCancelsTransition(t *testing.T) {
	bar := newTestBar(nil)

	bar.AnimateSetProgress(100)
	bar.Update(0.05)
	before := bar.GetProgress()

	bar.Detach()
	if bar.TransitionRunning() {
		t.Error("拆除后过渡应被取消")
	}

	// 拆除后的帧推进不会复活已丢弃的插值状态
	stepFrames(bar, 10, 0.05)
	if bar.GetProgress() != before {
		t.Errorf("拆除后数值不应再变化: %d → %d", before, bar.GetProgress())
	}
}
