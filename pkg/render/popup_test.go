package render

import (
	"image"
	"testing"
)

// callbackRecorder 记录开合完成回调的 mock
type callbackRecorder struct {
	opened int
	closed int
}

func (r *callbackRecorder) OnOpeningComplete() { r.opened++ }
func (r *callbackRecorder) OnClosingComplete() { r.closed++ }

func stepPopup(p *Popup, n int, dt float64) {
	for i := 0; i < n; i++ {
		p.Update(dt)
	}
}

var testThumbBounds = image.Rect(104, 28, 128, 52)

// TestPopupOpenAnimation 测试展开动画
// 展开完成恰好回调一次，后续帧不重复
func TestPopupOpenAnimation(t *testing.T) {
	p := NewPopup(5)
	rec := &callbackRecorder{}
	p.SetCallbacks(rec)

	p.Show(testThumbBounds)
	if !p.Visible() {
		t.Fatal("Show 后应立即可见（动画中）")
	}

	p.Update(0.05) // 开合进度 0.25
	if rec.opened != 0 {
		t.Fatal("动画未完成不应回调")
	}

	stepPopup(p, 3, 0.05) // 累计 0.2，走完
	if rec.opened != 1 {
		t.Errorf("展开完成回调 %d 次, 期望 1 次", rec.opened)
	}

	stepPopup(p, 5, 0.05)
	if rec.opened != 1 {
		t.Errorf("完成后继续推进不应重复回调, 实际 %d 次", rec.opened)
	}
}

// TestPopupDismissAnimation 测试收起动画
// 收起期间仍然可见，完成后隐藏并回调一次
func TestPopupDismissAnimation(t *testing.T) {
	p := NewPopup(5)
	rec := &callbackRecorder{}
	p.SetCallbacks(rec)

	p.Show(testThumbBounds)
	stepPopup(p, 4, 0.05) // 展开完成

	p.Dismiss()
	p.Update(0.05)
	if !p.Visible() {
		t.Fatal("收起动画播放期间应仍然可见")
	}

	stepPopup(p, 4, 0.05)
	if p.Visible() {
		t.Error("收起完成后应隐藏")
	}
	if rec.closed != 1 {
		t.Errorf("收起完成回调 %d 次, 期望 1 次", rec.closed)
	}
}

// TestPopupDismissComplete 测试立即隐藏
// 无动画、无回调（调用方自己知道已经收起）
func TestPopupDismissComplete(t *testing.T) {
	p := NewPopup(5)
	rec := &callbackRecorder{}
	p.SetCallbacks(rec)

	p.Show(testThumbBounds)
	stepPopup(p, 4, 0.05)

	p.DismissComplete()
	if p.Visible() {
		t.Error("立即隐藏后不应可见")
	}
	stepPopup(p, 5, 0.05)
	if rec.closed != 0 {
		t.Errorf("立即隐藏不应触发收起回调, 实际 %d 次", rec.closed)
	}
}

// TestPopupDismissWhenHiddenNoop 测试未展开时收起无害
func TestPopupDismissWhenHiddenNoop(t *testing.T) {
	p := NewPopup(5)
	rec := &callbackRecorder{}
	p.SetCallbacks(rec)

	p.Dismiss()
	stepPopup(p, 5, 0.05)

	if p.Visible() {
		t.Error("未展开过的气泡不应可见")
	}
	if rec.closed != 0 {
		t.Errorf("未展开时收起不应回调, 实际 %d 次", rec.closed)
	}
}

// TestPopupReopenDuringClose 测试收起途中重新展开
// 从当前缩放继续展开，不从零开始
func TestPopupReopenDuringClose(t *testing.T) {
	p := NewPopup(5)
	rec := &callbackRecorder{}
	p.SetCallbacks(rec)

	p.Show(testThumbBounds)
	stepPopup(p, 4, 0.05)
	p.Dismiss()
	p.Update(0.05)

	p.Show(testThumbBounds)
	if !p.Visible() {
		t.Fatal("重新展开后应可见")
	}
	stepPopup(p, 4, 0.05)
	if rec.opened != 2 {
		t.Errorf("两次展开完成应回调 2 次, 实际 %d 次", rec.opened)
	}
	if rec.closed != 0 {
		t.Errorf("被打断的收起不应回调, 实际 %d 次", rec.closed)
	}
}

// TestPopupUpdateSizes 测试按最宽文本定尺寸
func TestPopupUpdateSizes(t *testing.T) {
	p := NewPopup(5)

	p.UpdateSizes("100")
	if p.width != 3*6+16 {
		t.Errorf("宽度 = %d, 期望 %d", p.width, 3*6+16)
	}

	p.UpdateSizes("10000")
	if p.width != 5*6+16 {
		t.Errorf("加宽后宽度 = %d, 期望 %d", p.width, 5*6+16)
	}
}

// TestPopupFollowsThumb 测试文本与位置跟随
func TestPopupFollowsThumb(t *testing.T) {
	p := NewPopup(5)

	p.SetValue("42")
	if p.value != "42" {
		t.Errorf("文本 = %q, 期望 \"42\"", p.value)
	}

	p.Show(testThumbBounds)
	if p.centerX != 116 {
		t.Errorf("展开位置 centerX = %d, 期望 116", p.centerX)
	}

	p.Move(150)
	if p.centerX != 150 {
		t.Errorf("移动后 centerX = %d, 期望 150", p.centerX)
	}
}
