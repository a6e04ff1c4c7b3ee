package render

import (
	"testing"

	"github.com/gonewx/seekbar/pkg/config"
	"github.com/gonewx/seekbar/pkg/seekbar"
	"github.com/hajimehoshi/ebiten/v2"
)

// 测试用控件几何与屏幕摆放
const (
	adapterBarWidth  = 232
	adapterBarHeight = 56
	adapterOriginX   = 100
	adapterOriginY   = 50
)

// mockPointerInput 可编程的输入源 mock
type mockPointerInput struct {
	pressed bool
	x, y    int
	keys    map[ebiten.Key]bool
}

func (m *mockPointerInput) PointerState() (bool, int, int) {
	return m.pressed, m.x, m.y
}

func (m *mockPointerInput) KeyJustPressed(key ebiten.Key) bool {
	return m.keys[key]
}

func newAdapterFixture(mod func(*config.SeekBarConfig)) (*seekbar.SeekBar, *InputAdapter, *mockPointerInput) {
	cfg := config.DefaultSeekBarConfig()
	if mod != nil {
		mod(&cfg)
	}
	bar := seekbar.New(cfg)
	bar.SetSize(adapterBarWidth, adapterBarHeight)
	input := &mockPointerInput{keys: map[ebiten.Key]bool{}}
	adapter := NewInputAdapterWithInput(bar, adapterOriginX, adapterOriginY,
		adapterBarWidth, adapterBarHeight, input)
	return bar, adapter, input
}

// thumbScreenCenter 活动滑块中心的屏幕坐标
func thumbScreenCenter(bar *seekbar.SeekBar) (int, int) {
	r := bar.ActiveThumb().Rect()
	return adapterOriginX + (r.Min.X+r.Max.X)/2, adapterOriginY + (r.Min.Y+r.Max.Y)/2
}

// TestAdapterPressOnThumbStartsDrag 测试区域内按下开始跟踪
func TestAdapterPressOnThumbStartsDrag(t *testing.T) {
	bar, adapter, input := newAdapterFixture(func(c *config.SeekBarConfig) { c.Value = 50 })

	input.pressed = true
	input.x, input.y = thumbScreenCenter(bar)
	adapter.Update()

	if !bar.Dragging() {
		t.Fatal("滑块上按下应进入拖动")
	}

	// 右移 20 屏幕像素 = 10 个数值单位
	input.x += 20
	adapter.Update()
	if got := bar.GetProgress(); got != 60 {
		t.Errorf("拖动后 GetProgress() = %d, 期望 60", got)
	}

	input.pressed = false
	adapter.Update()
	if bar.Dragging() {
		t.Error("释放后应结束拖动")
	}
}

// TestAdapterPressOutsideIgnored 测试区域外按下不产生事件
func TestAdapterPressOutsideIgnored(t *testing.T) {
	bar, adapter, input := newAdapterFixture(func(c *config.SeekBarConfig) { c.Value = 50 })

	input.pressed = true
	input.x, input.y = 10, 10 // 控件区域外
	adapter.Update()

	if bar.Dragging() {
		t.Error("区域外按下不应进入拖动")
	}
	if bar.GetProgress() != 50 {
		t.Errorf("区域外按下不应改值, 实际 %d", bar.GetProgress())
	}
}

// TestAdapterTrackingFollowsPointerOutside 测试跟踪期间指针移出区域
// 拖动一旦开始，指针移出控件区域仍然跟随（数值钳制在边界）
func TestAdapterTrackingFollowsPointerOutside(t *testing.T) {
	bar, adapter, input := newAdapterFixture(func(c *config.SeekBarConfig) { c.Value = 50 })

	input.pressed = true
	input.x, input.y = thumbScreenCenter(bar)
	adapter.Update()

	// 拖出控件右边界很远
	input.x = adapterOriginX + adapterBarWidth + 500
	adapter.Update()
	if got := bar.GetProgress(); got != 100 {
		t.Errorf("拖出右边界 GetProgress() = %d, 期望钳制到 100", got)
	}

	input.pressed = false
	adapter.Update()
	if got := bar.GetProgress(); got != 100 {
		t.Errorf("释放后 GetProgress() = %d, 期望 100", got)
	}
}

// TestAdapterArrowKeys 测试方向键翻译
func TestAdapterArrowKeys(t *testing.T) {
	bar, adapter, input := newAdapterFixture(func(c *config.SeekBarConfig) { c.Value = 50 })

	input.keys[ebiten.KeyArrowRight] = true
	adapter.Update()
	input.keys[ebiten.KeyArrowRight] = false

	if !bar.TransitionRunning() {
		t.Fatal("右方向键应启动步进动画")
	}
	for i := 0; i < 5; i++ {
		bar.Update(0.05)
	}
	if got := bar.GetProgress(); got != 55 {
		t.Errorf("右方向键步进后 GetProgress() = %d, 期望 55", got)
	}

	input.keys[ebiten.KeyArrowLeft] = true
	adapter.Update()
	for i := 0; i < 5; i++ {
		bar.Update(0.05)
	}
	if got := bar.GetProgress(); got != 50 {
		t.Errorf("左方向键步进后 GetProgress() = %d, 期望 50", got)
	}
}

// TestAdapterHoverTracksThumb 测试悬停检测
func TestAdapterHoverTracksThumb(t *testing.T) {
	bar, adapter, input := newAdapterFixture(func(c *config.SeekBarConfig) { c.Value = 50 })

	input.x, input.y = thumbScreenCenter(bar)
	adapter.Update()
	if !bar.Hovered() {
		t.Error("指针在滑块上应为悬停态")
	}

	input.x = adapterOriginX + 5 // 轨道左端，远离滑块
	adapter.Update()
	if bar.Hovered() {
		t.Error("指针离开滑块应解除悬停")
	}
}

// TestAdapterCancelInterruptsTracking 测试宿主中断跟踪
func TestAdapterCancelInterruptsTracking(t *testing.T) {
	bar, adapter, input := newAdapterFixture(func(c *config.SeekBarConfig) { c.Value = 50 })

	input.pressed = true
	input.x, input.y = thumbScreenCenter(bar)
	adapter.Update()
	input.x += 20
	adapter.Update()

	adapter.Cancel()
	if bar.Dragging() {
		t.Error("中断后应结束拖动")
	}
	if got := bar.GetProgress(); got != 60 {
		t.Errorf("中断不应回滚数值, 实际 %d", got)
	}

	// 中断后的释放不再产生事件
	input.pressed = false
	adapter.Update()
	if bar.Dragging() {
		t.Error("中断后的释放不应重新进入拖动")
	}
}
