// seekbar_demo 滑杆控件验证程序
//
// 展示三种配置：
//   - 单值滑杆（数值状态通过 gdata 持久化，重启后恢复）
//   - 区间滑杆（两个滑块选择子区间）
//   - 镜像滑杆（RTL 布局，最左端映射到 max）
//
// 操作：
//   - 鼠标/触摸拖动滑块，点击轨道吸附
//   - 方向键左/右步进（带过渡动画）
//   - R 键拆除并重建第一条滑杆（验证状态保存/恢复）
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gonewx/seekbar/pkg/config"
	"github.com/gonewx/seekbar/pkg/render"
	"github.com/gonewx/seekbar/pkg/seekbar"
	"github.com/gonewx/seekbar/pkg/storage"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

const (
	screenWidth  = 800
	screenHeight = 600

	barWidth  = 520
	barHeight = 56
	barX      = 140
)

var (
	// 命令行参数
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "滑杆外观配置 yaml 路径（可选）")
)

// barWidget 一条滑杆及其协作方
type barWidget struct {
	name     string
	bar      *seekbar.SeekBar
	renderer *render.Renderer
	adapter  *render.InputAdapter
	popup    *render.Popup
	label    string
	originY  int
}

func newBarWidget(name, label string, cfg config.SeekBarConfig, originY int) *barWidget {
	bar := seekbar.New(cfg)
	bar.SetSize(barWidth, barHeight)

	popup := render.NewPopup(bar.IndicatorSeparation())
	bar.SetIndicator(popup)

	w := &barWidget{
		name:     name,
		bar:      bar,
		renderer: render.NewRenderer(bar, barX, originY),
		adapter:  render.NewInputAdapter(bar, barX, originY, barWidth, barHeight),
		popup:    popup,
		label:    label,
		originY:  originY,
	}
	return w
}

func (w *barWidget) update(deltaTime float64) {
	w.adapter.Update()
	w.bar.Update(deltaTime)
	w.popup.Update(deltaTime)
}

func (w *barWidget) draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, w.label, 16, w.originY+barHeight/2-8)
	w.renderer.Draw(screen)
	w.popup.Draw(screen, barX, w.originY)
}

// demoListener 打印数值变化并在拖动结束时持久化
type demoListener struct {
	name  string
	store *storage.StateStore
}

func (l *demoListener) OnProgressChanged(s *seekbar.SeekBar, value int, fromUser bool) {
	if *verbose {
		log.Printf("[Demo] %s: value=%d fromUser=%v", l.name, value, fromUser)
	}
}

func (l *demoListener) OnStartTrackingTouch(s *seekbar.SeekBar) {
	if *verbose {
		log.Printf("[Demo] %s: start tracking", l.name)
	}
}

func (l *demoListener) OnStopTrackingTouch(s *seekbar.SeekBar) {
	if l.store != nil {
		if err := l.store.Save(l.name, s.CaptureState()); err != nil {
			log.Printf("[Demo] Warning: failed to save %s state: %v", l.name, err)
		}
	}
}

// rangeLogger 区间滑杆的监听
type rangeLogger struct{ name string }

func (l *rangeLogger) OnRangeChanged(s *seekbar.SeekBar, lower, upper int, fromUser bool) {
	if *verbose {
		log.Printf("[Demo] %s: range=[%d, %d] fromUser=%v", l.name, lower, upper, fromUser)
	}
}
func (l *rangeLogger) OnStartTrackingTouch(s *seekbar.SeekBar) {}
func (l *rangeLogger) OnStopTrackingTouch(s *seekbar.SeekBar)  {}

// DemoGame 验证程序主循环
type DemoGame struct {
	widgets []*barWidget
	store   *storage.StateStore
	baseCfg config.SeekBarConfig
}

func NewDemoGame() *DemoGame {
	baseCfg := config.DefaultSeekBarConfig()
	if *configPath != "" {
		cfg, err := config.LoadSeekBarConfig(*configPath)
		if err != nil {
			log.Printf("[Demo] Warning: %v (using defaults)", err)
		} else {
			baseCfg = cfg
		}
	}

	gdataManager, err := gdata.Open(gdata.Config{AppName: "seekbar_demo"})
	if err != nil {
		log.Printf("[Demo] Warning: gdata unavailable: %v (state will not persist)", err)
		gdataManager = nil
	}
	store := storage.NewStateStore(gdataManager)

	g := &DemoGame{store: store, baseCfg: baseCfg}
	g.buildWidgets()
	return g
}

func (g *DemoGame) buildWidgets() {
	// 单值滑杆：0..100，恢复上次保存的状态
	single := newBarWidget("single", "volume", g.baseCfg, 120)
	single.bar.SetOnProgressChangeListener(&demoListener{name: "single", store: g.store})
	if blob, ok := g.store.Load("single"); ok {
		if single.bar.RestoreState(blob) {
			log.Printf("[Demo] restored single bar: value=%d range=[%d, %d]",
				single.bar.GetProgress(), single.bar.GetMin(), single.bar.GetMax())
		}
	}

	// 区间滑杆：选择 [20, 80] 子区间
	rangeCfg := g.baseCfg
	rangeCfg.RangeMode = true
	rangeCfg.Value = 20
	rangeCfg.UpperValue = 80
	ranged := newBarWidget("range", "range", rangeCfg, 260)
	ranged.bar.SetOnRangeChangeListener(&rangeLogger{name: "range"})

	// 镜像滑杆：RTL 布局下最左端是 max
	mirrorCfg := g.baseCfg
	mirrorCfg.MirrorForRtl = true
	mirrorCfg.Value = 30
	mirrored := newBarWidget("mirrored", "rtl", mirrorCfg, 400)
	mirrored.bar.SetRtl(true)

	g.widgets = []*barWidget{single, ranged, mirrored}
}

// Update 实现 ebiten.Game
func (g *DemoGame) Update() error {
	deltaTime := 1.0 / float64(ebiten.TPS())

	// R 键：拆除第一条滑杆并用捕获的状态重建
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		old := g.widgets[0]
		blob := old.bar.CaptureState()
		old.bar.Detach()

		rebuilt := newBarWidget("single", "volume", g.baseCfg, 120)
		rebuilt.bar.SetOnProgressChangeListener(&demoListener{name: "single", store: g.store})
		rebuilt.bar.RestoreState(blob)
		g.widgets[0] = rebuilt
		log.Printf("[Demo] rebuilt single bar: value=%d", rebuilt.bar.GetProgress())
	}

	for _, w := range g.widgets {
		w.update(deltaTime)
	}
	return nil
}

// Draw 实现 ebiten.Game
func (g *DemoGame) Draw(screen *ebiten.Image) {
	for _, w := range g.widgets {
		w.draw(screen)
	}
	msg := fmt.Sprintf("arrows: step  R: rebuild  single=%d  range=[%d %d]  rtl=%d",
		g.widgets[0].bar.GetProgress(),
		g.widgets[1].bar.LowerValue(), g.widgets[1].bar.UpperValue(),
		g.widgets[2].bar.GetProgress())
	ebitenutil.DebugPrintAt(screen, msg, 16, screenHeight-32)
}

// Layout 实现 ebiten.Game
func (g *DemoGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("SeekBar Demo")

	if err := ebiten.RunGame(NewDemoGame()); err != nil {
		log.Fatalf("[Demo] %v", err)
	}
}
