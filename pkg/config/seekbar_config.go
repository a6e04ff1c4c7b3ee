// Package config 滑杆控件的构造期配置
// 提供默认值、yaml 加载和钳制校验
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 默认外观参数（像素）
const (
	// DefaultThumbSize 滑块可视直径
	DefaultThumbSize = 24
	// DefaultTrackHeight 轨道厚度
	DefaultTrackHeight = 2
	// DefaultScrubberHeight 已选段厚度
	DefaultScrubberHeight = 4
	// DefaultTouchTarget 最小触摸目标尺寸
	// 滑块四周的不可见触摸外扩 = max(0, (TouchTarget-ThumbSize)/2)
	DefaultTouchTarget = 32
	// DefaultIndicatorSeparation 气泡与滑块的垂直间距
	DefaultIndicatorSeparation = 5
	// DefaultTouchSlop 触摸确认阈值：按下点位移超过该值才判定为拖动
	DefaultTouchSlop = 8
	// DefaultIndicatorFormatter 气泡文本格式串（单个整数替换）
	DefaultIndicatorFormatter = "%d"
)

// SeekBarConfig 滑杆构造期配置
// 全部字段可选；零值经 Normalize 后落到稳定默认值
type SeekBarConfig struct {
	// 数值区间
	Min        int `yaml:"min"`
	Max        int `yaml:"max"`
	Value      int `yaml:"value"`
	UpperValue int `yaml:"upperValue"` // 仅区间模式

	// 行为开关
	RangeMode             bool `yaml:"rangeMode"`
	MirrorForRtl          bool `yaml:"mirrorForRtl"`
	AllowTrackClickToDrag bool `yaml:"allowTrackClickToDrag"`
	IndicatorPopupEnabled bool `yaml:"indicatorPopupEnabled"`

	// 外观（像素）
	TrackHeight         int `yaml:"trackHeight"`
	ScrubberHeight      int `yaml:"scrubberHeight"`
	ThumbSize           int `yaml:"thumbSize"`
	IndicatorSeparation int `yaml:"indicatorSeparation"`
	TouchTarget         int `yaml:"touchTarget"`

	// 触摸确认阈值（像素）
	TouchSlop float64 `yaml:"touchSlop"`

	// 气泡文本格式串
	IndicatorFormatter string `yaml:"indicatorFormatter"`

	// 内边距
	PaddingLeft   int `yaml:"paddingLeft"`
	PaddingRight  int `yaml:"paddingRight"`
	PaddingTop    int `yaml:"paddingTop"`
	PaddingBottom int `yaml:"paddingBottom"`
}

// DefaultSeekBarConfig 返回默认配置
// min=0 max=100 value=0 upperValue=100，单值模式，允许点击轨道拖动
func DefaultSeekBarConfig() SeekBarConfig {
	return SeekBarConfig{
		Min:                   0,
		Max:                   100,
		Value:                 0,
		UpperValue:            100,
		RangeMode:             false,
		MirrorForRtl:          false,
		AllowTrackClickToDrag: true,
		IndicatorPopupEnabled: true,
		TrackHeight:           DefaultTrackHeight,
		ScrubberHeight:        DefaultScrubberHeight,
		ThumbSize:             DefaultThumbSize,
		IndicatorSeparation:   DefaultIndicatorSeparation,
		TouchTarget:           DefaultTouchTarget,
		TouchSlop:             DefaultTouchSlop,
		IndicatorFormatter:    DefaultIndicatorFormatter,
	}
}

// LoadSeekBarConfig 从 yaml 文件加载配置
//
// 文件中缺失的字段保留默认值（以默认配置为底反序列化）。
//
// 参数：
//   - path: yaml 配置文件路径
//
// 返回：
//   - SeekBarConfig: 加载并规范化后的配置
//   - error: 读取或解析失败
func LoadSeekBarConfig(path string) (SeekBarConfig, error) {
	cfg := DefaultSeekBarConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read seekbar config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal seekbar config: %w", err)
	}

	cfg.Normalize()
	return cfg, nil
}

// Normalize 钳制非法外观参数
// 静默修正而不是拒绝：所有非法组合退化到最近的合法状态
func (c *SeekBarConfig) Normalize() {
	if c.ThumbSize <= 0 {
		c.ThumbSize = DefaultThumbSize
	}
	if c.TrackHeight <= 0 {
		c.TrackHeight = DefaultTrackHeight
	}
	if c.ScrubberHeight <= 0 {
		c.ScrubberHeight = DefaultScrubberHeight
	}
	if c.TouchTarget < c.ThumbSize {
		c.TouchTarget = c.ThumbSize
	}
	if c.IndicatorSeparation < 0 {
		c.IndicatorSeparation = DefaultIndicatorSeparation
	}
	if c.TouchSlop <= 0 {
		c.TouchSlop = DefaultTouchSlop
	}
	if c.IndicatorFormatter == "" {
		c.IndicatorFormatter = DefaultIndicatorFormatter
	}
	if c.PaddingLeft < 0 {
		c.PaddingLeft = 0
	}
	if c.PaddingRight < 0 {
		c.PaddingRight = 0
	}
	if c.PaddingTop < 0 {
		c.PaddingTop = 0
	}
	if c.PaddingBottom < 0 {
		c.PaddingBottom = 0
	}
}

// TouchInset 滑块四周的不可见触摸外扩
func (c *SeekBarConfig) TouchInset() int {
	inset := (c.TouchTarget - c.ThumbSize) / 2
	if inset < 0 {
		inset = 0
	}
	return inset
}
