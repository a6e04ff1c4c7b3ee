// Package utils 提供滑杆控件通用的工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 统一处理鼠标和触摸输入，优先检测触摸。
// 滑杆的输入适配器每帧调用这里的函数，把平台指针状态
// 转换成控件核心的指针事件流。

// 保存最后一次触摸位置（触摸释放后 TouchPosition 返回 0,0，
// 需要用释放前的位置合成抬起事件）
var lastTouchX, lastTouchY int

// GetPointerState 获取指针的完整状态
// 返回：是否按下、X坐标、Y坐标
// 触摸刚刚结束的那一帧返回释放前记录的位置，
// 保证抬起事件落在正确的坐标上
func GetPointerState() (pressed bool, x, y int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return false, lastTouchX, lastTouchY
	}
	x, y = ebiten.CursorPosition()
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return pressed, x, y
}

// UpdateLastTouchPosition 更新最后一次触摸位置
// 应该在每帧更新时调用
func UpdateLastTouchPosition() {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(touchIDs[0])
	}
}
