package seekbar

import (
	"encoding/binary"
)

// 数值状态的序列化/恢复
//
// 宿主拆除重建控件时保存并恢复 {progress, max, min} 三元组。
// 布局：4 字节魔数 + 小端 int32 × 3，顺序 progress、max、min。
// 恢复按 min → max → value 的顺序应用，min/max 恢复过程中的
// 临时钳制不会丢掉持久化的数值。格式不符的数据被整体忽略，
// 控件保持刚构造的默认状态——恢复永远安全，绝不致命。

// stateMagic 状态数据的格式标识
var stateMagic = [4]byte{'D', 'S', 'B', '1'}

const stateSize = 4 + 3*4

// CaptureState 捕获当前数值状态
// 返回可持久化的不透明数据（见 pkg/storage）
func (s *SeekBar) CaptureState() []byte {
	buf := make([]byte, stateSize)
	copy(buf[:4], stateMagic[:])
	binary.LittleEndian.PutUint32(buf[4:], uint32(int32(s.GetProgress())))
	binary.LittleEndian.PutUint32(buf[8:], uint32(int32(s.rng.max)))
	binary.LittleEndian.PutUint32(buf[12:], uint32(int32(s.rng.min)))
	return buf
}

// RestoreState 恢复此前捕获的数值状态
//
// 参数：
//   - blob: CaptureState 返回的数据
//
// 返回：
//   - bool: 数据有效且已应用；格式不符返回 false 且控件状态不变
func (s *SeekBar) RestoreState(blob []byte) bool {
	if len(blob) != stateSize {
		return false
	}
	if [4]byte(blob[:4]) != stateMagic {
		return false
	}
	progress := int(int32(binary.LittleEndian.Uint32(blob[4:])))
	max := int(int32(binary.LittleEndian.Uint32(blob[8:])))
	min := int(int32(binary.LittleEndian.Uint32(blob[12:])))

	s.SetMin(min)
	s.SetMax(max)
	s.SetProgress(progress)
	return true
}
