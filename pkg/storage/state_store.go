// Package storage 滑杆状态的跨平台持久化
package storage

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
)

// StateStore 状态存储
// 通过 gdata 把控件捕获的状态数据存到平台合适的位置
// （桌面为用户数据目录，浏览器为 localStorage）
//
// 职责：
//   - 按控件名保存/读取不透明状态数据
//   - gdata 管理器为 nil 时降级为纯内存模式（不报错、不持久化）
//   - 读取失败视为无状态（首次运行），绝不向调用方抛致命错误
type StateStore struct {
	gdataManager *gdata.Manager
}

// 存储路径常量
const stateObject = "seekbar"

// NewStateStore 创建状态存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
func NewStateStore(gdataManager *gdata.Manager) *StateStore {
	return &StateStore{gdataManager: gdataManager}
}

// Save 保存一个控件的状态数据
//
// 参数：
//   - name: 控件名（同一应用内唯一）
//   - blob: SeekBar.CaptureState 返回的数据
//
// 返回：
//   - error: 保存失败；降级模式下返回 nil
func (st *StateStore) Save(name string, blob []byte) error {
	if st.gdataManager == nil {
		return nil
	}
	if err := st.gdataManager.SaveObjectProp(stateObject, name, blob); err != nil {
		return fmt.Errorf("failed to save seekbar state: %w", err)
	}
	return nil
}

// Load 读取一个控件的状态数据
//
// 返回：
//   - []byte: 状态数据
//   - bool: 是否存在（首次运行或读取失败返回 false）
func (st *StateStore) Load(name string) ([]byte, bool) {
	if st.gdataManager == nil {
		return nil, false
	}
	if !st.gdataManager.ObjectPropExists(stateObject, name) {
		return nil, false
	}
	data, err := st.gdataManager.LoadObjectProp(stateObject, name)
	if err != nil {
		// 读取失败不是致命错误，按无状态处理
		log.Printf("[StateStore] Warning: failed to load state %q: %v", name, err)
		return nil, false
	}
	return data, true
}

// Exists 指定控件是否有已保存的状态
func (st *StateStore) Exists(name string) bool {
	if st.gdataManager == nil {
		return false
	}
	return st.gdataManager.ObjectPropExists(stateObject, name)
}
