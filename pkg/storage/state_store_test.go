package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// createTestGdataManager 创建用于测试的 gdata Manager
func createTestGdataManager(t *testing.T, testName string) *gdata.Manager {
	appName := fmt.Sprintf("seekbar_test_%s_%d", testName, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil
	}

	// 注册清理函数，测试结束后删除测试目录
	t.Cleanup(func() {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			testDir := filepath.Join(homeDir, ".local", "share", appName)
			os.RemoveAll(testDir)
		}
	})

	return manager
}

// TestStateStoreSaveLoad 测试保存后能读回同样的数据
func TestStateStoreSaveLoad(t *testing.T) {
	manager := createTestGdataManager(t, "save_load")
	if manager == nil {
		t.Skip("Cannot create gdata manager for testing")
	}
	store := NewStateStore(manager)

	blob := []byte{'D', 'S', 'B', '1', 42, 0, 0, 0, 100, 0, 0, 0, 0, 0, 0, 0}
	if err := store.Save("volume", blob); err != nil {
		t.Fatalf("Save 失败: %v", err)
	}

	got, ok := store.Load("volume")
	if !ok {
		t.Fatal("保存后 Load 应命中")
	}
	if !bytes.Equal(got, blob) {
		t.Errorf("读回数据不一致: %v != %v", got, blob)
	}
	if !store.Exists("volume") {
		t.Error("保存后 Exists 应为 true")
	}
}

// TestStateStoreMissingName 测试未保存过的控件名
func TestStateStoreMissingName(t *testing.T) {
	manager := createTestGdataManager(t, "missing")
	if manager == nil {
		t.Skip("Cannot create gdata manager for testing")
	}
	store := NewStateStore(manager)

	if _, ok := store.Load("never_saved"); ok {
		t.Error("未保存过的控件名 Load 不应命中")
	}
	if store.Exists("never_saved") {
		t.Error("未保存过的控件名 Exists 应为 false")
	}
}

// TestStateStoreOverwrite 测试同名覆盖保存
func TestStateStoreOverwrite(t *testing.T) {
	manager := createTestGdataManager(t, "overwrite")
	if manager == nil {
		t.Skip("Cannot create gdata manager for testing")
	}
	store := NewStateStore(manager)

	if err := store.Save("volume", []byte{1, 2, 3}); err != nil {
		t.Fatalf("Save 失败: %v", err)
	}
	if err := store.Save("volume", []byte{4, 5, 6}); err != nil {
		t.Fatalf("覆盖 Save 失败: %v", err)
	}

	got, ok := store.Load("volume")
	if !ok {
		t.Fatal("覆盖后 Load 应命中")
	}
	if !bytes.Equal(got, []byte{4, 5, 6}) {
		t.Errorf("覆盖后读回 %v, 期望 [4 5 6]", got)
	}
}

// TestStateStoreNilManagerDegrades 测试降级模式
// gdata 管理器为 nil 时所有操作安全无害
func TestStateStoreNilManagerDegrades(t *testing.T) {
	store := NewStateStore(nil)

	if err := store.Save("volume", []byte{1, 2, 3}); err != nil {
		t.Errorf("降级模式 Save 应返回 nil, 实际 %v", err)
	}
	if _, ok := store.Load("volume"); ok {
		t.Error("降级模式 Load 不应命中")
	}
	if store.Exists("volume") {
		t.Error("降级模式 Exists 应为 false")
	}
}
