package attach_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeisme/reportvault/pkg/internal/model"
	"github.com/yeisme/reportvault/pkg/internal/storage/attach"
)

// newTestDB 打开临时文件数据库并建表.
// 大对象后端走独立连接，内存库在连接间不共享，这里用文件库.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := gdb.AutoMigrate(&model.ReportFile{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return gdb
}

func TestDBStoreSave(t *testing.T) {
	gdb := newTestDB(t)
	store := attach.NewDBStore(gdb)

	files := makeFileHeaders(t, map[string]string{"spec.docx": "doc-bytes"})

	saved, err := store.Save(context.Background(), "reports/1", files)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if len(saved) != 1 {
		t.Fatalf("expected 1 saved file, got %d", len(saved))
	}

	if !strings.HasPrefix(saved[0].StoragePath, "rf://") {
		t.Errorf("locator = %q, want rf:// prefix", saved[0].StoragePath)
	}

	var row model.ReportFile
	if err := gdb.Where("path_locator = ?", saved[0].StoragePath).First(&row).Error; err != nil {
		t.Fatalf("find report file: %v", err)
	}

	if row.Name != "spec.docx" {
		t.Errorf("name = %q, want spec.docx", row.Name)
	}

	if string(row.Content) != "doc-bytes" {
		t.Errorf("content = %q, want doc-bytes", row.Content)
	}
}

func TestDBStoreUniqueLocators(t *testing.T) {
	gdb := newTestDB(t)
	store := attach.NewDBStore(gdb)

	files := makeFileHeaders(t, map[string]string{
		"a.txt": "a",
		"b.txt": "b",
		"c.txt": "c",
	})

	saved, err := store.Save(context.Background(), "reports/2", files)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	seen := make(map[string]bool, len(saved))
	for _, sf := range saved {
		if seen[sf.StoragePath] {
			t.Errorf("duplicate locator %q", sf.StoragePath)
		}

		seen[sf.StoragePath] = true
	}

	var count int64
	if err := gdb.Model(&model.ReportFile{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}

	if count != 3 {
		t.Errorf("row count = %d, want 3", count)
	}
}

// 大对象行的写入不参与调用方事务：外层回滚后行仍然保留.
func TestDBStoreSurvivesCallerRollback(t *testing.T) {
	gdb := newTestDB(t)
	store := attach.NewDBStore(gdb)

	files := makeFileHeaders(t, map[string]string{"kept.bin": "payload"})

	rollback := errors.New("force rollback")

	err := gdb.Transaction(func(tx *gorm.DB) error {
		if _, err := store.Save(context.Background(), "reports/3", files); err != nil {
			t.Fatalf("save: %v", err)
		}

		return rollback
	})
	if !errors.Is(err, rollback) {
		t.Fatalf("expected forced rollback, got %v", err)
	}

	var count int64
	if err := gdb.Model(&model.ReportFile{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}

	if count != 1 {
		t.Errorf("row count after rollback = %d, want 1", count)
	}
}
