package jobs

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeisme/reportvault/pkg/internal/model"
	"github.com/yeisme/reportvault/pkg/internal/storage"
	dbc "github.com/yeisme/reportvault/pkg/internal/storage/db"
)

func newSweepManager(t *testing.T) (*storage.Manager, *gorm.DB) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := model.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return &storage.Manager{DB: &dbc.Client{DB: gdb}}, gdb
}

func TestReportFileOrphanSweep(t *testing.T) {
	mgr, gdb := newSweepManager(t)

	old := time.Now().Add(-48 * time.Hour)

	rows := []model.ReportFile{
		{Name: "orphan.bin", Content: []byte("x"), PathLocator: "rf://orphan-old", CreatedAt: old},
		{Name: "kept.bin", Content: []byte("x"), PathLocator: "rf://referenced", CreatedAt: old},
		{Name: "fresh.bin", Content: []byte("x"), PathLocator: "rf://orphan-fresh", CreatedAt: time.Now()},
	}
	for i := range rows {
		if err := gdb.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed report file: %v", err)
		}
	}

	report := model.Report{ReportTypeID: 1, Title: "带附件"}
	if err := gdb.Create(&report).Error; err != nil {
		t.Fatalf("seed report: %v", err)
	}

	att := model.ReportAttachment{
		ReportID:    report.ID,
		Filename:    "kept.bin",
		StoragePath: "rf://referenced",
	}
	if err := gdb.Create(&att).Error; err != nil {
		t.Fatalf("seed attachment: %v", err)
	}

	runReportFileOrphanSweep(context.Background(), mgr)

	var locators []string
	if err := gdb.Model(&model.ReportFile{}).Order("id").Pluck("path_locator", &locators).Error; err != nil {
		t.Fatalf("load locators: %v", err)
	}

	want := []string{"rf://referenced", "rf://orphan-fresh"}
	if len(locators) != len(want) {
		t.Fatalf("locators = %v, want %v", locators, want)
	}

	for i := range want {
		if locators[i] != want[i] {
			t.Errorf("locators[%d] = %q, want %q", i, locators[i], want[i])
		}
	}
}
