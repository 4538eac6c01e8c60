package model_test

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeisme/reportvault/pkg/internal/model"
)

// openMigratedDB 打开开启外键约束的文件库并建表.
func openMigratedDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := model.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return gdb
}

func TestDeleteTypeCascadesFields(t *testing.T) {
	gdb := openMigratedDB(t)

	rt := model.ReportType{Name: "巡检"}
	if err := gdb.Create(&rt).Error; err != nil {
		t.Fatalf("create type: %v", err)
	}

	field := model.ReportField{ReportTypeID: rt.ID, Name: "note", Label: "备注", FieldType: "text"}
	if err := gdb.Create(&field).Error; err != nil {
		t.Fatalf("create field: %v", err)
	}

	if err := gdb.Delete(&model.ReportType{}, rt.ID).Error; err != nil {
		t.Fatalf("delete type: %v", err)
	}

	var count int64
	if err := gdb.Model(&model.ReportField{}).Where("report_type_id = ?", rt.ID).Count(&count).Error; err != nil {
		t.Fatalf("count fields: %v", err)
	}

	if count != 0 {
		t.Fatalf("fields after type delete = %d, want 0", count)
	}
}

func TestDeleteReportCascadesValuesAndAttachments(t *testing.T) {
	gdb := openMigratedDB(t)

	rt := model.ReportType{Name: "巡检"}
	if err := gdb.Create(&rt).Error; err != nil {
		t.Fatalf("create type: %v", err)
	}

	field := model.ReportField{ReportTypeID: rt.ID, Name: "note", Label: "备注", FieldType: "text"}
	if err := gdb.Create(&field).Error; err != nil {
		t.Fatalf("create field: %v", err)
	}

	report := model.Report{ReportTypeID: rt.ID, Title: "三号线巡检"}
	if err := gdb.Create(&report).Error; err != nil {
		t.Fatalf("create report: %v", err)
	}

	value := "ok"
	if err := gdb.Create(&model.ReportFieldValue{ReportID: report.ID, FieldID: field.ID, Value: &value}).Error; err != nil {
		t.Fatalf("create value: %v", err)
	}

	if err := gdb.Create(&model.ReportAttachment{ReportID: report.ID, Filename: "a.txt", StoragePath: "rf://a"}).Error; err != nil {
		t.Fatalf("create attachment: %v", err)
	}

	if err := gdb.Delete(&model.Report{}, report.ID).Error; err != nil {
		t.Fatalf("delete report: %v", err)
	}

	var values, atts int64
	if err := gdb.Model(&model.ReportFieldValue{}).Where("report_id = ?", report.ID).Count(&values).Error; err != nil {
		t.Fatalf("count values: %v", err)
	}

	if err := gdb.Model(&model.ReportAttachment{}).Where("report_id = ?", report.ID).Count(&atts).Error; err != nil {
		t.Fatalf("count attachments: %v", err)
	}

	if values != 0 || atts != 0 {
		t.Fatalf("rows after report delete: values=%d atts=%d, want 0/0", values, atts)
	}
}
