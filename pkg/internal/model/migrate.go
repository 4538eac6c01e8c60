package model

import "gorm.io/gorm"

// Migrate 建立全部报告相关表结构，启动时调用.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&ReportType{},
		&ReportField{},
		&Report{},
		&ReportFieldValue{},
		&ReportAttachment{},
		&ReportFile{},
		&ProductFullReport{},
	)
}
