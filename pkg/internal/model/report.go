// Package model 定义 GORM 数据模型.
package model

import (
	"time"
)

// ReportType 可配置的报告类型（如设备验收报告），拥有一组有序字段定义.
type ReportType struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description *string `gorm:"size:255"                      json:"description,omitempty"`

	// 字段定义，随类型级联删除
	Fields []ReportField `gorm:"foreignKey:ReportTypeID;constraint:OnDelete:CASCADE" json:"fields"`
}

// ReportField 报告类型下的单个字段定义.
// Name 是提交值映射里使用的键；Required 目前只做标记，写入路径不强制校验.
type ReportField struct {
	ID           uint   `gorm:"primaryKey"                 json:"id"`
	ReportTypeID uint   `gorm:"not null;index"             json:"report_type_id"`
	Name         string `gorm:"size:100;not null"          json:"name"`
	Label        string `gorm:"size:100;not null"          json:"label"`
	FieldType    string `gorm:"size:50;not null;default:text" json:"field_type"`
	Required     bool   `gorm:"not null;default:false"     json:"required"`
}

// Report 一次具体的报告提交.
// ReportTypeID 写入时不做存在性校验，悬空的类型 ID 也会被接受.
type Report struct {
	ID           uint      `gorm:"primaryKey"        json:"id"`
	ReportTypeID uint      `gorm:"not null;index"    json:"report_type_id"`
	Title        string    `gorm:"size:200;not null" json:"title"`
	CreatedAt    time.Time `json:"created_at"`

	// 字段值与附件，随报告级联删除
	Values      []ReportFieldValue `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE" json:"values"`
	Attachments []ReportAttachment `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE" json:"attachments"`
}

// ReportFieldValue 报告中某个字段的取值，Value 为空表示提交了 null.
// 字段只会从报告所属类型下查找，不存在跨类型引用.
type ReportFieldValue struct {
	ID       uint    `gorm:"primaryKey"     json:"id"`
	ReportID uint    `gorm:"not null;index" json:"report_id"`
	FieldID  uint    `gorm:"not null"       json:"field_id"`
	Value    *string `gorm:"type:text"      json:"value"`

	// 字段定义，读取时用于还原字段名
	Field ReportField `gorm:"foreignKey:FieldID" json:"-"`
}

// ReportAttachment 报告附件元数据；StoragePath 是后端返回的位置令牌.
type ReportAttachment struct {
	ID          uint    `gorm:"primaryKey"        json:"id"`
	ReportID    uint    `gorm:"not null;index"    json:"report_id"`
	Filename    string  `gorm:"size:255;not null" json:"filename"`
	StoragePath string  `gorm:"size:500;not null" json:"storage_path"`
	ContentType *string `gorm:"size:100"          json:"content_type,omitempty"`
}
