package model

import "time"

// ReportFile 数据库原生大对象表，存放通用报告附件的文件内容.
// PathLocator 是插入时生成的位置令牌，附件元数据通过它回查内容.
// 该表的写入走独立会话逐条提交，不参与报告聚合的事务.
type ReportFile struct {
	ID          uint      `gorm:"primaryKey"                    json:"id"`
	Name        string    `gorm:"size:255;not null"             json:"name"`
	Content     []byte    `gorm:"type:bytes;not null"           json:"-"`
	PathLocator string    `gorm:"size:255;uniqueIndex;not null" json:"path_locator"`
	CreatedAt   time.Time `json:"created_at"`
}
