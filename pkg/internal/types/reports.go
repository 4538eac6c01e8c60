package types

import "time"

// CreateReportRequest 创建报告的多部分表单元数据部分.
// Values 是一个序列化的 JSON 对象（扁平的字符串键映射），文件随表单一起提交.
type CreateReportRequest struct {
	ReportTypeID uint   `form:"report_type_id" rule:"required"`
	Title        string `form:"title"          rule:"required,max=200"`
	Values       string `form:"values"`
}

// ReportAttachmentResponse 附件元数据返回体.
type ReportAttachmentResponse struct {
	ID          uint    `json:"id"`
	Filename    string  `json:"filename"`
	StoragePath string  `json:"storage_path"`
	ContentType *string `json:"content_type,omitempty"`
}

// ReportResponse 报告投影：values 以字段名为键重建，attachments 为原样附件列表.
type ReportResponse struct {
	ID           uint                       `json:"id"`
	ReportTypeID uint                       `json:"report_type_id"`
	Title        string                     `json:"title"`
	CreatedAt    time.Time                  `json:"created_at"`
	Values       map[string]*string         `json:"values"`
	Attachments  []ReportAttachmentResponse `json:"attachments"`
}
