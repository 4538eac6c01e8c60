package queue

import "time"

// EventHeader 定义所有事件的通用头部元数据.
// 建议在发布消息时填充 TraceID、OccurredAt、Producer 等，便于追踪链路与审计.
type EventHeader struct {
	// Topic 冗余记录消息主题，便于离线处理或转储后定位来源主题.
	Topic string `json:"topic"`
	// TraceID 分布式追踪/关联 ID，可来自中间件或业务生成.
	TraceID string `json:"trace_id,omitempty"`
	// Producer 生产者服务名或节点标识.
	Producer string `json:"producer,omitempty"`
	// OccurredAt 事件发生时间（UTC，RFC3339）.
	OccurredAt time.Time `json:"occurred_at"`
	// Version 事件负载版本，便于向后兼容演进.
	Version string `json:"version,omitempty"`
}

// Message 是统一的消息封装，Header + Payload.
// T 即不同主题对应的负载结构体.
type Message[T any] struct {
	Header  EventHeader `json:"header"`
	Payload T           `json:"payload"`
}

// -------------------------- 通用报告领域 --------------------------

// AttachmentRef 标识一个已写入后端的附件.
type AttachmentRef struct {
	Filename    string `json:"filename"`
	StoragePath string `json:"storage_path"`
	ContentType string `json:"content_type,omitempty"`
}

// ReportCreatedPayload 报告聚合提交完成.
type ReportCreatedPayload struct {
	ReportID     uint            `json:"report_id"`
	ReportTypeID uint            `json:"report_type_id"`
	Title        string          `json:"title"`
	ValueCount   int             `json:"value_count"`
	Attachments  []AttachmentRef `json:"attachments,omitempty"`
}

// ReportAttachmentStoredPayload 单个附件写入后端完成.
type ReportAttachmentStoredPayload struct {
	ReportID   uint          `json:"report_id"`
	Attachment AttachmentRef `json:"attachment"`
	Backend    string        `json:"backend"` // db 或 s3
}

// -------------------------- 产品全流程报告领域 --------------------------

// ProductReportSubmittedPayload 产品全流程报告提交完成.
// State 与 HTTP 响应一致，fail 状态的提交同样发布，便于下游审计.
type ProductReportSubmittedPayload struct {
	ReportID    uint   `json:"report_id,omitempty"`
	RpNumber    string `json:"rp_number"`
	ProductCode string `json:"product_code"`
	Creator     string `json:"creator"`
	FileName    string `json:"file_name,omitempty"`
	State       string `json:"state"`
}
