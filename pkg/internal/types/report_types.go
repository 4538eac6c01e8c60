// Package types 定义请求与响应的数据传输结构.
package types

// CreateReportTypeRequest 创建报告类型请求.
type CreateReportTypeRequest struct {
	Name        string  `json:"name"        rule:"required,max=100"`
	Description *string `json:"description" rule:"omitempty,max=255"`
}

// CreateReportFieldRequest 在报告类型下创建字段的请求.
// FieldType 是自由文本标记，不做枚举校验；缺省为 text.
type CreateReportFieldRequest struct {
	Name      string `json:"name"       rule:"required,max=100"`
	Label     string `json:"label"      rule:"required,max=100"`
	FieldType string `json:"field_type" rule:"omitempty,max=50"`
	Required  bool   `json:"required"`
}

// ReportFieldResponse 字段定义返回体.
type ReportFieldResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Label     string `json:"label"`
	FieldType string `json:"field_type"`
	Required  bool   `json:"required"`
}

// ReportTypeResponse 报告类型返回体，携带全部字段定义.
type ReportTypeResponse struct {
	ID          uint                  `json:"id"`
	Name        string                `json:"name"`
	Description *string               `json:"description,omitempty"`
	Fields      []ReportFieldResponse `json:"fields"`
}
