package configs

import "github.com/spf13/viper"

// AttachmentBackend 通用报告附件的存储后端类型.
type AttachmentBackend string

const (
	// AttachmentBackendDB 数据库大对象表后端.
	AttachmentBackendDB AttachmentBackend = "db"
	// AttachmentBackendS3 对象存储后端.
	AttachmentBackendS3 AttachmentBackend = "s3"
)

const (
	DefaultProductReportDir  = "data/product-reports" // 默认产品报告附件根目录
	DefaultAttachmentBackend = AttachmentBackendDB    // 默认通用报告附件后端
)

// StorageConfig 附件存储配置.
// ProductReportDir 是产品全流程报告附件的文件系统根目录；
// Attachments.Backend 选择通用报告附件的存储后端（db 或 s3）.
type StorageConfig struct {
	ProductReportDir string            `mapstructure:"product_report_dir" rule:"required"`
	Attachments      AttachmentsConfig `mapstructure:"attachments"`
}

// AttachmentsConfig 通用报告附件的后端选择.
type AttachmentsConfig struct {
	Backend AttachmentBackend `mapstructure:"backend" rule:"oneof=db s3"`
}

// setDefaults 设置附件存储配置的默认值.
func (c *StorageConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("storage.product_report_dir", DefaultProductReportDir)
	v.SetDefault("storage.attachments.backend", string(DefaultAttachmentBackend))
}
