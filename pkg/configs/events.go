package configs

import "github.com/spf13/viper"

// EventsConfig 控制事件发布的开关（全局与分主题）。
type EventsConfig struct {
	Enabled       bool                      `mapstructure:"enabled"` // 总开关
	Report        ReportEventsConfig        `mapstructure:"report"`
	ProductReport ProductReportEventsConfig `mapstructure:"product_report"`
}

// ReportEventsConfig 针对通用报告领域的事件开关。
type ReportEventsConfig struct {
	Created          bool `mapstructure:"created"`
	AttachmentStored bool `mapstructure:"attachment_stored"`
}

// ProductReportEventsConfig 针对产品全流程报告领域的事件开关。
type ProductReportEventsConfig struct {
	Submitted bool `mapstructure:"submitted"`
}

func (c *EventsConfig) setDefaults(v *viper.Viper) {
	// 总开关：默认启用事件系统
	v.SetDefault("events.enabled", true)

	// 报告领域的事件：默认仅开启最小必要集，避免噪声过大
	v.SetDefault("events.report.created", true)
	v.SetDefault("events.report.attachment_stored", false)

	// 产品报告提交事件：默认开启，便于下游归档系统消费
	v.SetDefault("events.product_report.submitted", true)
}
