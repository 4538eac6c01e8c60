// Package queue 定义消息主题常量与事件封装，供发布/订阅使用.
package queue

// 主题命名规范：rv.<域>.<动作>，尽量稳定且向后兼容.
// 域：report(通用报告)、product_report(产品全流程报告)
// 动作：created(聚合已提交)、stored(附件已落盘)、submitted(旧系统格式提交)

const (
	// 通用报告领域.
	TopicReportCreated          = "rv.report.created"           // 报告聚合事务提交完成（含字段值与附件元数据）
	TopicReportAttachmentStored = "rv.report.attachment.stored" // 单个附件写入后端完成

	// 产品全流程报告领域.
	TopicProductReportSubmitted = "rv.product_report.submitted" // operationcode 45 提交完成
)

// TopicPatternAll 订阅全部报告事件的通配模式（NATS 通配符语法）.
const TopicPatternAll = "rv.>"
