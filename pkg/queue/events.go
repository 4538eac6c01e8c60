package queue

import "github.com/ThreeDotsLabs/watermill/message"

// -------------------------- 基于业务封装 events --------------------------

// PublishReportCreated 发布 rv.report.created 事件。
// 在报告聚合事务提交成功后调用，通知下游流程（如通知、统计等）。
// 可通过可选项 opts 注入 TraceID、Producer 等头部信息。
func PublishReportCreated(pub message.Publisher, payload ReportCreatedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicReportCreated, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicReportCreated, msg)
}

// ParseReportCreated 将 Watermill 消息解析为强类型 Envelope（ReportCreatedPayload）。
func ParseReportCreated(msg *message.Message) (Message[ReportCreatedPayload], error) {
	return ParseWatermillMessage[ReportCreatedPayload](msg)
}

// PublishReportAttachmentStored 发布 rv.report.attachment.stored 事件。
func PublishReportAttachmentStored(pub message.Publisher, payload ReportAttachmentStoredPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicReportAttachmentStored, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicReportAttachmentStored, msg)
}

// ParseReportAttachmentStored 将 Watermill 消息解析为强类型 Envelope（ReportAttachmentStoredPayload）。
func ParseReportAttachmentStored(msg *message.Message) (Message[ReportAttachmentStoredPayload], error) {
	return ParseWatermillMessage[ReportAttachmentStoredPayload](msg)
}

// PublishProductReportSubmitted 发布 rv.product_report.submitted 事件。
// success 与 fail 状态的提交都会发布。
func PublishProductReportSubmitted(pub message.Publisher, payload ProductReportSubmittedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicProductReportSubmitted, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicProductReportSubmitted, msg)
}

// ParseProductReportSubmitted 将 Watermill 消息解析为强类型 Envelope（ProductReportSubmittedPayload）。
func ParseProductReportSubmitted(msg *message.Message) (Message[ProductReportSubmittedPayload], error) {
	return ParseWatermillMessage[ProductReportSubmittedPayload](msg)
}
