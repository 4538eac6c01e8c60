package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"sort"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"github.com/yeisme/reportvault/pkg/configs"
	ctxPkg "github.com/yeisme/reportvault/pkg/context"
	"github.com/yeisme/reportvault/pkg/internal/model"
	"github.com/yeisme/reportvault/pkg/internal/storage/attach"
	"github.com/yeisme/reportvault/pkg/internal/storage/db"
	"github.com/yeisme/reportvault/pkg/internal/storage/mq"
	"github.com/yeisme/reportvault/pkg/internal/types"
	nlog "github.com/yeisme/reportvault/pkg/log"
	"github.com/yeisme/reportvault/pkg/queue"
)

// valuesAPI 解析字段值映射的 sonic 配置.
// UseNumber 保证数字按字面还原（42 存成 "42" 而不是 "42.000000"）.
var valuesAPI = sonic.Config{UseNumber: true}.Froze()

// ReportService 负责报告聚合的业务逻辑（提交、读取投影）.
type ReportService struct {
	dbClient *db.Client
	mqClient *mq.Client
	store    attach.Store
}

// NewReportService 从 context 获取依赖实例.
func NewReportService(c context.Context) *ReportService {
	dbc := ctxPkg.GetDBClient(c)

	// 为了安全起见，应该直接 panic 而不是返回 nil，依赖此服务就不需要再检查
	if dbc == nil || dbc.DB == nil {
		nlog.Logger().Fatal().Msg("storage clients not initialized")
	}

	mgr := ctxPkg.GetManager(c)
	if mgr == nil || mgr.Attach == nil {
		nlog.Logger().Fatal().Msg("attachment store not initialized")
	}

	return &ReportService{
		dbClient: dbc,
		mqClient: mgr.GetMQClient(),
		store:    mgr.GetAttachStore(),
	}
}

// CreateReport 提交一份报告：解析字段值映射、落库并持久化附件.
//
// 值映射在任何写入之前解析，坏值直接拒绝.报告行、字段值行与附件元数据
// 在同一事务中提交；附件内容由后端自行写入，数据库大对象后端逐条提交，
// 事务回滚时不跟随回滚.
func (s *ReportService) CreateReport(ctx context.Context, req *types.CreateReportRequest, files []*multipart.FileHeader) (*types.ReportResponse, error) {
	values, err := parseValues(req.Values)
	if err != nil {
		return nil, err
	}

	report := model.Report{
		ReportTypeID: req.ReportTypeID,
		Title:        req.Title,
	}

	var saved []attach.SavedFile

	err = s.dbClient.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&report).Error; err != nil {
			return fmt.Errorf("create report: %w", err)
		}

		if err := s.insertValues(tx, &report, values); err != nil {
			return err
		}

		ownerKey := fmt.Sprintf("reports/%d", report.ID)

		stored, err := s.store.Save(ctx, ownerKey, files)
		if err != nil {
			return fmt.Errorf("store attachments: %w", err)
		}
		saved = stored

		for i := range saved {
			att := model.ReportAttachment{
				ReportID:    report.ID,
				Filename:    saved[i].Filename,
				StoragePath: saved[i].StoragePath,
				ContentType: saved[i].ContentType,
			}
			if err := tx.Create(&att).Error; err != nil {
				return fmt.Errorf("create attachment record: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishReportEvents(ctx, &report, len(values), saved)

	return s.GetReport(ctx, report.ID)
}

// insertValues 按字段名匹配写入字段值行.
// 只认报告所属类型下的字段，未知键静默丢弃；null 保留为 NULL.
func (s *ReportService) insertValues(tx *gorm.DB, report *model.Report, values map[string]any) error {
	if len(values) == 0 {
		return nil
	}

	var fields []model.ReportField
	if err := tx.Where("report_type_id = ?", report.ReportTypeID).Find(&fields).Error; err != nil {
		return fmt.Errorf("load field definitions: %w", err)
	}

	fieldIDs := make(map[string]uint, len(fields))
	for i := range fields {
		fieldIDs[fields[i].Name] = fields[i].ID
	}

	// 排序保证插入顺序稳定
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fieldID, ok := fieldIDs[key]
		if !ok {
			continue
		}

		row := model.ReportFieldValue{
			ReportID: report.ID,
			FieldID:  fieldID,
			Value:    stringifyValue(values[key]),
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("create field value %s: %w", key, err)
		}
	}

	return nil
}

// GetReport 按 ID 读取报告投影，不存在返回 ErrNotFound.
func (s *ReportService) GetReport(ctx context.Context, id uint) (*types.ReportResponse, error) {
	var report model.Report
	if err := s.dbClient.WithContext(ctx).
		Preload("Values.Field").
		Preload("Attachments").
		First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("report %d: %w", id, ErrNotFound)
		}

		return nil, fmt.Errorf("find report %d: %w", id, err)
	}

	resp := buildReportResponse(&report)

	return &resp, nil
}

// ListReports 返回全部报告投影.
func (s *ReportService) ListReports(ctx context.Context) ([]types.ReportResponse, error) {
	var reports []model.Report
	if err := s.dbClient.WithContext(ctx).
		Preload("Values.Field").
		Preload("Attachments").
		Order("id").
		Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	resp := make([]types.ReportResponse, 0, len(reports))
	for i := range reports {
		resp = append(resp, buildReportResponse(&reports[i]))
	}

	return resp, nil
}

// publishReportEvents 在聚合事务提交后发布事件，失败只记日志.
func (s *ReportService) publishReportEvents(ctx context.Context, report *model.Report, valueCount int, saved []attach.SavedFile) {
	cfg := configs.GetConfig()
	if !cfg.Events.Enabled || s.mqClient == nil {
		return
	}

	l := ctxPkg.WithTraceContext(ctx, *nlog.Logger())

	refs := make([]queue.AttachmentRef, 0, len(saved))
	for i := range saved {
		ref := queue.AttachmentRef{
			Filename:    saved[i].Filename,
			StoragePath: saved[i].StoragePath,
		}
		if saved[i].ContentType != nil {
			ref.ContentType = *saved[i].ContentType
		}

		refs = append(refs, ref)
	}

	if cfg.Events.Report.Created {
		payload := queue.ReportCreatedPayload{
			ReportID:     report.ID,
			ReportTypeID: report.ReportTypeID,
			Title:        report.Title,
			ValueCount:   valueCount,
			Attachments:  refs,
		}
		if err := queue.PublishReportCreated(s.mqClient.Publisher(), payload, queue.WithProducer("reportvault")); err != nil {
			l.Warn().Err(err).Uint("report_id", report.ID).Msg("publish report created event failed")
		}
	}

	if cfg.Events.Report.AttachmentStored {
		backend := string(cfg.Storage.Attachments.Backend)
		for i := range refs {
			payload := queue.ReportAttachmentStoredPayload{
				ReportID:   report.ID,
				Attachment: refs[i],
				Backend:    backend,
			}
			if err := queue.PublishReportAttachmentStored(s.mqClient.Publisher(), payload, queue.WithProducer("reportvault")); err != nil {
				l.Warn().Err(err).Uint("report_id", report.ID).Msg("publish attachment stored event failed")
			}
		}
	}
}

// parseValues 解析提交的字段值映射，必须是一个扁平 JSON 对象.
func parseValues(blob string) (map[string]any, error) {
	if blob == "" {
		return map[string]any{}, nil
	}

	var values map[string]any
	if err := valuesAPI.Unmarshal([]byte(blob), &values); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadValues, err)
	}

	return values, nil
}

// stringifyValue 将 JSON 值转为存储形态：null 保留 NULL，其余转字符串.
func stringifyValue(v any) *string {
	if v == nil {
		return nil
	}

	var s string

	switch val := v.(type) {
	case string:
		s = val
	case json.Number:
		s = val.String()
	case bool:
		if val {
			s = "true"
		} else {
			s = "false"
		}
	default:
		s = fmt.Sprintf("%v", val)
	}

	return &s
}

func buildReportResponse(r *model.Report) types.ReportResponse {
	values := make(map[string]*string, len(r.Values))
	for i := range r.Values {
		values[r.Values[i].Field.Name] = r.Values[i].Value
	}

	attachments := make([]types.ReportAttachmentResponse, 0, len(r.Attachments))
	for i := range r.Attachments {
		attachments = append(attachments, types.ReportAttachmentResponse{
			ID:          r.Attachments[i].ID,
			Filename:    r.Attachments[i].Filename,
			StoragePath: r.Attachments[i].StoragePath,
			ContentType: r.Attachments[i].ContentType,
		})
	}

	return types.ReportResponse{
		ID:           r.ID,
		ReportTypeID: r.ReportTypeID,
		Title:        r.Title,
		CreatedAt:    r.CreatedAt,
		Values:       values,
		Attachments:  attachments,
	}
}
