package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	ctxPkg "github.com/yeisme/reportvault/pkg/context"
	"github.com/yeisme/reportvault/pkg/internal/model"
	"github.com/yeisme/reportvault/pkg/internal/storage/db"
	"github.com/yeisme/reportvault/pkg/internal/types"
	nlog "github.com/yeisme/reportvault/pkg/log"
)

// defaultFieldType 字段类型缺省值，与列默认值保持一致.
const defaultFieldType = "text"

// ReportTypeService 负责报告类型目录的业务逻辑.
type ReportTypeService struct {
	dbClient *db.Client
}

// NewReportTypeService 从 context 获取依赖实例.
func NewReportTypeService(c context.Context) *ReportTypeService {
	dbc := ctxPkg.GetDBClient(c)

	// 为了安全起见，应该直接 panic 而不是返回 nil，依赖此服务就不需要再检查
	if dbc == nil || dbc.DB == nil {
		nlog.Logger().Fatal().Msg("storage clients not initialized")
	}

	return &ReportTypeService{dbClient: dbc}
}

// CreateType 创建报告类型，名称冲突返回 ErrDuplicateName.
func (s *ReportTypeService) CreateType(ctx context.Context, req *types.CreateReportTypeRequest) (*types.ReportTypeResponse, error) {
	rt := model.ReportType{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.dbClient.WithContext(ctx).Create(&rt).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("report type %q: %w", req.Name, ErrDuplicateName)
		}

		return nil, fmt.Errorf("create report type: %w", err)
	}

	resp := buildReportTypeResponse(&rt)

	return &resp, nil
}

// ListTypes 返回全部报告类型及其字段定义.
func (s *ReportTypeService) ListTypes(ctx context.Context) ([]types.ReportTypeResponse, error) {
	var rts []model.ReportType
	if err := s.dbClient.WithContext(ctx).
		Preload("Fields").
		Order("id").
		Find(&rts).Error; err != nil {
		return nil, fmt.Errorf("list report types: %w", err)
	}

	resp := make([]types.ReportTypeResponse, 0, len(rts))
	for i := range rts {
		resp = append(resp, buildReportTypeResponse(&rts[i]))
	}

	return resp, nil
}

// AddField 在报告类型下新增字段定义，类型不存在返回 ErrNotFound.
func (s *ReportTypeService) AddField(ctx context.Context, typeID uint, req *types.CreateReportFieldRequest) (*types.ReportFieldResponse, error) {
	var rt model.ReportType
	if err := s.dbClient.WithContext(ctx).First(&rt, typeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("report type %d: %w", typeID, ErrNotFound)
		}

		return nil, fmt.Errorf("find report type %d: %w", typeID, err)
	}

	fieldType := req.FieldType
	if fieldType == "" {
		fieldType = defaultFieldType
	}

	field := model.ReportField{
		ReportTypeID: rt.ID,
		Name:         req.Name,
		Label:        req.Label,
		FieldType:    fieldType,
		Required:     req.Required,
	}
	if err := s.dbClient.WithContext(ctx).Create(&field).Error; err != nil {
		return nil, fmt.Errorf("create report field: %w", err)
	}

	resp := buildReportFieldResponse(&field)

	return &resp, nil
}

// ListFields 返回报告类型下的字段定义.
// 与 AddField 不同，类型不存在时不报错，返回空列表.
func (s *ReportTypeService) ListFields(ctx context.Context, typeID uint) ([]types.ReportFieldResponse, error) {
	var fields []model.ReportField
	if err := s.dbClient.WithContext(ctx).
		Where("report_type_id = ?", typeID).
		Order("id").
		Find(&fields).Error; err != nil {
		return nil, fmt.Errorf("list report fields: %w", err)
	}

	resp := make([]types.ReportFieldResponse, 0, len(fields))
	for i := range fields {
		resp = append(resp, buildReportFieldResponse(&fields[i]))
	}

	return resp, nil
}

func buildReportTypeResponse(rt *model.ReportType) types.ReportTypeResponse {
	fields := make([]types.ReportFieldResponse, 0, len(rt.Fields))
	for i := range rt.Fields {
		fields = append(fields, buildReportFieldResponse(&rt.Fields[i]))
	}

	return types.ReportTypeResponse{
		ID:          rt.ID,
		Name:        rt.Name,
		Description: rt.Description,
		Fields:      fields,
	}
}

func buildReportFieldResponse(f *model.ReportField) types.ReportFieldResponse {
	return types.ReportFieldResponse{
		ID:        f.ID,
		Name:      f.Name,
		Label:     f.Label,
		FieldType: f.FieldType,
		Required:  f.Required,
	}
}
