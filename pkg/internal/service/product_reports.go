package service

import (
	"context"
	"mime/multipart"
	"time"

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

// fullReportOperationCode 产品全流程报告的固定操作码.
const fullReportOperationCode = 45

// creatorTimeLayout 表单 creatorTime 的日期格式.
const creatorTimeLayout = "2006-01-02"

// ProductReportService 负责产品全流程报告（operationcode 45）的提交.
type ProductReportService struct {
	dbClient *db.Client
	mqClient *mq.Client
	files    *attach.FSStore
}

// NewProductReportService 从 context 获取依赖实例.
func NewProductReportService(c context.Context) *ProductReportService {
	dbc := ctxPkg.GetDBClient(c)

	// 为了安全起见，应该直接 panic 而不是返回 nil，依赖此服务就不需要再检查
	if dbc == nil || dbc.DB == nil {
		nlog.Logger().Fatal().Msg("storage clients not initialized")
	}

	mgr := ctxPkg.GetManager(c)
	if mgr == nil || mgr.ProductFiles == nil {
		nlog.Logger().Fatal().Msg("product file store not initialized")
	}

	return &ProductReportService{
		dbClient: dbc,
		mqClient: mgr.GetMQClient(),
		files:    mgr.GetProductFileStore(),
	}
}

// SubmitFullReport 提交一份产品全流程报告.
//
// 附件先写入 <根目录>/<产品编码>/ 下，之后才插入记录，两步之间没有事务
// 协调：插入失败时文件留在磁盘上.任何一步失败都折叠成 fail 状态返回，
// 失败原因只进日志不回传.
func (s *ProductReportService) SubmitFullReport(ctx context.Context, req *types.SubmitFullReportRequest, file *multipart.FileHeader) *types.SubmitFullReportResponse {
	l := ctxPkg.WithTraceContext(ctx, *nlog.Logger())

	state := types.FullReportStateSuccess

	var fileName *string

	if file != nil {
		saved, err := s.files.Save(ctx, req.ProductCode, []*multipart.FileHeader{file})
		if err != nil {
			l.Error().Err(err).Str("product_code", req.ProductCode).Msg("write full report file failed")

			state = types.FullReportStateFail
		} else if len(saved) > 0 {
			fileName = &saved[0].StoragePath
		}
	}

	if state == types.FullReportStateSuccess {
		creatorTime, err := time.Parse(creatorTimeLayout, req.CreatorTime)
		if err != nil {
			l.Error().Err(err).Str("creator_time", req.CreatorTime).Msg("parse full report creator time failed")

			state = types.FullReportStateFail
		} else {
			// 表单里的操作码原样入库，缺省补 45；响应里的操作码恒为 45
			opCode := req.OperationCode
			if opCode == 0 {
				opCode = fullReportOperationCode
			}

			row := model.ProductFullReport{
				Token:           req.Token,
				OperationCode:   opCode,
				RpNumber:        req.RpNumber,
				Creator:         req.Creator,
				ProductName:     req.ProductName,
				ProductCode:     req.ProductCode,
				CreatorTime:     creatorTime,
				VerificationMan: req.VerificationMan,
				ProLeader:       req.ProLeader,
				RecipeLeader:    req.RecipeLeader,
				FileName:        fileName,
			}
			if err := s.dbClient.WithContext(ctx).Create(&row).Error; err != nil {
				l.Error().Err(err).Str("rp_number", req.RpNumber).Msg("insert full report failed")

				state = types.FullReportStateFail
			} else {
				s.publishSubmitted(ctx, &row, state)
			}
		}
	}

	if state == types.FullReportStateFail {
		s.publishSubmitted(ctx, &model.ProductFullReport{
			RpNumber:    req.RpNumber,
			ProductCode: req.ProductCode,
			Creator:     req.Creator,
		}, state)
	}

	return &types.SubmitFullReportResponse{
		OperationCode: fullReportOperationCode,
		State:         state,
	}
}

// publishSubmitted 发布提交事件，success 与 fail 都发布.
func (s *ProductReportService) publishSubmitted(ctx context.Context, row *model.ProductFullReport, state string) {
	cfg := configs.GetConfig()
	if !cfg.Events.Enabled || !cfg.Events.ProductReport.Submitted || s.mqClient == nil {
		return
	}

	payload := queue.ProductReportSubmittedPayload{
		ReportID:    row.ID,
		RpNumber:    row.RpNumber,
		ProductCode: row.ProductCode,
		Creator:     row.Creator,
		State:       state,
	}
	if row.FileName != nil {
		payload.FileName = *row.FileName
	}

	if err := queue.PublishProductReportSubmitted(s.mqClient.Publisher(), payload, queue.WithProducer("reportvault")); err != nil {
		l := ctxPkg.WithTraceContext(ctx, *nlog.Logger())
		l.Warn().Err(err).Str("rp_number", row.RpNumber).Msg("publish full report submitted event failed")
	}
}
