package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/reportvault/pkg/internal/service"
	"github.com/yeisme/reportvault/pkg/internal/types"
	"github.com/yeisme/reportvault/pkg/log"
	"github.com/yeisme/reportvault/pkg/rule"
)

// SubmitFullReport 提交产品全流程报告（operationcode 45）.
//
// 表单非法时返回 400；进入业务流程后无论成败都返回 200，
// 结果只体现在 state 字段里.
//
//	@Summary		提交产品全流程报告
//	@Description	旧系统格式的产品全流程报告提交，文件可选；结果以 state 字段表示
//	@Tags			产品报告
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			rp_number			formData	string	true	"报告编号"
//	@Param			creator				formData	string	true	"创建人"
//	@Param			product_name		formData	string	true	"产品名称"
//	@Param			product_code		formData	string	true	"产品编码"
//	@Param			creatorTime			formData	string	true	"创建日期（2006-01-02）"
//	@Param			verification_man	formData	string	true	"验证人"
//	@Param			pro_leader			formData	string	true	"项目负责人"
//	@Param			recipe_leader		formData	string	true	"配方负责人"
//	@Param			token				formData	string	false	"旧系统令牌，原样存储"
//	@Param			meetingReport		formData	file	false	"报告文件，单个"
//	@Success		200					{object}	types.SubmitFullReportResponse	"提交结果"
//	@Failure		400					{object}	map[string]string				"请求参数错误"
//	@Router			/api/v1/product-reports/full-report [post]
func SubmitFullReport(c *gin.Context) {
	l := log.Logger()

	var req types.SubmitFullReportRequest
	if err := c.ShouldBind(&req); err != nil {
		l.Warn().Err(err).Msg("invalid request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if err := rule.ValidateStruct(&req); err != nil {
		l.Warn().Err(err).Msg("invalid full report")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	// 文件可选，缺失不是错误
	file, err := c.FormFile("meetingReport")
	if err != nil {
		file = nil
	}

	svc := service.NewProductReportService(c.Request.Context())
	resp := svc.SubmitFullReport(c.Request.Context(), &req, file)

	c.JSON(http.StatusOK, resp)
}
