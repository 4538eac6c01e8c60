package handle

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/reportvault/pkg/internal/service"
	"github.com/yeisme/reportvault/pkg/internal/types"
	"github.com/yeisme/reportvault/pkg/log"
	"github.com/yeisme/reportvault/pkg/rule"
)

// CreateReport 提交一份报告（multipart 表单 + 附件）.
//
//	@Summary		提交报告
//	@Description	以 multipart 表单提交报告：values 为序列化的 JSON 对象，files 为零或多个附件
//	@Tags			报告
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			report_type_id	formData	int		true	"报告类型 ID"
//	@Param			title			formData	string	true	"报告标题"
//	@Param			values			formData	string	false	"字段值映射（JSON 对象字符串）"
//	@Param			files			formData	file	false	"附件，可多个"
//	@Success		201				{object}	types.ReportResponse	"报告投影"
//	@Failure		400				{object}	map[string]string		"请求参数错误或值映射非法"
//	@Failure		500				{object}	map[string]string		"服务器内部错误"
//	@Router			/api/v1/reports [post]
func CreateReport(c *gin.Context) {
	l := log.Logger()

	var req types.CreateReportRequest
	if err := c.ShouldBind(&req); err != nil {
		l.Warn().Err(err).Msg("invalid request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if err := rule.ValidateStruct(&req); err != nil {
		l.Warn().Err(err).Msg("invalid report")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	files := formFiles(c, "files")

	svc := service.NewReportService(c.Request.Context())

	resp, err := svc.CreateReport(c.Request.Context(), &req, files)
	if err != nil {
		l.Error().Err(err).Uint("report_type_id", req.ReportTypeID).Msg("create report failed")
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetReport 按 ID 读取报告投影.
//
//	@Summary		读取报告
//	@Description	按 ID 返回报告投影：values 以字段名为键，attachments 为附件元数据
//	@Tags			报告
//	@Produce		json
//	@Param			id	path		int						true	"报告 ID"
//	@Success		200	{object}	types.ReportResponse	"报告投影"
//	@Failure		400	{object}	map[string]string		"请求参数错误"
//	@Failure		404	{object}	map[string]string		"报告不存在"
//	@Failure		500	{object}	map[string]string		"服务器内部错误"
//	@Router			/api/v1/reports/{id} [get]
func GetReport(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		log.Logger().Warn().Err(err).Msg("invalid report id")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	svc := service.NewReportService(c.Request.Context())

	resp, err := svc.GetReport(c.Request.Context(), id)
	if err != nil {
		log.Logger().Error().Err(err).Uint("report_id", id).Msg("get report failed")
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListReports 列出全部报告投影.
//
//	@Summary		列出报告
//	@Description	返回全部报告投影
//	@Tags			报告
//	@Produce		json
//	@Success		200	{array}		types.ReportResponse	"报告列表"
//	@Failure		500	{object}	map[string]string		"服务器内部错误"
//	@Router			/api/v1/reports [get]
func ListReports(c *gin.Context) {
	svc := service.NewReportService(c.Request.Context())

	resp, err := svc.ListReports(c.Request.Context())
	if err != nil {
		log.Logger().Error().Err(err).Msg("list reports failed")
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// formFiles 取出 multipart 表单里指定键的全部文件，没有表单时返回 nil.
func formFiles(c *gin.Context, key string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}

	return form.File[key]
}
