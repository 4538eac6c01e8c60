package handle

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/reportvault/pkg/internal/service"
	"github.com/yeisme/reportvault/pkg/internal/types"
	"github.com/yeisme/reportvault/pkg/log"
	"github.com/yeisme/reportvault/pkg/rule"
)

// CreateReportType 创建报告类型.
//
//	@Summary		创建报告类型
//	@Description	创建一个新的报告类型，名称全局唯一，初始字段列表为空
//	@Tags			报告类型
//	@Accept			json
//	@Produce		json
//	@Param			type	body		types.CreateReportTypeRequest	true	"报告类型定义"
//	@Success		201		{object}	types.ReportTypeResponse		"创建的报告类型"
//	@Failure		400		{object}	map[string]string				"请求参数错误"
//	@Failure		409		{object}	map[string]string				"名称冲突"
//	@Failure		500		{object}	map[string]string				"服务器内部错误"
//	@Router			/api/v1/report-types [post]
func CreateReportType(c *gin.Context) {
	l := log.Logger()

	var req types.CreateReportTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if err := rule.ValidateStruct(&req); err != nil {
		l.Warn().Err(err).Msg("invalid report type")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	svc := service.NewReportTypeService(c.Request.Context())

	resp, err := svc.CreateType(c.Request.Context(), &req)
	if err != nil {
		l.Error().Err(err).Str("name", req.Name).Msg("create report type failed")
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListReportTypes 列出全部报告类型.
//
//	@Summary		列出报告类型
//	@Description	返回全部报告类型及其字段定义
//	@Tags			报告类型
//	@Produce		json
//	@Success		200	{array}		types.ReportTypeResponse	"报告类型列表"
//	@Failure		500	{object}	map[string]string			"服务器内部错误"
//	@Router			/api/v1/report-types [get]
func ListReportTypes(c *gin.Context) {
	svc := service.NewReportTypeService(c.Request.Context())

	resp, err := svc.ListTypes(c.Request.Context())
	if err != nil {
		log.Logger().Error().Err(err).Msg("list report types failed")
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateReportField 在报告类型下创建字段.
//
//	@Summary		创建字段定义
//	@Description	在指定报告类型下新增一个字段定义，类型不存在时返回 404
//	@Tags			报告类型
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"报告类型 ID"
//	@Param			field	body		types.CreateReportFieldRequest	true	"字段定义"
//	@Success		201		{object}	types.ReportFieldResponse		"创建的字段"
//	@Failure		400		{object}	map[string]string				"请求参数错误"
//	@Failure		404		{object}	map[string]string				"报告类型不存在"
//	@Failure		500		{object}	map[string]string				"服务器内部错误"
//	@Router			/api/v1/report-types/{id}/fields [post]
func CreateReportField(c *gin.Context) {
	l := log.Logger()

	typeID, err := parseIDParam(c, "id")
	if err != nil {
		l.Warn().Err(err).Msg("invalid report type id")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	var req types.CreateReportFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("invalid request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if err := rule.ValidateStruct(&req); err != nil {
		l.Warn().Err(err).Msg("invalid report field")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	svc := service.NewReportTypeService(c.Request.Context())

	resp, err := svc.AddField(c.Request.Context(), typeID, &req)
	if err != nil {
		l.Error().Err(err).Uint("type_id", typeID).Msg("create report field failed")
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListReportFields 列出报告类型下的字段定义.
//
//	@Summary		列出字段定义
//	@Description	返回指定报告类型下的字段定义；类型不存在时返回空列表而非 404
//	@Tags			报告类型
//	@Produce		json
//	@Param			id	path		int							true	"报告类型 ID"
//	@Success		200	{array}		types.ReportFieldResponse	"字段定义列表"
//	@Failure		400	{object}	map[string]string			"请求参数错误"
//	@Failure		500	{object}	map[string]string			"服务器内部错误"
//	@Router			/api/v1/report-types/{id}/fields [get]
func ListReportFields(c *gin.Context) {
	typeID, err := parseIDParam(c, "id")
	if err != nil {
		log.Logger().Warn().Err(err).Msg("invalid report type id")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	svc := service.NewReportTypeService(c.Request.Context())

	resp, err := svc.ListFields(c.Request.Context(), typeID)
	if err != nil {
		log.Logger().Error().Err(err).Uint("type_id", typeID).Msg("list report fields failed")
		abortWithError(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// parseIDParam 解析路径里的数字 ID.
func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}

	return uint(id), nil
}
