package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/reportvault/pkg/internal/handle"
)

// RegisterReportRoutes 注册报告聚合相关路由.
func RegisterReportRoutes(g *gin.RouterGroup, mw Middlewares) {
	reportRoutes := g.Group("/reports")
	{
		// 提交报告（multipart 表单 + 附件）
		reportRoutes.POST("", orNoop(mw.WriteLimit), handle.CreateReport)
		// 列出全部报告投影
		reportRoutes.GET("", handle.ListReports)
		// 按 ID 读取报告投影
		reportRoutes.GET("/:id", handle.GetReport)
	}
}
