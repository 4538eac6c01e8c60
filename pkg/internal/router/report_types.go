package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/reportvault/pkg/internal/handle"
)

// RegisterReportTypeRoutes 注册报告类型目录相关路由.
func RegisterReportTypeRoutes(g *gin.RouterGroup, mw Middlewares) {
	typeRoutes := g.Group("/report-types")
	{
		// 创建报告类型，成功后使列表缓存失效
		typeRoutes.POST("", orNoop(mw.WriteLimit), orNoop(mw.CatalogInvalidate), handle.CreateReportType)
		// 列出全部报告类型（含字段定义）
		typeRoutes.GET("", orNoop(mw.ListCache), handle.ListReportTypes)

		// 单个类型下的字段定义
		fieldGroup := typeRoutes.Group("/:id/fields")
		{
			// 新增字段定义，字段出现在类型列表里，同样使列表缓存失效
			fieldGroup.POST("", orNoop(mw.WriteLimit), orNoop(mw.CatalogInvalidate), handle.CreateReportField)
			// 列出字段定义
			fieldGroup.GET("", handle.ListReportFields)
		}
	}
}
