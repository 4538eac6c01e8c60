package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/reportvault/pkg/internal/handle"
)

// RegisterProductReportRoutes 注册产品全流程报告路由.
// 旧系统的提交端来自产线侧设备，整组套上熔断保护.
func RegisterProductReportRoutes(g *gin.RouterGroup, mw Middlewares) {
	productRoutes := g.Group("/product-reports", orNoop(mw.Breaker))
	{
		productRoutes.POST("/full-report", orNoop(mw.WriteLimit), handle.SubmitFullReport)
	}
}
