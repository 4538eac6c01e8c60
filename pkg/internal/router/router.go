// Package router 管理路由配置，用于设置HTTP服务的路由规则.
package router

import (
	"github.com/gin-gonic/gin"
)

// Middlewares 由应用层注入的可选路由中间件. router 包只负责将路径和处理器
// 绑定到 gin 引擎，中间件的装配（限流、缓存、熔断）由 pkg/api 决定.
// 任何一项为 nil 时按直通处理.
type Middlewares struct {
	WriteLimit        gin.HandlerFunc // 写接口限流
	ListCache         gin.HandlerFunc // 列表读接口缓存
	CatalogInvalidate gin.HandlerFunc // 目录写接口使列表缓存失效
	Breaker           gin.HandlerFunc // 产品报告组熔断
}

// noop 占位中间件.
func noop(c *gin.Context) { c.Next() }

// orNoop 空中间件降级.
func orNoop(h gin.HandlerFunc) gin.HandlerFunc {
	if h == nil {
		return noop
	}

	return h
}

// Setup 将全部业务路由挂到传入的路由组（假定上层会用 v1 := e.Group("/api/v1")）.
func Setup(v1 *gin.RouterGroup, mw Middlewares) {
	RegisterReportTypeRoutes(v1, mw)
	RegisterReportRoutes(v1, mw)
	RegisterProductReportRoutes(v1, mw)
	RegisterHealthCheckRoute(v1)
}
