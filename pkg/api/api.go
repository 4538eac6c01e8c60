// Package api 组装HTTP服务的业务路由与路由级中间件.
package api

import (
	"github.com/gin-gonic/gin"

	appcache "github.com/yeisme/reportvault/pkg/cache"
	"github.com/yeisme/reportvault/pkg/configs"
	"github.com/yeisme/reportvault/pkg/internal/router"
	"github.com/yeisme/reportvault/pkg/middleware"
)

// RegisterGroup 注册报告相关的路由组到传入的 gin 引擎.
// 写接口套限流，报告类型列表读走缓存，产品报告组套熔断.
// cacheStore 为 nil 时列表读接口不启用缓存.
func RegisterGroup(e *gin.Engine, cacheStore *appcache.Cache) *gin.Engine {
	cfg := configs.GetConfig()

	mw := router.Middlewares{
		WriteLimit: middleware.RateLimitMiddleware(cfg.RateLimit),
		Breaker:    middleware.CircuitBreakerMiddleware(cfg.CircuitBreaker),
	}
	if cacheStore != nil {
		mw.ListCache = middleware.CacheMiddleware(middleware.DefaultCacheConfig(cacheStore))
		mw.CatalogInvalidate = middleware.CacheInvalidate(cacheStore, "/api/v1/report-types")
	}

	router.Setup(e.Group("/api/v1"), mw)
	router.RegisterSwaggerRoute(e)

	return e
}
