package metrics_test

import (
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/reportvault/pkg/configs"
	"github.com/yeisme/reportvault/pkg/metrics"
)

func routePaths(e *gin.Engine) map[string]bool {
	paths := make(map[string]bool)
	for _, r := range e.Routes() {
		paths[r.Path] = true
	}

	return paths
}

func TestStartMetricsServerRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	e := gin.New()
	cfg := configs.MetricsConfig{Enabled: true, Pprof: true}

	if err := metrics.StartMetricsServer(cfg, e); err != nil {
		t.Fatalf("start metrics server: %v", err)
	}

	paths := routePaths(e)
	if !paths["/metrics"] {
		t.Error("missing /metrics route")
	}

	if !paths["/debug/pprof/*any"] {
		t.Error("missing pprof route")
	}
}

func TestStartMetricsServerDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	e := gin.New()

	if err := metrics.StartMetricsServer(configs.MetricsConfig{}, e); err != nil {
		t.Fatalf("start metrics server: %v", err)
	}

	if len(e.Routes()) != 0 {
		t.Errorf("routes = %v, want none", e.Routes())
	}
}
