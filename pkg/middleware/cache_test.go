package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	appcache "github.com/yeisme/reportvault/pkg/cache"
	"github.com/yeisme/reportvault/pkg/internal/storage/kv"
	"github.com/yeisme/reportvault/pkg/middleware"
)

// catalogServer 一个带列表缓存和写失效的最小路由.
type catalogServer struct {
	engine *gin.Engine
	cache  *appcache.Cache

	mu    sync.Mutex
	items []string
}

func newCatalogServer(t *testing.T) *catalogServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := kv.NewMemoryKV(context.Background(), nil)
	if err != nil {
		t.Fatalf("new memory kv: %v", err)
	}

	s := &catalogServer{
		engine: gin.New(),
		cache:  appcache.NewCache(store),
		items:  []string{"first"},
	}

	s.engine.GET("/catalog",
		middleware.CacheMiddleware(middleware.DefaultCacheConfig(s.cache)),
		func(c *gin.Context) {
			s.mu.Lock()
			defer s.mu.Unlock()
			c.JSON(http.StatusOK, s.items)
		})
	s.engine.POST("/catalog",
		middleware.CacheInvalidate(s.cache, "/catalog"),
		func(c *gin.Context) {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.items = append(s.items, "second")
			c.JSON(http.StatusCreated, gin.H{})
		})

	return s
}

func (s *catalogServer) do(method string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, "/catalog", nil)
	s.engine.ServeHTTP(w, req)

	return w
}

// waitForStored 缓存写入是异步的，轮询存储直到条目出现.
func (s *catalogServer) waitForStored(t *testing.T) {
	t.Helper()

	key := middleware.CacheKeyFor(http.MethodGet, "/catalog")

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if ok, _ := s.cache.Exists(context.Background(), key); ok {
			return
		}

		time.Sleep(10 * time.Millisecond)
	}

	t.Fatal("cache entry never stored")
}

func TestCacheInvalidateOnWrite(t *testing.T) {
	s := newCatalogServer(t)

	if w := s.do(http.MethodGet); strings.Contains(w.Body.String(), "second") {
		t.Fatalf("unexpected initial body: %s", w.Body.String())
	}

	s.waitForStored(t)

	if w := s.do(http.MethodGet); w.Header().Get("X-Cache") != "HIT" {
		t.Fatalf("second read not served from cache: %v", w.Header())
	}

	if w := s.do(http.MethodPost); w.Code != http.StatusCreated {
		t.Fatalf("post status = %d", w.Code)
	}

	// 写入成功后缓存条目被删除，下一次读必须看到新数据
	w := s.do(http.MethodGet)
	if !strings.Contains(w.Body.String(), "second") {
		t.Fatalf("stale list after write: %s", w.Body.String())
	}
}

func TestCacheInvalidateSkipsFailedWrite(t *testing.T) {
	s := newCatalogServer(t)
	s.engine.POST("/catalog-bad",
		middleware.CacheInvalidate(s.cache, "/catalog"),
		func(c *gin.Context) { c.JSON(http.StatusBadRequest, gin.H{"error": "bad"}) })

	if w := s.do(http.MethodGet); w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}

	s.waitForStored(t)

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/catalog-bad", nil))

	key := middleware.CacheKeyFor(http.MethodGet, "/catalog")
	if ok, _ := s.cache.Exists(context.Background(), key); !ok {
		t.Fatal("cache entry dropped on failed write")
	}
}
