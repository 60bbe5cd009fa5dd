package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/bookrec/internal/application/book"
	"github.com/xiebiao/bookrec/internal/domain/book"
	"github.com/xiebiao/bookrec/internal/domain/book/booktest"
	"github.com/xiebiao/bookrec/internal/infrastructure/config"
	"github.com/xiebiao/bookrec/internal/interface/http/handler"
)

func newTestRouter(cfg *config.Config, svc *booktest.Service) *gin.Engine {
	log := zerolog.Nop()
	return NewRouter(
		cfg,
		&log,
		handler.NewBookHandler(svc, appbook.NewBookPageUseCase(svc)),
		handler.NewLabelHandler(svc, appbook.NewLabelBooksUseCase(svc)),
	)
}

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Mode: gin.TestMode},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
		Swagger: config.SwaggerConfig{Enabled: true},
	}
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestNewRouter_Routes(t *testing.T) {
	svc := &booktest.Service{
		DetailFunc: func(_ context.Context, uid string) (*book.Book, error) {
			return book.NewBook(uid, "n", "i"), nil
		},
	}
	r := newTestRouter(testConfig(), svc)

	routes := map[string]bool{}
	for _, route := range r.Routes() {
		routes[route.Method+" "+route.Path] = true
	}
	for _, want := range []string{
		"GET /ping",
		"GET /metrics",
		"GET /swagger/*any",
		"GET /api/v1/books/popular",
		"GET /api/v1/books/recommended",
		"GET /api/v1/books/search",
		"GET /api/v1/books/sum",
		"GET /api/v1/book/:uid",
		"GET /api/v1/book/:uid/relevant",
		"GET /api/v1/book/:uid/labels",
		"POST /api/v1/book/:uid/view",
		"GET /api/v1/labels/:name/books",
		"GET /api/v1/labels/:name/sum",
	} {
		assert.True(t, routes[want], "缺少路由 %s", want)
	}

	w := get(r, "/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	// 静态段和参数段不冲突
	get(r, "/api/v1/books/popular")
	assert.Equal(t, 1, svc.Calls("GetPopularBooks"))
	w = get(r, "/api/v1/book/popular")
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(0), body["code"])
	assert.Equal(t, 1, svc.Calls("GetBookDetail"))
}

func TestNewRouter_Metrics(t *testing.T) {
	r := newTestRouter(testConfig(), &booktest.Service{})

	get(r, "/api/v1/books/sum")
	w := get(r, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",path="/api/v1/books/sum",status="200"}`)
}

func TestNewRouter_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = false
	cfg.Swagger.Enabled = false
	r := newTestRouter(cfg, &booktest.Service{})

	assert.Equal(t, http.StatusNotFound, get(r, "/metrics").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/swagger/index.html").Code)
}
