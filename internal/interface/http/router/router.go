package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xiebiao/bookrec/internal/infrastructure/config"
	"github.com/xiebiao/bookrec/internal/interface/http/handler"
	"github.com/xiebiao/bookrec/internal/interface/http/middleware"
	"github.com/xiebiao/bookrec/pkg/response"
)

// NewRouter 创建并配置Gin引擎
//
// 中间件顺序：
//  1. Recovery  捕获panic
//  2. Tracing   创建请求根Span（Logger需要读取trace_id）
//  3. Logger    请求ID + 访问日志
//  4. Metrics   HTTP指标
//  5. UserToken 读取用户token
//
// 路由说明：
//   - /books/...  静态路径（热门、推荐、搜索、总数）
//   - /book/:uid  单本图书，和/books分开避免静态段与参数段冲突
func NewRouter(
	cfg *config.Config,
	log *zerolog.Logger,
	bookHandler *handler.BookHandler,
	labelHandler *handler.LabelHandler,
) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.Tracing(),
		middleware.Logger(log),
	)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
	}
	r.Use(middleware.UserToken())

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// Swagger文档（访问 /swagger/index.html，生产环境关闭）
	if cfg.Swagger.Enabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")
	{
		// 图书列表
		books := v1.Group("/books")
		{
			books.GET("/popular", bookHandler.PopularBooks)
			books.GET("/recommended", bookHandler.RecommendedBooks)
			books.GET("/search", bookHandler.SearchBooks)
			books.GET("/sum", bookHandler.BookSum)
		}

		// 单本图书
		single := v1.Group("/book/:uid")
		{
			single.GET("", bookHandler.BookPage)
			single.GET("/relevant", bookHandler.RelevantBooks)
			single.GET("/labels", bookHandler.BookLabels)
			single.POST("/view", middleware.RequireToken(), bookHandler.RecordView)
		}

		// 标签
		labels := v1.Group("/labels/:name")
		{
			labels.GET("/books", labelHandler.LabelBooks)
			labels.GET("/sum", labelHandler.LabelSum)
		}
	}

	return r
}
