// Package metrics 提供基于Prometheus的指标收集
//
// # 指标分类
//
// **1. HTTP指标**：请求总数、耗时分布、正在处理的请求数（由gin中间件记录）
//
// **2. 数据库指标**：每个仓储操作的执行次数与耗时（由mysql.Scope记录）
//   - 标签operation使用操作名（PopularBooks、BooksByLabel等），基数有限
//   - 标签result取值：success / not_found / error
//
// **3. 业务指标**：图书浏览次数、推荐回退次数
//
// # 使用示例
//
//	// 1. 初始化（程序启动时调用一次，重复调用无副作用）
//	metrics.InitMetrics()
//
//	// 2. 暴露/metrics端点
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	// 3. 记录数据库操作
//	start := time.Now()
//	rows, err := doQuery()
//	metrics.ObserveDBQuery("PopularBooks", metrics.ResultSuccess, time.Since(start))
//
// # 命名规范
//
//   - Counter以`_total`结尾：`db_queries_total`
//   - Histogram以单位结尾：`db_query_duration_seconds`
//   - 不要用user_token、book_uid作为标签（高基数）
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 数据库操作结果标签
const (
	ResultSuccess  = "success"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

var (
	// initOnce 防止重复注册（promauto重复注册会panic）
	initOnce sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（路由模板，如/api/v1/book/:uid）、status（200/500）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 数据库指标

	// DBQueriesTotal 仓储操作执行总数（Counter）
	// 标签：operation（操作名）、result（success/not_found/error）
	DBQueriesTotal *prometheus.CounterVec

	// DBQueryDuration 仓储操作耗时（Histogram）
	// 一次操作可能包含1-2条SQL，统计的是整个会话的耗时
	DBQueryDuration *prometheus.HistogramVec

	// 业务指标

	// BookViewsTotal 图书浏览计数累加次数（Counter）
	BookViewsTotal prometheus.Counter

	// RecommendationFallbacksTotal 推荐回退到热门图书的次数（Counter）
	// 标签：reason（user_not_found/no_recommendation）
	RecommendationFallbacksTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
//
// 使用promauto.New*自动注册到默认Registry，可以安全地多次调用
func InitMetrics() {
	initOnce.Do(func() {
		// HTTP请求指标
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP请求耗时（秒）",
				// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		// 数据库指标
		DBQueriesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "db_queries_total",
				Help: "仓储操作执行总数",
			},
			[]string{"operation", "result"},
		)

		DBQueryDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "db_query_duration_seconds",
				Help: "仓储操作耗时（秒）",
				// 单表查询通常在毫秒级，LIKE模糊搜索可能较慢
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"operation"},
		)

		// 业务指标
		BookViewsTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "book_views_total",
				Help: "图书浏览计数累加次数",
			},
		)

		RecommendationFallbacksTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recommendation_fallbacks_total",
				Help: "推荐回退到热门图书的次数",
			},
			[]string{"reason"},
		)
	})
}

// ObserveDBQuery 记录一次仓储操作（次数+耗时）
func ObserveDBQuery(operation, result string, elapsed time.Duration) {
	InitMetrics()
	DBQueriesTotal.With(prometheus.Labels{"operation": operation, "result": result}).Inc()
	DBQueryDuration.With(prometheus.Labels{"operation": operation}).Observe(elapsed.Seconds())
}

// RecordBookView 记录一次浏览计数累加
func RecordBookView() {
	InitMetrics()
	BookViewsTotal.Inc()
}

// RecordRecommendationFallback 记录一次推荐回退
func RecordRecommendationFallback(reason string) {
	InitMetrics()
	RecommendationFallbacksTotal.With(prometheus.Labels{"reason": reason}).Inc()
}

// IncCounter 递增Counter（便捷函数）
func IncCounter(counter prometheus.Counter) {
	counter.Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// SetGauge 设置Gauge值
func SetGauge(gauge prometheus.Gauge, value float64) {
	gauge.Set(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
