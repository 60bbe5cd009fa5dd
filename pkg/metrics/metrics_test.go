package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitMetrics 测试指标初始化（重复调用不能panic）
func TestInitMetrics(t *testing.T) {
	InitMetrics()
	InitMetrics()

	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInProgress)
	assert.NotNil(t, DBQueriesTotal)
	assert.NotNil(t, DBQueryDuration)
	assert.NotNil(t, BookViewsTotal)
	assert.NotNil(t, RecommendationFallbacksTotal)
}

// TestObserveDBQuery 测试仓储操作指标
func TestObserveDBQuery(t *testing.T) {
	InitMetrics()

	success := map[string]string{"operation": "PopularBooks", "result": ResultSuccess}
	notFound := map[string]string{"operation": "BookDetail", "result": ResultNotFound}
	beforeSuccess := getCounterVecValue(t, DBQueriesTotal, success)
	beforeNotFound := getCounterVecValue(t, DBQueriesTotal, notFound)
	beforeCount := getHistogramVecCount(t, DBQueryDuration, map[string]string{"operation": "PopularBooks"})

	ObserveDBQuery("PopularBooks", ResultSuccess, 2*time.Millisecond)
	ObserveDBQuery("PopularBooks", ResultSuccess, 3*time.Millisecond)
	ObserveDBQuery("BookDetail", ResultNotFound, time.Millisecond)

	assert.Equal(t, beforeSuccess+2, getCounterVecValue(t, DBQueriesTotal, success))
	assert.Equal(t, beforeNotFound+1, getCounterVecValue(t, DBQueriesTotal, notFound))
	assert.Equal(t, beforeCount+2, getHistogramVecCount(t, DBQueryDuration, map[string]string{"operation": "PopularBooks"}))
}

// TestBusinessMetrics 测试业务指标便捷函数
func TestBusinessMetrics(t *testing.T) {
	InitMetrics()

	views := testutil.ToFloat64(BookViewsTotal)
	RecordBookView()
	assert.Equal(t, views+1, testutil.ToFloat64(BookViewsTotal))

	labels := map[string]string{"reason": "user_not_found"}
	before := getCounterVecValue(t, RecommendationFallbacksTotal, labels)
	RecordRecommendationFallback("user_not_found")
	assert.Equal(t, before+1, getCounterVecValue(t, RecommendationFallbacksTotal, labels))
}

// TestCounter 测试Counter指标
func TestCounter(t *testing.T) {
	InitMetrics()

	before := testutil.ToFloat64(BookViewsTotal)
	IncCounter(BookViewsTotal)
	IncCounter(BookViewsTotal)
	IncCounter(BookViewsTotal)

	assert.Equal(t, before+3, testutil.ToFloat64(BookViewsTotal))
}

// TestCounterVec 测试CounterVec指标
func TestCounterVec(t *testing.T) {
	InitMetrics()

	labels := map[string]string{"method": "GET", "path": "/api/v1/books/popular", "status": "200"}
	before := getCounterVecValue(t, HTTPRequestsTotal, labels)

	IncCounterVec(HTTPRequestsTotal, labels)
	IncCounterVec(HTTPRequestsTotal, map[string]string{"method": "POST", "path": "/api/v1/book/:uid/view", "status": "200"})
	IncCounterVec(HTTPRequestsTotal, labels)

	assert.Equal(t, before+2, getCounterVecValue(t, HTTPRequestsTotal, labels))
}

// TestGauge 测试Gauge指标
func TestGauge(t *testing.T) {
	InitMetrics()
	SetGauge(HTTPRequestsInProgress, 0)

	IncGauge(HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	assert.Equal(t, float64(2), getGaugeValue(t, HTTPRequestsInProgress))

	DecGauge(HTTPRequestsInProgress)
	assert.Equal(t, float64(1), getGaugeValue(t, HTTPRequestsInProgress))

	SetGauge(HTTPRequestsInProgress, 10)
	assert.Equal(t, float64(10), getGaugeValue(t, HTTPRequestsInProgress))

	SetGauge(HTTPRequestsInProgress, 0)
}

// TestHistogramVec 测试HistogramVec指标
func TestHistogramVec(t *testing.T) {
	InitMetrics()

	labels := map[string]string{"method": "GET", "path": "/api/v1/books/search"}
	before := getHistogramVecCount(t, HTTPRequestDuration, labels)

	ObserveHistogramVec(HTTPRequestDuration, labels, 0.05)
	ObserveHistogramVec(HTTPRequestDuration, labels, 0.1)
	ObserveHistogramVec(HTTPRequestDuration, map[string]string{"method": "GET", "path": "/api/v1/books/sum"}, 0.2)

	assert.Equal(t, before+2, getHistogramVecCount(t, HTTPRequestDuration, labels))
}

// 辅助函数：获取CounterVec值
func getCounterVecValue(t *testing.T, counterVec *prometheus.CounterVec, labels map[string]string) float64 {
	var metric dto.Metric
	counter := counterVec.With(labels)
	require.NoError(t, counter.Write(&metric), "读取CounterVec值失败")
	return metric.Counter.GetValue()
}

// 辅助函数：获取Gauge值
func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	var metric dto.Metric
	require.NoError(t, gauge.Write(&metric), "读取Gauge值失败")
	return metric.Gauge.GetValue()
}

// 辅助函数：获取HistogramVec观测次数
func getHistogramVecCount(t *testing.T, histogramVec *prometheus.HistogramVec, labels map[string]string) uint64 {
	var metric dto.Metric
	histogram := histogramVec.With(labels)
	require.NoError(t, histogram.(prometheus.Histogram).Write(&metric), "读取HistogramVec值失败")
	return metric.Histogram.GetSampleCount()
}
