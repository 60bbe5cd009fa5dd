package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/xiebiao/bookrec/pkg/tracing"
)

const (
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"

	// slowRequestThreshold 超过该耗时的请求记为warn
	slowRequestThreshold = 3 * time.Second
)

// Logger 请求日志中间件
//
// 1. 生成请求ID（客户端已带X-Request-ID时沿用）
// 2. 构造带request_id的请求级Logger，放入request context，下游用zerolog.Ctx(ctx)读取
// 3. 请求结束后输出一条结构化访问日志
//
// 不记录token、请求体等敏感或体积大的信息
func Logger(base *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		reqLogger := base.With().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Logger()
		if traceID := tracing.ExtractTraceID(c.Request.Context()); traceID != "" {
			reqLogger = reqLogger.With().
				Str("trace_id", traceID).
				Str("span_id", tracing.ExtractSpanID(c.Request.Context())).
				Logger()
		}
		c.Request = c.Request.WithContext(reqLogger.WithContext(c.Request.Context()))

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		event := reqLogger.Info()
		switch {
		case status >= 500:
			event = reqLogger.Error()
		case status >= 400 || latency > slowRequestThreshold:
			event = reqLogger.Warn()
		}

		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}

		event.
			Str("path", c.Request.URL.Path).
			Str("route", c.FullPath()).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

// GetRequestID 从Context获取请求ID
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
