package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookrec/pkg/errors"
	"github.com/xiebiao/bookrec/pkg/response"
)

const userTokenKey = "user_token"

// UserToken 提取用户token(不做认证)
// 设计说明：
// 1. token由外部登录系统签发，这里只负责读取并放入Context
// 2. 读取顺序：Authorization: Bearer <token> → X-User-Token → ?token=
// 3. 没有token时继续处理（作为匿名用户）
func UserToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			c.Set(userTokenKey, token)
		}
		c.Next()
	}
}

// RequireToken 要求携带token
// 使用方式：
//
//	book.POST("/view", middleware.RequireToken(), bookHandler.RecordView)
func RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserToken(c) == "" {
			response.Error(c, apperrors.ErrTokenRequired)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserToken 从Context获取用户token，未携带时返回空字符串
func GetUserToken(c *gin.Context) string {
	if token, exists := c.Get(userTokenKey); exists {
		if t, ok := token.(string); ok {
			return t
		}
	}
	return ""
}

func extractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			if t := strings.TrimSpace(parts[1]); t != "" {
				return t
			}
		}
	}
	if t := strings.TrimSpace(c.GetHeader("X-User-Token")); t != "" {
		return t
	}
	return strings.TrimSpace(c.Query("token"))
}
