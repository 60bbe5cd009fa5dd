package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/xiebiao/bookrec/pkg/errors"
	"github.com/xiebiao/bookrec/pkg/response"
)

// bindFailed 参数绑定失败的统一响应
// 校验规则不满足返回40900(带字段说明),值无法解析(如quantity=abc)返回40901
func bindFailed(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+verrs.Error())
		return
	}
	response.Error(c, apperrors.ErrBindError)
}
