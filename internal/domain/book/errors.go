package book

import (
	apperrors "github.com/xiebiao/bookrec/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrLabelNotFound 标签不存在
	ErrLabelNotFound = apperrors.New(apperrors.ErrCodeLabelNotFound, "标签不存在")

	// ErrUserNotFound 用户不存在(token无对应用户)
	ErrUserNotFound = apperrors.New(apperrors.ErrCodeUserNotFound, "用户不存在")

	// ErrNoRecommendation 用户暂无推荐结果
	ErrNoRecommendation = apperrors.New(apperrors.ErrCodeNoRecommendation, "暂无推荐结果")

	// ErrInvalidPagination 分页参数不合法
	ErrInvalidPagination = apperrors.New(apperrors.ErrCodeInvalidParams, "分页参数不能为负数")
)
