package book

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/xiebiao/bookrec/internal/domain/book"
)

// BookPageUseCase 图书详情页用例
// 设计说明:
// 1. 详情页 = 图书详情 + 标签 + 相关图书
// 2. 带token访问时记录一次浏览,记录失败只写日志,不影响页面返回
type BookPageUseCase struct {
	bookService book.Service
}

// NewBookPageUseCase 创建详情页用例
func NewBookPageUseCase(bookService book.Service) *BookPageUseCase {
	return &BookPageUseCase{
		bookService: bookService,
	}
}

// BookPageRequest 详情页请求DTO
type BookPageRequest struct {
	BookUID   string // 图书uid
	UserToken string // 用户token(可为空)
}

// BookPageResponse 详情页响应DTO
type BookPageResponse struct {
	Book     BookDetailItem `json:"book"`
	Labels   []string       `json:"labels"`
	Relevant []BookListItem `json:"relevant"`
}

// Execute 执行详情页用例
func (uc *BookPageUseCase) Execute(ctx context.Context, req BookPageRequest) (*BookPageResponse, error) {
	// 1. 图书详情(不存在直接返回ErrBookNotFound)
	b, err := uc.bookService.GetBookDetail(ctx, req.BookUID)
	if err != nil {
		return nil, err
	}

	// 2. 标签
	labels, err := uc.bookService.GetBookLabels(ctx, req.BookUID)
	if err != nil {
		return nil, err
	}

	// 3. 相关图书
	relevant, err := uc.bookService.GetRelevantBooks(ctx, req.BookUID)
	if err != nil {
		return nil, err
	}

	// 4. 记录浏览
	if req.UserToken != "" {
		if err := uc.bookService.IncBookViewCount(ctx, req.UserToken, req.BookUID); err != nil {
			zerolog.Ctx(ctx).Warn().
				Err(err).
				Str("book_uid", req.BookUID).
				Msg("记录浏览次数失败")
		}
	}

	return &BookPageResponse{
		Book:     ToDetailItem(b),
		Labels:   labels,
		Relevant: ToListItems(relevant),
	}, nil
}
