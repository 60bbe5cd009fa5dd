package book

import (
	"context"
	"errors"

	"github.com/xiebiao/bookrec/internal/domain/book"
	"github.com/xiebiao/bookrec/pkg/response"
)

// 分页默认值
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// LabelBooksUseCase 标签图书列表用例
// 设计说明:
// 1. 对外页码从1开始,领域服务的页码从0开始,在这里转换
// 2. 总数读取标签的useCount(冗余计数,不做COUNT)
// 3. 标签不存在时返回空列表且total=0,不报错
type LabelBooksUseCase struct {
	bookService book.Service
}

// NewLabelBooksUseCase 创建标签图书列表用例
func NewLabelBooksUseCase(bookService book.Service) *LabelBooksUseCase {
	return &LabelBooksUseCase{
		bookService: bookService,
	}
}

// LabelBooksRequest 标签列表请求DTO
type LabelBooksRequest struct {
	Label    string // 标签名
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	Order    string // 排序字段(目前只支持doubanRateSum)
}

// LabelBooksResponse 标签列表响应DTO
type LabelBooksResponse struct {
	Label string         `json:"label"`
	List  []BookListItem `json:"list"`
	response.PageMeta
}

// Execute 执行标签列表用例
// 学习要点:
// 1. 参数默认值处理(page默认1, pageSize默认20)
// 2. 参数范围限制(pageSize最大100)
func (uc *LabelBooksUseCase) Execute(ctx context.Context, req LabelBooksRequest) (*LabelBooksResponse, error) {
	// 1. 参数默认值与范围限制
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = DefaultPageSize
	}
	if req.PageSize > MaxPageSize {
		req.PageSize = MaxPageSize
	}

	// 2. 查询当前页
	books, err := uc.bookService.GetBooksByLabel(ctx, req.Label, req.Page-1, req.PageSize, req.Order)
	if err != nil {
		return nil, err
	}

	// 3. 查询总数(标签不存在视为0)
	total, err := uc.bookService.GetBookSumOfLabel(ctx, req.Label)
	if err != nil && !errors.Is(err, book.ErrLabelNotFound) {
		return nil, err
	}

	return &LabelBooksResponse{
		Label:    req.Label,
		List:     ToListItems(books),
		PageMeta: response.NewPageMeta(total, req.Page, req.PageSize),
	}, nil
}
