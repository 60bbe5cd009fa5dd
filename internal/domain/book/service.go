package book

import (
	"context"
	"errors"
	"strings"

	"github.com/xiebiao/bookrec/pkg/metrics"
)

// 业务常量
const (
	// DefaultPopularQuantity 热门图书默认数量
	DefaultPopularQuantity = 10

	// 推荐回退:取热门前30本,跳过前10本(前10本已在首页热门区展示)
	fallbackPopularQuantity = 30
	fallbackSkip            = 10

	// 相关图书(占位实现):取热门前100本,跳过前90本
	relevantPopularQuantity = 100
	relevantSkip            = 90
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装默认值、推荐回退、搜索模式展开等业务规则
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// GetPopularBooks 热门图书(按评分人数降序)
	// quantity<=0时使用默认值10
	GetPopularBooks(ctx context.Context, quantity int) ([]*Book, error)

	// GetRecommendedBooks 用户的推荐图书
	// 用户不存在或暂无推荐时,回退为热门前30本中的第11-30本
	GetRecommendedBooks(ctx context.Context, userToken string) ([]*Book, error)

	// SearchBooks 按书名或作者模糊搜索,page从0开始
	SearchBooks(ctx context.Context, word string, page, size int) ([]*Book, error)

	// GetBookDetail 图书详情
	GetBookDetail(ctx context.Context, bookUID string) (*Book, error)

	// GetRelevantBooks 相关图书
	// 目前没有相关性数据,固定返回热门前100本中的第91-100本
	GetRelevantBooks(ctx context.Context, bookUID string) ([]*Book, error)

	// GetBooksByLabel 标签下的图书,page从0开始
	// order不在白名单内时按doubanRateSum排序;标签不存在返回空列表
	GetBooksByLabel(ctx context.Context, labelName string, page, size int, order string) ([]*Book, error)

	// IncBookViewCount 浏览次数+1,token无对应用户时静默忽略
	IncBookViewCount(ctx context.Context, userToken, bookUID string) error

	// GetBookSum 图书总数
	GetBookSum(ctx context.Context) (int64, error)

	// GetBookSumOfLabel 标签下的图书数量(读取标签的useCount)
	GetBookSumOfLabel(ctx context.Context, labelName string) (int64, error)

	// GetBookLabels 图书的标签名列表,没有标签时返回空切片
	GetBookLabels(ctx context.Context, bookUID string) ([]string, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetPopularBooks 热门图书
func (s *service) GetPopularBooks(ctx context.Context, quantity int) ([]*Book, error) {
	if quantity <= 0 {
		quantity = DefaultPopularQuantity
	}
	return s.repo.ListPopular(ctx, quantity)
}

// GetRecommendedBooks 推荐图书
func (s *service) GetRecommendedBooks(ctx context.Context, userToken string) ([]*Book, error) {
	books, err := s.repo.ListRecommended(ctx, userToken)
	switch {
	case err == nil:
		return books, nil
	case errors.Is(err, ErrUserNotFound):
		metrics.RecordRecommendationFallback("user_not_found")
	case errors.Is(err, ErrNoRecommendation):
		metrics.RecordRecommendationFallback("no_recommendation")
	default:
		return nil, err
	}

	popular, err := s.repo.ListPopular(ctx, fallbackPopularQuantity)
	if err != nil {
		return nil, err
	}
	return skip(popular, fallbackSkip), nil
}

// SearchBooks 模糊搜索
func (s *service) SearchBooks(ctx context.Context, word string, page, size int) ([]*Book, error) {
	if page < 0 || size < 0 {
		return nil, ErrInvalidPagination
	}
	if size == 0 {
		return []*Book{}, nil
	}
	return s.repo.Search(ctx, ExpandSearchPattern(word), page*size, size)
}

// GetBookDetail 图书详情
func (s *service) GetBookDetail(ctx context.Context, bookUID string) (*Book, error) {
	return s.repo.FindDetail(ctx, bookUID)
}

// GetRelevantBooks 相关图书(占位实现,bookUID暂未使用)
func (s *service) GetRelevantBooks(ctx context.Context, bookUID string) ([]*Book, error) {
	popular, err := s.repo.ListPopular(ctx, relevantPopularQuantity)
	if err != nil {
		return nil, err
	}
	return skip(popular, relevantSkip), nil
}

// GetBooksByLabel 标签下的图书
func (s *service) GetBooksByLabel(ctx context.Context, labelName string, page, size int, order string) ([]*Book, error) {
	if page < 0 || size < 0 {
		return nil, ErrInvalidPagination
	}
	if size == 0 {
		return []*Book{}, nil
	}
	return s.repo.ListByLabel(ctx, labelName, ParseSortColumn(order), page*size, size)
}

// IncBookViewCount 浏览次数+1
func (s *service) IncBookViewCount(ctx context.Context, userToken, bookUID string) error {
	err := s.repo.IncViewCount(ctx, userToken, bookUID)
	if errors.Is(err, ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	metrics.RecordBookView()
	return nil
}

// GetBookSum 图书总数
func (s *service) GetBookSum(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// GetBookSumOfLabel 标签下的图书数量
func (s *service) GetBookSumOfLabel(ctx context.Context, labelName string) (int64, error) {
	return s.repo.LabelUseCount(ctx, labelName)
}

// GetBookLabels 图书的标签
func (s *service) GetBookLabels(ctx context.Context, bookUID string) ([]string, error) {
	labels, err := s.repo.ListLabelNames(ctx, bookUID)
	if err != nil {
		return nil, err
	}
	if labels == nil {
		labels = []string{}
	}
	return labels, nil
}

// =========================================
// 辅助函数
// =========================================

// ExpandSearchPattern 把搜索词展开为LIKE模式
// 每个字符之间插入%,按字符(rune)切分,中文不会被截断:
// "abc" → "%a%b%c%"
func ExpandSearchPattern(word string) string {
	runes := []rune(word)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return "%" + strings.Join(parts, "%") + "%"
}

// skip 跳过前n个元素,不足n个时返回空切片
func skip(books []*Book, n int) []*Book {
	if len(books) <= n {
		return []*Book{}
	}
	return books[n:]
}
