// Package booktest 提供book.Service的测试替身
package booktest

import (
	"context"
	"fmt"
	"sync"

	"github.com/xiebiao/bookrec/internal/domain/book"
)

// Service 可配置的book.Service替身
// 未设置的Func返回零值;Calls记录每个方法的调用次数
type Service struct {
	PopularFunc     func(ctx context.Context, quantity int) ([]*book.Book, error)
	RecommendedFunc func(ctx context.Context, userToken string) ([]*book.Book, error)
	SearchFunc      func(ctx context.Context, word string, page, size int) ([]*book.Book, error)
	DetailFunc      func(ctx context.Context, bookUID string) (*book.Book, error)
	RelevantFunc    func(ctx context.Context, bookUID string) ([]*book.Book, error)
	ByLabelFunc     func(ctx context.Context, labelName string, page, size int, order string) ([]*book.Book, error)
	IncViewFunc     func(ctx context.Context, userToken, bookUID string) error
	SumFunc         func(ctx context.Context) (int64, error)
	SumOfLabelFunc  func(ctx context.Context, labelName string) (int64, error)
	LabelsFunc      func(ctx context.Context, bookUID string) ([]string, error)

	mu    sync.Mutex
	calls map[string]int
}

var _ book.Service = (*Service)(nil)

// Calls 返回方法被调用的次数
func (s *Service) Calls(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

func (s *Service) record(method string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = map[string]int{}
	}
	s.calls[method]++
}

func (s *Service) GetPopularBooks(ctx context.Context, quantity int) ([]*book.Book, error) {
	s.record("GetPopularBooks")
	if s.PopularFunc == nil {
		return []*book.Book{}, nil
	}
	return s.PopularFunc(ctx, quantity)
}

func (s *Service) GetRecommendedBooks(ctx context.Context, userToken string) ([]*book.Book, error) {
	s.record("GetRecommendedBooks")
	if s.RecommendedFunc == nil {
		return []*book.Book{}, nil
	}
	return s.RecommendedFunc(ctx, userToken)
}

func (s *Service) SearchBooks(ctx context.Context, word string, page, size int) ([]*book.Book, error) {
	s.record("SearchBooks")
	if s.SearchFunc == nil {
		return []*book.Book{}, nil
	}
	return s.SearchFunc(ctx, word, page, size)
}

func (s *Service) GetBookDetail(ctx context.Context, bookUID string) (*book.Book, error) {
	s.record("GetBookDetail")
	if s.DetailFunc == nil {
		return nil, book.ErrBookNotFound
	}
	return s.DetailFunc(ctx, bookUID)
}

func (s *Service) GetRelevantBooks(ctx context.Context, bookUID string) ([]*book.Book, error) {
	s.record("GetRelevantBooks")
	if s.RelevantFunc == nil {
		return []*book.Book{}, nil
	}
	return s.RelevantFunc(ctx, bookUID)
}

func (s *Service) GetBooksByLabel(ctx context.Context, labelName string, page, size int, order string) ([]*book.Book, error) {
	s.record("GetBooksByLabel")
	if s.ByLabelFunc == nil {
		return []*book.Book{}, nil
	}
	return s.ByLabelFunc(ctx, labelName, page, size, order)
}

func (s *Service) IncBookViewCount(ctx context.Context, userToken, bookUID string) error {
	s.record("IncBookViewCount")
	if s.IncViewFunc == nil {
		return nil
	}
	return s.IncViewFunc(ctx, userToken, bookUID)
}

func (s *Service) GetBookSum(ctx context.Context) (int64, error) {
	s.record("GetBookSum")
	if s.SumFunc == nil {
		return 0, nil
	}
	return s.SumFunc(ctx)
}

func (s *Service) GetBookSumOfLabel(ctx context.Context, labelName string) (int64, error) {
	s.record("GetBookSumOfLabel")
	if s.SumOfLabelFunc == nil {
		return 0, book.ErrLabelNotFound
	}
	return s.SumOfLabelFunc(ctx, labelName)
}

func (s *Service) GetBookLabels(ctx context.Context, bookUID string) ([]string, error) {
	s.record("GetBookLabels")
	if s.LabelsFunc == nil {
		return []string{}, nil
	}
	return s.LabelsFunc(ctx, bookUID)
}

// Books 生成n本测试图书,uid为prefix+序号
func Books(prefix string, n int) []*book.Book {
	books := make([]*book.Book, n)
	for i := range books {
		uid := fmt.Sprintf("%s%d", prefix, i)
		books[i] = book.NewBook(uid, "name-"+uid, "img-"+uid)
	}
	return books
}
