package book

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookrec/internal/domain/book"
	"github.com/xiebiao/bookrec/internal/domain/book/booktest"
)

func newPageService() *booktest.Service {
	return &booktest.Service{
		DetailFunc: func(_ context.Context, uid string) (*book.Book, error) {
			return book.NewBookWithDetail(uid, "白夜行", "img", book.Detail{Author: "东野圭吾", DoubanPoint: 9.1}), nil
		},
		LabelsFunc: func(context.Context, string) ([]string, error) {
			return []string{"小说", "推理"}, nil
		},
		RelevantFunc: func(context.Context, string) ([]*book.Book, error) {
			return booktest.Books("r", 10), nil
		},
	}
}

func TestBookPageUseCase_Execute(t *testing.T) {
	svc := newPageService()
	uc := NewBookPageUseCase(svc)

	resp, err := uc.Execute(context.Background(), BookPageRequest{BookUID: "b1"})
	require.NoError(t, err)

	assert.Equal(t, "b1", resp.Book.UID)
	assert.Equal(t, "东野圭吾", resp.Book.Author)
	assert.Equal(t, 9.1, resp.Book.DoubanPoint)
	assert.Equal(t, []string{"小说", "推理"}, resp.Labels)
	assert.Len(t, resp.Relevant, 10)

	// 未携带token不记录浏览
	assert.Zero(t, svc.Calls("IncBookViewCount"))
}

func TestBookPageUseCase_RecordsView(t *testing.T) {
	svc := newPageService()
	var gotToken, gotUID string
	svc.IncViewFunc = func(_ context.Context, token, uid string) error {
		gotToken, gotUID = token, uid
		return nil
	}
	uc := NewBookPageUseCase(svc)

	_, err := uc.Execute(context.Background(), BookPageRequest{BookUID: "b1", UserToken: "tok"})
	require.NoError(t, err)
	assert.Equal(t, "tok", gotToken)
	assert.Equal(t, "b1", gotUID)

	t.Run("记录失败不影响返回", func(t *testing.T) {
		svc.IncViewFunc = func(context.Context, string, string) error {
			return errors.New("deadlock")
		}
		resp, err := uc.Execute(context.Background(), BookPageRequest{BookUID: "b1", UserToken: "tok"})
		require.NoError(t, err)
		assert.Equal(t, "b1", resp.Book.UID)
	})
}

func TestBookPageUseCase_NotFound(t *testing.T) {
	svc := &booktest.Service{}
	uc := NewBookPageUseCase(svc)

	_, err := uc.Execute(context.Background(), BookPageRequest{BookUID: "missing", UserToken: "tok"})
	assert.ErrorIs(t, err, book.ErrBookNotFound)
	assert.Zero(t, svc.Calls("GetBookLabels"))
	assert.Zero(t, svc.Calls("IncBookViewCount"))
}

func TestToListItems_NeverNil(t *testing.T) {
	assert.NotNil(t, ToListItems(nil))
	assert.Empty(t, ToListItems(nil))
}
