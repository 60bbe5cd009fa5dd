package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookrec/internal/domain/book"
)

// 列表查询只取身份字段
var partialColumns = []string{"uid", "name", "imgUrl"}

// labelOrderColumns 标签列表的排序子句映射表
// ORDER BY只能来自这张表,用户输入先经过book.ParseSortColumn白名单
var labelOrderColumns = map[book.SortColumn]clause.OrderByColumn{
	book.SortByDoubanRateSum: {Column: clause.Column{Table: "book", Name: "doubanRateSum"}, Desc: true},
}

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 每个方法在一个Scope内执行,负责GORM模型到领域实体的转换
// 3. 所有用户输入都通过参数绑定传入,不拼接SQL
type bookRepository struct {
	scope *Scope
}

// NewBookRepository 创建图书仓储
func NewBookRepository(scope *Scope) book.Repository {
	return &bookRepository{scope: scope}
}

// ListPopular 热门图书
func (r *bookRepository) ListPopular(ctx context.Context, limit int) ([]*book.Book, error) {
	var models []BookModel
	err := r.scope.Read(ctx, "PopularBooks", func(tx *gorm.DB) error {
		return tx.Model(&BookModel{}).
			Select(partialColumns).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "doubanRateSum"}, Desc: true}).
			Limit(limit).
			Find(&models).Error
	})
	if err != nil {
		return nil, err
	}
	return toPartialBooks(models), nil
}

// ListRecommended 推荐图书
// 1. 通过token查用户的recBooks
// 2. 按uid列表查图书(IN查询,顺序由数据库决定)
func (r *bookRepository) ListRecommended(ctx context.Context, userToken string) ([]*book.Book, error) {
	var models []BookModel
	err := r.scope.Read(ctx, "RecommendedBooks", func(tx *gorm.DB) error {
		var user UserModel
		err := tx.Select("uid", "recBooks").Where("token = ?", userToken).Take(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return book.ErrUserNotFound
		}
		if err != nil {
			return err
		}

		uids := parseUIDList(user.RecBooks.String)
		if len(uids) == 0 {
			return book.ErrNoRecommendation
		}

		return tx.Model(&BookModel{}).
			Select(partialColumns).
			Where("uid IN ?", uids).
			Find(&models).Error
	})
	if err != nil {
		return nil, err
	}
	return toPartialBooks(models), nil
}

// Search 书名或作者模糊匹配
func (r *bookRepository) Search(ctx context.Context, pattern string, offset, limit int) ([]*book.Book, error) {
	var models []BookModel
	err := r.scope.Read(ctx, "SearchBooks", func(tx *gorm.DB) error {
		return tx.Model(&BookModel{}).
			Select(partialColumns).
			Where("name LIKE ? OR author LIKE ?", pattern, pattern).
			Offset(offset).
			Limit(limit).
			Find(&models).Error
	})
	if err != nil {
		return nil, err
	}
	return toPartialBooks(models), nil
}

// FindDetail 图书详情
func (r *bookRepository) FindDetail(ctx context.Context, uid string) (*book.Book, error) {
	var model BookModel
	err := r.scope.Read(ctx, "BookDetail", func(tx *gorm.DB) error {
		err := tx.Where("uid = ?", uid).Take(&model).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return book.ErrBookNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return toBookEntity(&model), nil
}

// ListByLabel 标签下的图书
// 1. 标签名 → 标签uid(不存在时返回空列表)
// 2. labelOfBook JOIN book,按白名单字段降序分页
func (r *bookRepository) ListByLabel(ctx context.Context, labelName string, order book.SortColumn, offset, limit int) ([]*book.Book, error) {
	orderBy, ok := labelOrderColumns[order]
	if !ok {
		orderBy = labelOrderColumns[book.DefaultSortColumn]
	}

	var models []BookModel
	err := r.scope.Read(ctx, "BooksByLabel", func(tx *gorm.DB) error {
		var label BookLabelModel
		err := tx.Select("uid").Where("name = ?", labelName).Take(&label).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		return tx.Table("labelOfBook").
			Select("book.uid, book.name, book.imgUrl").
			Joins("JOIN book ON book.uid = labelOfBook.bookUid").
			Where("labelOfBook.bookLabelUid = ?", label.UID).
			Order(orderBy).
			Offset(offset).
			Limit(limit).
			Scan(&models).Error
	})
	if err != nil {
		return nil, err
	}
	return toPartialBooks(models), nil
}

// IncViewCount 浏览次数+1
// 单条INSERT ... ON DUPLICATE KEY UPDATE viewCount = viewCount + 1,并发累加不会丢失
func (r *bookRepository) IncViewCount(ctx context.Context, userToken, bookUID string) error {
	return r.scope.Write(ctx, "IncViewCount", func(tx *gorm.DB) error {
		var user UserModel
		err := tx.Select("uid").Where("token = ?", userToken).Take(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return book.ErrUserNotFound
		}
		if err != nil {
			return err
		}

		view := UserBookViewModel{UserUID: user.UID, BookUID: bookUID, ViewCount: 1}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "userUid"}, {Name: "bookUid"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"viewCount": gorm.Expr("viewCount + ?", 1),
			}),
		}).Create(&view).Error
	})
}

// Count 图书总数
func (r *bookRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.scope.Read(ctx, "BookSum", func(tx *gorm.DB) error {
		return tx.Model(&BookModel{}).Count(&total).Error
	})
	return total, err
}

// LabelUseCount 标签的useCount
func (r *bookRepository) LabelUseCount(ctx context.Context, labelName string) (int64, error) {
	var label BookLabelModel
	err := r.scope.Read(ctx, "BookSumOfLabel", func(tx *gorm.DB) error {
		err := tx.Select("useCount").Where("name = ?", labelName).Take(&label).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return book.ErrLabelNotFound
		}
		return err
	})
	if err != nil {
		return 0, err
	}
	return label.UseCount, nil
}

// ListLabelNames 图书的标签名
func (r *bookRepository) ListLabelNames(ctx context.Context, bookUID string) ([]string, error) {
	names := make([]string, 0)
	err := r.scope.Read(ctx, "BookLabels", func(tx *gorm.DB) error {
		return tx.Table("labelOfBook").
			Joins("JOIN bookLabel ON bookLabel.uid = labelOfBook.bookLabelUid").
			Where("labelOfBook.bookUid = ?", bookUID).
			Pluck("bookLabel.name", &names).Error
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// =========================================
// 辅助函数:GORM模型 → 领域实体
// =========================================

// toPartialBooks 列表查询结果转换(只有身份字段)
func toPartialBooks(models []BookModel) []*book.Book {
	books := make([]*book.Book, 0, len(models))
	for i := range models {
		books = append(books, book.NewBook(models[i].UID, models[i].Name.String, models[i].ImgURL.String))
	}
	return books
}

// toBookEntity 详情查询结果转换,NULL列变成零值
func toBookEntity(m *BookModel) *book.Book {
	return book.NewBookWithDetail(m.UID, m.Name.String, m.ImgURL.String, book.Detail{
		ISBN:              m.ISBN.String,
		Author:            m.Author.String,
		Press:             m.Press.String,
		DoubanPoint:       m.DoubanPoint.Float64,
		DoubanRateSum:     m.DoubanRateSum.Int64,
		BookDescription:   m.BookDescription.String,
		AuthorDescription: m.AuthorDescription.String,
		SysuLibURL:        m.SysuLibURL.String,
	})
}
