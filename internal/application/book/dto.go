package book

import (
	"github.com/xiebiao/bookrec/internal/domain/book"
)

// BookListItem 列表项DTO(只含身份字段)
type BookListItem struct {
	UID    string `json:"uid"`
	Name   string `json:"name"`
	ImgURL string `json:"img_url"`
}

// BookDetailItem 详情DTO
type BookDetailItem struct {
	UID               string  `json:"uid"`
	Name              string  `json:"name"`
	ImgURL            string  `json:"img_url"`
	ISBN              string  `json:"isbn"`
	Author            string  `json:"author"`
	Press             string  `json:"press"`
	DoubanPoint       float64 `json:"douban_point"`
	DoubanRateSum     int64   `json:"douban_rate_sum"`
	BookDescription   string  `json:"book_description"`
	AuthorDescription string  `json:"author_description"`
	SysuLibURL        string  `json:"sysu_lib_url"`
}

// ToListItems 领域实体 → 列表DTO,永远返回非nil切片(JSON输出[]而不是null)
func ToListItems(books []*book.Book) []BookListItem {
	items := make([]BookListItem, len(books))
	for i, b := range books {
		items[i] = BookListItem{
			UID:    b.UID,
			Name:   b.Name,
			ImgURL: b.ImgURL,
		}
	}
	return items
}

// ToDetailItem 领域实体 → 详情DTO
func ToDetailItem(b *book.Book) BookDetailItem {
	return BookDetailItem{
		UID:               b.UID,
		Name:              b.Name,
		ImgURL:            b.ImgURL,
		ISBN:              b.ISBN,
		Author:            b.Author,
		Press:             b.Press,
		DoubanPoint:       b.DoubanPoint,
		DoubanRateSum:     b.DoubanRateSum,
		BookDescription:   b.BookDescription,
		AuthorDescription: b.AuthorDescription,
		SysuLibURL:        b.SysuLibURL,
	}
}
