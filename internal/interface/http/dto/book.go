package dto

import (
	appbook "github.com/xiebiao/bookrec/internal/application/book"
)

// PopularBooksRequest 热门图书请求
type PopularBooksRequest struct {
	Quantity int `form:"quantity" binding:"omitempty,min=0,max=100" example:"10"` // 数量,不传默认10
}

// SearchBooksRequest 搜索请求
// 说明:HTTP层页码从1开始
type SearchBooksRequest struct {
	Word     string `form:"word" binding:"max=64" example:"白夜行"` // 为空时匹配全部图书
	Page     int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
}

// LabelBooksRequest 标签图书列表请求
type LabelBooksRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Order    string `form:"order" example:"doubanRateSum"` // 不在白名单内时按doubanRateSum排序
}

// BookURI 路径参数 /book/:uid
type BookURI struct {
	UID string `uri:"uid" binding:"required"`
}

// LabelURI 路径参数 /labels/:name
type LabelURI struct {
	Name string `uri:"name" binding:"required"`
}

// BookListResponse 图书列表响应
type BookListResponse struct {
	List []appbook.BookListItem `json:"list"`
}

// SearchBooksResponse 搜索响应
type SearchBooksResponse struct {
	List     []appbook.BookListItem `json:"list"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
}

// SumResponse 数量响应
type SumResponse struct {
	Sum int64 `json:"sum"`
}

// BookLabelsResponse 图书标签响应
type BookLabelsResponse struct {
	UID    string   `json:"uid"`
	Labels []string `json:"labels"`
}
