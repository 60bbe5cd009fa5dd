package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookrec/internal/application/book"
	"github.com/xiebiao/bookrec/internal/domain/book"
	"github.com/xiebiao/bookrec/internal/interface/http/dto"
	"github.com/xiebiao/bookrec/internal/interface/http/middleware"
	"github.com/xiebiao/bookrec/pkg/response"
)

// 搜索默认每页数量
const defaultSearchPageSize = 20

// BookHandler 图书HTTP处理器
// 说明:单个操作直接调用领域服务,详情页这类组合查询走应用层用例
type BookHandler struct {
	bookService     book.Service
	bookPageUseCase *appbook.BookPageUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(bookService book.Service, bookPageUseCase *appbook.BookPageUseCase) *BookHandler {
	return &BookHandler{
		bookService:     bookService,
		bookPageUseCase: bookPageUseCase,
	}
}

// PopularBooks 热门图书
// @Summary      热门图书
// @Description  按豆瓣评分人数降序返回图书
// @Tags         图书
// @Produce      json
// @Param        quantity query int false "数量(默认10)"
// @Success      200 {object} response.Response{data=dto.BookListResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/books/popular [get]
func (h *BookHandler) PopularBooks(c *gin.Context) {
	var req dto.PopularBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}

	books, err := h.bookService.GetPopularBooks(c.Request.Context(), req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.BookListResponse{List: appbook.ToListItems(books)})
}

// RecommendedBooks 推荐图书
// @Summary      推荐图书
// @Description  返回用户的个性化推荐;未携带token、用户不存在或暂无推荐时返回热门图书第11-30本
// @Tags         图书
// @Produce      json
// @Param        token query string false "用户token(也可通过Authorization或X-User-Token传递)"
// @Success      200 {object} response.Response{data=dto.BookListResponse}
// @Router       /api/v1/books/recommended [get]
func (h *BookHandler) RecommendedBooks(c *gin.Context) {
	books, err := h.bookService.GetRecommendedBooks(c.Request.Context(), middleware.GetUserToken(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.BookListResponse{List: appbook.ToListItems(books)})
}

// SearchBooks 搜索图书
// @Summary      搜索图书
// @Description  按书名或作者模糊搜索,搜索词的字符按顺序出现即可匹配
// @Tags         图书
// @Produce      json
// @Param        word      query string false "搜索词(为空时匹配全部)"
// @Param        page      query int    false "页码(从1开始)"
// @Param        page_size query int    false "每页数量(默认20,最大100)"
// @Success      200 {object} response.Response{data=dto.SearchBooksResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/books/search [get]
func (h *BookHandler) SearchBooks(c *gin.Context) {
	var req dto.SearchBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = defaultSearchPageSize
	}

	books, err := h.bookService.SearchBooks(c.Request.Context(), req.Word, req.Page-1, req.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.SearchBooksResponse{
		List:     appbook.ToListItems(books),
		Page:     req.Page,
		PageSize: req.PageSize,
	})
}

// BookSum 图书总数
// @Summary      图书总数
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=dto.SumResponse}
// @Router       /api/v1/books/sum [get]
func (h *BookHandler) BookSum(c *gin.Context) {
	sum, err := h.bookService.GetBookSum(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.SumResponse{Sum: sum})
}

// BookPage 图书详情页
// @Summary      图书详情
// @Description  返回详情、标签和相关图书;携带token时记录一次浏览
// @Tags         图书
// @Produce      json
// @Param        uid   path  string true  "图书uid"
// @Param        token query string false "用户token"
// @Success      200 {object} response.Response{data=appbook.BookPageResponse}
// @Failure      400 {object} response.Response "图书不存在(40402)"
// @Router       /api/v1/book/{uid} [get]
func (h *BookHandler) BookPage(c *gin.Context) {
	var uri dto.BookURI
	if err := c.ShouldBindUri(&uri); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.bookPageUseCase.Execute(c.Request.Context(), appbook.BookPageRequest{
		BookUID:   uri.UID,
		UserToken: middleware.GetUserToken(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// RelevantBooks 相关图书
// @Summary      相关图书
// @Tags         图书
// @Produce      json
// @Param        uid path string true "图书uid"
// @Success      200 {object} response.Response{data=dto.BookListResponse}
// @Router       /api/v1/book/{uid}/relevant [get]
func (h *BookHandler) RelevantBooks(c *gin.Context) {
	var uri dto.BookURI
	if err := c.ShouldBindUri(&uri); err != nil {
		bindFailed(c, err)
		return
	}

	books, err := h.bookService.GetRelevantBooks(c.Request.Context(), uri.UID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.BookListResponse{List: appbook.ToListItems(books)})
}

// BookLabels 图书标签
// @Summary      图书标签
// @Tags         图书
// @Produce      json
// @Param        uid path string true "图书uid"
// @Success      200 {object} response.Response{data=dto.BookLabelsResponse}
// @Router       /api/v1/book/{uid}/labels [get]
func (h *BookHandler) BookLabels(c *gin.Context) {
	var uri dto.BookURI
	if err := c.ShouldBindUri(&uri); err != nil {
		bindFailed(c, err)
		return
	}

	labels, err := h.bookService.GetBookLabels(c.Request.Context(), uri.UID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.BookLabelsResponse{UID: uri.UID, Labels: labels})
}

// RecordView 记录浏览
// @Summary      记录浏览
// @Description  用户对图书的浏览次数+1;token无对应用户时静默忽略
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        uid path string true "图书uid"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "缺少token(40100)"
// @Router       /api/v1/book/{uid}/view [post]
func (h *BookHandler) RecordView(c *gin.Context) {
	var uri dto.BookURI
	if err := c.ShouldBindUri(&uri); err != nil {
		bindFailed(c, err)
		return
	}

	if err := h.bookService.IncBookViewCount(c.Request.Context(), middleware.GetUserToken(c), uri.UID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
