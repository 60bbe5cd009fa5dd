package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookrec/internal/application/book"
	"github.com/xiebiao/bookrec/internal/domain/book"
	"github.com/xiebiao/bookrec/internal/interface/http/dto"
	"github.com/xiebiao/bookrec/pkg/response"
)

// LabelHandler 标签HTTP处理器
type LabelHandler struct {
	bookService       book.Service
	labelBooksUseCase *appbook.LabelBooksUseCase
}

// NewLabelHandler 创建标签处理器
func NewLabelHandler(bookService book.Service, labelBooksUseCase *appbook.LabelBooksUseCase) *LabelHandler {
	return &LabelHandler{
		bookService:       bookService,
		labelBooksUseCase: labelBooksUseCase,
	}
}

// LabelBooks 标签下的图书
// @Summary      标签图书列表
// @Description  分页返回某标签下的图书,按豆瓣评分人数降序;标签不存在时返回空列表
// @Tags         标签
// @Produce      json
// @Param        name      path  string true  "标签名"
// @Param        page      query int    false "页码(从1开始)"
// @Param        page_size query int    false "每页数量(默认20,最大100)"
// @Param        order     query string false "排序字段(doubanRateSum)"
// @Success      200 {object} response.Response{data=appbook.LabelBooksResponse}
// @Router       /api/v1/labels/{name}/books [get]
func (h *LabelHandler) LabelBooks(c *gin.Context) {
	var uri dto.LabelURI
	if err := c.ShouldBindUri(&uri); err != nil {
		bindFailed(c, err)
		return
	}
	var req dto.LabelBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.labelBooksUseCase.Execute(c.Request.Context(), appbook.LabelBooksRequest{
		Label:    uri.Name,
		Page:     req.Page,
		PageSize: req.PageSize,
		Order:    req.Order,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// LabelSum 标签下的图书数量
// @Summary      标签图书数量
// @Tags         标签
// @Produce      json
// @Param        name path string true "标签名"
// @Success      200 {object} response.Response{data=dto.SumResponse}
// @Failure      400 {object} response.Response "标签不存在(40404)"
// @Router       /api/v1/labels/{name}/sum [get]
func (h *LabelHandler) LabelSum(c *gin.Context) {
	var uri dto.LabelURI
	if err := c.ShouldBindUri(&uri); err != nil {
		bindFailed(c, err)
		return
	}

	sum, err := h.bookService.GetBookSumOfLabel(c.Request.Context(), uri.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.SumResponse{Sum: sum})
}
