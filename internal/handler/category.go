package handler

import (
	"net/http"

	"github.com/stpnv0/ExploreWithMe/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateCategory(c *ginext.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	cat, err := h.categoryService.Create(c.Request.Context(), req.Name)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(cat))
}

func (h *Handler) RenameCategory(c *ginext.Context) {
	id, ok := pathID(c, "catId")
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	cat, err := h.categoryService.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(cat))
}

func (h *Handler) DeleteCategory(c *ginext.Context) {
	id, ok := pathID(c, "catId")
	if !ok {
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListCategories(c *ginext.Context) {
	page, err := pageParams(c)
	if err != nil {
		handleError(c, err)
		return
	}

	cats, err := h.categoryService.List(c.Request.Context(), page)
	if err != nil {
		handleError(c, err)
		return
	}

	resp := make([]dto.CategoryResponse, 0, len(cats))
	for _, cat := range cats {
		resp = append(resp, dto.ToCategoryResponse(cat))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetCategory(c *ginext.Context) {
	id, ok := pathID(c, "catId")
	if !ok {
		return
	}

	cat, err := h.categoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(cat))
}
