package handler

import (
	"net/http"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateCompilation(c *ginext.Context) {
	var req dto.CreateCompilationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	comp, err := h.compilationService.Create(c.Request.Context(), domain.CreateCompilationInput{
		Title:    req.Title,
		Pinned:   req.Pinned,
		EventIDs: req.Events,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCompilationResponse(comp))
}

func (h *Handler) UpdateCompilation(c *ginext.Context) {
	id, ok := pathID(c, "compId")
	if !ok {
		return
	}

	var req dto.UpdateCompilationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	comp, err := h.compilationService.Update(c.Request.Context(), id, domain.CompilationPatch{
		Title:    req.Title,
		Pinned:   req.Pinned,
		EventIDs: req.Events,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompilationResponse(comp))
}

func (h *Handler) DeleteCompilation(c *ginext.Context) {
	id, ok := pathID(c, "compId")
	if !ok {
		return
	}

	if err := h.compilationService.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListCompilations(c *ginext.Context) {
	pinned, err := queryBool(c, "pinned")
	if err != nil {
		handleError(c, err)
		return
	}
	page, err := pageParams(c)
	if err != nil {
		handleError(c, err)
		return
	}

	comps, err := h.compilationService.List(c.Request.Context(), pinned, page)
	if err != nil {
		handleError(c, err)
		return
	}

	resp := make([]dto.CompilationResponse, 0, len(comps))
	for _, comp := range comps {
		resp = append(resp, dto.ToCompilationResponse(comp))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetCompilation(c *ginext.Context) {
	id, ok := pathID(c, "compId")
	if !ok {
		return
	}

	comp, err := h.compilationService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompilationResponse(comp))
}
