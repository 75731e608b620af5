package handler

import (
	"context"
	"net/http"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type HitSvc interface {
	Save(ctx context.Context, hit domain.Hit) (*domain.Hit, error)
	Stats(ctx context.Context, q domain.StatsQuery) ([]domain.ViewStats, error)
}

// StatsHandler serves the statistics binary.
type StatsHandler struct {
	hitService HitSvc
}

func NewStatsHandler(hitService HitSvc) *StatsHandler {
	return &StatsHandler{hitService: hitService}
}

func (h *StatsHandler) SaveHit(c *ginext.Context) {
	var req dto.HitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if _, err := h.hitService.Save(c.Request.Context(), req.ToDomain()); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

func (h *StatsHandler) GetStats(c *ginext.Context) {
	var q domain.StatsQuery

	start, err := queryTime(c, "start")
	if err != nil {
		handleError(c, err)
		return
	}
	end, err := queryTime(c, "end")
	if err != nil {
		handleError(c, err)
		return
	}
	if start != nil {
		q.Start = *start
	}
	if end != nil {
		q.End = *end
	}
	unique, err := queryBool(c, "unique")
	if err != nil {
		handleError(c, err)
		return
	}
	q.Unique = unique != nil && *unique
	q.URIs = queryList(c, "uris")

	stats, err := h.hitService.Stats(c.Request.Context(), q)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToViewStatsResponses(stats))
}
