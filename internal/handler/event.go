package handler

import (
	"net/http"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// Initiator endpoints

func (h *Handler) CreateEvent(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventFullResponse(event))
}

func (h *Handler) ListUserEvents(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	page, err := pageParams(c)
	if err != nil {
		handleError(c, err)
		return
	}

	events, err := h.eventService.ListByInitiator(c.Request.Context(), userID, page)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventShortResponses(events))
}

func (h *Handler) GetUserEvent(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	event, err := h.eventService.GetByInitiator(c.Request.Context(), userID, eventID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventFullResponse(event))
}

func (h *Handler) UpdateUserEvent(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	patch, ok := bindEventPatch(c)
	if !ok {
		return
	}

	event, err := h.eventService.UpdateByInitiator(c.Request.Context(), userID, eventID, patch)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventFullResponse(event))
}

// Admin endpoints

func (h *Handler) SearchEventsAdmin(c *ginext.Context) {
	var (
		f   domain.AdminEventFilter
		err error
	)

	if f.Users, err = queryIDs(c, "users"); err != nil {
		handleError(c, err)
		return
	}
	if f.Categories, err = queryIDs(c, "categories"); err != nil {
		handleError(c, err)
		return
	}
	for _, s := range queryList(c, "states") {
		st, err := domain.ParseState(s)
		if err != nil {
			handleError(c, err)
			return
		}
		f.States = append(f.States, st)
	}
	if f.Start, err = queryTime(c, "rangeStart"); err != nil {
		handleError(c, err)
		return
	}
	if f.End, err = queryTime(c, "rangeEnd"); err != nil {
		handleError(c, err)
		return
	}
	page, err := pageParams(c)
	if err != nil {
		handleError(c, err)
		return
	}

	events, err := h.eventService.AdminSearch(c.Request.Context(), f, page)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventFullResponses(events))
}

func (h *Handler) UpdateEventAdmin(c *ginext.Context) {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	patch, ok := bindEventPatch(c)
	if !ok {
		return
	}

	event, err := h.eventService.UpdateByAdmin(c.Request.Context(), eventID, patch)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventFullResponse(event))
}

// Public endpoints

func (h *Handler) SearchEventsPublic(c *ginext.Context) {
	var (
		f   domain.PublicEventFilter
		err error
	)

	f.Text = c.Query("text")
	if f.Categories, err = queryIDs(c, "categories"); err != nil {
		handleError(c, err)
		return
	}
	if f.Paid, err = queryBool(c, "paid"); err != nil {
		handleError(c, err)
		return
	}
	if f.Start, err = queryTime(c, "rangeStart"); err != nil {
		handleError(c, err)
		return
	}
	if f.End, err = queryTime(c, "rangeEnd"); err != nil {
		handleError(c, err)
		return
	}
	onlyAvailable, err := queryBool(c, "onlyAvailable")
	if err != nil {
		handleError(c, err)
		return
	}
	f.OnlyAvailable = onlyAvailable != nil && *onlyAvailable
	if f.Sort, err = domain.ParseEventSort(c.Query("sort")); err != nil {
		handleError(c, err)
		return
	}
	page, err := pageParams(c)
	if err != nil {
		handleError(c, err)
		return
	}

	events, err := h.eventService.PublicSearch(c.Request.Context(), f, page, c.Request.URL.Path, c.ClientIP())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventShortResponses(events))
}

func (h *Handler) GetEventPublic(c *ginext.Context) {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	event, err := h.eventService.GetPublished(c.Request.Context(), eventID, c.Request.URL.Path, c.ClientIP())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventFullResponse(event))
}

func bindEventPatch(c *ginext.Context) (domain.EventPatch, bool) {
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return domain.EventPatch{}, false
	}

	patch, err := req.ToPatch()
	if err != nil {
		handleError(c, err)
		return domain.EventPatch{}, false
	}

	return patch, true
}
