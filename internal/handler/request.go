package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateRequest(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	eventID := c.Query("eventId")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid eventId"})
		return
	}

	req, err := h.requestService.Create(c.Request.Context(), userID, eventID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRequestResponse(req))
}

func (h *Handler) ListUserRequests(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	requests, err := h.requestService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestResponses(requests))
}

func (h *Handler) CancelRequest(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	requestID, ok := pathID(c, "requestId")
	if !ok {
		return
	}

	req, err := h.requestService.Cancel(c.Request.Context(), userID, requestID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestResponse(req))
}

func (h *Handler) ListEventRequests(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	requests, err := h.requestService.ListForEvent(c.Request.Context(), userID, eventID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestResponses(requests))
}

func (h *Handler) DecideRequests(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	var body dto.DecideRequestsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	status, err := domain.ParseRequestStatus(body.Status)
	if err != nil {
		handleError(c, err)
		return
	}

	res, err := h.requestService.DecideBatch(c.Request.Context(), userID, eventID, body.RequestIDs, status)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDecisionResponse(res))
}
