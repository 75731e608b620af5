package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateComment(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	eventID := c.Query("eventId")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid eventId"})
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), userID, eventID, req.Message)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

func (h *Handler) UpdateComment(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), userID, commentID, req.Message)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

func (h *Handler) DeleteOwnComment(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	if err := h.commentService.DeleteByAuthor(c.Request.Context(), userID, commentID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListUserComments(c *ginext.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	h.listComments(c, domain.CommentFilter{AuthorID: userID})
}

func (h *Handler) ListEventComments(c *ginext.Context) {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}
	h.listComments(c, domain.CommentFilter{EventID: eventID})
}

func (h *Handler) GetComment(c *ginext.Context) {
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	comment, err := h.commentService.GetByID(c.Request.Context(), commentID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

func (h *Handler) ListCommentsAdmin(c *ginext.Context) {
	h.listComments(c, domain.CommentFilter{})
}

func (h *Handler) DeleteCommentAdmin(c *ginext.Context) {
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	if err := h.commentService.DeleteByAdmin(c.Request.Context(), commentID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// listComments completes f with the date range and page from the query.
func (h *Handler) listComments(c *ginext.Context, f domain.CommentFilter) {
	start, err := queryTime(c, "rangeStart")
	if err != nil {
		handleError(c, err)
		return
	}
	end, err := queryTime(c, "rangeEnd")
	if err != nil {
		handleError(c, err)
		return
	}
	if start != nil {
		f.Start = *start
	}
	if end != nil {
		f.End = *end
	}
	page, err := pageParams(c)
	if err != nil {
		handleError(c, err)
		return
	}

	comments, err := h.commentService.List(c.Request.Context(), f, page)
	if err != nil {
		handleError(c, err)
		return
	}

	resp := make([]dto.CommentResponse, 0, len(comments))
	for _, cm := range comments {
		resp = append(resp, dto.ToCommentResponse(cm))
	}

	c.JSON(http.StatusOK, resp)
}
