package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	Create(ctx context.Context, userID string, input domain.CreateEventInput) (*domain.Event, error)
	ListByInitiator(ctx context.Context, userID string, page domain.Page) ([]*domain.Event, error)
	GetByInitiator(ctx context.Context, userID, eventID string) (*domain.Event, error)
	UpdateByInitiator(ctx context.Context, userID, eventID string, patch domain.EventPatch) (*domain.Event, error)
	UpdateByAdmin(ctx context.Context, eventID string, patch domain.EventPatch) (*domain.Event, error)
	AdminSearch(ctx context.Context, f domain.AdminEventFilter, page domain.Page) ([]*domain.Event, error)
	PublicSearch(ctx context.Context, f domain.PublicEventFilter, page domain.Page, uri, ip string) ([]*domain.Event, error)
	GetPublished(ctx context.Context, eventID, uri, ip string) (*domain.Event, error)
}

type RequestSvc interface {
	Create(ctx context.Context, requesterID, eventID string) (*domain.Request, error)
	DecideBatch(ctx context.Context, initiatorID, eventID string, requestIDs []string, status domain.RequestStatus) (*domain.DecisionResult, error)
	Cancel(ctx context.Context, userID, requestID string) (*domain.Request, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Request, error)
	ListForEvent(ctx context.Context, initiatorID, eventID string) ([]*domain.Request, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context, ids []string, page domain.Page) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}

type CategorySvc interface {
	Create(ctx context.Context, name string) (*domain.Category, error)
	Rename(ctx context.Context, id, name string) (*domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context, page domain.Page) ([]*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type CompilationSvc interface {
	Create(ctx context.Context, input domain.CreateCompilationInput) (*domain.Compilation, error)
	Update(ctx context.Context, id string, patch domain.CompilationPatch) (*domain.Compilation, error)
	GetByID(ctx context.Context, id string) (*domain.Compilation, error)
	List(ctx context.Context, pinned *bool, page domain.Page) ([]*domain.Compilation, error)
	Delete(ctx context.Context, id string) error
}

type CommentSvc interface {
	Create(ctx context.Context, userID, eventID, message string) (*domain.Comment, error)
	Update(ctx context.Context, userID, commentID, message string) (*domain.Comment, error)
	DeleteByAuthor(ctx context.Context, userID, commentID string) error
	DeleteByAdmin(ctx context.Context, commentID string) error
	GetByID(ctx context.Context, commentID string) (*domain.Comment, error)
	List(ctx context.Context, f domain.CommentFilter, page domain.Page) ([]*domain.Comment, error)
}

type Handler struct {
	eventService       EventSvc
	requestService     RequestSvc
	userService        UserSvc
	categoryService    CategorySvc
	compilationService CompilationSvc
	commentService     CommentSvc
}

func NewHandler(
	eventService EventSvc,
	requestService RequestSvc,
	userService UserSvc,
	categoryService CategorySvc,
	compilationService CompilationSvc,
	commentService CommentSvc,
) *Handler {
	return &Handler{
		eventService:       eventService,
		requestService:     requestService,
		userService:        userService,
		categoryService:    categoryService,
		compilationService: compilationService,
		commentService:     commentService,
	}
}

func handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func badRequest(c *ginext.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
}

// pathID reads a uuid path parameter and answers 400 itself when it is malformed.
func pathID(c *ginext.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return "", false
	}
	return id, true
}

func pageParams(c *ginext.Context) (domain.Page, error) {
	from, err := queryInt(c, "from", domain.DefaultPageFrom)
	if err != nil {
		return domain.Page{}, err
	}
	size, err := queryInt(c, "size", domain.DefaultPageSize)
	if err != nil {
		return domain.Page{}, err
	}
	return domain.NewPage(from, size)
}

func queryInt(c *ginext.Context, key string, def int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError("%s must be an integer, got %q", key, raw)
	}
	return v, nil
}

func queryBool(c *ginext.Context, key string) (*bool, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domain.NewValidationError("%s must be a boolean, got %q", key, raw)
	}
	return &v, nil
}

func queryTime(c *ginext.Context, key string) (*time.Time, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(domain.DateTimeLayout, raw, time.UTC)
	if err != nil {
		return nil, domain.NewValidationError("%s must be in format %q, got %q", key, domain.DateTimeLayout, raw)
	}
	return &t, nil
}

// queryList accepts both repeated keys and comma separated values.
func queryList(c *ginext.Context, key string) []string {
	var res []string
	for _, v := range c.QueryArray(key) {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				res = append(res, part)
			}
		}
	}
	return res
}

func queryIDs(c *ginext.Context, key string) ([]string, error) {
	ids := queryList(c, key)
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return nil, domain.NewValidationError("%s contains invalid id %q", key, id)
		}
	}
	return ids, nil
}
