package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/handler/dto"
	hmocks "github.com/stpnv0/ExploreWithMe/internal/handler/mocks"
	"github.com/stpnv0/ExploreWithMe/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testMocks struct {
	events       *hmocks.MockEventSvc
	requests     *hmocks.MockRequestSvc
	users        *hmocks.MockUserSvc
	categories   *hmocks.MockCategorySvc
	compilations *hmocks.MockCompilationSvc
	comments     *hmocks.MockCommentSvc
}

func setupRouter(t *testing.T) (*testMocks, http.Handler) {
	t.Helper()
	m := &testMocks{
		events:       hmocks.NewMockEventSvc(t),
		requests:     hmocks.NewMockRequestSvc(t),
		users:        hmocks.NewMockUserSvc(t),
		categories:   hmocks.NewMockCategorySvc(t),
		compilations: hmocks.NewMockCompilationSvc(t),
		comments:     hmocks.NewMockCommentSvc(t),
	}

	h := NewHandler(m.events, m.requests, m.users, m.categories, m.compilations, m.comments)

	return m, router.InitRouter("test", h)
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	return w
}

func sampleEvent() *domain.Event {
	return &domain.Event{
		ID:         uuid.New().String(),
		Annotation: "An annotation long enough to pass",
		Title:      "Concert",
		Category:   domain.Category{ID: uuid.New().String(), Name: "music"},
		Initiator:  domain.User{ID: uuid.New().String(), Name: "alice"},
		EventDate:  time.Date(2030, 1, 2, 15, 4, 5, 0, time.UTC),
		CreatedOn:  time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC),
		State:      domain.StatePublished,
		Views:      7,
	}
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)
	userID := uuid.New().String()
	event := sampleEvent()
	event.State = domain.StatePending

	m.events.EXPECT().
		Create(mock.Anything, userID, mock.MatchedBy(func(in domain.CreateEventInput) bool {
			return in.Title == "Concert" &&
				in.EventDate.Equal(time.Date(2030, 1, 2, 15, 4, 5, 0, time.UTC)) &&
				in.Location.Lat == 55.75 && in.ParticipantLimit == nil
		})).
		Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/users/"+userID+"/events", map[string]any{
		"annotation":  "An annotation long enough to pass",
		"category":    event.Category.ID,
		"description": "A description long enough to pass",
		"eventDate":   "2030-01-02 15:04:05",
		"location":    map[string]float64{"lat": 55.75, "lon": 37.61},
		"title":       "Concert",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, event.ID, resp["id"])
	assert.Equal(t, "2030-01-02 15:04:05", resp["eventDate"])
	assert.Equal(t, "PENDING", resp["state"])
	assert.Nil(t, resp["publishedOn"])
}

func TestHandler_CreateEvent_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/users/"+uuid.New().String()+"/events", map[string]any{
		"annotation":  "An annotation long enough to pass",
		"category":    uuid.New().String(),
		"description": "A description long enough to pass",
		"eventDate":   "2030-01-02T15:04:05Z",
		"location":    map[string]float64{"lat": 1, "lon": 1},
		"title":       "Concert",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidUserID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/users/42/events", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateUserEvent_UnknownStateAction(t *testing.T) {
	_, r := setupRouter(t)

	path := "/users/" + uuid.New().String() + "/events/" + uuid.New().String()
	w := doJSON(t, r, http.MethodPatch, path, map[string]any{"stateAction": "ARCHIVE"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ARCHIVE")
}

func TestHandler_UpdateEventAdmin_AlreadyPublished(t *testing.T) {
	m, r := setupRouter(t)
	eventID := uuid.New().String()

	m.events.EXPECT().
		UpdateByAdmin(mock.Anything, eventID, mock.MatchedBy(func(p domain.EventPatch) bool {
			return p.StateAction != nil && *p.StateAction == domain.ActionPublishEvent
		})).
		Return(nil, domain.ErrAlreadyPublished)

	w := doJSON(t, r, http.MethodPatch, "/admin/events/"+eventID, map[string]any{"stateAction": "PUBLISH_EVENT"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_SearchEventsAdmin_ParsesFilter(t *testing.T) {
	m, r := setupRouter(t)
	user1, user2 := uuid.New().String(), uuid.New().String()

	m.events.EXPECT().
		AdminSearch(mock.Anything, mock.MatchedBy(func(f domain.AdminEventFilter) bool {
			return len(f.Users) == 2 && f.Users[0] == user1 && f.Users[1] == user2 &&
				len(f.States) == 2 && f.States[0] == domain.StatePending &&
				f.Start != nil && f.End == nil
		}), domain.Page{From: 20, Size: 10}).
		Return([]*domain.Event{sampleEvent()}, nil)

	w := doJSON(t, r, http.MethodGet,
		"/admin/events?users="+user1+","+user2+"&states=PENDING&states=CANCELED&rangeStart=2030-01-01%2000:00:00&from=20", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventFullResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_SearchEventsAdmin_UnknownState(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/admin/events?states=DRAFT", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "DRAFT")
}

func TestHandler_SearchEventsPublic_PassesURIAndIP(t *testing.T) {
	m, r := setupRouter(t)

	m.events.EXPECT().
		PublicSearch(mock.Anything, mock.MatchedBy(func(f domain.PublicEventFilter) bool {
			return f.Text == "jazz" && f.Sort == domain.SortViews && f.OnlyAvailable && f.Paid != nil && !*f.Paid
		}), domain.Page{From: 0, Size: 10}, "/events", "192.0.2.1").
		Return([]*domain.Event{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/events?text=jazz&sort=VIEWS&onlyAvailable=true&paid=false", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_SearchEventsPublic_BadSort(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/events?sort=RANDOM", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SearchEventsPublic_BadPage(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/events?size=0", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEventPublic(t *testing.T) {
	m, r := setupRouter(t)
	event := sampleEvent()

	m.events.EXPECT().
		GetPublished(mock.Anything, event.ID, "/events/"+event.ID, mock.Anything).
		Return(event, nil)

	w := doJSON(t, r, http.MethodGet, "/events/"+event.ID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventFullResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.Views)
}

func TestHandler_GetEventPublic_NotFound(t *testing.T) {
	m, r := setupRouter(t)
	eventID := uuid.New().String()

	m.events.EXPECT().
		GetPublished(mock.Anything, eventID, mock.Anything, mock.Anything).
		Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/events/"+eventID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Requests ---

func TestHandler_CreateRequest_Success(t *testing.T) {
	m, r := setupRouter(t)
	userID, eventID := uuid.New().String(), uuid.New().String()

	m.requests.EXPECT().
		Create(mock.Anything, userID, eventID).
		Return(&domain.Request{
			ID:          uuid.New().String(),
			RequesterID: userID,
			EventID:     eventID,
			Created:     time.Now(),
			Status:      domain.RequestPending,
		}, nil)

	w := doJSON(t, r, http.MethodPost, "/users/"+userID+"/requests?eventId="+eventID, nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, eventID, resp.Event)
}

func TestHandler_CreateRequest_MissingEventID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/users/"+uuid.New().String()+"/requests", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateRequest_Conflict(t *testing.T) {
	m, r := setupRouter(t)
	userID, eventID := uuid.New().String(), uuid.New().String()

	m.requests.EXPECT().Create(mock.Anything, userID, eventID).Return(nil, domain.ErrLimitExceeded)

	w := doJSON(t, r, http.MethodPost, "/users/"+userID+"/requests?eventId="+eventID, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_DecideRequests(t *testing.T) {
	m, r := setupRouter(t)
	userID, eventID := uuid.New().String(), uuid.New().String()
	ids := []string{uuid.New().String(), uuid.New().String()}

	m.requests.EXPECT().
		DecideBatch(mock.Anything, userID, eventID, ids, domain.RequestConfirmed).
		Return(&domain.DecisionResult{
			Confirmed: []*domain.Request{{ID: ids[0], Status: domain.RequestConfirmed}},
			Rejected:  []*domain.Request{{ID: ids[1], Status: domain.RequestRejected}},
		}, nil)

	path := "/users/" + userID + "/events/" + eventID + "/requests"
	w := doJSON(t, r, http.MethodPatch, path, map[string]any{"requestIds": ids, "status": "CONFIRMED"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.DecisionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.ConfirmedRequests, 1)
	require.Len(t, resp.RejectedRequests, 1)
	assert.Equal(t, ids[1], resp.RejectedRequests[0].ID)
}

func TestHandler_DecideRequests_UnknownStatus(t *testing.T) {
	_, r := setupRouter(t)

	path := "/users/" + uuid.New().String() + "/events/" + uuid.New().String() + "/requests"
	w := doJSON(t, r, http.MethodPatch, path, map[string]any{
		"requestIds": []string{uuid.New().String()},
		"status":     "MAYBE",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelRequest_Foreign(t *testing.T) {
	m, r := setupRouter(t)
	userID, requestID := uuid.New().String(), uuid.New().String()

	m.requests.EXPECT().Cancel(mock.Anything, userID, requestID).Return(nil, domain.ErrNotRequester)

	w := doJSON(t, r, http.MethodPatch, "/users/"+userID+"/requests/"+requestID+"/cancel", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Users, categories, compilations ---

func TestHandler_CreateUser_BadEmail(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/admin/users", map[string]any{"name": "Alice", "email": "nope"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateUser_EmailTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.users.EXPECT().
		Create(mock.Anything, domain.CreateUserInput{Name: "Alice", Email: "alice@example.com"}).
		Return(nil, domain.ErrEmailTaken)

	w := doJSON(t, r, http.MethodPost, "/admin/users", map[string]any{"name": "Alice", "email": "alice@example.com"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListUsers_ByIDs(t *testing.T) {
	m, r := setupRouter(t)
	id := uuid.New().String()

	m.users.EXPECT().
		List(mock.Anything, []string{id}, domain.Page{From: 0, Size: 5}).
		Return([]*domain.User{{ID: id, Name: "Alice", Email: "alice@example.com"}}, nil)

	w := doJSON(t, r, http.MethodGet, "/admin/users?ids="+id+"&size=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "alice@example.com", resp[0].Email)
}

func TestHandler_DeleteUser(t *testing.T) {
	m, r := setupRouter(t)
	id := uuid.New().String()

	m.users.EXPECT().Delete(mock.Anything, id).Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/admin/users/"+id, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_DeleteCategory_InUse(t *testing.T) {
	m, r := setupRouter(t)
	id := uuid.New().String()

	m.categories.EXPECT().Delete(mock.Anything, id).Return(domain.ErrCategoryInUse)

	w := doJSON(t, r, http.MethodDelete, "/admin/categories/"+id, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListCompilations_Pinned(t *testing.T) {
	m, r := setupRouter(t)

	m.compilations.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(p *bool) bool { return p != nil && *p }), domain.Page{From: 0, Size: 10}).
		Return([]*domain.Compilation{{ID: uuid.New().String(), Title: "Best", Pinned: true}}, nil)

	w := doJSON(t, r, http.MethodGet, "/compilations?pinned=true", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CompilationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.NotNil(t, resp[0].Events)
}

func TestHandler_UpdateCompilation_KeepsEventsWhenAbsent(t *testing.T) {
	m, r := setupRouter(t)
	id := uuid.New().String()

	m.compilations.EXPECT().
		Update(mock.Anything, id, mock.MatchedBy(func(p domain.CompilationPatch) bool {
			return p.EventIDs == nil && p.Title != nil && *p.Title == "Renamed"
		})).
		Return(&domain.Compilation{ID: id, Title: "Renamed"}, nil)

	w := doJSON(t, r, http.MethodPatch, "/admin/compilations/"+id, map[string]any{"title": "Renamed"})

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Comments ---

func TestHandler_ListEventComments_Range(t *testing.T) {
	m, r := setupRouter(t)
	eventID := uuid.New().String()

	m.comments.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(f domain.CommentFilter) bool {
			return f.EventID == eventID && f.Start.Year() == 2024 && f.End.Year() == 2025
		}), domain.Page{From: 0, Size: 10}).
		Return([]*domain.Comment{}, nil)

	w := doJSON(t, r, http.MethodGet,
		"/events/"+eventID+"/comments?rangeStart=2024-01-01%2000:00:00&rangeEnd=2025-01-01%2000:00:00", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateComment_NotAuthor(t *testing.T) {
	m, r := setupRouter(t)
	userID, commentID := uuid.New().String(), uuid.New().String()

	m.comments.EXPECT().Update(mock.Anything, userID, commentID, "edited").Return(nil, domain.ErrNotCommentAuthor)

	w := doJSON(t, r, http.MethodPatch, "/users/"+userID+"/comments/"+commentID, map[string]any{"message": "edited"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	m, r := setupRouter(t)

	m.categories.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	w := doJSON(t, r, http.MethodGet, "/categories", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}
