package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type commentDeps struct {
	repo      *mocks.MockCommentRepo
	eventRepo *mocks.MockEventRepo
	userRepo  *mocks.MockUserRepo
}

func newCommentService(t *testing.T) (*CommentService, commentDeps) {
	d := commentDeps{
		repo:      mocks.NewMockCommentRepo(t),
		eventRepo: mocks.NewMockEventRepo(t),
		userRepo:  mocks.NewMockUserRepo(t),
	}
	return NewCommentService(d.repo, d.eventRepo, d.userRepo), d
}

func TestCommentService_Create(t *testing.T) {
	svc, d := newCommentService(t)

	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	d.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", State: domain.StatePublished}, nil)
	d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	c, err := svc.Create(context.Background(), "u1", "e1", "great")

	require.NoError(t, err)
	assert.Equal(t, "u1", c.AuthorID)
	assert.Equal(t, c.Created, c.Updated)
}

func TestCommentService_Create_NotPublished(t *testing.T) {
	svc, d := newCommentService(t)

	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	d.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", State: domain.StatePending}, nil)

	_, err := svc.Create(context.Background(), "u1", "e1", "great")

	assert.ErrorIs(t, err, domain.ErrEventNotPublished)
}

func TestCommentService_Create_InvalidMessage(t *testing.T) {
	svc, _ := newCommentService(t)

	_, err := svc.Create(context.Background(), "u1", "e1", "   ")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), "u1", "e1", strings.Repeat("x", maxCommentLength+1))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCommentService_Update_NotAuthor(t *testing.T) {
	svc, d := newCommentService(t)

	d.userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2"}, nil)
	d.repo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Comment{ID: "c1", AuthorID: "u1"}, nil)

	_, err := svc.Update(context.Background(), "u2", "c1", "edited")

	assert.ErrorIs(t, err, domain.ErrNotCommentAuthor)
}

func TestCommentService_Update(t *testing.T) {
	svc, d := newCommentService(t)

	created := time.Now().Add(-time.Hour).UTC()
	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	d.repo.EXPECT().GetByID(mock.Anything, "c1").
		Return(&domain.Comment{ID: "c1", AuthorID: "u1", Message: "old", Created: created, Updated: created}, nil)
	d.repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	c, err := svc.Update(context.Background(), "u1", "c1", "edited")

	require.NoError(t, err)
	assert.Equal(t, "edited", c.Message)
	assert.True(t, c.Updated.After(created))
}

func TestCommentService_DeleteByAuthor(t *testing.T) {
	svc, d := newCommentService(t)

	d.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	d.repo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Comment{ID: "c1", AuthorID: "u1"}, nil)
	d.repo.EXPECT().Delete(mock.Anything, "c1").Return(nil)

	require.NoError(t, svc.DeleteByAuthor(context.Background(), "u1", "c1"))
}

func TestCommentService_List_Range(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{"missing start", time.Time{}, now.Add(-time.Hour)},
		{"start after end", now.Add(-time.Hour), now.Add(-2 * time.Hour)},
		{"end in future", now.Add(-time.Hour), now.Add(time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newCommentService(t)

			_, err := svc.List(context.Background(),
				domain.CommentFilter{Start: tt.start, End: tt.end}, domain.Page{Size: 10})

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCommentService_List_ByEvent(t *testing.T) {
	svc, d := newCommentService(t)

	f := domain.CommentFilter{
		EventID: "e1",
		Start:   time.Now().Add(-48 * time.Hour),
		End:     time.Now().Add(-time.Minute),
	}
	page := domain.Page{Size: 10}
	d.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	d.repo.EXPECT().List(mock.Anything, f, page).Return([]*domain.Comment{{ID: "c1"}}, nil)

	got, err := svc.List(context.Background(), f, page)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}
