package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{Name: "alice", Email: "alice@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEmpty(t, user.ID)
}

func TestUserService_Create_Invalid(t *testing.T) {
	svc := NewUserService(mocks.NewMockUserRepo(t))

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Name: "", Email: "a@b.c"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), domain.CreateUserInput{Name: "bob", Email: "not-an-email"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_EmailTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Name: "bob", Email: "bob@example.com"})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUserService_List(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	page := domain.Page{From: 0, Size: 10}
	users := []*domain.User{{ID: "u1"}, {ID: "u2"}}
	repo.EXPECT().List(mock.Anything, []string{"u1", "u2"}, page).Return(users, nil)

	got, err := svc.List(context.Background(), []string{"u1", "u2"}, page)

	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestUserService_List_Error(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().List(mock.Anything, []string(nil), mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.List(context.Background(), nil, domain.Page{Size: 10})

	assert.Error(t, err)
}

func TestUserService_Delete_NotFound(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrUserNotFound)

	err := svc.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
