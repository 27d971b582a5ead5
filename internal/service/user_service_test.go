package service

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/pkg/util"
)

func seedUsers(t *testing.T, repo *stubUserRepo, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		err := repo.Create(context.Background(), &domain.User{
			Name:         fmt.Sprintf("user-%02d", i),
			Email:        fmt.Sprintf("user-%02d@example.com", i),
			PasswordHash: "x",
			BirthDate:    time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}
}

func TestGetByID(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepo()
	seedUsers(t, repo, 1)
	svc := NewUserService(repo, nil)

	user, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "user-00", user.Name)
}

func TestGetByID_NotFound(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepo()
	svc := NewUserService(repo, nil)

	_, err := svc.GetByID(context.Background(), 999)
	requireDomainError(t, err, util.CodeUserNotFound, http.StatusNotFound)
}

func TestList_Pagination(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepo()
	seedUsers(t, repo, 25)
	svc := NewUserService(repo, nil)

	page, err := svc.List(context.Background(), 10, 5)
	require.NoError(t, err)
	assert.Len(t, page.Users, 10)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 5, page.Offset)
	assert.True(t, page.HasPreviousPage)
	assert.True(t, page.HasNextPage)
	assert.Equal(t, "user-05", page.Users[0].Name)
}

func TestList_LastPage(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepo()
	seedUsers(t, repo, 25)
	svc := NewUserService(repo, nil)

	page, err := svc.List(context.Background(), 10, 20)
	require.NoError(t, err)
	assert.Len(t, page.Users, 5)
	assert.True(t, page.HasPreviousPage)
	assert.False(t, page.HasNextPage)
}

func TestList_FirstPageDefaults(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepo()
	seedUsers(t, repo, 5)
	svc := NewUserService(repo, nil)

	page, err := svc.List(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.Len(t, page.Users, 5)
	assert.False(t, page.HasPreviousPage)
	assert.False(t, page.HasNextPage)
}
