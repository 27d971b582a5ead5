package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/repository"
	"github.com/spec-kit/account-service/pkg/util"
)

// UserPage is one page of the user listing plus pagination metadata.
type UserPage struct {
	Users           []domain.User
	Total           int64
	Offset          int
	HasPreviousPage bool
	HasNextPage     bool
}

// UserService serves lookup and listing over the user store, with an
// optional read-through cache for single lookups.
type UserService struct {
	users repository.UserRepository
	cache *repository.UserCache
}

// NewUserService constructs the service. cache may be nil.
func NewUserService(users repository.UserRepository, cache *repository.UserCache) *UserService {
	return &UserService{users: users, cache: cache}
}

// GetByID fetches a single user. Missing records map to USR_01.
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if user, ok := s.cache.Get(ctx, id); ok {
		return user, nil
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.New(util.CodeUserNotFound,
				"User not found",
				"User id was not found on the database")
		}
		return nil, err
	}

	s.cache.Set(ctx, user)
	return user, nil
}

// List returns users ordered by name with pagination metadata computed from
// the store count.
func (s *UserService) List(ctx context.Context, limit, offset int) (*UserPage, error) {
	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &UserPage{
		Users:           users,
		Total:           total,
		Offset:          offset,
		HasPreviousPage: offset > 0,
		HasNextPage:     int64(offset+len(users)) < total,
	}, nil
}
