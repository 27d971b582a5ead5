package dto

import (
	"github.com/spec-kit/account-service/internal/domain"
)

const birthDateLayout = "2006-01-02"

// RegisterUserRequest payload for POST /users. ID is accepted for
// compatibility but the store assigns identifiers.
type RegisterUserRequest struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	BirthDate string `json:"birthDate"`
}

// LoginRequest payload for POST /auth.
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// UserResponse is the public projection of a user. The password hash is
// never part of it.
type UserResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	BirthDate string `json:"birthDate"`
}

// LoginResponse pairs the public projection with the issued token.
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ListUsersResponse is one page of users plus pagination metadata.
type ListUsersResponse struct {
	Users           []UserResponse `json:"users"`
	Total           int64          `json:"total"`
	Offset          int            `json:"offset"`
	HasPreviousPage bool           `json:"hasPreviousPage"`
	HasNextPage     bool           `json:"hasNextPage"`
}

// NewUserResponse projects a domain user for the wire.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		BirthDate: user.BirthDate.Format(birthDateLayout),
	}
}

// NewUserResponses projects a slice, preserving order.
func NewUserResponses(users []domain.User) []UserResponse {
	items := make([]UserResponse, 0, len(users))
	for i := range users {
		items = append(items, NewUserResponse(&users[i]))
	}
	return items
}
