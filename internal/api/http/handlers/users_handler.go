package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/dto"
	"github.com/spec-kit/account-service/internal/service"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

const (
	birthDateLayout = "2006-01-02"
	defaultLimit    = 20
)

// UsersHandler exposes registration, lookup and listing endpoints.
type UsersHandler struct {
	auth  *service.AuthService
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService, userService *service.UserService) *UsersHandler {
	return &UsersHandler{auth: authService, users: userService}
}

// Create handles POST /users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("Invalid request payload", err.Error())
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.BirthDate == "" {
		return apperrors.NewValidation("name, email, password and birthDate are required", "")
	}

	birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		if birthDate, err = time.Parse(time.RFC3339, req.BirthDate); err != nil {
			return apperrors.NewValidation("birthDate must be an ISO date", err.Error())
		}
	}

	user, err := h.auth.Register(c.Context(), service.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		BirthDate: birthDate,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.NewUserResponse(user))
}

// GetByID handles GET /users/:id.
func (h *UsersHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return apperrors.New(apperrors.CodeUserInvalidID,
			"Invalid ID. User ID must be a positive number",
			"The user ID must be a positive integer")
	}

	user, err := h.users.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	limit, offset, err := parseListQuery(c)
	if err != nil {
		return err
	}

	page, err := h.users.List(c.Context(), limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(dto.ListUsersResponse{
		Users:           dto.NewUserResponses(page.Users),
		Total:           page.Total,
		Offset:          page.Offset,
		HasPreviousPage: page.HasPreviousPage,
		HasNextPage:     page.HasNextPage,
	})
}

// parseListQuery applies listing defaults and rejects present-but-invalid
// parameters with their taxonomy codes.
func parseListQuery(c *fiber.Ctx) (int, int, error) {
	limit, offset := defaultLimit, 0

	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return 0, 0, apperrors.New(apperrors.CodeInvalidLimit,
				"Invalid limit. Limit must be a non-negative number.",
				"The limit must be a non-negative integer")
		}
		limit = parsed
	}

	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return 0, 0, apperrors.New(apperrors.CodeInvalidOffset,
				"Invalid offset. Offset must be a non-negative number.",
				"The offset must be a non-negative integer")
		}
		offset = parsed
	}

	return limit, offset, nil
}
