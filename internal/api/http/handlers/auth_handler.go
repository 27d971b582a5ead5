package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/dto"
	"github.com/spec-kit/account-service/internal/service"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

// AuthHandler exposes the credential login endpoint.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidation("Invalid request payload", err.Error())
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidation("email and password are required", "")
	}

	user, token, err := h.auth.Login(c.Context(), req.Email, req.Password, req.RememberMe)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{
		User:  dto.NewUserResponse(user),
		Token: token,
	})
}
