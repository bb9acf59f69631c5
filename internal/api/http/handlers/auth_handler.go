package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Nishukr/Urban-waste-control/internal/api/dto"
	"github.com/Nishukr/Urban-waste-control/internal/domain"
	"github.com/Nishukr/Urban-waste-control/internal/service"
	apperrors "github.com/Nishukr/Urban-waste-control/pkg/util"
)

// AuthHandler exposes the signup and login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		return apperrors.NewValidationError("name, email, password, role required", nil)
	}

	user, token, _, err := h.auth.Register(c.Context(), req.Name, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.AuthResponse{
		Success: true,
		Token:   token,
		Role:    string(user.Role),
		Message: "User created successfully",
	})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, token, _, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.AuthResponse{
		Success: true,
		Token:   token,
		Role:    string(user.Role),
		Message: "Login successful",
	})
}
