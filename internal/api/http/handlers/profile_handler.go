package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/dto"
	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/service"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

// ProfileHandler exposes the authenticated profile endpoints.
type ProfileHandler struct {
	accounts *service.AccountService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(accounts *service.AccountService) *ProfileHandler {
	return &ProfileHandler{accounts: accounts}
}

// Get handles GET /users/profile.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	user, err := h.accounts.Profile(c.Context(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(user.Public())
}

// Update handles PUT /users/profile.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.accounts.UpdateProfile(c.Context(), principal.UserID, service.ProfileUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(user.Public())
}

// Delete handles DELETE /users/profile.
func (h *ProfileHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.accounts.DeleteAccount(c.Context(), principal.UserID); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "account deleted"})
}
