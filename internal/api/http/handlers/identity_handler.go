package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-service/internal/api/dto"
	"github.com/spec-kit/complaint-service/internal/domain"
	"github.com/spec-kit/complaint-service/internal/service"
	apperrors "github.com/spec-kit/complaint-service/pkg/util"
)

// IdentityHandler exposes the register_pilgrim and login actions.
type IdentityHandler struct {
	identity *service.IdentityService
}

// NewIdentityHandler constructs handler.
func NewIdentityHandler(identityService *service.IdentityService) *IdentityHandler {
	return &IdentityHandler{identity: identityService}
}

// Register handles action=register_pilgrim.
func (h *IdentityHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterPilgrimRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid JSON input.", nil)
	}
	if err := dto.Validate(&req); err != nil {
		return apperrors.NewValidationError("All fields are required for registration.", nil)
	}

	user, err := h.identity.RegisterPilgrim(c.UserContext(), req.Name, req.Phone, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Registration successful.",
		"phone":   user.PhoneNumber,
	})
}

// Login handles action=login. Empty or unknown credentials fall
// through to the same unauthorized response the lookup produces.
func (h *IdentityHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid JSON input.", nil)
	}

	user, err := h.identity.Login(c.UserContext(), req.Username, req.Password, domain.Role(req.Role))
	if err != nil {
		return err
	}

	response := fiber.Map{
		"status": "success",
		"role":   req.Role,
		"id":     user.UserID,
	}
	if user.Role == domain.RolePilgrim {
		response["phone"] = user.PhoneNumber
	} else {
		response["phone"] = nil
	}
	return c.JSON(response)
}
