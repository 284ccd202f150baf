package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jmsuarez/qraccess-backend/internal/dto"
	"github.com/jmsuarez/qraccess-backend/internal/services"
)

type RegisterHandler struct {
	registration *services.RegistrationService
}

func NewRegisterHandler(registration *services.RegistrationService) *RegisterHandler {
	return &RegisterHandler{registration: registration}
}

// Register handles POST /register - self-registration via a token link.
func (h *RegisterHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	fan, err := h.registration.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrMissingFields),
			errors.Is(err, services.ErrInvalidPhone),
			errors.Is(err, services.ErrTokenInvalid):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{
		Success:  true,
		ID:       fan.ID,
		Category: fan.Category,
	})
}
