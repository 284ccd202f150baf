package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jmsuarez/qraccess-backend/internal/dto"
	"github.com/jmsuarez/qraccess-backend/internal/services"
)

type AccessHandler struct {
	admission *services.AdmissionService
}

func NewAccessHandler(admission *services.AdmissionService) *AccessHandler {
	return &AccessHandler{admission: admission}
}

// Check handles GET /check?u=<id> - the gate scan.
func (h *AccessHandler) Check(c *fiber.Ctx) error {
	raw := c.Query("u")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Missing fan id",
		})
	}
	fanID, err := uuid.Parse(raw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid fan id",
		})
	}

	result, err := h.admission.CheckAccess(fanID)
	if err != nil {
		if errors.Is(err, services.ErrFanNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Fan not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.AccessResponse{
		Access:  result.Admitted,
		Name:    result.Name,
		Message: result.Message,
	})
}

// Unblock handles POST /admin/fans/:id/unblock - clears the cooldown.
func (h *AccessHandler) Unblock(c *fiber.Ctx) error {
	fanID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid fan id",
		})
	}

	if err := h.admission.Unblock(fanID); err != nil {
		if errors.Is(err, services.ErrFanNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Fan not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
