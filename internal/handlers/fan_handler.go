package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jmsuarez/qraccess-backend/internal/dto"
	"github.com/jmsuarez/qraccess-backend/internal/services"
)

type FanHandler struct {
	fans         *services.FanService
	registration *services.RegistrationService
}

func NewFanHandler(fans *services.FanService, registration *services.RegistrationService) *FanHandler {
	return &FanHandler{fans: fans, registration: registration}
}

// List handles GET /admin/fans.
func (h *FanHandler) List(c *fiber.Ctx) error {
	fans, err := h.fans.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch fans",
		})
	}

	resp := make([]dto.FanResponse, len(fans))
	for i, fan := range fans {
		resp[i] = dto.FanResponse{
			ID:         fan.ID,
			Name:       fan.Name,
			Email:      fan.Email,
			Phone:      fan.Phone,
			Category:   fan.Category,
			LastAccess: fan.LastAccess,
			CreatedAt:  fan.CreatedAt,
			QRPath:     "/api/qr/" + fan.ID.String(),
		}
	}

	return c.JSON(resp)
}

// Create handles POST /admin/fans - direct creation without a token, same
// path the bulk import uses.
func (h *FanHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateFanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	fan, err := h.registration.Register(&dto.RegisterRequest{Name: req.Name, Email: req.Email})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrMissingFields):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{Success: true, ID: fan.ID})
}

// Delete handles DELETE /admin/fans/:id - hard delete.
func (h *FanHandler) Delete(c *fiber.Ctx) error {
	fanID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid fan id",
		})
	}

	if err := h.fans.Delete(fanID); err != nil {
		if errors.Is(err, services.ErrFanNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Fan not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(fiber.Map{"message": "Fan deleted"})
}
