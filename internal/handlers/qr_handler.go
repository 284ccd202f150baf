package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jmsuarez/qraccess-backend/internal/dto"
	"github.com/jmsuarez/qraccess-backend/internal/qr"
)

type QRHandler struct{}

func NewQRHandler() *QRHandler {
	return &QRHandler{}
}

// Image handles GET /qr/:id - renders the fan's ID as a QR PNG.
func (h *QRHandler) Image(c *fiber.Ctx) error {
	fanID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid fan id",
		})
	}

	png, err := qr.PNG(fanID.String(), c.QueryInt("size", qr.DefaultSize))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to generate QR",
		})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
