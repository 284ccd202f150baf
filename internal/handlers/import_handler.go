package handlers

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jmsuarez/qraccess-backend/internal/dto"
	"github.com/jmsuarez/qraccess-backend/internal/services"
)

type ImportHandler struct {
	importer *services.ImportService
}

func NewImportHandler(importer *services.ImportService) *ImportHandler {
	return &ImportHandler{importer: importer}
}

// Import handles POST /admin/import - multipart upload of a .csv or .xlsx
// file with name/email columns.
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "File is required",
		})
	}
	if file.Size > 5*1024*1024 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "File size must be less than 5MB",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to read upload",
		})
	}
	defer src.Close()

	var report *dto.ImportResponse
	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".csv":
		report, err = h.importer.ImportCSV(src)
	case ".xlsx":
		report, err = h.importer.ImportXLSX(src)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Only .csv and .xlsx files are supported",
		})
	}
	if err != nil {
		if errors.Is(err, services.ErrNoImportRows) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to parse file",
		})
	}

	return c.JSON(report)
}
