package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jmsuarez/qraccess-backend/internal/dto"
	"github.com/jmsuarez/qraccess-backend/internal/services"
)

type TokenHandler struct {
	tokens *services.TokenService
}

func NewTokenHandler(tokens *services.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// Issue handles PUT /admin/tokens - generates a batch of registration links.
func (h *TokenHandler) Issue(c *fiber.Ctx) error {
	var req dto.IssueTokensRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	tokens, err := h.tokens.Issue(req.Count, req.Category)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCount) || errors.Is(err, services.ErrInvalidCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	resp := dto.IssueTokensResponse{Tokens: make([]dto.IssuedToken, len(tokens))}
	for i, t := range tokens {
		resp.Tokens[i] = dto.IssuedToken{
			Value:     t.Value,
			Category:  t.Category,
			ExpiresAt: t.ExpiresAt,
		}
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Validate handles GET /tokens/validate?token= - the registration form calls
// this before showing the fields.
func (h *TokenHandler) Validate(c *fiber.Ctx) error {
	value := c.Query("token")
	if value == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Missing token",
		})
	}

	resolution, err := h.tokens.Resolve(value)
	if err != nil {
		if errors.Is(err, services.ErrTokenInvalid) {
			return c.JSON(dto.ValidateTokenResponse{Valid: false, Admin: false})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.ValidateTokenResponse{
		Valid: true,
		Admin: resolution.Kind == services.KindAdmin,
	})
}
