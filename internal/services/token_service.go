package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmsuarez/qraccess-backend/internal/config"
	"github.com/jmsuarez/qraccess-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrInvalidCount    = errors.New("count must be between 1 and 100")
	ErrInvalidCategory = errors.New("unknown category")
	ErrTokenInvalid    = errors.New("invalid or expired token")
)

// TokenKind distinguishes the configured admin token from stored single-use
// tokens, so the admin comparison happens exactly once, at resolution.
type TokenKind int

const (
	KindSingleUse TokenKind = iota
	KindAdmin
)

type TokenResolution struct {
	Kind  TokenKind
	Token *models.Token
}

// Category returns the category carried by the resolved token, if any.
// The admin token never carries one.
func (r *TokenResolution) Category() *string {
	if r.Token == nil {
		return nil
	}
	return r.Token.Category
}

type TokenService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewTokenService(db *gorm.DB, cfg *config.Config) *TokenService {
	return &TokenService{db: db, cfg: cfg}
}

// Issue creates count fresh single-use tokens, optionally tagged with a
// competition category that will be copied onto the fan at registration.
func (s *TokenService) Issue(count int, category string) ([]models.Token, error) {
	if count < 1 || count > 100 {
		return nil, ErrInvalidCount
	}
	var cat *string
	if category != "" {
		if !models.ValidCategory(category) {
			return nil, ErrInvalidCategory
		}
		cat = &category
	}

	now := time.Now()
	tokens := make([]models.Token, count)
	for i := range tokens {
		tokens[i] = models.Token{
			ID:        uuid.New(),
			Value:     uuid.NewString(),
			Category:  cat,
			Used:      false,
			CreatedAt: now,
			ExpiresAt: now.Add(s.cfg.TokenTTL),
		}
	}

	if err := s.db.Create(&tokens).Error; err != nil {
		return nil, fmt.Errorf("failed to create tokens: %w", err)
	}

	return tokens, nil
}

// Resolve classifies a token value. The admin token is matched against config
// before any store lookup; everything else must exist unused and unexpired.
func (s *TokenService) Resolve(value string) (*TokenResolution, error) {
	if s.cfg.AdminToken != "" && value == s.cfg.AdminToken {
		return &TokenResolution{Kind: KindAdmin}, nil
	}

	var token models.Token
	err := s.db.Where("value = ? AND used = ? AND expires_at > ?", value, false, time.Now()).
		First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTokenInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}
	// A used or expired row is never valid, however it was loaded.
	if token.Used || token.Expired(time.Now()) {
		return nil, ErrTokenInvalid
	}

	return &TokenResolution{Kind: KindSingleUse, Token: &token}, nil
}

// Consume marks a single-use token as spent. The update is a single
// conditional write so two concurrent registrations cannot both spend the
// same token. The admin token always succeeds and is never mutated.
func (s *TokenService) Consume(value string) error {
	if s.cfg.AdminToken != "" && value == s.cfg.AdminToken {
		return nil
	}

	result := s.db.Model(&models.Token{}).
		Where("value = ? AND used = ? AND expires_at > ?", value, false, time.Now()).
		Update("used", true)
	if result.Error != nil {
		return fmt.Errorf("failed to consume token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTokenInvalid
	}
	return nil
}

// StartPurge runs a daily goroutine that deletes expired unused tokens.
// Expiry is still enforced by Resolve and Consume, so a pending purge never
// lets a stale token through.
func (s *TokenService) StartPurge(done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				result := s.db.Where("used = ? AND expires_at < ?", false, time.Now()).
					Delete(&models.Token{})
				if result.Error != nil {
					slog.Error("token purge failed", "error", result.Error)
				} else if result.RowsAffected > 0 {
					slog.Info("token purge completed", "deleted", result.RowsAffected)
				}
			case <-done:
				return
			}
		}
	}()
}
