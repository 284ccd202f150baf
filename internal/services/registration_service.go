package services

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/jmsuarez/qraccess-backend/internal/dto"
	"github.com/jmsuarez/qraccess-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrMissingFields = errors.New("name and email are required")
	ErrInvalidPhone  = errors.New("phone must be a 9-digit mobile number")
	ErrEmailTaken    = errors.New("email already registered")
)

// Spanish mobile numbers: 9 digits starting with 6-9.
var phonePattern = regexp.MustCompile(`^[6-9][0-9]{8}$`)

type RegistrationService struct {
	db     *gorm.DB
	tokens *TokenService
}

func NewRegistrationService(db *gorm.DB, tokens *TokenService) *RegistrationService {
	return &RegistrationService{db: db, tokens: tokens}
}

// Register validates the request, spends the registration token if one was
// supplied and creates the fan. The token's category, when present, is copied
// onto the fan.
func (s *RegistrationService) Register(req *dto.RegisterRequest) (*models.Fan, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		return nil, ErrMissingFields
	}

	var phone *string
	if p := strings.TrimSpace(req.Phone); p != "" {
		if !phonePattern.MatchString(p) {
			return nil, ErrInvalidPhone
		}
		phone = &p
	}

	var existing models.Fan
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	var resolution *TokenResolution
	if req.Token != "" {
		var err error
		resolution, err = s.tokens.Resolve(req.Token)
		if err != nil {
			return nil, err
		}
	}

	fan := models.Fan{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
		Phone: phone,
	}
	if req.Token != "" {
		tokenUsed := req.Token
		fan.TokenUsed = &tokenUsed
	}
	if resolution != nil {
		fan.Category = resolution.Category()
	}

	if err := s.db.Create(&fan).Error; err != nil {
		// The unique index on email closes the check-then-insert race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create fan: %w", err)
	}

	if resolution != nil && resolution.Kind == KindSingleUse {
		if err := s.tokens.Consume(req.Token); err != nil {
			// The fan is already registered; losing the race here only means
			// the token was spent by a concurrent request.
			slog.Error("token consume failed after registration",
				"action", "register", "fan_id", fan.ID.String(), "error", err)
		}
	}

	return &fan, nil
}
