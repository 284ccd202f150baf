package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jmsuarez/qraccess-backend/internal/models"
	"gorm.io/gorm"
)

var ErrFanNotFound = errors.New("fan not found")

type AccessResult struct {
	Admitted bool
	Name     string
	Message  string
}

type AdmissionService struct {
	db       *gorm.DB
	cooldown time.Duration
}

func NewAdmissionService(db *gorm.DB, cooldown time.Duration) *AdmissionService {
	return &AdmissionService{db: db, cooldown: cooldown}
}

// CheckAccess decides whether a scanned fan may enter. A fan is admitted when
// they have never accessed or the cooldown window has fully elapsed; admission
// stamps LastAccess with the current time. Only the most recent access is
// kept, there is no history.
func (s *AdmissionService) CheckAccess(fanID uuid.UUID) (*AccessResult, error) {
	var fan models.Fan
	err := s.db.First(&fan, "id = ?", fanID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up fan: %w", err)
	}

	now := time.Now()
	blocked, minutes := cooldownRemaining(fan.LastAccess, now, s.cooldown)
	if blocked {
		return &AccessResult{
			Admitted: false,
			Message:  fmt.Sprintf("Acceso bloqueado. Disponible en %d minutos.", minutes),
		}, nil
	}

	if err := s.db.Model(&models.Fan{}).Where("id = ?", fan.ID).
		Update("last_access", now).Error; err != nil {
		return nil, fmt.Errorf("failed to record access: %w", err)
	}

	return &AccessResult{Admitted: true, Name: fan.Name}, nil
}

// Unblock clears a fan's last access so the next scan admits immediately.
func (s *AdmissionService) Unblock(fanID uuid.UUID) error {
	result := s.db.Model(&models.Fan{}).Where("id = ?", fanID).
		Update("last_access", nil)
	if result.Error != nil {
		return fmt.Errorf("failed to unblock fan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrFanNotFound
	}
	return nil
}

// cooldownRemaining reports whether the fan is still inside the cooldown
// window and, if so, the whole minutes left. Minutes round up so a fan is
// never told a shorter wait than actually remains.
func cooldownRemaining(lastAccess *time.Time, now time.Time, window time.Duration) (bool, int) {
	if lastAccess == nil {
		return false, 0
	}
	elapsed := now.Sub(*lastAccess)
	if elapsed >= window {
		return false, 0
	}
	remaining := window - elapsed
	return true, int(math.Ceil(remaining.Minutes()))
}
