package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jmsuarez/qraccess-backend/internal/models"
	"gorm.io/gorm"
)

type FanService struct {
	db *gorm.DB
}

func NewFanService(db *gorm.DB) *FanService {
	return &FanService{db: db}
}

// List returns all fans, newest first.
func (s *FanService) List() ([]models.Fan, error) {
	var fans []models.Fan
	err := s.db.Order("created_at DESC").Find(&fans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list fans: %w", err)
	}
	return fans, nil
}

// Delete removes a fan for good. There is no soft delete: a deleted fan's QR
// stops scanning immediately.
func (s *FanService) Delete(fanID uuid.UUID) error {
	result := s.db.Where("id = ?", fanID).Delete(&models.Fan{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete fan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrFanNotFound
	}
	return nil
}
