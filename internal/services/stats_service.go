package services

import (
	"fmt"
	"time"

	"github.com/jmsuarez/qraccess-backend/internal/dto"
	"github.com/jmsuarez/qraccess-backend/internal/models"
	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// Overview aggregates access counts as of call time. The week and month
// windows start at midnight, and the month is a calendar-month subtraction,
// not 30 fixed days.
func (s *StatsService) Overview() (*dto.StatsResponse, error) {
	now := time.Now()
	today := startOfDay(now)
	lastWeek := startOfDay(now.AddDate(0, 0, -7))
	lastMonth := startOfDay(now.AddDate(0, -1, 0))

	stats := &dto.StatsResponse{LastAccesses: []dto.LastAccessEntry{}}

	if err := s.db.Model(&models.Fan{}).Count(&stats.TotalFans).Error; err != nil {
		return nil, fmt.Errorf("failed to count fans: %w", err)
	}

	counts := []struct {
		since time.Time
		dest  *int64
	}{
		{today, &stats.AccessToday},
		{lastWeek, &stats.AccessLastWeek},
		{lastMonth, &stats.AccessLastMonth},
	}
	for _, c := range counts {
		if err := s.db.Model(&models.Fan{}).
			Where("last_access >= ?", c.since).
			Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to count accesses: %w", err)
		}
	}

	var fans []models.Fan
	if err := s.db.Where("last_access IS NOT NULL").
		Order("last_access DESC").
		Limit(10).
		Find(&fans).Error; err != nil {
		return nil, fmt.Errorf("failed to list last accesses: %w", err)
	}
	for _, fan := range fans {
		stats.LastAccesses = append(stats.LastAccesses, dto.LastAccessEntry{
			Name:       fan.Name,
			Email:      fan.Email,
			LastAccess: fan.LastAccess,
		})
	}

	return stats, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
