package dto

import "time"

type LastAccessEntry struct {
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	LastAccess *time.Time `json:"last_access"`
}

type StatsResponse struct {
	TotalFans       int64             `json:"totalFans"`
	AccessToday     int64             `json:"accessToday"`
	AccessLastWeek  int64             `json:"accessLastWeek"`
	AccessLastMonth int64             `json:"accessLastMonth"`
	LastAccesses    []LastAccessEntry `json:"lastAccesses"`
}
