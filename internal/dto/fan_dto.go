package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Token string `json:"token"`
}

type RegisterResponse struct {
	Success  bool      `json:"success"`
	ID       uuid.UUID `json:"id"`
	Category *string   `json:"category,omitempty"`
}

type CreateFanRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type FanResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      *string    `json:"phone,omitempty"`
	Category   *string    `json:"category,omitempty"`
	LastAccess *time.Time `json:"last_access"`
	CreatedAt  time.Time  `json:"created_at"`
	QRPath     string     `json:"qr_path"`
}

type ImportRowError struct {
	Row     int    `json:"row"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ImportResponse struct {
	Imported int              `json:"imported"`
	Failed   int              `json:"failed"`
	Errors   []ImportRowError `json:"errors"`
}
