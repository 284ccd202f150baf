package dto

import "time"

type IssueTokensRequest struct {
	Count    int    `json:"count"`
	Category string `json:"category"`
}

type IssuedToken struct {
	Value     string    `json:"value"`
	Category  *string   `json:"category,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

type IssueTokensResponse struct {
	Tokens []IssuedToken `json:"tokens"`
}

// ValidateTokenResponse keeps the original frontend's field names.
type ValidateTokenResponse struct {
	Valid bool `json:"valid"`
	Admin bool `json:"admin"`
}
