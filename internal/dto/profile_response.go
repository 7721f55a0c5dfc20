// File: internal/dto/profile_response.go
package dto

import "calc-api/internal/store"

// swagger:model dto.ProfileResponse
type ProfileResponse struct {
	User  UserResponse            `json:"user"`
	Stats *store.CalculationStats `json:"stats,omitempty"`
}
