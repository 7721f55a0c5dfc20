// File: internal/dto/user_response.go
package dto

import (
	"time"

	"calc-api/internal/model"
)

// UserResponse 使用者的公開視圖，永不包含密碼哈希
// swagger:model dto.UserResponse
type UserResponse struct {
	ID        int        `json:"id" example:"1"`
	Username  string     `json:"username" example:"alice"`
	Email     string     `json:"email" example:"alice@example.com"`
	FirstName *string    `json:"first_name,omitempty" example:"Alice"`
	LastName  *string    `json:"last_name,omitempty" example:"Smith"`
	IsActive  bool       `json:"is_active" example:"true"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}
