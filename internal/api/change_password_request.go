package api

// swagger:model api.ChangePasswordRequest
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" form:"current_password" validate:"required" example:"Passw0rd"`
	NewPassword     string `json:"new_password" form:"new_password" validate:"required,min=6" example:"N3wPassw0rd"`
}
