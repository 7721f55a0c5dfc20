package api

// swagger:model api.UpdateProfileRequest
// 僅更新有提供的欄位
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty" form:"first_name" validate:"omitempty,max=50" example:"Alice"`
	LastName  *string `json:"last_name,omitempty" form:"last_name" validate:"omitempty,max=50" example:"Smith"`
	Email     *string `json:"email,omitempty" form:"email" validate:"omitempty,email" example:"alice@example.com"`
}
