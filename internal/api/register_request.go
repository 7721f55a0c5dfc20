package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Username  string  `json:"username" form:"username" validate:"required,min=3,max=30,alphanum" example:"alice"`
	Email     string  `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Password  string  `json:"password" form:"password" validate:"required,min=6" example:"Passw0rd"`
	FirstName *string `json:"first_name,omitempty" form:"first_name" validate:"omitempty,max=50" example:"Alice"`
	LastName  *string `json:"last_name,omitempty" form:"last_name" validate:"omitempty,max=50" example:"Smith"`
}
