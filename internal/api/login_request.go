package api

// swagger:model api.LoginRequest
// Login 可填 username 或 email
type LoginRequest struct {
	Login    string `json:"login" form:"login" validate:"required" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required" example:"Passw0rd"`
}
