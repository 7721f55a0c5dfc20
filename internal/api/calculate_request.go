package api

// swagger:model api.CalculateRequest
// 運算元接受 JSON 數字或數字字串；square_root 只需要 a
type CalculateRequest struct {
	A any `json:"a" example:"10"`
	B any `json:"b,omitempty" example:"5"`
}
