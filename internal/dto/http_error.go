// File: internal/dto/http_error.go
package dto

// HTTPError 全域錯誤響應模型
// Error 為錯誤分類，Message 為可供呼叫端修正請求的描述
// swagger:model dto.HTTPError
type HTTPError struct {
	Error   string `json:"error,omitempty" example:"Validation failed"`
	Message string `json:"message" example:"username is required"`
}
