// File: internal/dto/calculation_response.go
package dto

import "calc-api/internal/model"

// CalculationResponse 單次運算結果
// SavedToHistory 僅在已認證請求寫入歷史後為 true
// swagger:model dto.CalculationResponse
type CalculationResponse struct {
	Operation      model.Operation    `json:"operation" example:"addition"`
	Operands       map[string]float64 `json:"operands"`
	Result         float64            `json:"result" example:"15"`
	CalculationID  *int               `json:"calculation_id,omitempty" example:"42"`
	SavedToHistory bool               `json:"saved_to_history" example:"true"`
}
