// File: internal/dto/history_response.go
package dto

import "calc-api/internal/model"

// swagger:model dto.Pagination
type Pagination struct {
	Total   int  `json:"total" example:"3"`
	Limit   int  `json:"limit" example:"20"`
	Offset  int  `json:"offset" example:"0"`
	HasMore bool `json:"has_more" example:"false"`
}

// swagger:model dto.HistoryResponse
type HistoryResponse struct {
	Data       []model.Calculation `json:"data"`
	Pagination Pagination          `json:"pagination"`
}

// swagger:model dto.ClearHistoryResponse
type ClearHistoryResponse struct {
	DeletedCount int64 `json:"deleted_count" example:"5"`
}
