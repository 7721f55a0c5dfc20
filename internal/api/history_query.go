package api

// swagger:model api.HistoryQuery
// 日期為 RFC 3339 格式，區間兩端皆含
type HistoryQuery struct {
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=100" example:"20"`
	Offset    int    `query:"offset" validate:"omitempty,min=0" example:"0"`
	Operation string `query:"operation" validate:"omitempty,oneof=addition subtraction multiplication division exponentiation square_root" example:"addition"`
	StartDate string `query:"start_date" validate:"omitempty" example:"2025-01-01T00:00:00Z"`
	EndDate   string `query:"end_date" validate:"omitempty" example:"2025-12-31T23:59:59Z"`
}
