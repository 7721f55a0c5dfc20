package calc

import (
	"net/http"
	"time"

	"calc-api/internal/api"
	"calc-api/internal/cache"
	"calc-api/internal/database"
	"calc-api/internal/dto"
	"calc-api/internal/middleware"
	"calc-api/internal/model"
	"calc-api/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listCalculations  = store.ListCalculations
	clearCalculations = store.ClearCalculations
)

// HistoryHandler 查詢當前使用者的計算歷史，新到舊排序
// @Summary     查詢計算歷史
// @Description 支援依運算種類與日期區間過濾，limit 上限 100
// @Tags        calc
// @Produce     json
// @Param       limit      query int    false "單頁筆數 (預設 20，上限 100)"
// @Param       offset     query int    false "起始位移 (預設 0)"
// @Param       operation  query string false "運算種類"
// @Param       start_date query string false "起始日期 (RFC 3339，含)"
// @Param       end_date   query string false "結束日期 (RFC 3339，含)"
// @Success     200 {object} dto.HistoryResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /calc/history [get]
func HistoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		if user == nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "Access denied", Message: "invalid or missing token"})
		}

		var req api.HistoryQuery
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Validation failed", Message: "invalid query parameters"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Validation failed", Message: err.Error()})
		}

		filter := store.HistoryFilter{Limit: req.Limit, Offset: req.Offset}
		if req.Operation != "" {
			op := model.Operation(req.Operation)
			filter.Operation = &op
		}
		if req.StartDate != "" {
			start, err := time.Parse(time.RFC3339, req.StartDate)
			if err != nil {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Validation failed", Message: "start_date must be RFC 3339"})
			}
			filter.StartDate = &start
		}
		if req.EndDate != "" {
			end, err := time.Parse(time.RFC3339, req.EndDate)
			if err != nil {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Validation failed", Message: "end_date must be RFC 3339"})
			}
			filter.EndDate = &end
		}

		page, err := listCalculations(c.Request().Context(), db, user.ID, filter)
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Internal server error", Message: "failed to fetch history"})
		}

		return c.JSON(http.StatusOK, dto.HistoryResponse{
			Data: page.Calculations,
			Pagination: dto.Pagination{
				Total:   page.Total,
				Limit:   page.Limit,
				Offset:  page.Offset,
				HasMore: page.HasMore,
			},
		})
	}
}

// ClearHistoryHandler 刪除當前使用者全部歷史並回傳刪除筆數
// @Summary     清除計算歷史
// @Description 刪除當前使用者的所有歷史紀錄
// @Tags        calc
// @Produce     json
// @Success     200 {object} dto.ClearHistoryResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /calc/history [delete]
func ClearHistoryHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		if user == nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "Access denied", Message: "invalid or missing token"})
		}

		deleted, err := clearCalculations(c.Request().Context(), db, user.ID)
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Internal server error", Message: "failed to clear history"})
		}
		invalidateStatsCache(c, rdb, user.ID)

		return c.JSON(http.StatusOK, dto.ClearHistoryResponse{DeletedCount: deleted})
	}
}
