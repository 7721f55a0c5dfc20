package calc

import (
	"errors"
	"net/http"

	"calc-api/internal/api"
	"calc-api/internal/cache"
	"calc-api/internal/database"
	"calc-api/internal/dto"
	"calc-api/internal/middleware"
	"calc-api/internal/model"
	"calc-api/internal/service"
	"calc-api/internal/store"

	"github.com/labstack/echo/v4"
)

var createCalculation = store.CreateCalculation

// binaryOps 對應雙運算元操作與其實作
var binaryOps = map[model.Operation]func(a, b float64) (float64, error){
	model.OperationAddition:       service.Add,
	model.OperationSubtraction:    service.Subtract,
	model.OperationMultiplication: service.Multiply,
	model.OperationDivision:       service.Divide,
	model.OperationExponentiation: service.Power,
}

// domainErrorLabel 對應運算領域錯誤的分類標籤
func domainErrorLabel(err error) string {
	switch {
	case errors.Is(err, service.ErrDivisionByZero):
		return "Division by zero"
	case errors.Is(err, service.ErrNegativeOperand):
		return "Invalid operand"
	case errors.Is(err, service.ErrNonFiniteResult):
		return "Invalid result"
	default:
		return "Invalid operand"
	}
}

// CalculateHandler 處理單一運算端點
// 匿名請求直接回傳結果；已認證請求會同步寫入歷史並讓統計快取失效
// @Summary     執行運算
// @Description 依路徑決定運算種類，運算元接受數字或數字字串
// @Tags        calc
// @Accept      json
// @Produce     json
// @Param       request body api.CalculateRequest true "運算元"
// @Success     200 {object} dto.CalculationResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /calc/{operation} [post]
func CalculateHandler(db database.DB, rdb cache.Cache, op model.Operation) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CalculateRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Validation failed", Message: "invalid request body"})
		}

		a, err := service.ParseOperand(req.A)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Invalid operand", Message: "operand a must be a number"})
		}

		operands := map[string]float64{"a": a}
		var result float64
		var operandB *float64
		if op == model.OperationSquareRoot {
			result, err = service.Sqrt(a)
		} else {
			var b float64
			b, err = service.ParseOperand(req.B)
			if err != nil {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Invalid operand", Message: "operand b must be a number"})
			}
			operands["b"] = b
			operandB = &b
			result, err = binaryOps[op](a, b)
		}
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: domainErrorLabel(err), Message: err.Error()})
		}

		resp := dto.CalculationResponse{
			Operation: op,
			Operands:  operands,
			Result:    result,
		}

		if user := middleware.CurrentUser(c); user != nil {
			calc := &model.Calculation{
				UserID:    user.ID,
				Operation: op,
				OperandA:  a,
				OperandB:  operandB,
				Result:    result,
			}
			if ua := c.Request().UserAgent(); ua != "" {
				calc.UserAgent = &ua
			}
			if ip := c.RealIP(); ip != "" {
				calc.IPAddress = &ip
			}

			saved, err := createCalculation(c.Request().Context(), db, calc)
			if err != nil {
				c.Logger().Error(err)
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Internal server error", Message: "failed to save calculation"})
			}
			resp.CalculationID = &saved.ID
			resp.SavedToHistory = true
			invalidateStatsCache(c, rdb, user.ID)
		}

		return c.JSON(http.StatusOK, resp)
	}
}
