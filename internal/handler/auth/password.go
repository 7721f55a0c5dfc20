package auth

import (
	"net/http"

	"calc-api/internal/api"
	"calc-api/internal/database"
	"calc-api/internal/dto"
	"calc-api/internal/middleware"
	"calc-api/internal/store"

	"github.com/labstack/echo/v4"
)

var updateUserPassword = store.UpdateUserPassword

// ChangePasswordHandler 驗證舊密碼並更新為新密碼
// 已發行的令牌在到期前仍然有效
// @Summary     變更密碼
// @Description 驗證當前密碼並更新為新密碼
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.ChangePasswordRequest true "密碼資料"
// @Success     204 "No Content"
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /auth/password [put]
func ChangePasswordHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		if user == nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "Access denied", Message: "invalid or missing token"})
		}

		var req api.ChangePasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Validation failed", Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Validation failed", Message: err.Error()})
		}

		if _, err := authenticateUser(c.Request().Context(), *user, req.CurrentPassword); err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "Invalid password", Message: "current password is incorrect"})
		}

		hash, err := hashPassword(req.NewPassword)
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Password change failed", Message: "internal server error"})
		}

		if err := updateUserPassword(c.Request().Context(), db, user.ID, hash); err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Password change failed", Message: "internal server error"})
		}

		return c.NoContent(http.StatusNoContent)
	}
}
