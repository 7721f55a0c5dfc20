package auth

import (
	"errors"
	"net/http"
	"strings"

	"calc-api/internal/api"
	"calc-api/internal/database"
	"calc-api/internal/dto"
	"calc-api/internal/middleware"
	"calc-api/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getCalculationStats = store.GetCalculationStats
	updateUserProfile   = store.UpdateUserProfile
)

// ProfileHandler 回傳當前使用者資料與計算統計
// @Summary     取得個人資料
// @Description 透過 JWT 取得當前使用者詳細資訊與計算統計
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.ProfileResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /auth/profile [get]
func ProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		if user == nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "Access denied", Message: "invalid or missing token"})
		}

		stats, err := getCalculationStats(c.Request().Context(), db, user.ID)
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Profile fetch failed", Message: "internal server error"})
		}

		return c.JSON(http.StatusOK, dto.ProfileResponse{
			User:  dto.NewUserResponse(user),
			Stats: stats,
		})
	}
}

// UpdateProfileHandler 更新當前使用者的個人資料，僅套用有提供的欄位
// @Summary     更新個人資料
// @Description 更新姓名或 Email (Email 會自動轉小寫)，未提供的欄位維持原值
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.UpdateProfileRequest true "更新資料"
// @Success     200 {object} dto.ProfileResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /auth/profile [put]
func UpdateProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		if user == nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "Access denied", Message: "invalid or missing token"})
		}

		var req api.UpdateProfileRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Validation failed", Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Validation failed", Message: err.Error()})
		}

		if req.Email != nil {
			lower := strings.ToLower(*req.Email)
			req.Email = &lower
		}

		updated, err := updateUserProfile(c.Request().Context(), db, user.ID, req.FirstName, req.LastName, req.Email)
		if err != nil {
			var dup *store.DuplicateError
			if errors.As(err, &dup) {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Duplicate value", Message: dup.Error()})
			}
			if errors.Is(err, store.ErrUserNotFound) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Error: "User not found", Message: "user not found for update"})
			}
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Profile update failed", Message: "internal server error"})
		}

		return c.JSON(http.StatusOK, dto.ProfileResponse{User: dto.NewUserResponse(updated)})
	}
}
