package auth

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"calc-api/internal/api"
	"calc-api/internal/database"
	"calc-api/internal/dto"
	"calc-api/internal/model"
	"calc-api/internal/service"
	"calc-api/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword     = service.HashPassword
	issueAccessToken = service.IssueAccessToken
	createUser       = store.CreateUser
)

// tokenTTL 讀取 JWT_TTL，未設定或無效時預設 24 小時
func tokenTTL() time.Duration {
	if v := os.Getenv("JWT_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return 24 * time.Hour
}

// RegisterHandler 註冊新帳號並直接發行存取令牌
// @Summary     註冊使用者
// @Description 建立新帳號 (Email 會自動轉小寫)，成功時回傳使用者與存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "註冊資料"
// @Success     201 {object} dto.LoginResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Validation failed", Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Validation failed", Message: err.Error()})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Registration failed", Message: "internal server error"})
		}

		req.Email = strings.ToLower(req.Email)
		user, err := createUser(c.Request().Context(), db, &model.User{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: hash,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
		})
		if err != nil {
			var dup *store.DuplicateError
			if errors.As(err, &dup) {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Duplicate value", Message: dup.Error()})
			}
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Registration failed", Message: "internal server error"})
		}

		token, expiresAt, err := issueAccessToken(*user, tokenTTL())
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Registration failed", Message: "failed to issue token"})
		}

		return c.JSON(http.StatusCreated, dto.LoginResponse{
			User:        dto.NewUserResponse(user),
			AccessToken: token,
			ExpiresAt:   expiresAt,
		})
	}
}
