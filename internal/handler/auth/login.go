package auth

import (
	"context"
	"net/http"

	"calc-api/internal/api"
	"calc-api/internal/database"
	"calc-api/internal/dto"
	"calc-api/internal/service"
	"calc-api/internal/store"
	"calc-api/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	getUserByLogin     = store.GetUserByLogin
	authenticateUser   = service.AuthenticateUser
	touchUserLastLogin = store.TouchUserLastLogin
)

// LoginHandler 使用 username 或 email 搭配密碼驗證並回傳 JWT
// 無論是識別字還是密碼錯誤，一律回傳相同的通用訊息
// @Summary     登入使用者
// @Description 使用 username 或 email 與密碼進行驗證，回傳存取令牌與到期時間
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "登入資料"
// @Success     200 {object} dto.LoginResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler(db database.DB, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Validation failed", Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "Validation failed", Message: err.Error()})
		}

		user, err := getUserByLogin(c.Request().Context(), db, req.Login)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "Invalid credentials", Message: service.ErrInvalidCredentials.Error()})
		}

		authUser, err := authenticateUser(c.Request().Context(), *user, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "Invalid credentials", Message: service.ErrInvalidCredentials.Error()})
		}

		token, expiresAt, err := issueAccessToken(*authUser, tokenTTL())
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Login failed", Message: "failed to issue token"})
		}

		// 最後登入時間由 worker pool 非同步更新，不影響登入結果
		userID := authUser.ID
		logger := c.Logger()
		wp.Submit(func() {
			if err := touchUserLastLogin(context.Background(), db, userID); err != nil {
				logger.Error(err)
			}
		})

		return c.JSON(http.StatusOK, dto.LoginResponse{
			User:        dto.NewUserResponse(authUser),
			AccessToken: token,
			ExpiresAt:   expiresAt,
		})
	}
}
