package middleware

import (
	"net/http"
	"strings"

	"calc-api/internal/database"
	"calc-api/internal/model"
	"calc-api/internal/service"
	"calc-api/internal/store"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

var (
	verifyAccessToken = service.VerifyAccessToken
	getUserByID       = store.GetUserByID
)

// resolveIdentity 為兩種中介層共用的驗證核心：
// 解析 Bearer 標頭、驗證令牌、載入使用者並確認帳號啟用中
func resolveIdentity(c echo.Context, db database.DB) (*model.User, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := verifyAccessToken(parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token: "+err.Error())
	}
	user, err := getUserByID(c.Request().Context(), db, claims.UserID)
	if err != nil || !user.IsActive {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "user not found or inactive")
	}
	return user, nil
}

// RequireAuth 驗證失敗一律拒絕請求
func RequireAuth(db database.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := resolveIdentity(c, db)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// OptionalAuth 驗證失敗時以匿名身分繼續，絕不因認證問題拒絕請求
func OptionalAuth(db database.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if user, err := resolveIdentity(c, db); err == nil {
				c.Set(ContextUserKey, user)
			}
			return next(c)
		}
	}
}

// CurrentUser 取出中介層放入的使用者，匿名時回傳 nil
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(ContextUserKey).(*model.User)
	return user
}
