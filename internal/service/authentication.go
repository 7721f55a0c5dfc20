// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"

	"calc-api/internal/model"
)

// ErrInvalidCredentials 帳號或密碼錯誤時回傳
// 訊息刻意不區分是識別字還是密碼錯誤
var ErrInvalidCredentials = errors.New("invalid username/email or password")

// AuthenticateUser 根據使用者結構和明文密碼驗證，成功回傳使用者
func AuthenticateUser(ctx context.Context, user model.User, password string) (*model.User, error) {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
