package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"calc-api/internal/database"
	"calc-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrUserNotFound 查無使用者
var ErrUserNotFound = errors.New("user not found")

// DuplicateError username 或 email 與既有帳號衝突
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s is already taken", e.Field)
}

// duplicateField 從 unique violation 的 constraint 名稱判斷衝突欄位
// 唯一索引是重複帳號的最終仲裁者，應用層不做預先檢查
func duplicateField(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return "", false
	}
	if strings.Contains(pgErr.ConstraintName, "email") {
		return "email", true
	}
	return "username", true
}

const userColumns = `id, username, email, password_hash, first_name, last_name, is_active, last_login, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.IsActive,
		&u.LastLogin,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash, first_name, last_name)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, is_active, created_at, updated_at`,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
	)
	if err := row.Scan(&u.ID, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if field, ok := duplicateField(err); ok {
			return nil, &DuplicateError{Field: field}
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// GetUserByLogin 以 username 或 email 查詢，僅限啟用中的帳號
func GetUserByLogin(ctx context.Context, db database.DB, login string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE (username = $1 OR email = $1) AND is_active`,
		login,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("GetUserByLogin: %w", err)
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE id = $1`,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

// UpdateUserProfile 僅更新有提供的欄位，nil 表示維持原值
func UpdateUserProfile(ctx context.Context, db database.DB, userID int, firstName, lastName, email *string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`UPDATE users
		 SET first_name = COALESCE($1, first_name),
		     last_name  = COALESCE($2, last_name),
		     email      = COALESCE($3, email),
		     updated_at = now()
		 WHERE id = $4
		 RETURNING `+userColumns,
		firstName,
		lastName,
		email,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		if field, ok := duplicateField(err); ok {
			return nil, &DuplicateError{Field: field}
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("UpdateUserProfile: %w", err)
	}
	return u, nil
}

func UpdateUserPassword(ctx context.Context, db database.DB, userID int, passwordHash string) error {
	_, err := db.Exec(ctx,
		`UPDATE users
		 SET password_hash = $1, updated_at = now()
		 WHERE id = $2`,
		passwordHash,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserPassword: %w", err)
	}
	return nil
}

// TouchUserLastLogin 將最後登入時間設為現在
func TouchUserLastLogin(ctx context.Context, db database.DB, userID int) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET last_login = now() WHERE id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("TouchUserLastLogin: %w", err)
	}
	return nil
}
