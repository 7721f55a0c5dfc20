package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"calc-api/internal/database"
	"calc-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/* ---------- 假實作 ---------- */

// fakeUserRow 支援兩種 Scan 呼叫場景：
// 1) len(dest)==10 → 完整使用者列
// 2) len(dest)==4  → CreateUser (id, is_active, created_at, updated_at)
type fakeUserRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	switch len(dest) {
	case 10:
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Username
		*dest[2].(*string) = u.Email
		*dest[3].(*string) = u.PasswordHash
		*dest[4].(**string) = u.FirstName
		*dest[5].(**string) = u.LastName
		*dest[6].(*bool) = u.IsActive
		*dest[7].(**time.Time) = u.LastLogin
		*dest[8].(*time.Time) = u.CreatedAt
		*dest[9].(*time.Time) = u.UpdatedAt
	case 4:
		*dest[0].(*int) = u.ID
		*dest[1].(*bool) = u.IsActive
		*dest[2].(*time.Time) = u.CreatedAt
		*dest[3].(*time.Time) = u.UpdatedAt
	default:
		panic("fakeUserRow.Scan: unexpected dest count")
	}
	return nil
}

/* ---------- 完整測試 ---------- */

func TestUserStore(t *testing.T) {
	now := time.Now().UTC()
	first := "Alice"
	sample := &model.User{
		ID:           7,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash123",
		FirstName:    &first,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	/* --- CreateUser --- */
	t.Run("CreateUser success", func(t *testing.T) {
		newUser := &model.User{Username: "bob", Email: "bob@example.com", PasswordHash: "pwdhash"}
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				u := *newUser
				u.ID = 42
				u.IsActive = true
				u.CreatedAt = now
				u.UpdatedAt = now
				return &fakeUserRow{user: &u}
			},
		}
		u, err := CreateUser(context.Background(), p, newUser)
		require.NoError(t, err)
		require.Equal(t, 42, u.ID)
		require.True(t, u.IsActive)
	})

	t.Run("CreateUser duplicate username", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}}
			},
		}
		_, err := CreateUser(context.Background(), p, &model.User{Username: "alice"})
		var dup *DuplicateError
		require.ErrorAs(t, err, &dup)
		require.Equal(t, "username", dup.Field)
	})

	t.Run("CreateUser duplicate email", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}}
			},
		}
		_, err := CreateUser(context.Background(), p, &model.User{Email: "alice@example.com"})
		var dup *DuplicateError
		require.ErrorAs(t, err, &dup)
		require.Equal(t, "email", dup.Field)
	})

	t.Run("CreateUser other error", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: errors.New("boom")}
			},
		}
		_, err := CreateUser(context.Background(), p, &model.User{})
		require.Error(t, err)
		var dup *DuplicateError
		require.False(t, errors.As(err, &dup))
	})

	/* --- GetUserByLogin --- */
	t.Run("GetUserByLogin success", func(t *testing.T) {
		var gotSQL string
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
				gotSQL = sql
				return &fakeUserRow{user: sample}
			},
		}
		u, err := GetUserByLogin(context.Background(), p, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, 7, u.ID)
		require.Contains(t, gotSQL, "username = $1 OR email = $1")
		require.Contains(t, gotSQL, "is_active")
	})

	t.Run("GetUserByLogin not found", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		u, err := GetUserByLogin(context.Background(), p, "ghost")
		require.ErrorIs(t, err, ErrUserNotFound)
		require.Nil(t, u)
	})

	/* --- GetUserByID --- */
	t.Run("GetUserByID success", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{user: sample}
			},
		}
		u, err := GetUserByID(context.Background(), p, 7)
		require.NoError(t, err)
		require.Equal(t, sample.Email, u.Email)
		require.Equal(t, &first, u.FirstName)
	})

	t.Run("GetUserByID not found", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		u, err := GetUserByID(context.Background(), p, 999)
		require.ErrorIs(t, err, ErrUserNotFound)
		require.Nil(t, u)
	})

	/* --- UpdateUserProfile --- */
	t.Run("UpdateUserProfile partial fields", func(t *testing.T) {
		var gotArgs []any
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeUserRow{user: sample}
			},
		}
		last := "Smith"
		u, err := UpdateUserProfile(context.Background(), p, 7, nil, &last, nil)
		require.NoError(t, err)
		require.Equal(t, 7, u.ID)
		require.Len(t, gotArgs, 4)
		require.Nil(t, gotArgs[0])
		require.Equal(t, &last, gotArgs[1])
		require.Nil(t, gotArgs[2])
		require.Equal(t, 7, gotArgs[3])
	})

	t.Run("UpdateUserProfile duplicate email", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}}
			},
		}
		email := "taken@example.com"
		_, err := UpdateUserProfile(context.Background(), p, 7, nil, nil, &email)
		var dup *DuplicateError
		require.ErrorAs(t, err, &dup)
		require.Equal(t, "email", dup.Field)
	})

	t.Run("UpdateUserProfile not found", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := UpdateUserProfile(context.Background(), p, 999, nil, nil, nil)
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	/* --- UpdateUserPassword --- */
	t.Run("UpdateUserPassword", func(t *testing.T) {
		called := false
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				called = true
				require.Equal(t, "newhash", args[0])
				require.Equal(t, 7, args[1])
				return pgconn.CommandTag{}, nil
			},
		}
		require.NoError(t, UpdateUserPassword(context.Background(), p, 7, "newhash"))
		require.True(t, called)
	})

	/* --- TouchUserLastLogin --- */
	t.Run("TouchUserLastLogin", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
				require.Contains(t, sql, "last_login")
				require.Equal(t, 7, args[0])
				return pgconn.CommandTag{}, nil
			},
		}
		require.NoError(t, TouchUserLastLogin(context.Background(), p, 7))

		p.ExecFn = func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, errors.New("down")
		}
		require.Error(t, TouchUserLastLogin(context.Background(), p, 7))
	})
}
