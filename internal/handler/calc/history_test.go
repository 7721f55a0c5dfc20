package calc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"calc-api/internal/database"
	"calc-api/internal/middleware"
	"calc-api/internal/model"
	"calc-api/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// helper to build echo context with query parameters
func newQueryCtx(e *echo.Echo, method, query string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHistoryHandler(t *testing.T) {
	t.Cleanup(restore)
	user := &model.User{ID: 5, Username: "alice", IsActive: true}

	// missing user in context
	e := echo.New()
	e.Validator = okValidator{}
	ctx, rec := newQueryCtx(e, http.MethodGet, "")
	h := HistoryHandler(&database.FakeDB{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// bind error
	be := echo.New()
	be.Binder = errBinder{}
	ctx, rec = newQueryCtx(be, http.MethodGet, "")
	ctx.Set(middleware.ContextUserKey, user)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	ve := echo.New()
	ve.Validator = errValidator{}
	ctx, rec = newQueryCtx(ve, http.MethodGet, "limit=1000")
	ctx.Set(middleware.ContextUserKey, user)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// bad start_date
	ctx, rec = newQueryCtx(e, http.MethodGet, "start_date=yesterday")
	ctx.Set(middleware.ContextUserKey, user)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "start_date")

	// bad end_date
	ctx, rec = newQueryCtx(e, http.MethodGet, "end_date=tomorrow")
	ctx.Set(middleware.ContextUserKey, user)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "end_date")

	// store error
	listCalculations = func(context.Context, database.DB, int, store.HistoryFilter) (*store.HistoryPage, error) {
		return nil, errors.New("boom")
	}
	ctx, rec = newQueryCtx(e, http.MethodGet, "")
	ctx.Set(middleware.ContextUserKey, user)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success with every filter applied
	listCalculations = func(ctx context.Context, db database.DB, userID int, f store.HistoryFilter) (*store.HistoryPage, error) {
		require.Equal(t, 5, userID)
		require.Equal(t, 10, f.Limit)
		require.Equal(t, 20, f.Offset)
		require.NotNil(t, f.Operation)
		require.Equal(t, model.OperationDivision, *f.Operation)
		require.NotNil(t, f.StartDate)
		require.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), f.StartDate.UTC())
		require.NotNil(t, f.EndDate)
		return &store.HistoryPage{
			Calculations: []model.Calculation{{ID: 1, UserID: 5, Operation: model.OperationDivision}},
			Total:        31,
			Limit:        10,
			Offset:       20,
			HasMore:      true,
		}, nil
	}
	ctx, rec = newQueryCtx(e, http.MethodGet,
		"limit=10&offset=20&operation=division&start_date=2025-01-01T00:00:00Z&end_date=2025-12-31T23:59:59Z")
	ctx.Set(middleware.ContextUserKey, user)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"total":31`)
	require.Contains(t, rec.Body.String(), `"has_more":true`)
}

func TestClearHistoryHandler(t *testing.T) {
	t.Cleanup(restore)
	user := &model.User{ID: 5, Username: "alice", IsActive: true}

	// missing user in context
	e := echo.New()
	ctx, rec := newQueryCtx(e, http.MethodDelete, "")
	h := ClearHistoryHandler(&database.FakeDB{}, nil)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// store error
	clearCalculations = func(context.Context, database.DB, int) (int64, error) {
		return 0, errors.New("boom")
	}
	ctx, rec = newQueryCtx(e, http.MethodDelete, "")
	ctx.Set(middleware.ContextUserKey, user)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success drops the stats cache and reports the count
	clearCalculations = func(ctx context.Context, db database.DB, userID int) (int64, error) {
		require.Equal(t, 5, userID)
		return 7, nil
	}
	var deleted []string
	ctx, rec = newQueryCtx(e, http.MethodDelete, "")
	ctx.Set(middleware.ContextUserKey, user)
	h = ClearHistoryHandler(&database.FakeDB{}, delRecorder(&deleted))
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"deleted_count":7`)
	require.Equal(t, []string{"stats:5"}, deleted)
}
