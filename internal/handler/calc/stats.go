package calc

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"calc-api/internal/cache"
	"calc-api/internal/database"
	"calc-api/internal/dto"
	"calc-api/internal/middleware"
	"calc-api/internal/store"

	"github.com/labstack/echo/v4"
)

var getCalculationStats = store.GetCalculationStats

// statsCacheTTL 統計快取存活時間，任何歷史寫入或清除都會讓快取失效
const statsCacheTTL = 5 * time.Minute

func statsCacheKey(userID int) string {
	return fmt.Sprintf("stats:%d", userID)
}

// invalidateStatsCache 快取失效失敗僅記錄，不影響主流程
func invalidateStatsCache(c echo.Context, rdb cache.Cache, userID int) {
	if rdb == nil {
		return
	}
	if err := rdb.Del(c.Request().Context(), statsCacheKey(userID)).Err(); err != nil {
		c.Logger().Error(err)
	}
}

// StatsHandler 回傳當前使用者的計算統計，結果快取於 Redis
// @Summary     取得計算統計
// @Description 回傳總筆數、各運算種類使用統計與最早/最晚紀錄時間
// @Tags        calc
// @Produce     json
// @Success     200 {object} store.CalculationStats
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /calc/stats [get]
func StatsHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		if user == nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "Access denied", Message: "invalid or missing token"})
		}

		key := statsCacheKey(user.ID)
		if rdb != nil {
			if raw, err := rdb.Get(c.Request().Context(), key).Result(); err == nil {
				var cached store.CalculationStats
				if json.Unmarshal([]byte(raw), &cached) == nil {
					return c.JSON(http.StatusOK, cached)
				}
			}
		}

		stats, err := getCalculationStats(c.Request().Context(), db, user.ID)
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "Internal server error", Message: "failed to fetch statistics"})
		}

		if rdb != nil {
			if buf, err := json.Marshal(stats); err == nil {
				if err := rdb.Set(c.Request().Context(), key, buf, statsCacheTTL).Err(); err != nil {
					c.Logger().Error(err)
				}
			}
		}

		return c.JSON(http.StatusOK, stats)
	}
}
