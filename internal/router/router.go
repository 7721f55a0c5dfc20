package router

import (
	"github.com/labstack/echo/v4"

	"calc-api/internal/cache"
	"calc-api/internal/database"
	"calc-api/internal/handler"
	"calc-api/internal/handler/auth"
	"calc-api/internal/handler/calc"
	"calc-api/internal/middleware"
	"calc-api/internal/model"
	"calc-api/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db))

	// 註冊與登入
	apiAuth := api.Group("/auth")
	apiAuth.POST("/register", auth.RegisterHandler(db))
	apiAuth.POST("/login", auth.LoginHandler(db, wp))

	// 個人資料與密碼（需登入）
	requireAuth := middleware.RequireAuth(db)
	apiAuth.GET("/profile", auth.ProfileHandler(db), requireAuth)
	apiAuth.PUT("/profile", auth.UpdateProfileHandler(db), requireAuth)
	apiAuth.PUT("/password", auth.ChangePasswordHandler(db), requireAuth)

	// 運算端點：匿名可用，登入後才寫入歷史
	apiCalc := api.Group("/calc")
	optionalAuth := middleware.OptionalAuth(db)
	apiCalc.POST("/add", calc.CalculateHandler(db, rdb, model.OperationAddition), optionalAuth)
	apiCalc.POST("/subtract", calc.CalculateHandler(db, rdb, model.OperationSubtraction), optionalAuth)
	apiCalc.POST("/multiply", calc.CalculateHandler(db, rdb, model.OperationMultiplication), optionalAuth)
	apiCalc.POST("/divide", calc.CalculateHandler(db, rdb, model.OperationDivision), optionalAuth)
	apiCalc.POST("/power", calc.CalculateHandler(db, rdb, model.OperationExponentiation), optionalAuth)
	apiCalc.POST("/sqrt", calc.CalculateHandler(db, rdb, model.OperationSquareRoot), optionalAuth)

	// 歷史與統計（需登入）
	apiCalc.GET("/history", calc.HistoryHandler(db), requireAuth)
	apiCalc.DELETE("/history", calc.ClearHistoryHandler(db, rdb), requireAuth)
	apiCalc.GET("/stats", calc.StatsHandler(db, rdb), requireAuth)
}
