// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"loan-payback/internal/cache"
	"loan-payback/internal/database"
	"loan-payback/internal/handler"
	"loan-payback/internal/handler/auth"
	"loan-payback/internal/handler/predictions"
	"loan-payback/internal/middleware"
	"loan-payback/internal/scorer"
	"loan-payback/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, scr *scorer.Scorer, wp worker.Pool) {
	// 註冊與登入不需認證
	e.POST("/register", auth.RegisterHandler(db))
	e.POST("/login", auth.LoginHandler(db))

	// 其餘端點一律要求 bearer token
	authed := e.Group("", middleware.RequireAuth(db, rdb, wp))
	authed.GET("/ping", handler.PingHandler(db))
	authed.POST("/predict_single", predictions.PredictSingleHandler(db, scr))
	authed.POST("/predict_batch", predictions.PredictBatchHandler(db, scr))
	authed.GET("/predictions/history", predictions.HistoryHandler(db))
}
