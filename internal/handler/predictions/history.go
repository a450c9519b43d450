// File: internal/handler/predictions/history.go
package predictions

import (
	"errors"
	"net/http"

	"loan-payback/internal/api"
	"loan-payback/internal/database"
	"loan-payback/internal/middleware"
	"loan-payback/internal/model"

	"github.com/labstack/echo/v4"
)

// HistoryHandler 回傳當前使用者的全部推論紀錄，新到舊
// @Summary     Prediction history
// @Description 查詢當前使用者的推論歷史，依建立時間新到舊
// @Tags        predictions
// @Produce     json
// @Success     200 {array} api.PredictionRecordResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /predictions/history [get]
func HistoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get(middleware.ContextUserKey).(*model.User)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		records, err := listPredictionsByUser(c.Request().Context(), db, user.ID)
		if err != nil {
			if errors.Is(err, database.ErrUnavailable) {
				return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "database unavailable"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load history"})
		}

		out := make([]api.PredictionRecordResponse, 0, len(records))
		for _, r := range records {
			out = append(out, api.NewPredictionRecordResponse(r))
		}
		return c.JSON(http.StatusOK, out)
	}
}
