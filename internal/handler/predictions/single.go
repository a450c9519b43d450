// File: internal/handler/predictions/single.go
package predictions

import (
	"errors"
	"net/http"

	"loan-payback/internal/api"
	"loan-payback/internal/database"
	"loan-payback/internal/middleware"
	"loan-payback/internal/model"
	"loan-payback/internal/scorer"
	"loan-payback/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	createPrediction      = store.CreatePrediction
	listPredictionsByUser = store.ListPredictionsByUser
	newBatchID            = func() string { return uuid.New().String() }
)

// PredictSingleHandler 單筆推論：評分一次、寫入一筆紀錄
// @Summary     Single prediction
// @Description 對單筆貸款申請執行模型推論並持久化結果
// @Tags        predictions
// @Accept      json
// @Produce     json
// @Param       request body api.LoanApplicationRequest true "貸款申請資料"
// @Success     200 {object} api.PredictionResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     422 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /predict_single [post]
func PredictSingleHandler(db database.DB, scr *scorer.Scorer) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get(middleware.ContextUserKey).(*model.User)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.LoanApplicationRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		// 驗證失敗屬於語意錯誤，回 422 與批次路徑一致
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Message: api.ValidationMessage(err)})
		}

		// 先評分再進資料庫，不在評分期間佔用連線
		pred, prob, err := scr.Score(req.Features())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "scoring failed"})
		}

		record, err := createPrediction(c.Request().Context(), db, &model.Prediction{
			UserID:            user.ID,
			Name:              *req.Name,
			AnnualIncome:      *req.AnnualIncome,
			DebtToIncomeRatio: *req.DebtToIncomeRatio,
			CreditScore:       *req.CreditScore,
			LoanAmount:        *req.LoanAmount,
			InterestRate:      *req.InterestRate,
			Gender:            *req.Gender,
			MaritalStatus:     *req.MaritalStatus,
			EducationLevel:    *req.EducationLevel,
			EmploymentStatus:  *req.EmploymentStatus,
			LoanPurpose:       *req.LoanPurpose,
			GradeSubgrade:     *req.GradeSubgrade,
			Prediction:        pred,
			Probability:       prob,
			PredictionType:    model.PredictionTypeSingle,
		})
		if err != nil {
			if errors.Is(err, database.ErrUnavailable) {
				return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "database unavailable"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to save prediction"})
		}

		return c.JSON(http.StatusOK, api.PredictionResponse{
			ID:          record.ID,
			Prediction:  record.Prediction,
			Probability: record.Probability,
			CreatedAt:   record.CreatedAt,
		})
	}
}
