// File: internal/handler/predictions/batch.go
package predictions

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"loan-payback/internal/api"
	"loan-payback/internal/database"
	"loan-payback/internal/middleware"
	"loan-payback/internal/model"
	"loan-payback/internal/scorer"

	"github.com/labstack/echo/v4"
)

// 缺少 name 欄位時寫入的預設值
const unknownName = "Unknown"

// CSV 必要欄位，name 為選填
var requiredColumns = []string{
	"annual_income",
	"debt_to_income_ratio",
	"credit_score",
	"loan_amount",
	"interest_rate",
	"gender",
	"marital_status",
	"education_level",
	"employment_status",
	"loan_purpose",
	"grade_subgrade",
}

// loanRow 批次 CSV 的一列。欄位與單筆申請相同，
// 但 CSV 解析時缺漏即報錯，不需指標區分有無出現。
type loanRow struct {
	Name              string
	AnnualIncome      float64
	DebtToIncomeRatio float64
	CreditScore       float64
	LoanAmount        float64
	InterestRate      float64
	Gender            string
	MaritalStatus     string
	EducationLevel    string
	EmploymentStatus  string
	LoanPurpose       string
	GradeSubgrade     string
}

func (r loanRow) features() scorer.Features {
	return scorer.Features{
		AnnualIncome:      r.AnnualIncome,
		DebtToIncomeRatio: r.DebtToIncomeRatio,
		CreditScore:       r.CreditScore,
		LoanAmount:        r.LoanAmount,
		InterestRate:      r.InterestRate,
		Gender:            r.Gender,
		MaritalStatus:     r.MaritalStatus,
		EducationLevel:    r.EducationLevel,
		EmploymentStatus:  r.EmploymentStatus,
		LoanPurpose:       r.LoanPurpose,
		GradeSubgrade:     r.GradeSubgrade,
	}
}

// readLoanRows 解析上傳的 CSV，依表頭對應欄位，回傳輸入順序的資料列
func readLoanRows(r io.Reader) ([]loanRow, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	numeric := func(rec []string, col string, line int) (float64, error) {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[idx[col]]), 64)
		if err != nil {
			return 0, fmt.Errorf("row %d: invalid %s: %q", line, col, rec[idx[col]])
		}
		return v, nil
	}

	var rows []loanRow
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}

		row := loanRow{Name: unknownName}
		if i, ok := idx["name"]; ok && strings.TrimSpace(rec[i]) != "" {
			row.Name = strings.TrimSpace(rec[i])
		}
		if row.AnnualIncome, err = numeric(rec, "annual_income", line); err != nil {
			return nil, err
		}
		if row.DebtToIncomeRatio, err = numeric(rec, "debt_to_income_ratio", line); err != nil {
			return nil, err
		}
		if row.CreditScore, err = numeric(rec, "credit_score", line); err != nil {
			return nil, err
		}
		if row.LoanAmount, err = numeric(rec, "loan_amount", line); err != nil {
			return nil, err
		}
		if row.InterestRate, err = numeric(rec, "interest_rate", line); err != nil {
			return nil, err
		}
		row.Gender = strings.TrimSpace(rec[idx["gender"]])
		row.MaritalStatus = strings.TrimSpace(rec[idx["marital_status"]])
		row.EducationLevel = strings.TrimSpace(rec[idx["education_level"]])
		row.EmploymentStatus = strings.TrimSpace(rec[idx["employment_status"]])
		row.LoanPurpose = strings.TrimSpace(rec[idx["loan_purpose"]])
		row.GradeSubgrade = strings.TrimSpace(rec[idx["grade_subgrade"]])
		rows = append(rows, row)
	}
	return rows, nil
}

// PredictBatchHandler 批次推論：整批共用一個 batch_id，
// 每列依輸入順序評分並各自以獨立交易寫入。
// 中途失敗不回滾已寫入的列（部分成功是既定行為，非全有全無）。
// @Summary     Batch prediction
// @Description 上傳 CSV 檔 (欄位同單筆推論，name 選填) 執行批次推論
// @Tags        predictions
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "貸款申請 CSV"
// @Success     200 {object} api.BatchPredictionResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     422 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /predict_batch [post]
func PredictBatchHandler(db database.DB, scr *scorer.Scorer) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := c.Get(middleware.ContextUserKey).(*model.User)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "missing file upload"})
		}
		f, err := fileHeader.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "failed to open upload"})
		}
		defer f.Close()

		rows, err := readLoanRows(f)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Message: err.Error()})
		}

		batchID := newBatchID()
		results := make([]api.BatchRowResult, 0, len(rows))
		for _, row := range rows {
			pred, prob, err := scr.Score(row.features())
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "scoring failed"})
			}

			if _, err := createPrediction(c.Request().Context(), db, &model.Prediction{
				UserID:            user.ID,
				Name:              row.Name,
				AnnualIncome:      row.AnnualIncome,
				DebtToIncomeRatio: row.DebtToIncomeRatio,
				CreditScore:       row.CreditScore,
				LoanAmount:        row.LoanAmount,
				InterestRate:      row.InterestRate,
				Gender:            row.Gender,
				MaritalStatus:     row.MaritalStatus,
				EducationLevel:    row.EducationLevel,
				EmploymentStatus:  row.EmploymentStatus,
				LoanPurpose:       row.LoanPurpose,
				GradeSubgrade:     row.GradeSubgrade,
				Prediction:        pred,
				Probability:       prob,
				PredictionType:    model.PredictionTypeBatch,
				BatchID:           &batchID,
			}); err != nil {
				if errors.Is(err, database.ErrUnavailable) {
					return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "database unavailable"})
				}
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to save prediction"})
			}

			results = append(results, api.BatchRowResult{
				Name:        row.Name,
				Prediction:  pred,
				Probability: prob,
			})
		}

		return c.JSON(http.StatusOK, api.BatchPredictionResponse{
			BatchID:     batchID,
			Count:       len(results),
			Predictions: results,
		})
	}
}
