package api

import (
	"time"

	"loan-payback/internal/model"
)

// PredictionRecordResponse 歷史查詢回傳的完整推論紀錄
// swagger:model api.PredictionRecordResponse
type PredictionRecordResponse struct {
	ID                int       `json:"id" example:"1"`
	UserID            int       `json:"user_id" example:"1"`
	Name              string    `json:"name" example:"Alice"`
	AnnualIncome      float64   `json:"annual_income" example:"90000"`
	DebtToIncomeRatio float64   `json:"debt_to_income_ratio" example:"0.25"`
	CreditScore       float64   `json:"credit_score" example:"750"`
	LoanAmount        float64   `json:"loan_amount" example:"20000"`
	InterestRate      float64   `json:"interest_rate" example:"5.0"`
	Gender            string    `json:"gender" example:"Female"`
	MaritalStatus     string    `json:"marital_status" example:"Single"`
	EducationLevel    string    `json:"education_level" example:"Bachelor"`
	EmploymentStatus  string    `json:"employment_status" example:"Employed"`
	LoanPurpose       string    `json:"loan_purpose" example:"Home"`
	GradeSubgrade     string    `json:"grade_subgrade" example:"A1"`
	Prediction        int       `json:"prediction" example:"1"`
	Probability       float64   `json:"probability" example:"0.9321"`
	PredictionType    string    `json:"prediction_type" example:"single"`
	BatchID           *string   `json:"batch_id,omitempty"`
	CreatedAt         time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

// NewPredictionRecordResponse 由模型轉換回應格式
func NewPredictionRecordResponse(p model.Prediction) PredictionRecordResponse {
	return PredictionRecordResponse{
		ID:                p.ID,
		UserID:            p.UserID,
		Name:              p.Name,
		AnnualIncome:      p.AnnualIncome,
		DebtToIncomeRatio: p.DebtToIncomeRatio,
		CreditScore:       p.CreditScore,
		LoanAmount:        p.LoanAmount,
		InterestRate:      p.InterestRate,
		Gender:            p.Gender,
		MaritalStatus:     p.MaritalStatus,
		EducationLevel:    p.EducationLevel,
		EmploymentStatus:  p.EmploymentStatus,
		LoanPurpose:       p.LoanPurpose,
		GradeSubgrade:     p.GradeSubgrade,
		Prediction:        p.Prediction,
		Probability:       p.Probability,
		PredictionType:    p.PredictionType,
		BatchID:           p.BatchID,
		CreatedAt:         p.CreatedAt,
	}
}
