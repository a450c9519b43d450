// File: internal/model/prediction.go
package model

import "time"

// 推論紀錄類型
const (
	PredictionTypeSingle = "single"
	PredictionTypeBatch  = "batch"
)

// Prediction 單筆推論紀錄，batch 類型的紀錄共享同一個 BatchID
type Prediction struct {
	ID                int       `db:"id" json:"id"`
	UserID            int       `db:"user_id" json:"user_id"`
	Name              string    `db:"name" json:"name"`
	AnnualIncome      float64   `db:"annual_income" json:"annual_income"`
	DebtToIncomeRatio float64   `db:"debt_to_income_ratio" json:"debt_to_income_ratio"`
	CreditScore       float64   `db:"credit_score" json:"credit_score"`
	LoanAmount        float64   `db:"loan_amount" json:"loan_amount"`
	InterestRate      float64   `db:"interest_rate" json:"interest_rate"`
	Gender            string    `db:"gender" json:"gender"`
	MaritalStatus     string    `db:"marital_status" json:"marital_status"`
	EducationLevel    string    `db:"education_level" json:"education_level"`
	EmploymentStatus  string    `db:"employment_status" json:"employment_status"`
	LoanPurpose       string    `db:"loan_purpose" json:"loan_purpose"`
	GradeSubgrade     string    `db:"grade_subgrade" json:"grade_subgrade"`
	Prediction        int       `db:"prediction" json:"prediction"`
	Probability       float64   `db:"probability" json:"probability"`
	PredictionType    string    `db:"prediction_type" json:"prediction_type"`
	BatchID           *string   `db:"batch_id" json:"batch_id,omitempty"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}
