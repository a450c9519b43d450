package api

import "loan-payback/internal/scorer"

// LoanApplicationRequest 單筆貸款申請的固定欄位集合。
// name 只作為紀錄附註，不進模型；其餘欄位即模型輸入。
// 欄位為指標型別：required 驗證的是欄位有無出現，
// 零值（如 debt_to_income_ratio 為 0 的無負債申請人）是合法輸入。
// swagger:model api.LoanApplicationRequest
type LoanApplicationRequest struct {
	Name              *string  `json:"name" validate:"required" example:"Alice"`
	AnnualIncome      *float64 `json:"annual_income" validate:"required" example:"90000"`
	DebtToIncomeRatio *float64 `json:"debt_to_income_ratio" validate:"required" example:"0.25"`
	CreditScore       *float64 `json:"credit_score" validate:"required" example:"750"`
	LoanAmount        *float64 `json:"loan_amount" validate:"required" example:"20000"`
	InterestRate      *float64 `json:"interest_rate" validate:"required" example:"5.0"`
	Gender            *string  `json:"gender" validate:"required" example:"Female"`
	MaritalStatus     *string  `json:"marital_status" validate:"required" example:"Single"`
	EducationLevel    *string  `json:"education_level" validate:"required" example:"Bachelor"`
	EmploymentStatus  *string  `json:"employment_status" validate:"required" example:"Employed"`
	LoanPurpose       *string  `json:"loan_purpose" validate:"required" example:"Home"`
	GradeSubgrade     *string  `json:"grade_subgrade" validate:"required" example:"A1"`
}

// Features 去掉 name 後轉成模型輸入。
// 必須在 Validate 通過後呼叫，所有欄位保證非 nil。
func (r LoanApplicationRequest) Features() scorer.Features {
	return scorer.Features{
		AnnualIncome:      *r.AnnualIncome,
		DebtToIncomeRatio: *r.DebtToIncomeRatio,
		CreditScore:       *r.CreditScore,
		LoanAmount:        *r.LoanAmount,
		InterestRate:      *r.InterestRate,
		Gender:            *r.Gender,
		MaritalStatus:     *r.MaritalStatus,
		EducationLevel:    *r.EducationLevel,
		EmploymentStatus:  *r.EmploymentStatus,
		LoanPurpose:       *r.LoanPurpose,
		GradeSubgrade:     *r.GradeSubgrade,
	}
}
