// File: internal/scorer/scorer.go
package scorer

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Features 送入模型的特徵向量，不含 name（name 只是紀錄用的附註欄位）
type Features struct {
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

// value 依 metadata 宣告的欄位名稱取值
func (f Features) value(column string) (any, bool) {
	switch column {
	case "annual_income":
		return f.AnnualIncome, true
	case "debt_to_income_ratio":
		return f.DebtToIncomeRatio, true
	case "credit_score":
		return f.CreditScore, true
	case "loan_amount":
		return f.LoanAmount, true
	case "interest_rate":
		return f.InterestRate, true
	case "gender":
		return f.Gender, true
	case "marital_status":
		return f.MaritalStatus, true
	case "education_level":
		return f.EducationLevel, true
	case "employment_status":
		return f.EmploymentStatus, true
	case "loan_purpose":
		return f.LoanPurpose, true
	case "grade_subgrade":
		return f.GradeSubgrade, true
	}
	return nil, false
}

// meta 描述模型期望的特徵欄位與順序
type meta struct {
	FeatureColumns []string `json:"all_feature_columns"`
}

type numericTerm struct {
	Weight float64 `json:"weight"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
}

// modelParams 訓練階段匯出的 logistic 模型參數
type modelParams struct {
	Bias        float64                       `json:"bias"`
	Numeric     map[string]numericTerm        `json:"numeric"`
	Categorical map[string]map[string]float64 `json:"categorical"`
	Threshold   float64                       `json:"threshold"`
}

// Scorer 已訓練的二元分類器。服務啟動時載入一次，之後唯讀，
// 可供多個請求併發呼叫。
type Scorer struct {
	params modelParams
	meta   meta
}

// Load 從兩個 artifact 載入模型：modelPath 為模型參數，
// metaPath 為特徵欄位順序的 metadata。
func Load(modelPath, metaPath string) (*Scorer, error) {
	s := &Scorer{}

	raw, err := os.ReadFile(modelPath)
	if err != nil {
		return nil, fmt.Errorf("scorer: read model: %w", err)
	}
	if err := json.Unmarshal(raw, &s.params); err != nil {
		return nil, fmt.Errorf("scorer: parse model: %w", err)
	}

	raw, err = os.ReadFile(metaPath)
	if err != nil {
		return nil, fmt.Errorf("scorer: read meta: %w", err)
	}
	if err := json.Unmarshal(raw, &s.meta); err != nil {
		return nil, fmt.Errorf("scorer: parse meta: %w", err)
	}

	if len(s.meta.FeatureColumns) == 0 {
		return nil, fmt.Errorf("scorer: meta declares no feature columns")
	}
	if s.params.Threshold == 0 {
		s.params.Threshold = 0.5
	}

	// 每個宣告欄位都必須有對應參數，缺漏在啟動時就擋下
	for _, col := range s.meta.FeatureColumns {
		_, numeric := s.params.Numeric[col]
		_, categorical := s.params.Categorical[col]
		if !numeric && !categorical {
			return nil, fmt.Errorf("scorer: no parameters for feature column %q", col)
		}
	}
	return s, nil
}

// FeatureColumns 回傳 metadata 宣告的欄位順序
func (s *Scorer) FeatureColumns() []string {
	out := make([]string, len(s.meta.FeatureColumns))
	copy(out, s.meta.FeatureColumns)
	return out
}

// Score 依 metadata 宣告的順序組裝特徵向量並計算分類結果。
// 回傳 0/1 決策與正類機率，相同輸入必得相同輸出。
func (s *Scorer) Score(f Features) (int, float64, error) {
	logit := s.params.Bias
	for _, col := range s.meta.FeatureColumns {
		v, ok := f.value(col)
		if !ok {
			return 0, 0, fmt.Errorf("scorer: unknown feature column %q", col)
		}
		switch x := v.(type) {
		case float64:
			term, ok := s.params.Numeric[col]
			if !ok {
				return 0, 0, fmt.Errorf("scorer: column %q is not numeric in model", col)
			}
			if term.Std != 0 {
				logit += term.Weight * ((x - term.Mean) / term.Std)
			} else {
				logit += term.Weight * x
			}
		case string:
			weights, ok := s.params.Categorical[col]
			if !ok {
				return 0, 0, fmt.Errorf("scorer: column %q is not categorical in model", col)
			}
			// 未見過的類別不加權
			logit += weights[x]
		}
	}

	prob := 1.0 / (1.0 + math.Exp(-logit))
	pred := 0
	if prob >= s.params.Threshold {
		pred = 1
	}
	return pred, prob, nil
}
