// File: internal/scorer/scorer_test.go
package scorer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testModelJSON = `{
  "bias": -1.0,
  "threshold": 0.5,
  "numeric": {
    "annual_income":        {"weight": 1.2, "mean": 60000, "std": 30000},
    "debt_to_income_ratio": {"weight": -2.0, "mean": 0.35, "std": 0.15},
    "credit_score":         {"weight": 1.5, "mean": 680, "std": 80},
    "loan_amount":          {"weight": -0.4, "mean": 15000, "std": 10000},
    "interest_rate":        {"weight": -0.8, "mean": 8.0, "std": 3.0}
  },
  "categorical": {
    "gender":            {"Female": 0.0, "Male": 0.0},
    "marital_status":    {"Single": -0.1, "Married": 0.1},
    "education_level":   {"High School": -0.2, "Bachelor": 0.2, "Master": 0.3},
    "employment_status": {"Employed": 0.5, "Unemployed": -0.8},
    "loan_purpose":      {"Home": 0.1, "Car": -0.1},
    "grade_subgrade":    {"A1": 0.9, "E2": -0.9}
  }
}`

const testMetaJSON = `{
  "all_feature_columns": [
    "annual_income", "debt_to_income_ratio", "credit_score",
    "loan_amount", "interest_rate", "gender", "marital_status",
    "education_level", "employment_status", "loan_purpose", "grade_subgrade"
  ]
}`

func writeArtifacts(t *testing.T, modelJSON, metaJSON string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.json")
	metaPath := filepath.Join(dir, "meta.json")
	require.NoError(t, os.WriteFile(modelPath, []byte(modelJSON), 0o600))
	require.NoError(t, os.WriteFile(metaPath, []byte(metaJSON), 0o600))
	return modelPath, metaPath
}

func goodFeatures() Features {
	return Features{
		AnnualIncome:      90000,
		DebtToIncomeRatio: 0.25,
		CreditScore:       750,
		LoanAmount:        20000,
		InterestRate:      5.0,
		Gender:            "Female",
		MaritalStatus:     "Single",
		EducationLevel:    "Bachelor",
		EmploymentStatus:  "Employed",
		LoanPurpose:       "Home",
		GradeSubgrade:     "A1",
	}
}

func TestLoad(t *testing.T) {
	modelPath, metaPath := writeArtifacts(t, testModelJSON, testMetaJSON)

	s, err := Load(modelPath, metaPath)
	require.NoError(t, err)
	require.Equal(t, 11, len(s.FeatureColumns()))
	require.Equal(t, "annual_income", s.FeatureColumns()[0])

	// 檔案不存在
	_, err = Load(filepath.Join(t.TempDir(), "nope.json"), metaPath)
	require.Error(t, err)
	_, err = Load(modelPath, filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)

	// JSON 格式錯誤
	badModel, _ := writeArtifacts(t, "{", testMetaJSON)
	_, err = Load(badModel, metaPath)
	require.Error(t, err)

	// metadata 沒宣告任何欄位
	_, emptyMeta := writeArtifacts(t, testModelJSON, `{"all_feature_columns": []}`)
	_, err = Load(modelPath, emptyMeta)
	require.Error(t, err)

	// 宣告欄位缺模型參數
	_, extraMeta := writeArtifacts(t, testModelJSON, `{"all_feature_columns": ["annual_income", "zodiac_sign"]}`)
	_, err = Load(modelPath, extraMeta)
	require.Error(t, err)
}

func TestScoreDeterministic(t *testing.T) {
	modelPath, metaPath := writeArtifacts(t, testModelJSON, testMetaJSON)
	s, err := Load(modelPath, metaPath)
	require.NoError(t, err)

	pred1, prob1, err := s.Score(goodFeatures())
	require.NoError(t, err)
	pred2, prob2, err := s.Score(goodFeatures())
	require.NoError(t, err)

	// 相同輸入必得相同輸出
	require.Equal(t, pred1, pred2)
	require.Equal(t, prob1, prob2)
	require.GreaterOrEqual(t, prob1, 0.0)
	require.LessOrEqual(t, prob1, 1.0)
}

func TestScoreSeparatesApplicants(t *testing.T) {
	modelPath, metaPath := writeArtifacts(t, testModelJSON, testMetaJSON)
	s, err := Load(modelPath, metaPath)
	require.NoError(t, err)

	strongPred, strongProb, err := s.Score(goodFeatures())
	require.NoError(t, err)
	require.Equal(t, 1, strongPred)

	weak := Features{
		AnnualIncome:      30000,
		DebtToIncomeRatio: 0.6,
		CreditScore:       580,
		LoanAmount:        25000,
		InterestRate:      7.5,
		Gender:            "Male",
		MaritalStatus:     "Single",
		EducationLevel:    "High School",
		EmploymentStatus:  "Unemployed",
		LoanPurpose:       "Car",
		GradeSubgrade:     "E2",
	}
	weakPred, weakProb, err := s.Score(weak)
	require.NoError(t, err)
	require.Equal(t, 0, weakPred)
	require.Greater(t, strongProb, weakProb)
}

func TestScoreUnseenCategory(t *testing.T) {
	modelPath, metaPath := writeArtifacts(t, testModelJSON, testMetaJSON)
	s, err := Load(modelPath, metaPath)
	require.NoError(t, err)

	// 未見過的類別不加權，仍可評分
	f := goodFeatures()
	f.LoanPurpose = "Yacht"
	_, prob, err := s.Score(f)
	require.NoError(t, err)
	require.GreaterOrEqual(t, prob, 0.0)
	require.LessOrEqual(t, prob, 1.0)
}
