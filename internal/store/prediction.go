package store

import (
	"context"
	"errors"
	"fmt"

	"loan-payback/internal/database"
	"loan-payback/internal/model"

	"github.com/jackc/pgx/v5"
)

const predictionColumns = `id, user_id, name, annual_income, debt_to_income_ratio,
	 credit_score, loan_amount, interest_rate, gender, marital_status,
	 education_level, employment_status, loan_purpose, grade_subgrade,
	 prediction, probability, prediction_type, batch_id, created_at`

func scanPrediction(row pgx.Row, p *model.Prediction) error {
	return row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.AnnualIncome,
		&p.DebtToIncomeRatio,
		&p.CreditScore,
		&p.LoanAmount,
		&p.InterestRate,
		&p.Gender,
		&p.MaritalStatus,
		&p.EducationLevel,
		&p.EmploymentStatus,
		&p.LoanPurpose,
		&p.GradeSubgrade,
		&p.Prediction,
		&p.Probability,
		&p.PredictionType,
		&p.BatchID,
		&p.CreatedAt,
	)
}

// CreatePrediction 於單一交易內寫入一筆推論紀錄並回傳完整資料列。
// NUMERIC 欄位讀回時一律轉為 float64。
func CreatePrediction(ctx context.Context, db database.DB, p *model.Prediction) (*model.Prediction, error) {
	err := database.WithTx(ctx, db, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx,
			`INSERT INTO predictions (
				user_id, name, annual_income, debt_to_income_ratio,
				credit_score, loan_amount, interest_rate, gender,
				marital_status, education_level, employment_status,
				loan_purpose, grade_subgrade, prediction, probability,
				prediction_type, batch_id
			 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
			 RETURNING id, created_at`,
			p.UserID,
			p.Name,
			p.AnnualIncome,
			p.DebtToIncomeRatio,
			p.CreditScore,
			p.LoanAmount,
			p.InterestRate,
			p.Gender,
			p.MaritalStatus,
			p.EducationLevel,
			p.EmploymentStatus,
			p.LoanPurpose,
			p.GradeSubgrade,
			p.Prediction,
			p.Probability,
			p.PredictionType,
			p.BatchID,
		)
		return row.Scan(&p.ID, &p.CreatedAt)
	})
	if err != nil {
		return nil, fmt.Errorf("CreatePrediction: %w", err)
	}
	return p, nil
}

// ListPredictionsByUser 回傳使用者全部推論紀錄，依 created_at 新到舊
func ListPredictionsByUser(ctx context.Context, db database.DB, userID int) ([]model.Prediction, error) {
	rows, err := db.Query(ctx,
		`SELECT `+predictionColumns+`
		 FROM predictions WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListPredictionsByUser: %w", err)
	}
	defer rows.Close()

	var out []model.Prediction
	for rows.Next() {
		var p model.Prediction
		if err := scanPrediction(rows, &p); err != nil {
			return nil, fmt.Errorf("ListPredictionsByUser: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPredictionsByUser: %w", err)
	}
	return out, nil
}

func GetPredictionByID(ctx context.Context, db database.DB, id int) (*model.Prediction, error) {
	row := db.QueryRow(ctx,
		`SELECT `+predictionColumns+`
		 FROM predictions WHERE id = $1`,
		id,
	)
	p := &model.Prediction{}
	if err := scanPrediction(row, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("GetPredictionByID: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetPredictionByID: %w", err)
	}
	return p, nil
}

// GetPredictionsByBatch 回傳同一批次的所有紀錄，依 created_at 舊到新
func GetPredictionsByBatch(ctx context.Context, db database.DB, batchID string) ([]model.Prediction, error) {
	rows, err := db.Query(ctx,
		`SELECT `+predictionColumns+`
		 FROM predictions WHERE batch_id = $1
		 ORDER BY created_at ASC, id ASC`,
		batchID,
	)
	if err != nil {
		return nil, fmt.Errorf("GetPredictionsByBatch: %w", err)
	}
	defer rows.Close()

	var out []model.Prediction
	for rows.Next() {
		var p model.Prediction
		if err := scanPrediction(rows, &p); err != nil {
			return nil, fmt.Errorf("GetPredictionsByBatch: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetPredictionsByBatch: %w", err)
	}
	return out, nil
}
