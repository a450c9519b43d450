package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"loan-payback/internal/database"
	"loan-payback/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/* ---------- 假實作 ---------- */

// fakePredictionRow 實作 pgx.Row，用於模擬單筆掃描行為。
type fakePredictionRow struct {
	scanErr    error
	prediction *model.Prediction
}

func scanPredictionInto(p *model.Prediction, dest []any) {
	*dest[0].(*int) = p.ID
	*dest[1].(*int) = p.UserID
	*dest[2].(*string) = p.Name
	*dest[3].(*float64) = p.AnnualIncome
	*dest[4].(*float64) = p.DebtToIncomeRatio
	*dest[5].(*float64) = p.CreditScore
	*dest[6].(*float64) = p.LoanAmount
	*dest[7].(*float64) = p.InterestRate
	*dest[8].(*string) = p.Gender
	*dest[9].(*string) = p.MaritalStatus
	*dest[10].(*string) = p.EducationLevel
	*dest[11].(*string) = p.EmploymentStatus
	*dest[12].(*string) = p.LoanPurpose
	*dest[13].(*string) = p.GradeSubgrade
	*dest[14].(*int) = p.Prediction
	*dest[15].(*float64) = p.Probability
	*dest[16].(*string) = p.PredictionType
	*dest[17].(**string) = p.BatchID
	*dest[18].(*time.Time) = p.CreatedAt
}

func (r *fakePredictionRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	p := r.prediction
	switch len(dest) {
	case 2:
		// CreatePrediction: id, created_at
		*dest[0].(*int) = p.ID
		*dest[1].(*time.Time) = p.CreatedAt
	case 19:
		// GetPredictionByID
		scanPredictionInto(p, dest)
	default:
		panic("fakePredictionRow.Scan: unexpected number of dest")
	}
	return nil
}

// fakePredictionRows 實作 pgx.Rows，用於模擬多筆掃描行為。
type fakePredictionRows struct {
	data    []model.Prediction
	idx     int
	scanErr error
	err     error
}

func (r *fakePredictionRows) Close()                                       {}
func (r *fakePredictionRows) Err() error                                   { return r.err }
func (r *fakePredictionRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakePredictionRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakePredictionRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakePredictionRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	p := r.data[r.idx]
	r.idx++
	scanPredictionInto(&p, dest)
	return nil
}
func (r *fakePredictionRows) Values() ([]any, error) { return nil, nil }
func (r *fakePredictionRows) RawValues() [][]byte    { return nil }
func (r *fakePredictionRows) Conn() *pgx.Conn        { return nil }

/* ---------- 完整測試 ---------- */

func TestPredictionStore(t *testing.T) {
	now := time.Now().UTC()
	batchID := "11111111-2222-3333-4444-555555555555"
	sample := model.Prediction{
		ID:                42,
		UserID:            7,
		Name:              "Alice",
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
		Prediction:        1,
		Probability:       0.9132,
		PredictionType:    model.PredictionTypeBatch,
		BatchID:           &batchID,
		CreatedAt:         now,
	}

	/* CreatePrediction */
	t.Run("Create ok", func(t *testing.T) {
		p := txDB(func(_ context.Context, _ string, _ ...any) pgx.Row {
			return &fakePredictionRow{prediction: &sample}
		})
		rec := sample
		rec.ID = 0
		got, err := CreatePrediction(context.Background(), p, &rec)
		require.NoError(t, err)
		require.Equal(t, sample.ID, got.ID)
		require.Equal(t, sample.CreatedAt, got.CreatedAt)
	})

	t.Run("Create err", func(t *testing.T) {
		p := txDB(func(_ context.Context, _ string, _ ...any) pgx.Row {
			return &fakePredictionRow{scanErr: errors.New("insert fail")}
		})
		rec := sample
		_, err := CreatePrediction(context.Background(), p, &rec)
		require.Error(t, err)
	})

	t.Run("Create begin err", func(t *testing.T) {
		p := &database.FakeDB{
			BeginFn: func(ctx context.Context) (pgx.Tx, error) {
				return nil, errors.New("connection refused")
			},
		}
		rec := sample
		_, err := CreatePrediction(context.Background(), p, &rec)
		require.ErrorIs(t, err, database.ErrUnavailable)
	})

	/* ListPredictionsByUser */
	t.Run("List ok", func(t *testing.T) {
		rows := &fakePredictionRows{data: []model.Prediction{sample, sample}}
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return rows, nil
			},
		}
		list, err := ListPredictionsByUser(context.Background(), p, 7)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, sample.Probability, list[0].Probability)
		require.Equal(t, &batchID, list[0].BatchID)
	})

	t.Run("List empty", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakePredictionRows{}, nil
			},
		}
		list, err := ListPredictionsByUser(context.Background(), p, 7)
		require.NoError(t, err)
		require.Empty(t, list)
	})

	t.Run("List query err", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("database fail")
			},
		}
		_, err := ListPredictionsByUser(context.Background(), p, 7)
		require.Error(t, err)
	})

	t.Run("List scan err", func(t *testing.T) {
		rows := &fakePredictionRows{data: []model.Prediction{sample}, scanErr: errors.New("scan fail")}
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return rows, nil
			},
		}
		_, err := ListPredictionsByUser(context.Background(), p, 7)
		require.Error(t, err)
	})

	t.Run("List rows err", func(t *testing.T) {
		rows := &fakePredictionRows{err: errors.New("rows fail")}
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return rows, nil
			},
		}
		_, err := ListPredictionsByUser(context.Background(), p, 7)
		require.Error(t, err)
	})

	/* GetPredictionByID */
	t.Run("GetByID ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakePredictionRow{prediction: &sample}
			},
		}
		got, err := GetPredictionByID(context.Background(), p, 42)
		require.NoError(t, err)
		require.Equal(t, sample.Name, got.Name)
	})

	t.Run("GetByID not found", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakePredictionRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetPredictionByID(context.Background(), p, 999)
		require.ErrorIs(t, err, ErrNotFound)
	})

	/* GetPredictionsByBatch */
	t.Run("GetByBatch ok", func(t *testing.T) {
		rows := &fakePredictionRows{data: []model.Prediction{sample, sample, sample}}
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return rows, nil
			},
		}
		list, err := GetPredictionsByBatch(context.Background(), p, batchID)
		require.NoError(t, err)
		require.Len(t, list, 3)
	})

	t.Run("GetByBatch query err", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("database fail")
			},
		}
		_, err := GetPredictionsByBatch(context.Background(), p, batchID)
		require.Error(t, err)
	})
}
