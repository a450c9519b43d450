// File: internal/handler/auth/register_test.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"loan-payback/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// insertedRow 模擬 INSERT ... RETURNING id, created_at
type insertedRow struct {
	id  int
	err error
}

func (r insertedRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int) = r.id
	*dest[1].(*time.Time) = time.Now().UTC()
	return nil
}

func insertDB(row insertedRow) *database.FakeDB {
	return &database.FakeDB{
		BeginFn: func(ctx context.Context) (pgx.Tx, error) {
			return &database.FakeTx{
				QueryRowFn: func(context.Context, string, ...any) pgx.Row { return row },
			}, nil
		},
	}
}

func TestRegisterHandler(t *testing.T) {
	body := `{"username":"alice","email":"Alice@Example.com","password":"secret"}`

	// bind error
	e := echo.New()
	e.Binder = errBinder{}
	ctx, rec := newAuthCtx(e, "")
	h := RegisterHandler(&database.FakeDB{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newAuthCtx(e, body)
	h = RegisterHandler(&database.FakeDB{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// duplicate username or email
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newAuthCtx(e, body)
	h = RegisterHandler(insertDB(insertedRow{err: &pgconn.PgError{Code: "23505"}}))
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "already exists")

	// database unavailable
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newAuthCtx(e, body)
	h = RegisterHandler(&database.FakeDB{
		BeginFn: func(ctx context.Context) (pgx.Tx, error) { return nil, errors.New("connection refused") },
	})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	// insert error
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newAuthCtx(e, body)
	h = RegisterHandler(insertDB(insertedRow{err: errors.New("insert fail")}))
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// issue token error (JWT_SECRET not set)
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newAuthCtx(e, body)
	h = RegisterHandler(insertDB(insertedRow{id: 1}))
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newAuthCtx(e, body)
	t.Setenv("JWT_SECRET", "s")
	h = RegisterHandler(insertDB(insertedRow{id: 1}))
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "access_token")
}
