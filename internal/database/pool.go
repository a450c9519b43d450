// File: internal/database/pool.go
package database

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrUnavailable 表示連線池尚未成功建立，或資料庫無法連線
var ErrUnavailable = errors.New("database unavailable")

// DefaultMaxConns 預設連線池上限
const DefaultMaxConns = 5

// 測試可覆寫此變數
var pgxpoolNewWithConfig = pgxpool.NewWithConfig

// Pool 包裝 pgxpool，第一次使用時才建立連線。
// 建立失敗時每次呼叫都回傳 ErrUnavailable，直到之後的嘗試成功為止。
// 連線池大小固定，取用耗盡時 pgxpool 會阻塞等待釋放。
type Pool struct {
	url      string
	maxConns int32

	mu   sync.Mutex
	pool *pgxpool.Pool
}

// NewPool 建立尚未連線的 Pool，maxConns <= 0 時使用 DefaultMaxConns
func NewPool(url string, maxConns int32) *Pool {
	if maxConns <= 0 {
		maxConns = DefaultMaxConns
	}
	return &Pool{url: url, maxConns: maxConns}
}

// acquire 回傳底層連線池，必要時先初始化。
// 初始化在鎖內執行，併發的第一批呼叫者只會建立一次。
func (p *Pool) acquire(ctx context.Context) (*pgxpool.Pool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pool != nil {
		return p.pool, nil
	}

	cfg, err := pgxpool.ParseConfig(p.url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	cfg.MaxConns = p.maxConns

	pool, err := pgxpoolNewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	p.pool = pool
	return p.pool, nil
}

func (p *Pool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	pool, err := p.acquire(ctx)
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return pool.Exec(ctx, sql, args...)
}

func (p *Pool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	pool, err := p.acquire(ctx)
	if err != nil {
		return nil, err
	}
	return pool.Query(ctx, sql, args...)
}

func (p *Pool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	pool, err := p.acquire(ctx)
	if err != nil {
		return errRow{err: err}
	}
	return pool.QueryRow(ctx, sql, args...)
}

func (p *Pool) Begin(ctx context.Context) (pgx.Tx, error) {
	pool, err := p.acquire(ctx)
	if err != nil {
		return nil, err
	}
	return pool.Begin(ctx)
}

func (p *Pool) Ping(ctx context.Context) error {
	pool, err := p.acquire(ctx)
	if err != nil {
		return err
	}
	return pool.Ping(ctx)
}

func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
}

// errRow 讓 QueryRow 在無法取得連線時延遲回報錯誤
type errRow struct{ err error }

func (r errRow) Scan(dest ...any) error { return r.err }

// WithTx 以單一交易執行 fn：成功 commit，錯誤或 panic 則 rollback。
// panic 會在 rollback 後重新拋出。
func WithTx(ctx context.Context, db DB, fn func(tx pgx.Tx) error) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	err = fn(tx)
	return err
}
