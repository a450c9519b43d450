package store

import (
	"context"
	"errors"
	"fmt"

	"loan-payback/internal/database"
	"loan-payback/internal/model"

	"github.com/jackc/pgx/v5"
)

// CreateUser 於單一交易內寫入一筆使用者。
// username 或 email 重複時回傳 ErrDuplicate，由資料庫唯一約束把關，
// 因此併發註冊同名帳號不會產生兩筆資料。
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	err := database.WithTx(ctx, db, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx,
			`INSERT INTO users (username, email, hashed_password)
			 VALUES ($1, $2, $3)
			 RETURNING id, created_at`,
			u.Username,
			u.Email,
			u.HashedPassword,
		)
		return row.Scan(&u.ID, &u.CreatedAt)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("CreateUser: %w", ErrDuplicate)
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func GetUserByUsername(ctx context.Context, db database.DB, username string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, username, email, hashed_password, created_at
		 FROM users WHERE username = $1`,
		username,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.HashedPassword,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("GetUserByUsername: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetUserByUsername: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, username, email, hashed_password, created_at
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.HashedPassword,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("GetUserByEmail: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// DeleteUser 刪除使用者，predictions 依外鍵設定一併級聯刪除
func DeleteUser(ctx context.Context, db database.DB, userID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM users WHERE id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("DeleteUser: %w", err)
	}
	return nil
}
