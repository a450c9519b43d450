package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"loan-payback/internal/cache"
	"loan-payback/internal/database"
	"loan-payback/internal/model"
	"loan-payback/internal/service"
	"loan-payback/internal/store"
	"loan-payback/internal/worker"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// userCachePrefix + username 為正向查詢快取鍵，短 TTL。
// 快取只存在查得到的使用者，令牌有效性仍完全由簽章與到期時間決定。
const (
	userCachePrefix = "auth:user:"
	userCacheTTL    = 5 * time.Minute
)

func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := service.VerifyAccessToken(parts[1])
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "token expired")
		}
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims, nil
}

// lookupUser 先查快取，未命中再查資料庫，並透過 worker pool
// 非同步回寫快取，認證路徑不等 redis 寫入。
func lookupUser(ctx context.Context, db database.DB, rdb cache.Cache, wp worker.Pool, username string) (*model.User, error) {
	key := userCachePrefix + username
	if raw, err := rdb.Get(ctx, key).Result(); err == nil {
		u := &model.User{}
		if err := json.Unmarshal([]byte(raw), u); err == nil {
			return u, nil
		}
	}

	u, err := store.GetUserByUsername(ctx, db, username)
	if err != nil {
		return nil, err
	}

	if buf, err := json.Marshal(u); err == nil {
		wp.Submit(func() {
			rdb.Set(context.Background(), key, buf, userCacheTTL)
		})
	}
	return u, nil
}

// RequireAuth 驗證 bearer token 並確認令牌主體仍存在，
// 通過後把使用者放入 context。
// 找不到主體時回 401 而非 404，避免洩漏「令牌壞掉」與「帳號已刪」的差別。
func RequireAuth(db database.DB, rdb cache.Cache, wp worker.Pool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c)
			if err != nil {
				return err
			}
			user, err := lookupUser(c.Request().Context(), db, rdb, wp, claims.Subject)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
				}
				if errors.Is(err, database.ErrUnavailable) {
					return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "failed to load user")
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}
