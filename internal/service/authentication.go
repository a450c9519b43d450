// File: internal/service/authentication.go
package service

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenTTL 存取令牌預設有效期限
const AccessTokenTTL = 24 * time.Hour

var (
	// ErrTokenExpired 令牌已過期
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid 簽章驗證失敗或負載格式錯誤
	ErrTokenInvalid = errors.New("invalid token")
)

// CustomClaims 定義 JWT 負載內容，Subject 為使用者名稱
type CustomClaims struct {
	jwt.RegisteredClaims
}

// IssueAccessToken 為指定使用者名稱簽發 HS256 JWT。
// 簽章密鑰由環境變數 JWT_SECRET 注入，程式內不存任何常數密鑰。
func IssueAccessToken(username string, ttl time.Duration) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET not set")
	}

	now := time.Now()
	claims := CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAccessToken 驗證並解析 JWT 令牌。
// 過期回傳 ErrTokenExpired，簽章或負載不合法回傳 ErrTokenInvalid。
func VerifyAccessToken(tokenString string) (*CustomClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
