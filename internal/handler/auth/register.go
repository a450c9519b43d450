// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	"loan-payback/internal/api"
	"loan-payback/internal/database"
	"loan-payback/internal/model"
	"loan-payback/internal/service"
	"loan-payback/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword      = service.HashPassword
	verifyPassword    = service.VerifyPassword
	issueAccessToken  = service.IssueAccessToken
	createUser        = store.CreateUser
	getUserByUsername = store.GetUserByUsername
)

// RegisterHandler 建立新帳號並回傳存取令牌
// @Summary     Register a new user
// @Description 註冊新使用者 (Email 會自動轉小寫)，成功直接回傳存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "註冊資料"
// @Success     200 {object} api.TokenResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Router      /register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: api.ValidationMessage(err)})
		}

		req.Email = strings.ToLower(req.Email)

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		// 唯一性交給資料庫約束，併發註冊不會產生兩筆
		user, err := createUser(c.Request().Context(), db, &model.User{
			Username:       req.Username,
			Email:          req.Email,
			HashedPassword: hash,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "username or email already exists"})
			}
			if errors.Is(err, database.ErrUnavailable) {
				return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "database unavailable"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create user"})
		}

		token, err := issueAccessToken(user.Username, service.AccessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.TokenResponse{AccessToken: token, TokenType: "bearer"})
	}
}
