package api

// swagger:model api.TokenResponse
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"..."`
	TokenType   string `json:"token_type" example:"bearer"`
}
