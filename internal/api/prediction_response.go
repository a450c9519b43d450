package api

import "time"

// swagger:model api.PredictionResponse
type PredictionResponse struct {
	ID          int       `json:"id" example:"1"`
	Prediction  int       `json:"prediction" example:"1"`
	Probability float64   `json:"probability" example:"0.9321"`
	CreatedAt   time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}
