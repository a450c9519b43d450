package api

// swagger:model api.BatchRowResult
type BatchRowResult struct {
	Name        string  `json:"name" example:"Alice"`
	Prediction  int     `json:"prediction" example:"1"`
	Probability float64 `json:"probability" example:"0.9321"`
}

// swagger:model api.BatchPredictionResponse
type BatchPredictionResponse struct {
	BatchID     string           `json:"batch_id" example:"4f1b6f4e-4a9e-4d2a-8d6e-0a4a1c2b3d4e"`
	Count       int              `json:"count" example:"2"`
	Predictions []BatchRowResult `json:"predictions"`
}
