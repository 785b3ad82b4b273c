package models

// Requests for the public HTTP endpoints. Defined in domain for consistency
// and reuse across handlers and tests.

// PredictRequest is the body of POST /api/predict. Horizon is a pointer so a
// missing field takes the documented default while an explicit zero or
// negative value is rejected downstream.
type PredictRequest struct {
	Ticker  string `json:"ticker" validate:"required"`
	Horizon *int   `json:"horizon" default:"7"`
}

// WatchlistAddRequest is the body of POST /api/watchlist/:user.
type WatchlistAddRequest struct {
	Symbol string `json:"symbol" validate:"required"`
}

// AlertCreateRequest is the body of POST /api/alerts/:user.
type AlertCreateRequest struct {
	Symbol    string  `json:"symbol" validate:"required"`
	Condition string  `json:"condition" default:"above" validate:"oneof=above below"`
	Target    float64 `json:"target" validate:"gt=0"`
}
