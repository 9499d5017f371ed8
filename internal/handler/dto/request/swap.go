package request

import "encoding/json"

type SearchQuery struct {
	Query string `form:"query" binding:"required"`
	Sell  bool   `form:"sell"`
}

// SwapQuoteRequest accepts btcAmount as either a JSON number or a numeric
// string; json.Number covers both without losing precision.
type SwapQuoteRequest struct {
	BTCAmount json.Number `json:"btcAmount" binding:"required"`
	RuneName  string      `json:"runeName" binding:"required"`
	Address   string      `json:"address" binding:"required"`
	Sell      bool        `json:"sell"`
}
