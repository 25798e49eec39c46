package models

import (
	"fmt"
	"strings"
)

const (
	CurrencyUSD = "USD"
)

// REQUEST DTO
// comes from a client
type EstimateRequest struct {
	URL string `json:"url" example:"https://www.youtube.com/watch?v=dQw4w9WgXcQ"`
}

// Validate checks incoming data from the client
func (r *EstimateRequest) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return fmt.Errorf("url must be provided: %w", ErrEmptyInput)
	}
	return nil
}

// RESPONSE DTO
// give to the client
type EstimateResponse struct {
	VideoID   string  `json:"video_id"  example:"dQw4w9WgXcQ"`
	URL       string  `json:"url"       example:"https://www.youtube.com/watch?v=dQw4w9WgXcQ"`
	Views     int64   `json:"views"     example:"50000"`
	Payout    float64 `json:"payout"    example:"3000"`
	Display   string  `json:"display"   example:"$3000.00"`
	Currency  string  `json:"currency"  example:"USD"`
	CPM       float64 `json:"cpm"       example:"60"`
	Tier      string  `json:"tier"      example:"good"`
	Asset     string  `json:"asset"     example:"smile"`
	Emoji     string  `json:"emoji"     example:"🙂"`
	Celebrate bool    `json:"celebrate" example:"false"`
}

// TierBand describes one payout band; Max is nil for the open top band.
type TierBand struct {
	Tier  string   `json:"tier"  example:"good"`
	Min   float64  `json:"min"   example:"1000"`
	Max   *float64 `json:"max"   example:"10000"`
	Asset string   `json:"asset" example:"smile"`
	Emoji string   `json:"emoji" example:"🙂"`
}

type TiersResponse struct {
	Tiers []TierBand `json:"tiers"`
}

// FormatUSD renders a payout the way it is displayed to users.
func FormatUSD(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
