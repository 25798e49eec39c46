package service

import (
	"math"

	"ytworth/internal/models"
)

// Tier is a qualitative payout band. The zero value is TierLow.
type Tier int

const (
	TierLow Tier = iota
	TierMild
	TierGood
	TierGreat
	TierExcellent
)

type tierInfo struct {
	name  string
	asset string
	emoji string
	// exclusive upper bound; +Inf for the last band
	upper float64
}

// ordered, half-open [previous upper, upper)
var tiers = [...]tierInfo{
	TierLow:       {name: "low", asset: "sad", emoji: "😢", upper: 100},
	TierMild:      {name: "mild", asset: "meh", emoji: "😐", upper: 1000},
	TierGood:      {name: "good", asset: "smile", emoji: "🙂", upper: 10000},
	TierGreat:     {name: "great", asset: "money", emoji: "🤑", upper: 100000},
	TierExcellent: {name: "excellent", asset: "fire", emoji: "🔥", upper: math.Inf(1)},
}

// Classify maps a payout to its band. Negative and NaN payouts fall into TierLow.
func Classify(payout float64) Tier {
	for t := TierLow; t < TierExcellent; t++ {
		if payout < tiers[t].upper || math.IsNaN(payout) {
			return t
		}
	}
	return TierExcellent
}

func (t Tier) valid() bool {
	return t >= TierLow && t <= TierExcellent
}

func (t Tier) String() string {
	if !t.valid() {
		return "unknown"
	}
	return tiers[t].name
}

// Asset names the display image for the tier.
func (t Tier) Asset() string {
	if !t.valid() {
		return ""
	}
	return tiers[t].asset
}

func (t Tier) Emoji() string {
	if !t.valid() {
		return ""
	}
	return tiers[t].emoji
}

// Celebrate reports whether the tier earns the celebratory effect.
func (t Tier) Celebrate() bool {
	return t == TierGreat || t == TierExcellent
}

// Lower is the inclusive lower bound of the band.
func (t Tier) Lower() float64 {
	if t <= TierLow {
		return 0
	}
	return tiers[t-1].upper
}

// Bands lists every tier in ascending order.
func Bands() []models.TierBand {
	bands := make([]models.TierBand, 0, len(tiers))
	for t := TierLow; t <= TierExcellent; t++ {
		band := models.TierBand{
			Tier:  t.String(),
			Min:   t.Lower(),
			Asset: t.Asset(),
			Emoji: t.Emoji(),
		}
		if upper := tiers[t].upper; !math.IsInf(upper, 1) {
			band.Max = &upper
		}
		bands = append(bands, band)
	}
	return bands
}
