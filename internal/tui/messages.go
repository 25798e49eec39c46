package tui

import "ytworth/internal/models"

// EstimateResultMsg carries the outcome of the lookup started by
// submission Seq. Exactly one of Estimate and Err is meaningful.
type EstimateResultMsg struct {
	Seq      uint64
	Estimate models.EstimateResponse
	Err      error
}
