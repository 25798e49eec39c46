package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ytworth/internal/models"
)

// DefaultLookupTimeout bounds one lookup so the screen never stays in
// the loading state forever.
const DefaultLookupTimeout = 15 * time.Second

// estimateCmd runs one lookup off the event loop and reports back with seq.
func estimateCmd(ctx context.Context, est Estimator, timeout time.Duration, seq uint64, url string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		resp, err := est.Estimate(ctx, models.EstimateRequest{URL: url})
		return EstimateResultMsg{Seq: seq, Estimate: resp, Err: err}
	}
}
