package provider

import "context"

// ViewCount is an optional view count: Known is false when the
// statistics response carried no value.
type ViewCount struct {
	Value int64
	Known bool
}

func Views(n int64) ViewCount {
	return ViewCount{Value: n, Known: true}
}

type VideoStats struct {
	VideoID string
	Views   ViewCount
}

type StatisticsProvider interface {
	GetVideoStats(ctx context.Context, videoID string) (*VideoStats, error)
}
