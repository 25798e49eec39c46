package youtubeprovider

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"ytworth/internal/models"
	"ytworth/internal/provider"
)

// StatisticsResponse is the videos?part=statistics payload. Every level
// below Items is optional: a missing first item or statistics block means
// the view count is unknown.
type StatisticsResponse struct {
	Items []StatisticsItem `json:"items"`
}

type StatisticsItem struct {
	ID         string          `json:"id"`
	Statistics *ItemStatistics `json:"statistics,omitempty"`
}

type ItemStatistics struct {
	// YouTube encodes counters as strings; plain numbers are accepted too.
	ViewCount json.RawMessage `json:"viewCount,omitempty"`
}

// APIErrorResponse is the body YouTube sends with non-2xx statuses.
type APIErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ViewCount extracts items[0].statistics.viewCount. Absence is not an
// error; a value that is present but not a non-negative integer is.
func (r StatisticsResponse) ViewCount() (provider.ViewCount, error) {
	if len(r.Items) == 0 || r.Items[0].Statistics == nil {
		return provider.ViewCount{}, nil
	}

	raw := strings.TrimSpace(string(r.Items[0].Statistics.ViewCount))
	if raw == "" || raw == "null" {
		return provider.ViewCount{}, nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return provider.ViewCount{}, fmt.Errorf("viewCount %s: %w", raw, models.ErrMalformedStatistics)
		}
		raw = s
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return provider.ViewCount{}, fmt.Errorf("viewCount %q: %w", raw, models.ErrMalformedStatistics)
	}

	return provider.Views(n), nil
}

func (r StatisticsResponse) ToProviderStats(videoID string) (*provider.VideoStats, error) {
	views, err := r.ViewCount()
	if err != nil {
		return nil, err
	}

	return &provider.VideoStats{
		VideoID: videoID,
		Views:   views,
	}, nil
}
