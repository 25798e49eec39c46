package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ytworth/internal/models"
	"ytworth/internal/provider"
	"ytworth/internal/videoid"
)

// Lookup outcomes reported to the Recorder.
const (
	LookupOK        = "ok"
	LookupAbsent    = "absent"
	LookupMalformed = "malformed"
	LookupUpstream  = "upstream"
	LookupError     = "error"
)

type StatsProvider interface {
	GetVideoStats(ctx context.Context, videoID string) (*provider.VideoStats, error)
}

type Logger interface {
	Errorf(format string, args ...any)
	Warnf(format string, args ...any)
	Infof(format string, args ...any)
	Info(args ...any)
}

type Recorder interface {
	ObserveLookup(result string, elapsed time.Duration)
	ObserveEstimate(tier string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveLookup(string, time.Duration) {}
func (nopRecorder) ObserveEstimate(string)              {}

type Service struct {
	provider    StatsProvider
	earningsCfg EarningsConfig
	logger      Logger
	recorder    Recorder
}

func NewService(prov StatsProvider, earningsCfg EarningsConfig, logger Logger, recorder Recorder) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{
		provider:    prov,
		earningsCfg: earningsCfg,
		logger:      logger,
		recorder:    recorder,
	}
}

// Estimate runs the whole pipeline for one pasted reference:
// extract id, look up statistics, compute payout, classify.
func (s *Service) Estimate(ctx context.Context, req models.EstimateRequest) (models.EstimateResponse, error) {
	if err := req.Validate(); err != nil {
		return models.EstimateResponse{}, err
	}

	rawURL := strings.TrimSpace(req.URL)
	videoID := videoid.Extract(rawURL)
	if videoID == "" {
		s.logger.Warnf("Estimate: no video id in %q", rawURL)
		return models.EstimateResponse{}, fmt.Errorf("no video id in %q: %w", rawURL, models.ErrVideoNotFound)
	}

	//call the provider
	start := time.Now()
	stats, err := s.provider.GetVideoStats(ctx, videoID)
	s.recorder.ObserveLookup(lookupResult(stats, err), time.Since(start))
	if err != nil {
		s.logger.Errorf("Estimate: provider error for %s: %v", videoID, err)
		return models.EstimateResponse{}, err
	}

	// zero views is treated like a missing count
	if stats == nil || !stats.Views.Known || stats.Views.Value == 0 {
		s.logger.Infof("Estimate: no view count for %s", videoID)
		return models.EstimateResponse{}, fmt.Errorf("video %s: %w", videoID, models.ErrVideoNotFound)
	}

	//calculate
	resp := s.buildEstimateResponse(videoID, rawURL, stats.Views.Value)
	s.recorder.ObserveEstimate(resp.Tier)

	return resp, nil
}

func (s *Service) Tiers() models.TiersResponse {
	return models.TiersResponse{Tiers: Bands()}
}

// helpers
func (s *Service) buildEstimateResponse(videoID, rawURL string, views int64) models.EstimateResponse {
	payout := s.earningsCfg.Calc(views)
	tier := Classify(payout)

	return models.EstimateResponse{
		VideoID:   videoID,
		URL:       rawURL,
		Views:     views,
		Payout:    payout,
		Display:   models.FormatUSD(payout),
		Currency:  models.CurrencyUSD,
		CPM:       s.earningsCfg.CPM(),
		Tier:      tier.String(),
		Asset:     tier.Asset(),
		Emoji:     tier.Emoji(),
		Celebrate: tier.Celebrate(),
	}
}

func lookupResult(stats *provider.VideoStats, err error) string {
	switch {
	case errors.Is(err, models.ErrMalformedStatistics):
		return LookupMalformed
	case errors.Is(err, models.ErrUpstream):
		return LookupUpstream
	case err != nil:
		return LookupError
	case stats == nil || !stats.Views.Known:
		return LookupAbsent
	default:
		return LookupOK
	}
}
