package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"ytworth/internal/models"
)

type Estimator interface {
	Estimate(ctx context.Context, req models.EstimateRequest) (models.EstimateResponse, error)
}

type WatchConfig struct {
	// Schedule is a cron spec; descriptors such as "@every 5m" are accepted.
	Schedule       string
	MaxConcurrency int
}

// WatchUpdate is one re-estimate of a watched URL. Previous is nil on the
// first successful estimate.
type WatchUpdate struct {
	URL      string
	Estimate models.EstimateResponse
	Previous *models.EstimateResponse
	Err      error
}

// TierChanged reports whether the payout moved to another band since the
// previous successful estimate.
func (u WatchUpdate) TierChanged() bool {
	return u.Err == nil && u.Previous != nil && u.Previous.Tier != u.Estimate.Tier
}

// Watcher re-estimates a fixed set of URLs on a schedule. The last
// estimate per URL lives in memory only.
type Watcher struct {
	estimator Estimator
	logger    Logger
	cfg       WatchConfig

	// report is called with reportMu held, so it never runs concurrently.
	reportMu sync.Mutex
	report   func(WatchUpdate)

	mu   sync.Mutex
	last map[string]models.EstimateResponse
}

// NewWatcher builds a Watcher. Calls to report are serialized, so it may
// write to a shared writer without its own locking.
func NewWatcher(estimator Estimator, logger Logger, cfg WatchConfig, report func(WatchUpdate)) *Watcher {
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 1
	}
	if report == nil {
		report = func(WatchUpdate) {}
	}
	return &Watcher{
		estimator: estimator,
		logger:    logger,
		cfg:       cfg,
		report:    report,
		last:      make(map[string]models.EstimateResponse),
	}
}

// Run estimates every URL once, then again on each scheduled tick until
// ctx is done. Ticks that fire while a batch is still running are skipped.
func (w *Watcher) Run(ctx context.Context, urls []string) error {
	if len(urls) == 0 {
		return fmt.Errorf("watch: no urls: %w", models.ErrEmptyInput)
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger{w.logger})))
	if _, err := c.AddFunc(w.cfg.Schedule, func() {
		if err := w.processBatch(ctx, urls); err != nil {
			w.logger.Errorf("Watcher: batch error: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("watch: schedule %q: %w", w.cfg.Schedule, err)
	}

	w.logger.Infof("Watcher: watching %d urls on %q", len(urls), w.cfg.Schedule)

	if err := w.processBatch(ctx, urls); err != nil {
		w.logger.Errorf("Watcher: batch error: %v", err)
	}

	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()

	w.logger.Info("Watcher: shutdown")
	return nil
}

func (w *Watcher) processBatch(ctx context.Context, urls []string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.cfg.MaxConcurrency)

	for _, u := range urls {
		u := u
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			w.estimateOne(gctx, u)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// estimateOne never fails the batch; a bad URL must not stop the others.
func (w *Watcher) estimateOne(ctx context.Context, url string) {
	resp, err := w.estimator.Estimate(ctx, models.EstimateRequest{URL: url})
	if err != nil {
		w.logger.Warnf("Watcher: estimate %s: %v", url, err)
		w.emit(WatchUpdate{URL: url, Err: err})
		return
	}

	w.mu.Lock()
	prev, seen := w.last[url]
	w.last[url] = resp
	w.mu.Unlock()

	update := WatchUpdate{URL: url, Estimate: resp}
	if seen {
		update.Previous = &prev
	}
	if update.TierChanged() {
		w.logger.Infof("Watcher: %s moved from %s to %s", url, prev.Tier, resp.Tier)
	}

	w.emit(update)
}

func (w *Watcher) emit(u WatchUpdate) {
	w.reportMu.Lock()
	defer w.reportMu.Unlock()
	w.report(u)
}

// cronLogger adapts Logger to cron.Logger.
type cronLogger struct {
	logger Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Infof("cron: %s %v", msg, keysAndValues)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorf("cron: %s: %v %v", msg, err, keysAndValues)
}
