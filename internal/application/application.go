package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"ytworth/internal/api"
	"ytworth/internal/api/handlers"
	"ytworth/internal/config"
	youtubeprovider "ytworth/internal/infrastructure/youtube_provider"
	"ytworth/internal/logger"
	"ytworth/internal/metrics"
	"ytworth/internal/service"
	"ytworth/internal/version"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

type Application struct {
	configPath string

	cfg      *config.Config
	logger   *zap.SugaredLogger
	metrics  *metrics.Metrics
	service  *service.Service
	router   *api.Router
	utility  *http.Server
	errChan  chan error
	wg       sync.WaitGroup
	ready    bool
	readyMux sync.RWMutex
}

// NewApplication reads configuration from configPath, or from the
// environment alone when it is empty.
func NewApplication(configPath string) *Application {
	return &Application{
		configPath: configPath,
		errChan:    make(chan error, 2),
		ready:      false,
	}
}

func (a *Application) Start(ctx context.Context) error {
	if err := a.initConfig(); err != nil {
		return fmt.Errorf("init config: %w", err)
	}
	if err := a.initLogger(); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	if err := a.initMetrics(); err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	if err := a.initService(); err != nil {
		return fmt.Errorf("init service: %w", err)
	}
	if err := a.initRouter(); err != nil {
		return fmt.Errorf("init router: %w", err)
	}

	a.startHTTPServer()
	a.startUtilityServer()

	a.setReady(true)
	a.logger.Infof("Application started successfully (version %s)", version.String())

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	defer cancel()

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("Shutdown signal received, starting graceful shutdown...")
	case runErr = <-a.errChan:
		a.logger.Errorf("Error received, initiating shutdown: %v", runErr)
	}

	a.setReady(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.router.Shutdown(shutdownCtx); err != nil {
		a.logger.Errorf("HTTP server shutdown error: %v", err)
		runErr = errors.Join(runErr, err)
	}
	if err := a.utility.Shutdown(shutdownCtx); err != nil {
		a.logger.Errorf("Utility server shutdown error: %v", err)
		runErr = errors.Join(runErr, err)
	}

	a.wg.Wait()

	a.logger.Info("Graceful shutdown completed")
	_ = a.logger.Sync()

	return runErr
}

func (a *Application) IsReady() bool {
	a.readyMux.RLock()
	defer a.readyMux.RUnlock()
	return a.ready
}

func (a *Application) setReady(ready bool) {
	a.readyMux.Lock()
	a.ready = ready
	a.readyMux.Unlock()
}

func (a *Application) initConfig() error {
	cfg, err := config.ParseConfig(a.configPath)
	if err != nil {
		return err
	}

	a.cfg = cfg
	return nil
}

func (a *Application) initLogger() error {
	log, err := logger.New(a.cfg.Log.Level, a.cfg.Log.Development)
	if err != nil {
		return err
	}

	a.logger = log
	return nil
}

func (a *Application) initMetrics() error {
	a.metrics = metrics.New()
	a.metrics.Init(version.String())
	return nil
}

func (a *Application) initService() error {
	svc, err := NewService(a.cfg, a.logger, a.metrics)
	if err != nil {
		return err
	}

	a.service = svc
	return nil
}

func (a *Application) initRouter() error {
	h := handlers.NewHandler(a.service, a.logger)
	a.router = api.NewRouter(a.cfg, h, a.logger, a.metrics)
	return nil
}

func (a *Application) startHTTPServer() {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		a.logger.Infof("HTTP server listening on %s", a.cfg.HTTP.ListenAddr)
		if err := a.router.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errChan <- fmt.Errorf("http server: %w", err)
		}
	}()
}

func (a *Application) startUtilityServer() {
	r := chi.NewRouter()
	r.Get("/health", a.healthHandler)
	r.Get("/ready", a.readyHandler)
	r.Handle("/metrics", a.metrics.Handler())

	a.utility = &http.Server{
		Addr:              a.cfg.Utility.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		a.logger.Infof("Utility server listening on %s", a.cfg.Utility.ListenAddr)
		if err := a.utility.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errChan <- fmt.Errorf("utility server: %w", err)
		}
	}()
}

func (a *Application) healthHandler(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write([]byte("ok"))
}

func (a *Application) readyHandler(writer http.ResponseWriter, _ *http.Request) {
	if !a.IsReady() {
		writer.WriteHeader(http.StatusServiceUnavailable)
		_, _ = writer.Write([]byte("not ready"))
		return
	}
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write([]byte("ready"))
}

// NewService wires the YouTube statistics client into an estimate service.
// The CLI uses it directly for one-shot estimates.
func NewService(cfg *config.Config, log *zap.SugaredLogger, recorder service.Recorder) (*service.Service, error) {
	pcfg := youtubeprovider.Config{
		BaseURL: cfg.Provider.URL,
		APIKey:  cfg.Provider.APIKey,
		Timeout: cfg.Provider.Timeout,
	}

	client, err := youtubeprovider.NewClient(youtubeprovider.NewHTTPClient(pcfg), pcfg, log)
	if err != nil {
		return nil, fmt.Errorf("youtube client: %w", err)
	}

	earnings := service.EarningsConfig{
		Rate: cfg.Earnings.Rate,
		Per:  cfg.Earnings.Per,
	}

	return service.NewService(client, earnings, log, recorder), nil
}
