package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"IssueCreator/internal/config"
	"IssueCreator/internal/domain"
	"IssueCreator/internal/infrastructure/archive"
	"IssueCreator/internal/infrastructure/buttondown"
	"IssueCreator/internal/infrastructure/scheduler"
	"IssueCreator/internal/infrastructure/storage"
	"IssueCreator/internal/infrastructure/upstream"
	"IssueCreator/internal/logging"
	"IssueCreator/internal/ports"
	"IssueCreator/internal/render"
	"IssueCreator/internal/server"
	"IssueCreator/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg    config.Config
	logger *slog.Logger
	runner *usecase.Runner
	runs   ports.RunLog
	db     *sql.DB
}

// New builds a runnable application instance. Postgres is only contacted
// when a DSN is configured.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}

	body, err := templateBody(cfg.Newsletter.TemplatePath)
	if err != nil {
		return nil, err
	}

	var email ports.EmailService
	if cfg.Email.APIKey != "" {
		email = buttondown.NewClient(cfg.Email)
	} else {
		baseLogger.Warn("email api key is not set, only dry runs will succeed")
	}

	orchestrator := usecase.NewOrchestrator(usecase.OrchestratorDeps{
		Email:      email,
		Newsletter: render.NewNewsletter(render.TextTemplate{}, body),
		Slot:       cfg.Schedule.Slot(),
		SeriesName: cfg.Newsletter.SeriesName,
		EmailMode:  usecase.EmailMode(cfg.Email.Mode),
		TestRecipients: ports.DraftRecipients{
			Recipients:  cfg.Email.TestRecipients,
			Subscribers: cfg.Email.TestSubscribers,
		},
		Logger: baseLogger.With("component", "orchestrator"),
	})

	httpClient := upstream.NewClient(nil)
	var sponsors ports.SponsorSource
	if cfg.Sources.Airtable.BaseID != "" && cfg.Sources.Airtable.APIKey != "" {
		sponsors = upstream.NewSponsorSource(httpClient, cfg.Sources.Airtable)
	}

	assembler := usecase.NewAssembler(usecase.AssemblerDeps{
		Issues:   archive.NewScraper(nil, cfg.Sources.ArchiveURL),
		Quotes:   upstream.NewQuoteSource(httpClient, cfg.Sources.QuotesBaseURL),
		Books:    upstream.NewBookSource(httpClient, cfg.Sources.BooksBaseURL),
		Sponsors: sponsors,
		Links:    upstream.NewLinkSource(httpClient, cfg.Sources.LinksURL),
		Logger:   baseLogger.With("component", "assembler"),
	})

	a := &Application{cfg: cfg, logger: baseLogger}

	var recorder ports.RunRecorder
	if cfg.Database.DSN != "" {
		db, err := storage.Open(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, err
		}
		repo := storage.NewRunRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
		a.db = db
		a.runs = repo
		recorder = repo
	}

	a.runner = usecase.NewRunner(orchestrator, assembler, recorder, baseLogger.With("component", "runner"))
	return a, nil
}

// RunEvent performs a single invocation for a ready event.
func (a *Application) RunEvent(ctx context.Context, event domain.Event) (domain.Result, error) {
	return a.runner.RunEvent(ctx, event)
}

// RunAssembled performs a single invocation from upstream sources, using
// the current time as reference.
func (a *Application) RunAssembled(ctx context.Context, dryRun bool) (domain.Result, error) {
	now := time.Now().In(a.cfg.Schedule.Location())
	return a.runner.RunAssembled(ctx, now, dryRun)
}

// Serve runs the HTTP trigger, and the weekly scheduler when enabled, until
// ctx is cancelled.
func (a *Application) Serve(ctx context.Context) error {
	handlers := server.NewHandlers(a.runner, a.runs, a.logger.With("component", "http"))
	srv := server.NewHTTPServer(a.cfg.Server.Addr, handlers)

	var weekly *usecase.Scheduler
	if a.cfg.Scheduler.Enabled {
		driver := scheduler.NewWeeklyScheduler(a.cfg.Scheduler.TriggerSlot())
		weekly = usecase.NewScheduler(driver, a.runner, a.logger.With("component", "scheduler"))
		if err := weekly.Start(ctx); err != nil {
			return fmt.Errorf("start scheduler: %w", err)
		}
		a.logger.Info("weekly scheduler started", "next_trigger", driver.Next())
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", "addr", a.cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if weekly != nil {
		if err := weekly.Stop(shutdownCtx); err != nil {
			a.logger.Error("stop scheduler", "error", err)
		}
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("shutdown http server", "error", err)
	}

	if serveErr != nil {
		return fmt.Errorf("http server: %w", serveErr)
	}
	return nil
}

// Close releases the database handle.
func (a *Application) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func templateBody(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read newsletter template: %w", err)
	}
	return string(raw), nil
}
