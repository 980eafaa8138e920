package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	accountinadapter "incubator/internal/modules/account/adapter/in"
	accountoutadapter "incubator/internal/modules/account/adapter/out"
	accountservice "incubator/internal/modules/account/service"
	accountusecase "incubator/internal/modules/account/usecase"
	feedbackinadapter "incubator/internal/modules/feedback/adapter/in"
	feedbackoutadapter "incubator/internal/modules/feedback/adapter/out"
	feedbackservice "incubator/internal/modules/feedback/service"
	feedbackusecase "incubator/internal/modules/feedback/usecase"
	progressinadapter "incubator/internal/modules/progress/adapter/in"
	progressoutadapter "incubator/internal/modules/progress/adapter/out"
	progressservice "incubator/internal/modules/progress/service"
	progressusecase "incubator/internal/modules/progress/usecase"
	projectinadapter "incubator/internal/modules/project/adapter/in"
	projectoutadapter "incubator/internal/modules/project/adapter/out"
	projectservice "incubator/internal/modules/project/service"
	projectusecase "incubator/internal/modules/project/usecase"
	traininginadapter "incubator/internal/modules/training/adapter/in"
	trainingoutadapter "incubator/internal/modules/training/adapter/out"
	trainingservice "incubator/internal/modules/training/service"
	trainingusecase "incubator/internal/modules/training/usecase"
	"incubator/internal/platform/apiclient"
	"incubator/internal/platform/clock"
	"incubator/internal/platform/config"
	"incubator/internal/platform/degrade"
	"incubator/internal/platform/id"
	"incubator/internal/platform/logging"
	"incubator/internal/platform/metrics"
	"incubator/internal/platform/state"
	uiapp "incubator/internal/ui/app"
)

type App struct {
	AccountCLI  accountinadapter.CLIHandler
	ProjectCLI  projectinadapter.CLIHandler
	ProgressCLI progressinadapter.CLIHandler
	FeedbackCLI feedbackinadapter.CLIHandler
	TrainingCLI traininginadapter.CLIHandler

	Config  config.Config
	Logger  *zap.Logger
	Metrics *metrics.Recorder

	store *state.SQLiteStore
}

// TUILogFile is where the dashboard logs, relative to the config dir.
const TUILogFile = "tui.log"

type Option func(*options)

type options struct {
	logFile string
}

// LogToFile sends log output to name under the config dir instead of stderr.
func LogToFile(name string) Option {
	return func(o *options) { o.logFile = name }
}

func New(cfg config.Config, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	var paths []string
	if o.logFile != "" {
		paths = append(paths, filepath.Join(cfg.Dir, o.logFile))
	}
	log, err := logging.New(cfg.LogLevel, paths...)
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}
	store, err := state.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open state: %w", err)
	}
	return wire(cfg, store, log), nil
}

// wire builds the module graph over an already opened store.
func wire(cfg config.Config, store *state.SQLiteStore, log *zap.Logger) *App {
	clk := clock.SystemClock{}
	recorder := metrics.New()
	policy := degrade.New(log, recorder)

	client := apiclient.New(cfg.APIBaseURL, store,
		apiclient.WithTimeout(cfg.Timeout),
		apiclient.WithLogger(log),
		apiclient.WithMetrics(recorder),
		apiclient.WithIDGenerator(id.UUID{}),
	)

	accountUC := accountusecase.NewInteractor(accountservice.NewAccountService(
		clk,
		accountoutadapter.NewJWTDecoder(),
		accountoutadapter.NewStateSessionStore(store),
		log,
	))

	projectAPI := projectoutadapter.NewRESTProjectAPI(client)
	projectUC := projectusecase.NewInteractor(
		projectservice.NewResolver(
			projectoutadapter.NewAccountUserAdapter(accountUC),
			projectAPI,
			projectoutadapter.NewStateSelectionStore(store),
			policy,
			log,
		),
		projectservice.NewProjectService(projectAPI, projectoutadapter.NewRESTTeamAPI(client), policy),
	)

	progressUC := progressusecase.NewInteractor(progressservice.NewProgressService(
		progressoutadapter.NewRESTModuleAPI(client),
		progressoutadapter.NewRESTSessionAPI(client),
		progressoutadapter.NewProjectLookupAdapter(projectUC),
		policy,
	))

	feedbackUC := feedbackusecase.NewInteractor(feedbackservice.NewFeedbackService(
		feedbackoutadapter.NewRESTFeedbackAPI(client),
		policy,
	))

	trainingUC := trainingusecase.NewInteractor(trainingservice.NewTrainingService(
		trainingoutadapter.NewRESTWorkshopAPI(client),
		policy,
	))

	return &App{
		AccountCLI:  accountinadapter.NewCLIHandler(accountUC),
		ProjectCLI:  projectinadapter.NewCLIHandler(projectUC),
		ProgressCLI: progressinadapter.NewCLIHandler(progressUC),
		FeedbackCLI: feedbackinadapter.NewCLIHandler(feedbackUC),
		TrainingCLI: traininginadapter.NewCLIHandler(trainingUC),
		Config:      cfg,
		Logger:      log,
		Metrics:     recorder,
		store:       store,
	}
}

// SeedToken logs in with the configured token when one is set. A token that
// does not decode is reported but the stored session is left alone.
func (a *App) SeedToken(ctx context.Context) error {
	if a.Config.Token == "" {
		return nil
	}
	if _, err := a.AccountCLI.Login(ctx, a.Config.Token); err != nil {
		return fmt.Errorf("INCUBATOR_TOKEN: %w", err)
	}
	return nil
}

func (a *App) Close() error {
	_ = a.Logger.Sync()
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

// ServeMetrics exposes the Prometheus registry on addr until ctx ends.
func (a *App) ServeMetrics(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: a.Metrics.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	a.Logger.Info("serving metrics", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func RunTUI(app *App) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if app.Config.MetricsAddr != "" {
		go func() {
			if err := app.ServeMetrics(ctx, app.Config.MetricsAddr); err != nil {
				app.Logger.Warn("metrics server stopped", zap.Error(err))
			}
		}()
	}
	model := uiapp.NewModel(app.AccountCLI, app.ProjectCLI, app.ProgressCLI, app.FeedbackCLI, app.TrainingCLI)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
