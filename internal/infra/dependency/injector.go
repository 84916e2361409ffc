// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	redisclient "github.com/redis/go-redis/v9"

	"github.com/contacomigo/backend/config"
	"github.com/contacomigo/backend/internal/application/adapter"
	"github.com/contacomigo/backend/internal/application/engine"
	"github.com/contacomigo/backend/internal/application/session"
	"github.com/contacomigo/backend/internal/application/usecase/auth"
	"github.com/contacomigo/backend/internal/application/usecase/community"
	"github.com/contacomigo/backend/internal/application/usecase/dashboard"
	"github.com/contacomigo/backend/internal/application/usecase/data"
	"github.com/contacomigo/backend/internal/application/usecase/milestone"
	"github.com/contacomigo/backend/internal/application/usecase/mission"
	"github.com/contacomigo/backend/internal/application/usecase/profile"
	"github.com/contacomigo/backend/internal/application/usecase/progress"
	"github.com/contacomigo/backend/internal/application/usecase/settings"
	"github.com/contacomigo/backend/internal/application/usecase/transaction"
	"github.com/contacomigo/backend/internal/domain/valueobject"
	"github.com/contacomigo/backend/internal/infra/cache"
	"github.com/contacomigo/backend/internal/infra/db"
	"github.com/contacomigo/backend/internal/infra/metrics"
	"github.com/contacomigo/backend/internal/infra/scheduler"
	"github.com/contacomigo/backend/internal/infra/server/router"
	"github.com/contacomigo/backend/internal/integration/adapters"
	"github.com/contacomigo/backend/internal/integration/email"
	"github.com/contacomigo/backend/internal/integration/email/templates"
	"github.com/contacomigo/backend/internal/integration/entrypoint/controller"
	"github.com/contacomigo/backend/internal/integration/entrypoint/dto"
	"github.com/contacomigo/backend/internal/integration/entrypoint/middleware"
	"github.com/contacomigo/backend/internal/integration/persistence"
)

// Scheduled job names.
const (
	JobRollover         = "rollover"
	JobEmailPurge       = "email_purge"
	JobRateLimitCleanup = "rate_limit_cleanup"
)

// Injector holds all application dependencies.
type Injector struct {
	Config    *config.Config
	Store     adapter.StateStore
	Engine    *engine.Engine
	Metrics   *metrics.Metrics
	Router    *router.Router
	Scheduler *scheduler.Scheduler
	// EmailWorker is nil unless milestone emails are enabled.
	EmailWorker *email.Worker
	TipUseCase  *dashboard.GetTipUseCase

	database *db.Database
	redis    *redisclient.Client
}

// Option customizes how the injector is built.
type Option func(*options)

type options struct {
	clock adapter.Clock
}

// WithClock replaces the wall clock used by the engine, tokens and workers.
func WithClock(clock adapter.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// NewInjector connects the state backend, loads the engine and wires every
// use case, controller and scheduled job.
func NewInjector(ctx context.Context, cfg *config.Config, opts ...Option) (*Injector, error) {
	o := options{clock: adapters.NewSystemClock()}
	for _, opt := range opts {
		opt(&o)
	}

	inj := &Injector{Config: cfg}

	if err := inj.connectStore(ctx); err != nil {
		return nil, err
	}

	clock := o.clock
	inj.Metrics = metrics.New()

	// Engine
	ns := valueobject.Namespace(cfg.Engine.KeyPrefix)
	loc := cfg.Engine.Location()
	inj.Engine = engine.New(inj.Store, clock, engine.Options{
		Namespace: ns,
		Location:  loc,
		Leagues:   valueobject.DefaultLeagues,
		Recorder:  inj.Metrics,
	})
	inj.Engine.Load(ctx)

	sessions := session.NewStore(inj.Store, ns)

	// Milestone emails
	var notifier adapter.MilestoneNotifier
	if err := inj.setupEmail(clock, &notifier); err != nil {
		inj.Close()
		return nil, err
	}
	dispatcher := milestone.NewDispatcher(inj.Engine, notifier, cfg.Auth.Email)

	// Auth
	passwordService := adapters.NewPasswordService()
	passwordHash, err := resolvePasswordHash(cfg.Auth, passwordService)
	if err != nil {
		inj.Close()
		return nil, err
	}
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, adapters.TokenDurations{
		Access:  cfg.JWT.AccessTokenExpiry,
		Refresh: cfg.JWT.RefreshTokenExpiry,
	}, clock)

	credentials := auth.Credentials{Email: cfg.Auth.Email, PasswordHash: passwordHash}
	loginUseCase := auth.NewLoginUserUseCase(credentials, sessions, passwordService, tokenService, clock)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(sessions, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(sessions)
	authorizeUseCase := auth.NewAuthorizeUseCase(sessions, tokenService)

	// Profile
	setupProfileUseCase := profile.NewSetupProfileUseCase(sessions, inj.Engine)
	getProfileUseCase := profile.NewGetProfileUseCase(sessions)
	listAvatarsUseCase := profile.NewListAvatarsUseCase()

	// Engine use cases
	policy := engine.HabitPolicy{
		NeutralScore:          cfg.Engine.Habits.NeutralScore,
		AdherenceBonus:        cfg.Engine.Habits.AdherenceBonus,
		TargetSavingsRate:     cfg.Engine.Habits.TargetSavingsRate,
		ExpectedDailyExpenses: cfg.Engine.Habits.ExpectedDailyExpenses,
		ImpulsePenalty:        cfg.Engine.Habits.ImpulsePenalty,
	}
	tipService := adapters.NewGeminiTipService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	inj.TipUseCase = dashboard.NewGetTipUseCase(inj.Engine, tipService, cfg.Gemini.TipTimeout, inj.Metrics)

	// Controllers
	healthController := controller.NewHealthController(inj.Store, cfg.Engine.StateBackend)
	authController := controller.NewAuthController(loginUseCase, refreshTokenUseCase, logoutUseCase)
	profileController := controller.NewProfileController(setupProfileUseCase, getProfileUseCase, listAvatarsUseCase)
	progressController := controller.NewProgressController(
		progress.NewGetOverviewUseCase(inj.Engine, valueobject.DefaultLeagues),
		progress.NewUpdateNameUseCase(inj.Engine),
	)
	transactionController := controller.NewTransactionController(
		transaction.NewListTransactionsUseCase(inj.Engine),
		transaction.NewCreateTransactionUseCase(inj.Engine, dispatcher),
		transaction.NewDeleteTransactionUseCase(inj.Engine, dispatcher),
	)
	missionController := controller.NewMissionController(
		mission.NewListMissionsUseCase(inj.Engine),
		mission.NewCompleteMissionUseCase(inj.Engine, dispatcher),
		mission.NewResetDailyMissionsUseCase(inj.Engine),
	)
	communityController := controller.NewCommunityController(
		community.NewListPostsUseCase(inj.Engine),
		community.NewLikePostUseCase(inj.Engine),
	)
	dashboardController := controller.NewDashboardController(
		dashboard.NewGetSummaryUseCase(inj.Engine, policy),
		inj.TipUseCase,
	)
	settingsController := controller.NewSettingsController(
		settings.NewGetSettingsUseCase(inj.Engine),
		settings.NewUpdateSettingsUseCase(inj.Engine),
		data.NewResetDataUseCase(inj.Engine),
	)

	// Middleware
	if err := dto.RegisterValidators(); err != nil {
		inj.Close()
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}
	loginRateLimiter := middleware.NewRateLimiterWithConfig(middleware.RateLimiterConfig{
		MaxAttempts:    cfg.RateLimit.MaxAttempts,
		WindowDuration: cfg.RateLimit.Window,
		Disabled:       cfg.RateLimit.Disabled,
	}, clock)
	authMiddleware := middleware.NewAuthMiddleware(authorizeUseCase)

	inj.Router = router.NewRouter(
		healthController,
		authController,
		profileController,
		progressController,
		transactionController,
		missionController,
		communityController,
		dashboardController,
		settingsController,
		loginRateLimiter,
		authMiddleware,
		middleware.RequireProfile(getProfileUseCase),
		inj.Metrics,
	)

	// Scheduled jobs
	inj.Scheduler = scheduler.New(loc, inj.Metrics)
	jobs := []scheduler.Job{
		{Name: JobRollover, Spec: cfg.Scheduler.RolloverSpec, Run: func(ctx context.Context) {
			res := inj.Engine.Rollover(ctx)
			slog.Info("Day rollover applied", "missions_reset", res.MissionsReset, "streak_broken", res.StreakBroken)
		}},
		{Name: JobRateLimitCleanup, Spec: cfg.Scheduler.RateLimitSpec, Run: func(context.Context) {
			if removed := loginRateLimiter.Cleanup(); removed > 0 {
				slog.Debug("Rate limiter entries expired", "count", removed)
			}
		}},
	}
	if inj.EmailWorker != nil {
		jobs = append(jobs, scheduler.Job{Name: JobEmailPurge, Spec: cfg.Scheduler.EmailPurge, Run: inj.EmailWorker.PurgeSent})
	}
	for _, job := range jobs {
		if err := inj.Scheduler.Register(job); err != nil {
			inj.Close()
			return nil, err
		}
	}

	return inj, nil
}

// connectStore opens the configured state backend.
func (inj *Injector) connectStore(ctx context.Context) error {
	cfg := inj.Config
	switch cfg.Engine.StateBackend {
	case config.StateBackendRedis:
		client, err := cache.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			return err
		}
		inj.redis = client
		inj.Store = persistence.NewRedisStateRepository(client)
	case config.StateBackendDatabase:
		database, err := db.NewConnection(&cfg.Database)
		if err != nil {
			return err
		}
		if err := database.AutoMigrate(); err != nil {
			_ = database.Close()
			return err
		}
		slog.Info("Database migrations completed successfully")
		inj.database = database
		inj.Store = persistence.NewStateRepository(database.DB())
	default:
		return fmt.Errorf("unsupported state backend %q", cfg.Engine.StateBackend)
	}
	return nil
}

// setupEmail wires the outbox and its worker. Milestone emails need the
// database backend and a Resend key; otherwise notifier stays nil.
func (inj *Injector) setupEmail(clock adapter.Clock, notifier *adapter.MilestoneNotifier) error {
	cfg := inj.Config
	if inj.database == nil || cfg.Email.ResendAPIKey == "" || !cfg.Email.WorkerEnabled {
		slog.Info("Milestone emails disabled",
			"backend", cfg.Engine.StateBackend,
			"resend_configured", cfg.Email.ResendAPIKey != "",
		)
		return nil
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to load email templates: %w", err)
	}

	queue := persistence.NewEmailQueueRepository(inj.database.DB())
	sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	inj.EmailWorker = email.NewWorker(queue, sender, renderer, clock, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
		Retention:    cfg.Email.Retention,
	})
	*notifier = email.NewMilestoneMailer(queue, clock, cfg.Email.AppBaseURL)
	return nil
}

// resolvePasswordHash returns the configured bcrypt hash, hashing the plain
// password when no hash is given.
func resolvePasswordHash(cfg config.AuthConfig, passwords adapter.PasswordService) (string, error) {
	if cfg.PasswordHash != "" {
		return cfg.PasswordHash, nil
	}
	if cfg.Password == "" {
		slog.Warn("No AUTH_PASSWORD configured, login is disabled")
		return "", nil
	}
	hash, err := passwords.HashPassword(cfg.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash AUTH_PASSWORD: %w", err)
	}
	return hash, nil
}

// Close releases the state backend connections.
func (inj *Injector) Close() error {
	var errs []error
	if inj.database != nil {
		errs = append(errs, inj.database.Close())
	}
	if inj.redis != nil {
		errs = append(errs, inj.redis.Close())
	}
	return errors.Join(errs...)
}
