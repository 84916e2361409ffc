// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/contacomigo/backend/config"
	"github.com/contacomigo/backend/internal/infra/dependency"
	"github.com/contacomigo/backend/test/integration/mock"
)

const (
	testEmail     = "admin@contacomigo.app"
	testPassword  = "secret123"
	testJWTSecret = "test-jwt-secret-key-for-testing-purposes"
)

// scenarioStart is the instant every scenario clock begins at.
var scenarioStart = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	injector     *dependency.Injector
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken  string
	refreshToken string

	// Environment
	clock     *mock.Time
	backend   string
	rateLimit int
	vars      map[string]string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		mock.NewRedis()
	})

	ctx.AfterSuite(func() {
		mock.CloseRedis()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: make(map[string]string),
			clock:          mock.NewTime(scenarioStart),
			backend:        config.StateBackendRedis,
			vars:           make(map[string]string),
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc == nil {
			return ctx, nil
		}
		if tc.server != nil {
			tc.server.Close()
		}
		if tc.injector != nil {
			_ = tc.injector.Close()
		}
		mock.ClearRedis(mock.NewRedis())
		return ctx, nil
	})

	registerEnvironmentSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerGameSteps(ctx)
}

// start wires the real application once per scenario, after the
// environment steps chose the backend and the clock.
func (tc *TestContext) start(ctx context.Context) error {
	if tc.server != nil {
		return nil
	}

	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Engine.Timezone = "UTC"
	cfg.Engine.StateBackend = tc.backend
	cfg.Redis.URL = "redis://" + mock.NewRedis().Addr() + "/0"
	cfg.Redis.Password = ""
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.SQLitePath = "file::memory:"
	cfg.Auth = config.AuthConfig{Email: testEmail, Password: testPassword}
	cfg.JWT.Secret = testJWTSecret
	cfg.Gemini.APIKey = ""
	cfg.Email.ResendAPIKey = ""
	cfg.RateLimit.Disabled = tc.rateLimit == 0
	cfg.RateLimit.MaxAttempts = tc.rateLimit
	cfg.RateLimit.Window = time.Minute

	inj, err := dependency.NewInjector(ctx, cfg, dependency.WithClock(tc.clock))
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	tc.injector = inj
	tc.server = httptest.NewServer(inj.Router.Setup(cfg.Server.Environment))
	return nil
}

// expand replaces {name} placeholders with remembered values.
func (tc *TestContext) expand(s string) string {
	for name, value := range tc.vars {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}
	return s
}

func registerEnvironmentSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^the state backend is "([^"]*)"$`, theStateBackendIs)
	ctx.Step(`^login attempts are limited to (\d+) per minute$`, loginAttemptsAreLimitedTo)
	ctx.Step(`^the current time is "([^"]*)"$`, theCurrentTimeIs)
	ctx.Step(`^(\d+) days? pass(?:es)?$`, daysPass)
	ctx.Step(`^(\d+) minutes? pass(?:es)?$`, minutesPass)
	ctx.Step(`^the "([^"]*)" job runs$`, theJobRuns)
}

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.start(ctx)
}

func theStateBackendIs(ctx context.Context, backend string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.server != nil {
		return fmt.Errorf("the state backend must be chosen before the server starts")
	}
	tc.backend = backend
	return nil
}

func loginAttemptsAreLimitedTo(ctx context.Context, attempts int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.server != nil {
		return fmt.Errorf("the rate limit must be set before the server starts")
	}
	tc.rateLimit = attempts
	return nil
}

func theCurrentTimeIs(ctx context.Context, value string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	tc.clock.SetCurrentTime(now)
	return nil
}

func daysPass(ctx context.Context, days int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.clock.Advance(time.Duration(days) * 24 * time.Hour)
	return nil
}

func minutesPass(ctx context.Context, minutes int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.clock.Advance(time.Duration(minutes) * time.Minute)
	return nil
}

func theJobRuns(ctx context.Context, job string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if err := tc.start(ctx); err != nil {
		return err
	}
	if !tc.injector.Scheduler.Trigger(job) {
		return fmt.Errorf("job %q is not registered", job)
	}
	return nil
}
