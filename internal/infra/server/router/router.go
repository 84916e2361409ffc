// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/contacomigo/backend/internal/infra/metrics"
	"github.com/contacomigo/backend/internal/integration/entrypoint/controller"
	"github.com/contacomigo/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	profileController     *controller.ProfileController
	progressController    *controller.ProgressController
	transactionController *controller.TransactionController
	missionController     *controller.MissionController
	communityController   *controller.CommunityController
	dashboardController   *controller.DashboardController
	settingsController    *controller.SettingsController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
	requireProfile        gin.HandlerFunc
	metrics               *metrics.Metrics
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	profileController *controller.ProfileController,
	progressController *controller.ProgressController,
	transactionController *controller.TransactionController,
	missionController *controller.MissionController,
	communityController *controller.CommunityController,
	dashboardController *controller.DashboardController,
	settingsController *controller.SettingsController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	requireProfile gin.HandlerFunc,
	m *metrics.Metrics,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		profileController:     profileController,
		progressController:    progressController,
		transactionController: transactionController,
		missionController:     missionController,
		communityController:   communityController,
		dashboardController:   dashboardController,
		settingsController:    settingsController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
		requireProfile:        requireProfile,
		metrics:               m,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	if environment != "test" {
		r.engine.Use(gin.Logger())
	}
	if r.metrics != nil {
		r.engine.Use(r.metrics.Middleware())
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check and metrics endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	if r.metrics != nil {
		r.engine.GET("/metrics", gin.WrapH(r.metrics.Handler()))
	}
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		if r.loginRateLimiter != nil {
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		} else {
			auth.POST("/login", r.authController.Login)
		}
		auth.POST("/refresh", r.authController.Refresh)
		auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
	}

	// Authenticated, profile optional
	authed := v1.Group("")
	authed.Use(r.authMiddleware.Authenticate())
	{
		authed.GET("/avatars", r.profileController.ListAvatars)
		authed.GET("/profile", r.profileController.Get)
		authed.POST("/profile/setup", r.profileController.Setup)
	}

	// Engine routes
	app := v1.Group("")
	app.Use(r.authMiddleware.Authenticate(), r.requireProfile)
	{
		app.GET("/me", r.progressController.Get)
		app.PATCH("/me", r.progressController.UpdateName)

		app.GET("/transactions", r.transactionController.List)
		app.POST("/transactions", r.transactionController.Create)
		app.DELETE("/transactions/:id", r.transactionController.Delete)

		app.GET("/missions", r.missionController.List)
		app.POST("/missions/reset-daily", r.missionController.ResetDaily)
		app.POST("/missions/:id/complete", r.missionController.Complete)

		app.GET("/community", r.communityController.List)
		app.POST("/community/:id/like", r.communityController.Like)

		app.GET("/dashboard", r.dashboardController.Summary)
		app.GET("/dashboard/tip", r.dashboardController.Tip)

		app.GET("/settings", r.settingsController.Get)
		app.PATCH("/settings", r.settingsController.Update)

		app.DELETE("/data", r.settingsController.ResetData)
	}
}
