// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"inkwell/config"
	"inkwell/internal/delivery/api/middleware"
	"inkwell/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	PostHandler      *handler.PostHandler
	ImageHandler     *handler.ImageHandler
	ProfileHandler   *handler.ProfileHandler
	AnalyticsHandler *handler.AnalyticsHandler
	ContactHandler   *handler.ContactHandler
	TestHandler      *handler.TestHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	postHandler      *handler.PostHandler
	imageHandler     *handler.ImageHandler
	profileHandler   *handler.ProfileHandler
	analyticsHandler *handler.AnalyticsHandler
	contactHandler   *handler.ContactHandler
	testHandler      *handler.TestHandler
	authMiddleware   *middleware.AuthMiddleware
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		postHandler:      params.PostHandler,
		imageHandler:     params.ImageHandler,
		profileHandler:   params.ProfileHandler,
		analyticsHandler: params.AnalyticsHandler,
		contactHandler:   params.ContactHandler,
		testHandler:      params.TestHandler,
		authMiddleware:   params.AuthMiddleware,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.authMiddleware.Authenticate

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/google", r.authHandler.GoogleSignIn)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout, authenticate)
	}

	// OAuth authorization-code flow
	oauthGroup := e.Group("/oauth")
	{
		oauthGroup.GET("/google/login", r.authHandler.GoogleLogin)
		oauthGroup.POST("/google/callback", r.authHandler.GoogleCallback)
	}

	// Stored images
	e.GET("/images/*", r.imageHandler.Serve)

	apiV1 := e.Group("/api/v1")

	// Posts: reads are public, writes need a session
	postsGroup := apiV1.Group("/posts")
	{
		postsGroup.GET("", r.postHandler.ListRecent)
		postsGroup.GET("/category/:category", r.postHandler.ListByCategory)
		postsGroup.GET("/author", r.postHandler.ListByAuthor)
		postsGroup.GET("/:id", r.postHandler.Get)
		postsGroup.GET("/:id/qr", r.postHandler.ShareCode)
		postsGroup.POST("", r.postHandler.Create, authenticate)
		postsGroup.PATCH("/:id", r.postHandler.Update, authenticate)
		postsGroup.DELETE("/:id", r.postHandler.Remove, authenticate)
	}

	meGroup := apiV1.Group("/me", authenticate)
	{
		meGroup.GET("/posts", r.postHandler.ListMine)
	}

	apiV1.POST("/images", r.imageHandler.Upload, authenticate)

	profileGroup := apiV1.Group("/profile", authenticate)
	{
		profileGroup.GET("", r.profileHandler.Get)
		profileGroup.PUT("", r.profileHandler.Update)
	}

	analyticsGroup := apiV1.Group("/analytics")
	{
		analyticsGroup.GET("/categories", r.analyticsHandler.Categories)
		analyticsGroup.GET("/me", r.analyticsHandler.Me, authenticate)
	}

	contactGroup := apiV1.Group("/contact")
	{
		contactGroup.GET("", r.contactHandler.Info)
		contactGroup.POST("", r.contactHandler.Submit)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
		testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
	}
}
