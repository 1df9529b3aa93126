// Package server assembles the HTTP surface: router, middleware, routes and
// graceful shutdown.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ilcoutreach/outreach-api/internal/auth"
	"github.com/ilcoutreach/outreach-api/internal/config"
	"github.com/ilcoutreach/outreach-api/internal/handlers"
	"github.com/ilcoutreach/outreach-api/internal/logger"
	"github.com/ilcoutreach/outreach-api/internal/tracker"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	config     *config.Config
	tracker    *tracker.Tracker
	auth       *auth.Manager
}

// New creates a new server instance
func New(cfg *config.Config, t *tracker.Tracker) *Server {
	return &Server{
		config:  cfg,
		tracker: t,
		auth:    auth.NewManager(cfg),
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	router := s.setupRouter()

	s.httpServer = &http.Server{
		Addr:    ":" + s.config.Server.Port,
		Handler: router,

		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.HTTP().Info("Starting HTTP server", "port", s.config.Server.Port, "auth", s.auth.Enabled())

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	logger.HTTP().Info("Shutting down HTTP server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *gin.Engine {
	if s.config.Server.GinMode != "" {
		gin.SetMode(s.config.Server.GinMode)
	}

	router := gin.New()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Outreach API is running",
			"status":  "healthy",
		})
	})

	calendarHandler := handlers.NewCalendarHandler(s.tracker)
	router.GET("/calendar.ics", calendarHandler.Feed)

	s.setupAPIRoutes(router)

	return router
}

// setupAPIRoutes configures all API routes
func (s *Server) setupAPIRoutes(router *gin.Engine) {
	eventsHandler := handlers.NewEventsHandler(s.tracker)
	completedHandler := handlers.NewCompletedHandler(s.tracker)
	inventoryHandler := handlers.NewInventoryHandler(s.tracker)
	notesHandler := handlers.NewNotesHandler(s.tracker)
	emailHandler := handlers.NewEmailHandler(s.tracker, s.config)
	linksHandler := handlers.NewLinksHandler(s.config)
	authHandler := handlers.NewAuthHandler(s.auth)

	api := router.Group("/api")

	api.POST("/auth/login", authHandler.Login)

	// Everything below the login route requires a session token when a
	// password is configured.
	api.Use(s.auth.Middleware())
	{
		events := api.Group("/events")
		{
			tabling := events.Group("/tabling")
			{
				tabling.GET("", eventsHandler.ListTabling)
				tabling.POST("", eventsHandler.CreateTabling)
				tabling.PUT("/:id", eventsHandler.UpdateTabling)
				tabling.DELETE("/:id", eventsHandler.DeleteTabling)
				tabling.POST("/:id/complete", eventsHandler.CompleteTabling)
				tabling.PATCH("/:id/space-status", eventsHandler.UpdateSpaceStatus)
				tabling.PATCH("/:id/catering-status", eventsHandler.UpdateCateringStatus)
			}

			presentations := events.Group("/presentations")
			{
				presentations.GET("", eventsHandler.ListPresentations)
				presentations.POST("", eventsHandler.CreatePresentation)
				presentations.PUT("/:id", eventsHandler.UpdatePresentation)
				presentations.DELETE("/:id", eventsHandler.DeletePresentation)
				presentations.POST("/:id/complete", eventsHandler.CompletePresentation)
			}

			completed := events.Group("/completed")
			{
				completed.GET("", completedHandler.List)
				completed.POST("", completedHandler.Create)
				completed.GET("/total-interacted", completedHandler.TotalInteracted)
				completed.GET("/export", completedHandler.Export)
				completed.PUT("/:id", completedHandler.Update)
				completed.DELETE("/:id", completedHandler.Delete)
				completed.POST("/:id/incomplete", completedHandler.MarkIncomplete)
				completed.PATCH("/:id/interacted", completedHandler.UpdateInteracted)
			}
		}

		inventory := api.Group("/inventory")
		{
			inventory.GET("", inventoryHandler.List)
			inventory.POST("", inventoryHandler.Create)
			inventory.PUT("/:id", inventoryHandler.Update)
			inventory.DELETE("/:id", inventoryHandler.Delete)
		}

		notes := api.Group("/notes")
		{
			notes.GET("", notesHandler.List)
			notes.POST("", notesHandler.Create)
			notes.PATCH("/:id/content", notesHandler.UpdateContent)
			notes.PATCH("/:id/details", notesHandler.UpdateDetails)
			notes.DELETE("/:id", notesHandler.Delete)
		}

		emails := api.Group("/emails")
		{
			emails.POST("/presentation", emailHandler.RenderPresentation)
			emails.POST("/presentation/mailto", emailHandler.PresentationMailto)
			emails.POST("/catering", emailHandler.RenderCatering)
			emails.POST("/catering/mailto", emailHandler.CateringMailto)
			emails.GET("/drafts/:slot", emailHandler.GetDraft)
			emails.PUT("/drafts/:slot", emailHandler.SaveDraft)
		}

		api.GET("/links/reserve-space", linksHandler.ReserveSpace)
	}
}
