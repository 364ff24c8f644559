package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/screening-web/internal/config"
	"github.com/yourusername/screening-web/internal/handler"
	"github.com/yourusername/screening-web/internal/middleware"
	"github.com/yourusername/screening-web/internal/repository"
	"github.com/yourusername/screening-web/internal/screening"
	"github.com/yourusername/screening-web/internal/service"
)

func main() {
	// ── Logging ──────────────────────────────────────────
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// ── Config ───────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Str("backend", cfg.BackendURL).
		Dur("analysisTimeout", cfg.AnalysisTimeout).
		Msg("Starting resume screening web")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// ── Shared reports ───────────────────────────────────
	var reports handler.ReportStore
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to ping database")
		}
		repo := repository.NewReportRepo(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to prepare database schema")
		}
		reports = repo
		log.Info().Msg("Database connected, shared reports are persistent")
	} else {
		reports = repository.NewMemoryReportRepo()
		log.Warn().Msg("DATABASE_URL not set, shared reports are kept in memory")
	}

	// ── Screening ────────────────────────────────────────
	backend := service.NewScreeningClient(cfg.BackendURL, cfg.UploadPath, cfg.ChatPath)
	ctrl := screening.NewController(backend, screening.Rules{
		MinDescriptionLen: cfg.MinJobDescriptionLen,
		AnalysisTimeout:   cfg.AnalysisTimeout,
		ChatTimeout:       cfg.ChatTimeout,
	})
	sessions := screening.NewStore(cfg.SessionTTL)
	go sessions.Run(ctx)

	// ── Handlers ─────────────────────────────────────────
	screeningHandler := handler.NewScreeningHandler(ctrl, cfg.MaxResumeBytes)
	reportHandler := handler.NewReportHandler(ctrl, reports)

	// ── Middleware ────────────────────────────────────────
	rateLimiter := middleware.NewRateLimiter(ctx, cfg.RateLimitRPS)
	secureCookies := cfg.Env == "production"

	// ── Router ───────────────────────────────────────────
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())
	r.MaxMultipartMemory = cfg.MaxResumeBytes

	// CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.SessionHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.SessionHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "screening-web",
			"time":    time.Now().UTC(),
		})
	})

	// Shared reports need no session
	r.GET("/shared/:id", reportHandler.Shared)

	api := r.Group("/api", middleware.Sessions(sessions, cfg.SessionTTL, secureCookies), rateLimiter.Limit())
	{
		api.GET("/state", screeningHandler.State)
		api.GET("/help", screeningHandler.Help)

		// Upload flow
		api.POST("/resume", screeningHandler.SelectResume)
		api.POST("/description", screeningHandler.UpdateDescription)
		api.POST("/analyze", screeningHandler.Analyze)
		api.POST("/cancel", screeningHandler.Cancel)

		// Chat flow
		api.POST("/chat", screeningHandler.Chat)
		api.POST("/quick/:key", screeningHandler.QuickQuestion)

		// Report actions
		api.POST("/demo", screeningHandler.Demo)
		api.POST("/reset", screeningHandler.Reset)
		api.GET("/report/print", reportHandler.Print)
		api.GET("/report/save", reportHandler.Save)
		api.POST("/report/share", reportHandler.Share)
	}

	// ── Server ───────────────────────────────────────────
	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     r,
		ReadTimeout: 30 * time.Second,
		// Analyze holds the response open for the whole backend call
		WriteTimeout: cfg.AnalysisTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("Resume screening web running")

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

// requestLogger logs every request with zerolog
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= 400 {
			event = log.Warn()
		}
		if status >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", latency).
			Str("ip", c.ClientIP()).
			Msg(fmt.Sprintf("%s %s", c.Request.Method, path))
	}
}
