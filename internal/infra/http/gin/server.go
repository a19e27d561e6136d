package gin

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/moura95/passmeter/docs"
	"github.com/moura95/passmeter/internal/application/services/strength"
	"github.com/moura95/passmeter/internal/infra/config"
	"github.com/moura95/passmeter/internal/infra/metrics"
	"github.com/moura95/passmeter/internal/interfaces/http/handlers"
	middleware "github.com/moura95/passmeter/internal/interfaces/http/middlewares"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	router *gin.Engine
	config *config.Config
	logger *zap.SugaredLogger
}

// @title           Passmeter
// @version         1.0
// @description     Password strength estimation API

// @host      localhost:8080
// @BasePath  /api
func NewServer(cfg config.Config, strengthService *strength.StrengthService, m *metrics.Metrics, log *zap.SugaredLogger) *Server {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	server := &Server{
		config: &cfg,
		logger: log,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	docs.SwaggerInfo.BasePath = "/api"

	if m != nil {
		router.Use(m.Middleware())
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AddAllowHeaders("Content-Type")
	router.Use(cors.New(corsConfig))

	createRoutes(cfg, router, strengthService)

	server.router = router
	return server
}

func createRoutes(cfg config.Config, router *gin.Engine, strengthService *strength.StrengthService) {
	strengthHandler := handlers.NewStrengthHandler(strengthService)

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	})

	api := router.Group("/api")
	{
		strengthRoutes := api.Group("/strength")
		strengthRoutes.Use(rateLimiter.RateLimit())
		{
			strengthRoutes.POST("", strengthHandler.Evaluate)
			strengthRoutes.GET("/stats", strengthHandler.Stats)
		}
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context, address string) error {
	httpServer := &http.Server{
		Addr:              address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("Starting server on %s", address)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return httpServer.Shutdown(shutdownCtx)
}

func RunGinServer(ctx context.Context, cfg config.Config, strengthService *strength.StrengthService, m *metrics.Metrics, log *zap.SugaredLogger) {
	server := NewServer(cfg, strengthService, m, log)

	if err := server.Start(ctx, cfg.HTTPServerAddress); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
