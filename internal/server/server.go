// Package server exposes the pipeline over HTTP: a process endpoint that
// pulls a video from a URL, a browser-style multipart upload, and static
// serving of the produced artifacts.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SohamKamathi18/youtube/internal/config"
	"github.com/SohamKamathi18/youtube/internal/logger"
	"github.com/SohamKamathi18/youtube/internal/pipeline"
)

// CoordinatorFactory builds a Coordinator bound to the caller's API
// credential. Each request carries its own Gemini key.
type CoordinatorFactory func(apiKey string) pipeline.Coordinator

type Server struct {
	cfg        *config.Config
	logger     logger.Logger
	newRun     CoordinatorFactory
	engine     *gin.Engine
	httpClient *http.Client
}

// New creates the HTTP server and registers its routes.
func New(cfg *config.Config, log logger.Logger, factory CoordinatorFactory) *Server {
	s := &Server{
		cfg:        cfg,
		logger:     log,
		newRun:     factory,
		engine:     gin.New(),
		// Shared by video downloads and webhook delivery; the timeout
		// keeps detached webhook goroutines from hanging forever.
		httpClient: &http.Client{Timeout: 5 * time.Minute},
	}

	s.engine.Use(gin.Recovery())

	s.engine.GET("/healthz", s.health)
	s.engine.POST("/process", s.processURL)
	s.engine.POST("/upload", s.processUpload)
	s.engine.Static("/outputs", cfg.Paths.Outputs)

	return s
}

// Handler returns the underlying HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Server.Addr,
		Handler: s.engine,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	s.logger.Info(ctx, "HTTP server listening on %s", s.cfg.Server.Addr)

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
