package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/maze"
)

// Options configures request defaults and limits.
type Options struct {
	// DefaultAlgorithm is used when the query has no algorithm.
	DefaultAlgorithm maze.Algorithm
	DefaultWidth     int
	DefaultHeight    int
	// MaxDimension caps width and height.
	MaxDimension int
}

// DefaultOptions returns RecursiveBacktracking, 20×20, capped at 200.
func DefaultOptions() Options {
	return Options{
		DefaultAlgorithm: maze.RecursiveBacktracking{},
		DefaultWidth:     20,
		DefaultHeight:    20,
		MaxDimension:     200,
	}
}

// Server serves mazes over HTTP.
type Server struct {
	opts  Options
	cache Cache
	log   logrus.FieldLogger
}

// New builds a Server. A nil cache disables caching; a nil logger discards.
func New(opts Options, c Cache, log logrus.FieldLogger) *Server {
	if opts.DefaultAlgorithm == nil {
		opts.DefaultAlgorithm = maze.RecursiveBacktracking{}
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Server{opts: opts, cache: c, log: log}
}

// Handler returns the gin engine with every route and middleware installed.
func (s *Server) Handler() http.Handler {
	router := gin.New()
	router.Use(requestID(), accessLog(s.log), gin.Recovery())

	router.GET("/healthz", s.health)
	v1 := router.Group("/api/v1")
	{
		v1.GET("/algorithms", s.algorithms)
		v1.GET("/mazes", s.getMaze)
	}
	return router
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.log.WithField("addr", addr).Info("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
