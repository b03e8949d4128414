// Command mazed serves mazes over HTTP.
//
// Configuration comes from -config (YAML), a .env file and MAZE_* variables.
// With MAZE_REDIS_ADDR set, rendered mazes are cached in Redis and shared
// between replicas; otherwise an in-process LRU is used.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/server"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("loading configuration")
	}
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache := newCache(ctx, cfg.Server, log)
	srv := server.New(server.Options{
		DefaultAlgorithm: cfg.Maze.Algorithm.Value,
		DefaultWidth:     cfg.Maze.Width,
		DefaultHeight:    cfg.Maze.Height,
		MaxDimension:     cfg.Server.MaxDimension,
	}, cache, log)

	if err := srv.Run(ctx, cfg.Server.Addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
	log.Info("server stopped")
}

// newCache prefers Redis when configured and reachable.
func newCache(ctx context.Context, cfg config.Server, log *logrus.Logger) server.Cache {
	if cfg.CacheSize == 0 && cfg.RedisAddr == "" {
		log.Info("response cache disabled")
		return nil
	}
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		rc := server.NewRedisCache(client, cfg.CacheTTL)

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		err := rc.Ping(pingCtx)
		if err == nil {
			log.WithField("addr", cfg.RedisAddr).Info("using redis cache")
			return rc
		}
		log.WithError(err).Warn("redis unreachable, falling back to memory cache")
		_ = client.Close()
	}
	if cfg.CacheSize == 0 {
		return nil
	}
	return server.NewMemoryCache(cfg.CacheSize)
}
