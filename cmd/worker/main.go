package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"pcstore-backend/internal/config"
	"pcstore-backend/internal/shared"
	"pcstore-backend/pkg/container"
	"pcstore-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", err)
		os.Exit(1)
	}

	logger.Init(cfg.App.Environment)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	c, err := container.New(ctx, cfg, container.Options{})
	cancel()
	if err != nil {
		logger.Error("failed to initialize container", err)
		os.Exit(1)
	}
	defer c.Close()

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: cfg.Worker.Concurrency,
		Queues: map[string]int{
			shared.QueueBuilds:  4,
			shared.QueueCatalog: 2,
			shared.QueueDefault: 1,
		},
	})

	mux := asynq.NewServeMux()

	mux.HandleFunc(shared.TypeBuildRecountLikes, func(ctx context.Context, t *asynq.Task) error {
		var p shared.RecountLikesPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return fmt.Errorf("unmarshal recount payload: %w", err)
		}
		return c.BuildService.RecountLikes(ctx, p.BuildID)
	})

	mux.HandleFunc(shared.TypeBuildReconcileLikes, func(ctx context.Context, t *asynq.Task) error {
		fixed, err := c.BuildService.ReconcileLikeCounts(ctx)
		if err != nil {
			return err
		}
		if fixed > 0 {
			logger.Info("reconciled like counters", map[string]interface{}{
				"fixed": fixed,
			})
		}
		return nil
	})

	mux.HandleFunc(shared.TypeCatalogWarmFeatured, func(ctx context.Context, t *asynq.Task) error {
		return c.ProductService.WarmFeaturedCache(ctx)
	})

	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{})

	if _, err := scheduler.Register(
		cfg.Worker.ReconcileLikesCron,
		asynq.NewTask(shared.TypeBuildReconcileLikes, nil),
		asynq.Queue(shared.QueueBuilds),
	); err != nil {
		logger.Error("failed to register reconcile schedule", err)
		os.Exit(1)
	}

	if _, err := scheduler.Register(
		cfg.Worker.WarmFeaturedCron,
		asynq.NewTask(shared.TypeCatalogWarmFeatured, nil),
		asynq.Queue(shared.QueueCatalog),
	); err != nil {
		logger.Error("failed to register featured warm schedule", err)
		os.Exit(1)
	}

	if err := scheduler.Start(); err != nil {
		logger.Error("failed to start scheduler", err)
		os.Exit(1)
	}

	logger.Info("worker started", map[string]interface{}{
		"concurrency": cfg.Worker.Concurrency,
	})
	if err := srv.Start(mux); err != nil {
		logger.Error("worker failed to start", err)
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down", nil)
	scheduler.Shutdown()
	srv.Shutdown()
}
