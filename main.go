// @title        Social Graph API
// @version      1.0
// @description  Users, posts, follows, likes, feed and friend suggestions over an in-memory store.
// @BasePath     /

package main

import (
	"log"

	"go.uber.org/zap"

	_ "socialgraph/docs"

	"socialgraph/bootstrap"
	"socialgraph/configs"
	"socialgraph/internal/repository"
	"socialgraph/internal/routes"
	"socialgraph/services"
)

func main() {
	cfg := configs.LoadConfig()

	logger, err := configs.NewLogger(cfg)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	// One store per process; nothing outlives it.
	store := repository.NewStore()
	svc := services.New(store, services.WithLogger(logger))

	if cfg.SeedOnStart {
		res, err := bootstrap.Seed(svc)
		if err != nil {
			logger.Fatal("seed failed", zap.Error(err))
		}
		logger.Info("seeded demo data",
			zap.Int("users", res.Users),
			zap.Int("posts", res.Posts),
			zap.Int("follows", res.Follows),
			zap.Int("likes", res.Likes),
		)
	}

	app := routes.NewApp(routes.Deps{
		Service: svc,
		Config:  cfg,
		Logger:  logger,
	})

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr), zap.String("env", cfg.AppEnv))
	if err := app.Listen(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
