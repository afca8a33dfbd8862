package main

import (
	"os"
	"os/signal"
	"syscall"

	"careerhub/config"
	"careerhub/database"
	"careerhub/logger"
	"careerhub/routers"
	"careerhub/services"
	"careerhub/utils"

	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger.Init(config.AppConfig.LogLevel)
	defer logger.Log.Sync()

	database.ConnectDb()
	services.Init(config.AppConfig)

	scheduler, err := utils.InitializeNewsScheduler(config.AppConfig.NewsSchedule)
	if err != nil {
		logger.Log.Fatal("invalid NEWS_SCHEDULE", zap.String("schedule", config.AppConfig.NewsSchedule), zap.Error(err))
	}

	app := routers.NewApp()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		logger.Log.Info("shutting down")
		if scheduler != nil {
			<-scheduler.Stop().Done()
		}
		if err := app.Shutdown(); err != nil {
			logger.Log.Error("shutdown failed", zap.Error(err))
		}
	}()

	logger.Log.Info("server is running", zap.String("port", config.AppConfig.Port))
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		logger.Log.Fatal("server stopped", zap.Error(err))
	}
}
