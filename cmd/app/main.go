package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/InkwellBlog/web-client/internal/backend"
	"github.com/InkwellBlog/web-client/internal/config"
	"github.com/InkwellBlog/web-client/internal/handler"
	"github.com/InkwellBlog/web-client/internal/server"
	"github.com/InkwellBlog/web-client/internal/service"
	"github.com/InkwellBlog/web-client/internal/session"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, _ := zap.NewProduction()

	if err := loadEnv(); err != nil {
		logger.Sugar().Panicf("failed to load environment variables: %s", err.Error())
	}

	if err := initConfig(); err != nil {
		logger.Sugar().Panicf("failed to initialize yaml config: %s", err.Error())
	}

	backendConfig := config.BackendConfig{
		Endpoint:     viper.GetString("backend.endpoint"),
		ProjectID:    os.Getenv("BACKEND_PROJECT_ID"),
		DatabaseID:   os.Getenv("BACKEND_DATABASE_ID"),
		CollectionID: os.Getenv("BACKEND_COLLECTION_ID"),
		BucketID:     os.Getenv("BACKEND_BUCKET_ID"),
	}
	backendClient := backend.New(backendConfig, logger)

	redisOptions := &redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
	}
	rdb := redis.NewClient(redisOptions)
	pong, err := rdb.Ping(ctx).Result()
	if err != nil {
		logger.Sugar().Panicf("failed to ping redis: %s", err.Error())
	}
	logger.Sugar().Infof("Successfully connected to Redis: %s", pong)

	sessions := session.NewStore(rdb)
	services := service.New(logger, backendClient, sessions, []byte(os.Getenv("ACCESS_SECRET")))
	handlers := handler.New(services)

	srv := server.New()
	serverConfig := config.ServerConfig{
		Port:           viper.GetString("app.port"),
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second * 10,
		WriteTimeout:   time.Second * 10,
	}
	go func() {
		if err := srv.Run(serverConfig); err != nil {
			logger.Sugar().Infof("http server stopped: %s", err.Error())
		}
	}()

	logger.Info("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shut down http server: %s", err.Error())
	}
}

func loadEnv() error {
	return godotenv.Load()
}

func initConfig() error {
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	return viper.ReadInConfig()
}
