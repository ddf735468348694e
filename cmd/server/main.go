package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecofinds-be/internal/cart"
	"ecofinds-be/internal/config"
	"ecofinds-be/internal/db"
	"ecofinds-be/internal/logger"
	"ecofinds-be/internal/middleware"
	"ecofinds-be/internal/order"
	"ecofinds-be/internal/product"
	"ecofinds-be/internal/session"
	"ecofinds-be/internal/upload"
	"ecofinds-be/internal/user"
	"ecofinds-be/internal/web"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	database := db.InitDB(cfg)
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("failed to connect to redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}

	uploads, err := upload.NewDiskSaver(cfg.UploadDir, cfg.AllowedExtensions)
	if err != nil {
		log.Fatal("failed to prepare upload dir", zap.Error(err))
	}

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	cartSvc := cart.NewService(productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	sessionStore := session.NewRedisStore(redisClient, cfg.SessionTTL)
	sessions := middleware.NewSessionManager(sessionStore, []byte(cfg.SecretKey), cfg.SessionTTL)

	handler := web.NewHandler(userSvc, productSvc, cartSvc, orderSvc, uploads)
	router := web.NewRouter(handler, sessions, cfg.UploadDir)

	server := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: router,
	}

	go func() {
		log.Info("server listening", zap.String("port", cfg.AppPort), zap.String("env", cfg.AppEnv))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}

	log.Info("server stopped")
}
