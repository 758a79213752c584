package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"karsamrit/internal/admin"
	"karsamrit/internal/catalog"
	"karsamrit/internal/config"
	"karsamrit/internal/infrastructure/logger"
	"karsamrit/internal/infrastructure/mongodb"
	"karsamrit/internal/order"
	"karsamrit/internal/pincode"
	"karsamrit/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	client, err := mongodb.NewClient(cfg.Mongo)
	if err != nil {
		zapLogger.Fatal("connecting to mongodb", zap.Error(err))
	}
	zapLogger.Info("mongodb connected")

	db := client.Database(cfg.Mongo.Database)

	orderCtrl, listOrders := order.NewModule(db, zapLogger)
	authCtrl, dashCtrl := admin.NewModule(cfg.Admin, listOrders, zapLogger)
	catalogCtrl := catalog.NewController(zapLogger)
	pincodeCtrl := pincode.NewController(pincode.NewClient(cfg.Pincode.APIBase), zapLogger)

	router := server.NewRouter(orderCtrl, authCtrl, dashCtrl, catalogCtrl, pincodeCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	if err := client.Disconnect(ctx); err != nil {
		zapLogger.Error("mongodb disconnect failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
