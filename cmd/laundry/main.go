package main

import (
	"context"

	"github.com/laundrypro/go-laundry-service/internal/app/config"
	server "github.com/laundrypro/go-laundry-service/internal/app/controller/http/server"
	"github.com/laundrypro/go-laundry-service/internal/app/logger"
	storage "github.com/laundrypro/go-laundry-service/internal/app/storage/api"
	"github.com/laundrypro/go-laundry-service/internal/app/usecase/crypto"
	"go.uber.org/zap"
)

func main() {
	config := config.InitConfig()

	err := logger.Initialize(config)
	if err != nil {
		panic(err)
	}
	defer zap.L().Sync()

	crypto.Initialize(config.TokenSecret)

	db, err := storage.InitStorage(context.Background(), config)
	if err != nil {
		zap.L().Fatal("error while initializing storage", zap.Error(err))
	}
	defer db.Close(context.Background())

	httpServer := server.New(config, db)
	httpServer.StartHTTPServer()
}
