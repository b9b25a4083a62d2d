package storage

import (
	"context"
	"fmt"

	"github.com/laundrypro/go-laundry-service/internal/app/config"
	"github.com/laundrypro/go-laundry-service/internal/app/storage/api/model"
	storage "github.com/laundrypro/go-laundry-service/internal/app/storage/mongodb"
)

func InitStorage(ctx context.Context, config config.Config) (model.Storage, error) {
	if len(config.DBConnect) == 0 {
		return nil, fmt.Errorf("empty database config")
	}

	mongoStorage, err := storage.NewMongoStorage(ctx, config.DBConnect, config.DBName)
	if err != nil {
		return nil, err
	}

	if err := mongoStorage.SeedSampleServices(ctx); err != nil {
		return nil, err
	}

	return mongoStorage, nil
}
