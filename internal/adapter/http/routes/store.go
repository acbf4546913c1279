package routes

import (
	"context"
	"fmt"

	"plumbing_portal/internal/adapter/persistence/repository"
	"plumbing_portal/internal/config"
	"plumbing_portal/internal/infrastructure/database"
	"plumbing_portal/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// NewRequestStore builds the request store selected by STORE_BACKEND.
func NewRequestStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (interfaces.IRequestStore, error) {
	switch cfg.StoreBackend {
	case config.StoreBackendMemory:
		logger.Warn("[intake][store] using in-memory store; requests are lost on restart")
		return repository.NewRequestMemoryRepository(), nil

	case config.StoreBackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBSettings{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
			Endpoint:        cfg.DynamoDBEndpoint,
		})
		if err != nil {
			return nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		logger.Info("[intake][store] using dynamodb", zap.String("table", cfg.ServiceRequestsTable))
		return repository.NewRequestDynamoRepository(ddb, cfg.ServiceRequestsTable, logger), nil

	case config.StoreBackendSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.Info("[intake][store] using sqlite", zap.String("path", cfg.SQLitePath))
		return repository.NewRequestSQLiteRepository(ctx, db, logger)

	case config.StoreBackendFile, "":
		repo := repository.NewRequestFileRepository(cfg.StorePath, logger)
		if err := repo.Init(); err != nil {
			return nil, fmt.Errorf("init request file: %w", err)
		}
		logger.Info("[intake][store] using json file", zap.String("path", repo.Path()))
		return repo, nil

	default:
		return nil, fmt.Errorf("unsupported store backend %q", cfg.StoreBackend)
	}
}
