package kvstore

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/client-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/client-dashboard-api/infrastructure/database/sqlite"
	"github.com/vfg2006/client-dashboard-api/internal/config"
)

// Open cria o Store do driver configurado em STORAGE_DRIVER
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	logger := logrus.WithField("driver", cfg.Storage.Driver)

	switch cfg.Storage.Driver {
	case config.StorageDriverSQLite:
		conn, err := sqlite.NewConnection(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("erro ao abrir SQLite em %s: %w", cfg.Storage.SQLitePath, err)
		}
		logger.WithField("path", cfg.Storage.SQLitePath).Info("Armazenamento SQLite aberto")
		return NewSQLStore(ctx, conn)

	case config.StorageDriverPostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
		}
		logger.Info("Conexão com PostgreSQL estabelecida com sucesso")
		return NewSQLStore(ctx, conn)

	case config.StorageDriverRedis:
		store := NewRedisStore(NewRedisClient(cfg.Redis))
		if err := store.Ping(ctx); err != nil {
			store.Close()
			return nil, fmt.Errorf("erro ao conectar ao Redis em %s: %w", cfg.Redis.Addr, err)
		}
		logger.WithField("addr", cfg.Redis.Addr).Info("Conexão com Redis estabelecida com sucesso")
		return store, nil

	case config.StorageDriverMemory:
		logger.Warn("Armazenamento em memória: o estado será perdido ao reiniciar")
		return NewMemoryStore(), nil
	}

	return nil, fmt.Errorf("driver de armazenamento desconhecido: %s", cfg.Storage.Driver)
}
