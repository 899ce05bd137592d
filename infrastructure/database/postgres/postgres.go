package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/vfg2006/client-dashboard-api/infrastructure/database"
	"github.com/vfg2006/client-dashboard-api/internal/config"
)

const DriverName = "postgres"

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*database.Connection, error) {
	db, err := sql.Open(DriverName, cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &database.Connection{DB: db, Driver: DriverName}, nil
}
