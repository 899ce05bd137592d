package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/vfg2006/client-dashboard-api/infrastructure/database"
	_ "modernc.org/sqlite"
)

const (
	DriverName = "sqlite"
	MemoryPath = ":memory:"
)

// NewConnection abre o arquivo SQLite local; MemoryPath cria um banco volátil
func NewConnection(ctx context.Context, path string) (*database.Connection, error) {
	db, err := sql.Open(DriverName, dsn(path))
	if err != nil {
		return nil, err
	}

	// SQLite serializa escritas; uma conexão evita SQLITE_BUSY e mantém o banco em memória vivo
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &database.Connection{DB: db, Driver: DriverName}, nil
}

func dsn(path string) string {
	if path == MemoryPath {
		return path
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return fmt.Sprintf("file:%s%s_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path, sep)
}
