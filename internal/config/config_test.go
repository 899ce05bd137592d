package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Storage:       Storage{Driver: StorageDriverSQLite, SQLitePath: "dashboard.db"},
		Auth:          Auth{TokenTTL: time.Hour},
		ContractWatch: ContractWatch{WarningDays: 30},
		SecretKey:     "segredo",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "Configuração válida", mutate: func(c *Config) {}},
		{name: "Driver desconhecido", mutate: func(c *Config) { c.Storage.Driver = "mongo" }, wantErr: true},
		{name: "SQLite sem caminho", mutate: func(c *Config) { c.Storage.SQLitePath = "" }, wantErr: true},
		{name: "Memória não exige caminho", mutate: func(c *Config) {
			c.Storage.Driver = StorageDriverMemory
			c.Storage.SQLitePath = ""
		}},
		{name: "Sem chave secreta", mutate: func(c *Config) { c.SecretKey = "" }, wantErr: true},
		{name: "TTL zerado", mutate: func(c *Config) { c.Auth.TokenTTL = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuth_UserHashes(t *testing.T) {
	auth := Auth{Users: []string{"Admin:$2a$10$abc", "sem-hash", ":$2a$10$x", " client:$2a$10$def "}}

	hashes := auth.UserHashes()

	assert.Len(t, hashes, 2)
	assert.Equal(t, "$2a$10$abc", hashes["admin"])
	assert.Equal(t, "$2a$10$def", hashes["client"])
}
