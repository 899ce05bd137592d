// Comando de migração: importa um export do localStorage do painel antigo para o armazenamento configurado.
//
//	go run ./infrastructure/migration/script export.json
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/client-dashboard-api/infrastructure/kvstore"
	"github.com/vfg2006/client-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/client-dashboard-api/internal/config"
	"github.com/vfg2006/client-dashboard-api/internal/domain"
	"github.com/vfg2006/client-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// browserExport é o conteúdo de localStorage: cada valor é a string gravada pelo navegador
type browserExport map[string]string

type MigrationSummary struct {
	Clients          int
	Settings         bool
	RememberedUser   bool
	IgnoredKeys      []string
	MigrationStarted time.Time
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: script <export.json>")
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel)

	file, err := os.Open(os.Args[1])
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao abrir arquivo de export")
	}
	defer file.Close()

	ctx := context.Background()
	store, err := kvstore.Open(ctx, cfg)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao abrir o armazenamento")
	}
	defer store.Close()

	summary, err := migrate(ctx, store, file)
	if err != nil {
		log.L.WithError(err).Fatal("Migração abortada, nada foi gravado")
	}

	log.L.WithFields(log.Fields{
		"clients":         summary.Clients,
		"settings":        summary.Settings,
		"remembered_user": summary.RememberedUser,
		"ignored_keys":    summary.IgnoredKeys,
		"duration":        time.Since(summary.MigrationStarted).String(),
	}).Info("Migração concluída")
}

// migrate valida todas as entradas antes de gravar qualquer uma
func migrate(ctx context.Context, store kvstore.Store, reader io.Reader) (*MigrationSummary, error) {
	summary := &MigrationSummary{MigrationStarted: time.Now()}

	var export browserExport
	if err := json.NewDecoder(reader).Decode(&export); err != nil {
		return nil, fmt.Errorf("export inválido: %w", err)
	}

	entries := make(map[string]string, 3)
	for key, value := range export {
		switch key {
		case repository.DashboardStateKey:
			var state domain.DashboardState
			if err := json.UnmarshalFromString(value, &state); err != nil {
				return nil, fmt.Errorf("%s inválido: %w", key, err)
			}
			summary.Clients = len(state.Clients)
		case repository.AdminSettingsKey:
			var settings domain.AdminSettings
			if err := json.UnmarshalFromString(value, &settings); err != nil {
				return nil, fmt.Errorf("%s inválido: %w", key, err)
			}
			summary.Settings = true
		case repository.SavedUsernameKey:
			summary.RememberedUser = value != ""
		default:
			summary.IgnoredKeys = append(summary.IgnoredKeys, key)
			continue
		}
		entries[key] = value
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("export sem entradas do painel")
	}

	if err := store.SetMany(ctx, entries); err != nil {
		return nil, fmt.Errorf("erro ao gravar entradas: %w", err)
	}

	return summary, nil
}
