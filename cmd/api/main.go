package main

import (
	"context"

	"github.com/vfg2006/client-dashboard-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/client-dashboard-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/client-dashboard-api/infrastructure/kvstore"
	"github.com/vfg2006/client-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/client-dashboard-api/internal/api"
	"github.com/vfg2006/client-dashboard-api/internal/api/handler"
	"github.com/vfg2006/client-dashboard-api/internal/appstate"
	"github.com/vfg2006/client-dashboard-api/internal/config"
	"github.com/vfg2006/client-dashboard-api/internal/scheduler"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/importing"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/managing"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/navigating"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/client-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := kvstore.Open(ctx, cfg)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao abrir o armazenamento")
	}
	defer store.Close()

	state := appstate.New(repository.NewStateRepository(store), appstate.WithDemoSeed(cfg.App.SeedDemoData))
	if err := state.Load(ctx); err != nil {
		log.L.WithError(err).Fatal("Erro ao carregar o estado do painel")
	}

	manager := managing.NewService(state)
	authenticator := authenticating.NewService(state, cfg)
	if cfg.Auth.Permissive {
		log.L.Warn("Login permissivo ativo: qualquer senha com o tamanho mínimo é aceita")
	}
	insightService := insighting.NewService(insightGenerator(ctx, cfg), manager, insighting.WithTimeout(cfg.Gemini.Timeout))

	insightsRefreshService := scheduler.NewInsightsRefreshService(insightService, cfg)
	contractWatchService := scheduler.NewContractWatchService(manager, cfg)

	if err := insightsRefreshService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de atualização de insights")
	}

	if err := contractWatchService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de verificação de contratos")
	}

	server := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Manager:       manager,
		Importer:      importing.NewService(manager),
		Navigator:     navigating.NewService(state),
		Reporter:      reporting.NewService(manager, reporting.WithImageLoader(reporting.NewHTTPImageLoader(0))),
		Insighter:     insightService,
		CronJobs: handler.CronJobServices{
			InsightsRefreshService: insightsRefreshService,
			ContractWatchService:   contractWatchService,
		},
		Store: store,
	})

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// insightGenerator devolve nil sem chave configurada; o serviço responde com a mensagem padrão
func insightGenerator(ctx context.Context, cfg *config.Config) insighting.InsightGenerator {
	client, err := geminiclient.NewClient(ctx, cfg.Gemini)
	if err != nil {
		log.L.WithError(err).Warn("Insights gerados desabilitados")
		return nil
	}

	return gemini.New(client)
}
