package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/client-dashboard-api/internal/api/handler"
	"github.com/vfg2006/client-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/client-dashboard-api/internal/config"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/importing"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/managing"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/navigating"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/client-dashboard-api/pkg/log"
	"github.com/vfg2006/client-dashboard-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Manager       managing.Manager
	Importer      importing.Importer
	Navigator     navigating.Navigator
	Reporter      reporting.Reporter
	Insighter     insighting.Insighter
	CronJobs      handler.CronJobServices
	Store         handler.Pinger
}

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o router com a cadeia de middlewares globais
func NewHandler(cfg *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Store)...),
		router.WithRoutes(handler.Session(services.Authenticator)...),
		router.WithRoutes(handler.Navigation(services.Navigator)...),
		router.WithRoutes(handler.Clients(services.Manager)...),
		router.WithRoutes(handler.Imports(services.Importer)...),
		router.WithRoutes(handler.Reports(services.Reporter)...),
		router.WithRoutes(handler.Insights(services.Insighter, services.Manager)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.App.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithFields(log.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithFields(log.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	log.L.Info("Servidor HTTP desligado com sucesso")
	return nil
}
