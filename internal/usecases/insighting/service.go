package insighting

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/client-dashboard-api/internal/domain"
	"github.com/vfg2006/client-dashboard-api/internal/usecases/managing"
	"github.com/vfg2006/client-dashboard-api/pkg/log"
	"github.com/vfg2006/client-dashboard-api/pkg/metrics"
)

const (
	NoInsightsMessage    = "No insights available at the moment."
	ErrorAnalysisMessage = "Error analyzing data. Please check your API key and connection."

	DefaultTimeout = 20 * time.Second
)

var ErrGeneratorUnavailable = errors.New("insight generator not configured")

type Service struct {
	generator InsightGenerator
	manager   managing.Manager
	timeout   time.Duration
	now       func() time.Time

	mu    sync.RWMutex
	cache map[string]domain.Insight
}

type Option func(*Service)

func WithTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService aceita generator nil quando a chave da API não está configurada
func NewService(generator InsightGenerator, manager managing.Manager, opts ...Option) *Service {
	s := &Service{
		generator: generator,
		manager:   manager,
		timeout:   DefaultTimeout,
		now:       time.Now,
		cache:     make(map[string]domain.Insight),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) GetInsights(ctx context.Context, client *domain.ClientProfile) domain.Insight {
	insight := domain.Insight{GeneratedAt: s.now()}
	data := domain.EmptyDashboardData()
	if client != nil {
		insight.ClientID = client.ID
		data = client.Data
	}

	text, err := s.generate(ctx, data)
	switch {
	case err != nil:
		log.ForContext(ctx).WithFields(log.Fields{
			"client_id": insight.ClientID,
			"error":     err.Error(),
		}).Warn("Falha ao gerar insights, usando mensagem padrão")
		insight.Text = ErrorAnalysisMessage
		insight.Fallback = true
		metrics.Insights.WithLabelValues(metrics.ResultFailure).Inc()
	case strings.TrimSpace(text) == "":
		insight.Text = NoInsightsMessage
		insight.Fallback = true
		metrics.Insights.WithLabelValues(metrics.ResultFallback).Inc()
	default:
		insight.Text = text
		metrics.Insights.WithLabelValues(metrics.ResultSuccess).Inc()
	}

	if insight.ClientID != "" {
		s.mu.Lock()
		s.cache[insight.ClientID] = insight
		s.mu.Unlock()
	}

	return insight
}

func (s *Service) generate(ctx context.Context, data domain.DashboardData) (string, error) {
	if s.generator == nil {
		return "", ErrGeneratorUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.generator.GenerateInsights(ctx, data)
}

// ForSelected gera insights do cliente selecionado; erro apenas quando não há clientes
func (s *Service) ForSelected(ctx context.Context) (domain.Insight, error) {
	client, err := s.manager.SelectedClient()
	if err != nil {
		return domain.Insight{}, err
	}

	return s.GetInsights(ctx, client), nil
}

func (s *Service) CachedInsights(clientID string) (domain.Insight, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	insight, ok := s.cache[clientID]
	return insight, ok
}

// RefreshAll regenera o cache de todos os clientes, em sequência
func (s *Service) RefreshAll(ctx context.Context) domain.InsightRefresh {
	clients := s.manager.ListClients()
	result := domain.InsightRefresh{Clients: len(clients)}

	for _, client := range clients {
		if ctx.Err() != nil {
			break
		}

		if s.GetInsights(ctx, client).Fallback {
			result.Fallbacks++
			continue
		}
		result.Generated++
	}

	return result
}
