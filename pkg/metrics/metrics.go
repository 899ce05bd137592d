// Package metrics concentra os contadores Prometheus expostos em /metrics
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "client_dashboard"

const (
	ResultSuccess  = "success"
	ResultFailure  = "failure"
	ResultFallback = "fallback"
)

var (
	Imports = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "imports_total",
		Help:      "Importações de planilha por tipo de dataset e resultado.",
	}, []string{"kind", "result"})

	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Tentativas de login por papel e resultado.",
	}, []string{"role", "result"})

	PersistenceWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "persistence_writes_total",
		Help:      "Gravações no armazenamento chave-valor por entrada e resultado.",
	}, []string{"entry", "result"})

	Insights = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "insights_total",
		Help:      "Gerações de insights por resultado.",
	}, []string{"result"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Requisições HTTP por método e status.",
	}, []string{"method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duração das requisições HTTP.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)

func Result(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}

func ObserveHTTP(method string, status int, seconds float64) {
	HTTPRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(method).Observe(seconds)
}
