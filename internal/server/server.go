// Package server hosts the optional HTTP endpoint that exposes Prometheus
// metrics for a benchmark run.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AniDashyan/parallel-summation/internal/logging"
)

// MetricsServer serves /metrics and /healthz on a dedicated listener.
type MetricsServer struct {
	srv    *http.Server
	logger logging.Logger
}

// New builds a MetricsServer for the given address and gatherer. Read and
// write timeouts are set so a stalled client cannot pin the process open past
// the benchmark's own lifetime.
func New(addr string, gatherer prometheus.Gatherer, logger logging.Logger) *MetricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return &MetricsServer{
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       30 * time.Second,
		},
		logger: logger,
	}
}

// Start begins serving in a background goroutine. Listener errors other than
// a clean shutdown are logged, not returned: metrics are auxiliary and must
// never fail the benchmark itself.
func (m *MetricsServer) Start() {
	m.logger.Info("metrics server listening", logging.String("addr", m.srv.Addr))
	go func() {
		if err := m.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			m.logger.Error("metrics server stopped", err)
		}
	}()
}

// Shutdown gracefully stops the server.
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	return m.srv.Shutdown(ctx)
}
