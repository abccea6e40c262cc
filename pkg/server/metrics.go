package server

import (
	"context"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"net/http"
	"time"
)

var (
	requestDuration = prometheus.NewSummary(prometheus.SummaryOpts{
		Name:        "req_metrics",
		Help:        "Summary for serving requests to the metrics endpoint",
		ConstLabels: prometheus.Labels{"endpoint_type": "metrics"},
	})
)

func init() {
	prometheus.MustRegister(requestDuration)
}

// NewRouter serves the default Prometheus registry on /metrics and a
// liveness probe on /healthz.
func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Add("Content-Type", "text/plain")
		writer.WriteHeader(200)
		writer.Write([]byte("ok\n"))
	})

	r.With(observe).Handle("/metrics", promhttp.Handler())

	return r
}

func observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		reqStart := time.Now()
		defer func() { requestDuration.Observe(time.Since(reqStart).Seconds()) }()

		next.ServeHTTP(writer, request)
	})
}

// MetricsServer runs the metrics endpoint in the background.
type MetricsServer struct {
	srv    *http.Server
	done   chan struct{}
	logger *zap.Logger
}

func Start(addr string, logger *zap.Logger) *MetricsServer {
	m := &MetricsServer{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(),
			ReadHeaderTimeout: 10 * time.Second,
		},
		done:   make(chan struct{}),
		logger: logger,
	}

	go func() {
		defer close(m.done)

		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := m.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	return m
}

// Shutdown stops the server and waits for it to exit.
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	err := m.srv.Shutdown(ctx)

	select {
	case <-m.done:
	case <-ctx.Done():
		if err == nil {
			err = ctx.Err()
		}
	}

	return err
}
