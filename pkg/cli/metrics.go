package cli

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	commandsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "yangsh_commands_total",
		Help: "Commands executed, by action.",
	}, []string{"action"})

	commandErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "yangsh_command_errors_total",
		Help: "Commands that failed to resolve or execute.",
	})

	commandSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "yangsh_command_seconds",
		Help:    "Command execution latency, fetch and render included.",
		Buckets: prometheus.DefBuckets,
	})
)

// ServeMetrics exposes the shell's metrics on addr. Intended for long-lived
// console sessions on management hosts; pass an empty addr to disable.
func ServeMetrics(addr string) {
	if addr == "" {
		return
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(commandsTotal, commandErrors, commandSeconds)

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			slog.Warn("metrics server stopped", "error", err)
		}
	}()
}
