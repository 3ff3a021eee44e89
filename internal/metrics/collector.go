// Package metrics exposes prometheus counters for the security-relevant
// operations, backed by a private registry, with an optional HTTP listener.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"securebank/internal/logging"
)

type Collector struct {
	registry        *prometheus.Registry
	registrations   prometheus.Counter
	logins          *prometheus.CounterVec
	lockouts        prometheus.Counter
	transfers       *prometheus.CounterVec
	sessionExpiries prometheus.Counter
	accountBalance  *prometheus.GaugeVec
	logger          logging.Logger
}

func NewCollector(logger logging.Logger) *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		registrations: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "securebank_registrations_total",
			Help: "Total number of successful registrations",
		}),
		logins: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "securebank_logins_total",
			Help: "Login attempts by result",
		}, []string{"result"}),
		lockouts: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "securebank_lockouts_total",
			Help: "Accounts locked after repeated failures",
		}),
		transfers: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "securebank_transfers_total",
			Help: "Transfer attempts by result",
		}, []string{"result"}),
		sessionExpiries: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "securebank_session_expiries_total",
			Help: "Sessions force-closed by idle expiry",
		}),
		accountBalance: promauto.With(registry).NewGaugeVec(prometheus.GaugeOpts{
			Name: "securebank_account_balance",
			Help: "Current account balance",
		}, []string{"username"}),
		logger: logger,
	}
}

func (c *Collector) RecordRegistration()          { c.registrations.Inc() }
func (c *Collector) RecordLogin(result string)    { c.logins.WithLabelValues(result).Inc() }
func (c *Collector) RecordLockout()               { c.lockouts.Inc() }
func (c *Collector) RecordTransfer(result string) { c.transfers.WithLabelValues(result).Inc() }
func (c *Collector) RecordSessionExpiry()         { c.sessionExpiries.Inc() }

func (c *Collector) SetBalance(username string, balance float64) {
	c.accountBalance.WithLabelValues(username).Set(balance)
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// StartServer serves /metrics on addr in the background and returns the
// server so the caller can shut it down.
func (c *Collector) StartServer(ctx context.Context, addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		c.logger.Info(ctx, "starting metrics server", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			c.logger.Error(ctx, "metrics server failed", "error", err.Error())
		}
	}()

	return server
}
