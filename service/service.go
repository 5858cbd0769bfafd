package service

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/log"

	"github.com/asynkron/test262-reporter/metrics"
)

const (
	DefaultHealthzHost = "0.0.0.0"
	DefaultHealthzPort = 8080

	DefaultMetricsHost = "0.0.0.0"
	DefaultMetricsPort = 7300
)

// Config contains the listen addresses for the sidecar servers. Zero
// values fall back to the defaults above.
type Config struct {
	HealthzAddr string
	HealthzPort int
	MetricsAddr string
	MetricsPort int
}

type Service struct {
	cfg     Config
	Healthz *HealthzServer
	Metrics *MetricsServer
}

func New(cfg Config) *Service {
	if cfg.HealthzAddr == "" {
		cfg.HealthzAddr = DefaultHealthzHost
	}
	if cfg.HealthzPort == 0 {
		cfg.HealthzPort = DefaultHealthzPort
	}
	if cfg.MetricsAddr == "" {
		cfg.MetricsAddr = DefaultMetricsHost
	}
	if cfg.MetricsPort == 0 {
		cfg.MetricsPort = DefaultMetricsPort
	}

	s := &Service{
		cfg:     cfg,
		Healthz: &HealthzServer{},
		Metrics: &MetricsServer{},
	}
	return s
}

func (s *Service) healthzEndpoint() string {
	return net.JoinHostPort(s.cfg.HealthzAddr, strconv.Itoa(s.cfg.HealthzPort))
}

func (s *Service) metricsEndpoint() string {
	return net.JoinHostPort(s.cfg.MetricsAddr, strconv.Itoa(s.cfg.MetricsPort))
}

func (s *Service) Start(ctx context.Context) {
	log.Info("service starting")

	go func() {
		addr := s.healthzEndpoint()
		log.Info("starting healthz server", "addr", addr)
		if err := s.Healthz.Start(ctx, addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("error starting healthz server", "err", err)
			metrics.RecordErrorDetails("error starting healthz server", err)
		}
	}()

	go func() {
		addr := s.metricsEndpoint()
		log.Info("starting metrics server", "addr", addr)
		if err := s.Metrics.Start(ctx, addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("error starting metrics server", "err", err)
			metrics.RecordErrorDetails("error starting metrics server", err)
		}
	}()

	log.Info("service started")
}

func (s *Service) Shutdown() {
	log.Info("service shutting down")

	_ = s.Healthz.Shutdown()
	log.Info("healthz stopped")

	_ = s.Metrics.Shutdown()
	log.Info("metrics stopped")

	log.Info("service stopped")
}
