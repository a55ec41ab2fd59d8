package server

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/TrustDesk/pkg/config"
	"github.com/NeuralTrust/TrustDesk/pkg/server/router"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type (
	APIServerDI struct {
		Routers []router.ServerRouter
		Config  *config.Config
		Logger  *logrus.Logger
	}
	APIServer struct {
		*BaseServer
		metricsApp *fiber.App
	}
)

func NewAPIServer(di APIServerDI) *APIServer {
	base := NewBaseServer(di.Config, di.Logger)
	base.setupHealthCheck()
	base.WithRouters(di.Routers...)

	return &APIServer{
		BaseServer: base,
		metricsApp: base.newMetricsApp(),
	}
}

// Run serves the API and, when enabled, the metrics endpoint until ctx is
// cancelled or one of the listeners fails.
func (s *APIServer) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := fmt.Sprintf(":%d", s.Config.Server.Port)
		s.Logger.WithField("addr", addr).Info("starting api server")
		if err := s.Router.Listen(addr); err != nil {
			return fmt.Errorf("api server: %w", err)
		}
		return nil
	})

	if s.metricsApp != nil {
		g.Go(func() error {
			addr := fmt.Sprintf(":%d", s.Config.Server.MetricsPort)
			s.Logger.WithField("addr", addr).Info("starting metrics server")
			if err := s.metricsApp.Listen(addr); err != nil {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gCtx.Done()
		s.Logger.Info("shutting down servers")
		return s.Shutdown()
	})

	return g.Wait()
}

func (s *APIServer) Shutdown() error {
	var errs []error
	if err := s.Router.Shutdown(); err != nil {
		errs = append(errs, fmt.Errorf("api server shutdown: %w", err))
	}
	if s.metricsApp != nil {
		if err := s.metricsApp.Shutdown(); err != nil {
			errs = append(errs, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
