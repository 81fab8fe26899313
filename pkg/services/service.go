package service

import (
	"context"
	"fmt"
	"sync"
)

type Logger interface {
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
}

type (
	Service interface {
		Name() string
		Init() error
		Run(ctx context.Context)
		Stop()
	}
	Services interface {
		AddService(service ...Service)
		Run(ctx context.Context) error
	}
	Manager struct {
		log      Logger
		services []Service
	}
)

func NewManager(log Logger) Services {
	return &Manager{log: log}
}

func (s *Manager) AddService(service ...Service) {
	s.services = append(s.services, service...)
}

// Run initializes every service in order, runs them until ctx is done, then
// stops them in reverse order. If one Init fails the services already
// initialized are stopped and the error is returned.
func (s *Manager) Run(ctx context.Context) error {
	s.log.Info("going to start services", "count", len(s.services))
	for count, service := range s.services {
		if err := service.Init(); err != nil {
			s.stop(s.services[:count])
			return fmt.Errorf("init %s: %w", service.Name(), err)
		}
	}

	var wg sync.WaitGroup
	for _, service := range s.services {
		wg.Add(1)
		go func() {
			defer wg.Done()
			service.Run(ctx)
		}()
		s.log.Info("service started", "service", service.Name())
	}

	<-ctx.Done()
	s.stop(s.services)
	wg.Wait()

	return nil
}

func (s *Manager) stop(services []Service) {
	s.log.Info("going to stop")
	for i := len(services) - 1; i >= 0; i-- {
		services[i].Stop()
		s.log.Info("service stopped", "service", services[i].Name())
	}
}
