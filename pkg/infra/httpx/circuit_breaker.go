package httpx

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

const (
	DefaultBreakerTimeout     = 30 * time.Second
	DefaultBreakerMaxFailures = 5
	halfOpenMaxRequests       = 5
)

type CircuitBreaker interface {
	Execute(fn func() error) error
}

type BreakerConfig struct {
	Name        string
	Timeout     time.Duration
	MaxFailures uint32
}

type circuitBreakerWrapper struct {
	breaker *gobreaker.CircuitBreaker
}

func NewCircuitBreaker(name string, timeout time.Duration, maxFailures uint32) CircuitBreaker {
	return NewCircuitBreakerWithLogger(BreakerConfig{
		Name:        name,
		Timeout:     timeout,
		MaxFailures: maxFailures,
	}, nil)
}

// NewCircuitBreakerWithLogger builds a breaker that logs every state change
// when logger is not nil.
func NewCircuitBreakerWithLogger(config BreakerConfig, logger *logrus.Logger) CircuitBreaker {
	maxFailures := config.MaxFailures
	settings := gobreaker.Settings{
		Name:        config.Name,
		MaxRequests: halfOpenMaxRequests,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
	}
	if logger != nil {
		settings.OnStateChange = func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("circuit breaker state changed")
		}
	}
	return &circuitBreakerWrapper{
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (g *circuitBreakerWrapper) Execute(fn func() error) error {
	_, err := g.breaker.Execute(func() (res interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic recovered: %v", r)
			}
		}()
		return nil, fn()
	})
	if err != nil {
		return fmt.Errorf("breaker (%s): %w", g.breaker.Name(), err)
	}
	return nil
}

// IsOpen reports whether err was returned because the breaker rejected the
// call without running it.
func IsOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
