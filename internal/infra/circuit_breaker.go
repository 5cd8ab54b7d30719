package infra

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ── Circuit Breaker ───────────────────────────────────────────────────────────
// Guards the remote gateway (tables + object storage). A church device is
// often offline; once the breaker trips every remote call fails at once
// with ErrCircuitOpen and the local save proceeds without waiting on
// timeouts.
//
//   - Closed:    calls go through
//   - Open:      calls fail fast until OpenTimeout elapses
//   - Half-Open: calls go through; SuccessThreshold successes close it,
//     a single failure reopens it

// CBState is reported on /health.
type CBState int

const (
	CBClosed CBState = iota
	CBOpen
	CBHalfOpen
)

func (s CBState) String() string {
	switch s {
	case CBClosed:
		return "closed"
	case CBOpen:
		return "open"
	case CBHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// ErrCircuitOpen is returned by Execute while the breaker is open.
var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitBreakerConfig struct {
	FailureThreshold int           // consecutive failures before opening
	SuccessThreshold int           // half-open successes before closing
	OpenTimeout      time.Duration // time spent open before probing again

	// Ignore reports errors that say nothing about remote health
	// (not found, validation). They neither count nor reset.
	Ignore func(error) bool
}

// DefaultCBConfig matches the CB_* config defaults.
func DefaultCBConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		FailureThreshold: 3,
		SuccessThreshold: 1,
		OpenTimeout:      30 * time.Second,
	}
}

type CircuitBreaker struct {
	mu        sync.Mutex
	cfg       CircuitBreakerConfig
	state     CBState
	failures  int
	successes int
	openedAt  time.Time
	now       func() time.Time
}

// NewCircuitBreaker starts closed. Zero or negative fields take the
// DefaultCBConfig value.
func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	def := DefaultCBConfig()
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = def.FailureThreshold
	}
	if cfg.SuccessThreshold <= 0 {
		cfg.SuccessThreshold = def.SuccessThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = def.OpenTimeout
	}
	return &CircuitBreaker{cfg: cfg, state: CBClosed, now: time.Now}
}

func (cb *CircuitBreaker) State() CBState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.current()
}

// current applies the open → half-open transition. Caller holds mu.
func (cb *CircuitBreaker) current() CBState {
	if cb.state == CBOpen && cb.now().Sub(cb.openedAt) >= cb.cfg.OpenTimeout {
		cb.state = CBHalfOpen
		cb.successes = 0
	}
	return cb.state
}

// Execute runs fn unless the breaker is open. Cancellation by the caller
// is never counted as a remote failure.
func (cb *CircuitBreaker) Execute(fn func() error) error {
	cb.mu.Lock()
	if cb.current() == CBOpen {
		cb.mu.Unlock()
		return ErrCircuitOpen
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	switch {
	case err == nil:
		cb.recordSuccess()
	case errors.Is(err, context.Canceled), cb.cfg.Ignore != nil && cb.cfg.Ignore(err):
	default:
		cb.recordFailure()
	}
	return err
}

func (cb *CircuitBreaker) recordFailure() {
	cb.failures++
	if cb.state == CBHalfOpen || cb.failures >= cb.cfg.FailureThreshold {
		cb.state = CBOpen
		cb.openedAt = cb.now()
		cb.failures = 0
		cb.successes = 0
	}
}

func (cb *CircuitBreaker) recordSuccess() {
	cb.failures = 0
	if cb.state != CBHalfOpen {
		return
	}
	cb.successes++
	if cb.successes >= cb.cfg.SuccessThreshold {
		cb.state = CBClosed
		cb.successes = 0
	}
}
