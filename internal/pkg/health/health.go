package health

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rizaldy/angkut/internal/pkg/database"
	"github.com/rizaldy/angkut/internal/pkg/logger"
	"github.com/rizaldy/angkut/internal/pkg/nsq"
)

// Status represents the health state of a dependency.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// Checker probes a single dependency.
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// DependencyInfo is the per-dependency section of a health response.
type DependencyInfo struct {
	Status    Status `json:"status"`
	Error     string `json:"error,omitempty"`
	LatencyMs int64  `json:"latency_ms"`
}

// Response is the aggregate health report.
type Response struct {
	Service      string                    `json:"service"`
	Version      string                    `json:"version"`
	Status       Status                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Dependencies map[string]DependencyInfo `json:"dependencies,omitempty"`
}

// Service aggregates dependency checkers and serves health endpoints.
type Service struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	logger   *logger.ZapLogger
	timeout  time.Duration
}

func NewService(zapLogger *logger.ZapLogger) *Service {
	return &Service{
		checkers: make(map[string]Checker),
		logger:   zapLogger,
		timeout:  5 * time.Second,
	}
}

func (s *Service) AddChecker(name string, checker Checker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkers[name] = checker
}

// CheckAll probes every registered dependency concurrently.
func (s *Service) CheckAll(ctx context.Context) map[string]DependencyInfo {
	s.mu.RLock()
	checkers := make(map[string]Checker, len(s.checkers))
	for name, c := range s.checkers {
		checkers[name] = c
	}
	s.mu.RUnlock()

	results := make(map[string]DependencyInfo, len(checkers))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for name, checker := range checkers {
		wg.Add(1)
		go func(name string, checker Checker) {
			defer wg.Done()

			checkCtx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()

			start := time.Now()
			err := checker.CheckHealth(checkCtx)
			info := DependencyInfo{
				Status:    StatusHealthy,
				LatencyMs: time.Since(start).Milliseconds(),
			}
			if err != nil {
				info.Status = StatusUnhealthy
				info.Error = err.Error()
				s.logger.Warn("Dependency health check failed",
					logger.String("dependency", name),
					logger.Err(err))
			}

			mu.Lock()
			results[name] = info
			mu.Unlock()
		}(name, checker)
	}

	wg.Wait()
	return results
}

// PostgresChecker pings the trips database.
type PostgresChecker struct {
	client *database.PostgresClient
}

func NewPostgresChecker(client *database.PostgresClient) *PostgresChecker {
	return &PostgresChecker{client: client}
}

func (c *PostgresChecker) CheckHealth(ctx context.Context) error {
	return c.client.GetDB().PingContext(ctx)
}

// RedisChecker pings the driver location store.
type RedisChecker struct {
	client *database.RedisClient
}

func NewRedisChecker(client *database.RedisClient) *RedisChecker {
	return &RedisChecker{client: client}
}

func (c *RedisChecker) CheckHealth(ctx context.Context) error {
	return c.client.GetClient().Ping(ctx).Err()
}

// NSQChecker pings the event producer.
type NSQChecker struct {
	producer *nsq.Producer
}

func NewNSQChecker(producer *nsq.Producer) *NSQChecker {
	return &NSQChecker{producer: producer}
}

func (c *NSQChecker) CheckHealth(_ context.Context) error {
	return c.producer.Ping()
}

// RegisterEndpoints mounts liveness and readiness routes on the Echo server.
func RegisterEndpoints(e *echo.Echo, serviceName, version string, svc *Service) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, Response{
			Service:   serviceName,
			Version:   version,
			Status:    StatusHealthy,
			Timestamp: time.Now(),
		})
	})

	e.GET("/health/detailed", func(c echo.Context) error {
		deps := svc.CheckAll(c.Request().Context())

		overall := StatusHealthy
		code := http.StatusOK
		for _, info := range deps {
			if info.Status != StatusHealthy {
				overall = StatusUnhealthy
				code = http.StatusServiceUnavailable
				break
			}
		}

		return c.JSON(code, Response{
			Service:      serviceName,
			Version:      version,
			Status:       overall,
			Timestamp:    time.Now(),
			Dependencies: deps,
		})
	})

	e.GET("/health/ready", func(c echo.Context) error {
		deps := svc.CheckAll(c.Request().Context())
		for _, info := range deps {
			if info.Status != StatusHealthy {
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
			}
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
	})

	e.GET("/health/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "alive"})
	})
}
