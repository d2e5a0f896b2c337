package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/rizaldy/angkut/internal/pkg/logger"
)

type stubChecker struct {
	err error
}

func (s *stubChecker) CheckHealth(context.Context) error {
	return s.err
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	zl, err := logger.NewZapLogger(logger.Config{Level: "error"})
	assert.NoError(t, err)
	return NewService(zl)
}

func TestCheckAllReportsEachDependency(t *testing.T) {
	svc := newTestService(t)
	svc.AddChecker("postgres", &stubChecker{})
	svc.AddChecker("redis", &stubChecker{err: errors.New("connection refused")})

	results := svc.CheckAll(context.Background())

	assert.Len(t, results, 2)
	assert.Equal(t, StatusHealthy, results["postgres"].Status)
	assert.Equal(t, StatusUnhealthy, results["redis"].Status)
	assert.Equal(t, "connection refused", results["redis"].Error)
}

func TestDetailedEndpointDegradesOnFailure(t *testing.T) {
	svc := newTestService(t)
	svc.AddChecker("nsq", &stubChecker{err: errors.New("nsqd unreachable")})

	e := echo.New()
	RegisterEndpoints(e, "dispatch-service", "1.0.0", svc)

	req := httptest.NewRequest(http.MethodGet, "/health/detailed", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, StatusUnhealthy, resp.Status)
	assert.Equal(t, "dispatch-service", resp.Service)
}

func TestReadinessAndLiveness(t *testing.T) {
	svc := newTestService(t)
	svc.AddChecker("postgres", &stubChecker{})

	e := echo.New()
	RegisterEndpoints(e, "dispatch-service", "1.0.0", svc)

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
