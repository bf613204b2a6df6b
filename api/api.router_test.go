package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/itsatony/sensorhub/docs"
	"github.com/itsatony/sensorhub/internal/hubservice"
	"github.com/itsatony/sensorhub/internal/models"
	"github.com/itsatony/sensorhub/internal/monitoring"
)

// stubRepo satisfies repository.ReadingRepository for route wiring tests.
type stubRepo struct{}

func (stubRepo) List(context.Context, *models.Date, int, int) ([]*models.Reading, error) {
	return []*models.Reading{}, nil
}
func (stubRepo) ListByDate(context.Context, models.Date) ([]*models.Reading, error) {
	return []*models.Reading{}, nil
}
func (stubRepo) Create(_ context.Context, r *models.Reading) error {
	r.ID = 1
	return nil
}
func (stubRepo) UpdateByValues(context.Context, models.ReadingMatch, models.ReadingSet) (int64, error) {
	return 0, nil
}
func (stubRepo) DeleteByValues(context.Context, models.ReadingMatch) (int64, error) {
	return 0, nil
}
func (stubRepo) Ping(context.Context) error { return nil }
func (stubRepo) Close() error               { return nil }

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc := hubservice.New(stubRepo{}, monitoring.NewService(monitoring.Config{}))
	srv := httptest.NewServer(NewRouter(svc).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestRouteWiring(t *testing.T) {
	srv := newTestServer(t)

	t.Run("liveness", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	})

	t.Run("list readings", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/sensor-readings?page=1&limit=10")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
	})

	t.Run("procedure requires date", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/sensor-readings/procedure")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("create", func(t *testing.T) {
		body := strings.NewReader(`{"date":"2024-01-01","temperature":21.5,"humidity":40}`)
		resp, err := http.Post(srv.URL+"/sensor-readings", "application/json", body)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("unsupported method", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPatch, srv.URL+"/sensor-readings", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})

	t.Run("api docs", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api-docs/doc.json")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
