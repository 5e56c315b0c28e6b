package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petshop/internal/domain"
	"petshop/internal/pkg/cache"
	"petshop/internal/pkg/logger"
	"petshop/internal/pkg/token"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAuthMiddleware(t *testing.T) {
	tokens := token.NewService("segredo", time.Hour)
	admin, err := tokens.GenerateToken("admin@petshop.com", string(domain.RoleAdmin))
	require.NoError(t, err)
	user, err := tokens.GenerateToken("user@petshop.com", string(domain.RoleUser))
	require.NoError(t, err)

	h := NewAuthMiddleware(tokens)(PermissionMiddleware(domain.RoleAdmin)(okHandler))

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"sem header", "", http.StatusUnauthorized},
		{"esquema errado", "Basic abc", http.StatusUnauthorized},
		{"token inválido", "Bearer abc", http.StatusUnauthorized},
		{"papel insuficiente", "Bearer " + user, http.StatusForbidden},
		{"admin", "Bearer " + admin, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/clients", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.status, rec.Code)
			if tc.status != http.StatusOK {
				var body domain.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tc.status, body.Code)
			}
		})
	}
}

func TestPermissionMiddleware_WithoutClaims(t *testing.T) {
	rec := httptest.NewRecorder()
	PermissionMiddleware(domain.RoleAdmin)(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// fakeCache guarda contadores em memória com a semântica de INCR/EXPIRE do Redis.
type fakeCache struct {
	mu      sync.Mutex
	values  map[string]int64
	expires map[string]int
	err     error
}

var _ cache.Client = (*fakeCache)(nil)

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]int64{}, expires: map[string]int{}}
}

func (f *fakeCache) Incr(ctx context.Context, key string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.values[key]++
	return f.values[key], nil
}
func (f *fakeCache) Expire(ctx context.Context, key string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expires[key]++
	return nil
}
func (f *fakeCache) Close() error { return nil }

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	h := RateLimiter(newFakeCache(), 2, time.Minute, time.Second, logger.Nop())(okHandler)

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/clients", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}

func TestRateLimiter_ConcurrentFirstRequestsShareWindow(t *testing.T) {
	fc := newFakeCache()
	h := RateLimiter(fc, 5, time.Minute, time.Second, logger.Nop())(okHandler)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/clients", nil)
			req.RemoteAddr = "10.0.0.2:4000"
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code == http.StatusOK {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, allowed)
	assert.Equal(t, int64(20), fc.values["rate-limit:10.0.0.2"])
	assert.Equal(t, 1, fc.expires["rate-limit:10.0.0.2"])
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	fc := newFakeCache()
	fc.err = errors.New("redis fora do ar")
	h := RateLimiter(fc, 1, time.Minute, time.Second, logger.Nop())(okHandler)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/clients", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/clients/{clientID}", okHandler)

	for _, id := range []string{"a", "b"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/clients/"+id, nil))
	}

	families, err := reg.Gather()
	require.NoError(t, err)

	var total float64
	for _, mf := range families {
		if mf.GetName() != "petshop_http_requests_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "route" {
					assert.Equal(t, "/clients/{clientID}", label.GetValue())
				}
			}
			total += metric.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 2.0, total)
}

func TestRequestLogger_WritesEntry(t *testing.T) {
	var buf strings.Builder
	log := logger.NewWithWriter("info", &buf)

	RequestLogger(log)(okHandler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Contains(t, buf.String(), `"path":"/health"`)
	assert.Contains(t, buf.String(), `"status":200`)
}
