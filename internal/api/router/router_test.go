package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"petshop/internal/api/router"
	"petshop/internal/domain"
	"petshop/internal/pkg/logger"
	"petshop/internal/pkg/token"
	"petshop/internal/repository/memrepo"
	"petshop/internal/service/authservice"
)

type api struct {
	t       *testing.T
	handler http.Handler
	token   string
}

func newAPI(t *testing.T) *api {
	t.Helper()
	log := logger.Nop()
	h := router.NewHandlers(memrepo.NewStore(), nil, authservice.Operator{}, log)
	return &api{t: t, handler: router.NewRouter(h, router.Options{Logger: log, Registry: prometheus.NewRegistry()})}
}

func (a *api) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func (a *api) mustCreate(path string, body interface{}) map[string]interface{} {
	a.t.Helper()
	rec := a.do(http.MethodPost, path, body)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[map[string]interface{}](a.t, rec)
}

func TestHealth(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestClientLifecycle(t *testing.T) {
	a := newAPI(t)

	ana := a.mustCreate("/clients", map[string]interface{}{"name": "Ana", "cpf": "123", "age": 30})
	id := ana["id"].(string)

	rec := a.do(http.MethodPost, "/clients", map[string]interface{}{"name": "Outra", "cpf": "123"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "CONFLICT", decode[domain.ErrorResponse](t, rec).Category)

	rec = a.do(http.MethodPatch, "/clients/"+id, map[string]interface{}{"age": 31})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[domain.Client](t, rec)
	assert.Equal(t, 31, updated.Age)
	assert.Equal(t, "Ana", updated.Name)

	rec = a.do(http.MethodGet, "/clients?skip=0&limit=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Client](t, rec), 1)

	rec = a.do(http.MethodGet, "/clients?limit=101", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(http.MethodGet, "/clients/nao-e-um-id", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_IDENTIFIER", decode[domain.ErrorResponse](t, rec).Category)

	rec = a.do(http.MethodGet, "/clients/65f000000000000000000000", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEmptyListIsArray(t *testing.T) {
	a := newAPI(t)

	rec := a.do(http.MethodGet, "/pets", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestSchedulingFlow(t *testing.T) {
	a := newAPI(t)

	ana := a.mustCreate("/clients", map[string]interface{}{"name": "Ana", "cpf": "1"})["id"].(string)
	bia := a.mustCreate("/clients", map[string]interface{}{"name": "Bia", "cpf": "2"})["id"].(string)
	rex := a.mustCreate("/pets/"+ana+"/pet", map[string]interface{}{"name": "Rex", "breed": "SRD"})["id"].(string)
	toby := a.mustCreate("/pets/"+bia+"/pet", map[string]interface{}{"name": "Toby"})["id"].(string)
	banho := a.mustCreate("/services", map[string]interface{}{"type_service": "Banho", "price": 50, "duration_in_minutes": 30})["id"].(string)
	a.mustCreate("/services", map[string]interface{}{"type_service": "Consulta", "price": 500.01, "duration_in_minutes": 20})

	rec := a.do(http.MethodPost, "/pets/"+bia+"/pet", map[string]interface{}{"name": "Rex"})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "nome de pet é único no sistema")

	rec = a.do(http.MethodPost, "/schedules", map[string]interface{}{
		"client_id": ana, "pet_id": toby, "service_ids": []string{banho}, "date_schedule": "2024-12-05T10:00:00Z",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "OWNERSHIP_MISMATCH", decode[domain.ErrorResponse](t, rec).Category)

	schedule := a.mustCreate("/schedules", map[string]interface{}{
		"client_id": ana, "pet_id": rex, "service_ids": []string{banho}, "date_schedule": "2024-12-05T10:00:00",
	})
	a.mustCreate("/schedules", map[string]interface{}{
		"client_id": bia, "pet_id": toby, "service_ids": []string{banho}, "date_schedule": "2025-01-01T00:00:00Z",
	})

	rec = a.do(http.MethodGet, "/schedules/"+schedule["id"].(string)+"/detail", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decode[domain.ScheduleDetail](t, rec)
	assert.Equal(t, "2024-12-05T10:00:00Z", detail.DateSchedule)
	assert.Equal(t, "Ana", detail.Client.Name)
	assert.Equal(t, "Rex", detail.Pet.Name)
	require.Len(t, detail.Services, 1)

	rec = a.do(http.MethodGet, "/schedules?month=12&year=2024", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Schedule](t, rec), 1)

	rec = a.do(http.MethodGet, "/schedules?month=12", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(http.MethodGet, "/services/category-price?category_price=cheap%20services", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Service](t, rec), 1)

	rec = a.do(http.MethodGet, "/services/category-price?category_price=expensive%20services", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]domain.Service](t, rec))

	rec = a.do(http.MethodGet, "/clients/total/schedules/by/client", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.ClientScheduleTotal](t, rec), 2)

	rec = a.do(http.MethodGet, "/clients/"+ana+"/schedules", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.ScheduleDetail](t, rec), 1)

	rec = a.do(http.MethodGet, "/pets/rEx/pet-name", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Pet](t, rec), 1)

	rec = a.do(http.MethodDelete, "/clients/"+ana, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode[domain.MessageResponse](t, rec).Message)

	rec = a.do(http.MethodGet, "/schedules/total/schedules", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), decode[domain.ScheduleCount](t, rec).TotalSchedules)

	rec = a.do(http.MethodGet, "/services/total-services", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(2), decode[domain.ServiceCount](t, rec).TotalServices)

	rec = a.do(http.MethodGet, "/pets/"+ana, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPetScopedByOwner(t *testing.T) {
	a := newAPI(t)

	ana := a.mustCreate("/clients", map[string]interface{}{"name": "Ana", "cpf": "1"})["id"].(string)
	bia := a.mustCreate("/clients", map[string]interface{}{"name": "Bia", "cpf": "2"})["id"].(string)
	rex := a.mustCreate("/pets/"+ana+"/pet", map[string]interface{}{"name": "Rex"})["id"].(string)

	rec := a.do(http.MethodDelete, "/pets/"+bia+"/pets/"+rex, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = a.do(http.MethodPut, "/pets/"+ana+"/pets/"+rex, map[string]interface{}{"breed": "Vira-lata"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Vira-lata", decode[domain.Pet](t, rec).Breed)

	rec = a.do(http.MethodDelete, "/pets/"+ana+"/pets/"+rex, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = a.do(http.MethodDelete, "/pets/"+ana+"/pets/"+rex, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPetSearchDecodesEscapedName(t *testing.T) {
	a := newAPI(t)

	ana := a.mustCreate("/clients", map[string]interface{}{"name": "Ana", "cpf": "1"})["id"].(string)
	a.mustCreate("/pets/"+ana+"/pet", map[string]interface{}{"name": "Totó"})
	a.mustCreate("/pets/"+ana+"/pet", map[string]interface{}{"name": "Rex"})

	for _, path := range []string{
		"/pets/tot%C3%B3/pet-name",
		"/pets/Tot%c3%b3/pet-name",
		"/pets/%74ot%c3%b3/pet-name",
	} {
		rec := a.do(http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code, path)
		pets := decode[[]domain.Pet](t, rec)
		require.Len(t, pets, 1, path)
		assert.Equal(t, "Totó", pets[0].Name)
	}

	rec := a.do(http.MethodGet, "/pets/a%2Fb/pet-name", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]domain.Pet](t, rec))
}

func TestWritesRequireAdminToken(t *testing.T) {
	log := logger.Nop()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3nha"), bcrypt.MinCost)
	require.NoError(t, err)
	tokens := token.NewService("segredo", time.Hour)
	operator := authservice.Operator{Email: "admin@petshop.com", PasswordHash: string(hash)}

	h := router.NewHandlers(memrepo.NewStore(), tokens, operator, log)
	a := &api{t: t, handler: router.NewRouter(h, router.Options{Logger: log, Tokens: tokens})}

	rec := a.do(http.MethodPost, "/clients", map[string]interface{}{"name": "Ana", "cpf": "1"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = a.do(http.MethodGet, "/clients", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(http.MethodPost, "/auth/login", map[string]interface{}{"email": "admin@petshop.com", "password": "errada"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = a.do(http.MethodPost, "/auth/login", map[string]interface{}{"email": "admin@petshop.com", "password": "s3nha"})
	require.Equal(t, http.StatusOK, rec.Code)
	a.token = decode[domain.TokenResponse](t, rec).AccessToken

	a.mustCreate("/clients", map[string]interface{}{"name": "Ana", "cpf": "1"})

	userToken, err := tokens.GenerateToken("user@petshop.com", string(domain.RoleUser))
	require.NoError(t, err)
	a.token = userToken
	rec = a.do(http.MethodPost, "/clients", map[string]interface{}{"name": "Bia", "cpf": "2"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	a := newAPI(t)
	a.do(http.MethodGet, "/clients", nil)

	rec := a.do(http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "petshop_http_requests_total")
	assert.Contains(t, body, `route="/clients`)
}
