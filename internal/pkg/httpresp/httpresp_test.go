package httpresp_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petshop/internal/domain"
	apperror "petshop/internal/errors"
	"petshop/internal/pkg/httpresp"
	"petshop/internal/pkg/logger"
	"petshop/internal/pkg/validation"
)

func newResponder() *httpresp.Responder {
	return httpresp.New(logger.Nop(), validation.New())
}

func TestRespond_ErrorBody(t *testing.T) {
	rs := newResponder()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/clients/x", nil)

	rs.Respond(rec, req, nil, apperror.NewNotFoundError("Cliente não encontrado"), http.StatusOK)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 404, body.Code)
	assert.Equal(t, "NOT_FOUND", body.Category)
	assert.Contains(t, body.Message, "Cliente não encontrado")
}

func TestRespond_HidesInternalDetails(t *testing.T) {
	rs := newResponder()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/clients", nil)

	rs.Respond(rec, req, nil, errors.New("mongo: socket closed"), http.StatusOK)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "socket")
}

func TestRespond_EmptySliceIsArray(t *testing.T) {
	rs := newResponder()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/pets", nil)

	rs.Respond(rec, req, []domain.Pet{}, nil, http.StatusOK)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestDecode_ValidatesPayload(t *testing.T) {
	rs := newResponder()

	var c domain.Client
	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(`{"name":"Ana","age":3}`))
	err := rs.Decode(req, &c)
	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Contains(t, err.Error(), "cpf")

	req = httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(`{"name":`))
	assert.IsType(t, &apperror.ValidationError{}, rs.Decode(req, &c))

	req = httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(`{"name":"Ana","cpf":"1","age":3,"is_admin":true}`))
	require.NoError(t, rs.Decode(req, &c))
	assert.True(t, c.IsAdmin)
}

func TestParsePage(t *testing.T) {
	page, err := httpresp.ParsePage(httptest.NewRequest(http.MethodGet, "/pets", nil))
	require.NoError(t, err)
	assert.Equal(t, domain.Page{Skip: 0, Limit: 10}, page)

	page, err = httpresp.ParsePage(httptest.NewRequest(http.MethodGet, "/pets?offset=5&limit=100", nil))
	require.NoError(t, err)
	assert.Equal(t, domain.Page{Skip: 5, Limit: 100}, page)

	for _, q := range []string{"skip=-1", "limit=0", "limit=101", "skip=abc", "limit=x"} {
		_, err := httpresp.ParsePage(httptest.NewRequest(http.MethodGet, "/pets?"+q, nil))
		assert.IsType(t, &apperror.ValidationError{}, err, q)
	}
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/schedules?month=12&year=abc", nil)

	month, err := httpresp.QueryInt(req, "month")
	require.NoError(t, err)
	assert.Equal(t, 12, month)

	_, err = httpresp.QueryInt(req, "year")
	assert.Error(t, err)

	_, err = httpresp.QueryInt(req, "day")
	assert.Error(t, err)
}
