package handler

import (
	"context"
	stdjson "encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/dashboarding"
	"github.com/vfg2006/restaurant-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-analytics-api/pkg/middleware"
)

// fakeDashboarder devolve respostas fixas e registra os argumentos usados.
type fakeDashboarder struct {
	dashboard *domain.Dashboard
	err       error

	lastID     int
	lastUserID int
	lastToken  string
}

func (f *fakeDashboarder) Create(userID int, name string, config stdjson.RawMessage) (*domain.Dashboard, error) {
	f.lastUserID = userID
	return f.dashboard, f.err
}

func (f *fakeDashboarder) List(userID int) ([]*domain.Dashboard, error) {
	f.lastUserID = userID
	if f.err != nil {
		return nil, f.err
	}
	return []*domain.Dashboard{f.dashboard}, nil
}

func (f *fakeDashboarder) Get(id, userID int) (*domain.Dashboard, error) {
	f.lastID, f.lastUserID = id, userID
	return f.dashboard, f.err
}

func (f *fakeDashboarder) Update(id, userID int, name string, config stdjson.RawMessage) (*domain.Dashboard, error) {
	f.lastID, f.lastUserID = id, userID
	return f.dashboard, f.err
}

func (f *fakeDashboarder) Delete(id, userID int) error {
	f.lastID, f.lastUserID = id, userID
	return f.err
}

func (f *fakeDashboarder) Share(id, userID int) (*domain.Dashboard, error) {
	f.lastID, f.lastUserID = id, userID
	return f.dashboard, f.err
}

func (f *fakeDashboarder) GetShared(token string) (*domain.Dashboard, error) {
	f.lastToken = token
	return f.dashboard, f.err
}

func authenticated(r *http.Request, userID int) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.ContextKeyUser, &domain.Claims{UserID: userID})
	return r.WithContext(ctx)
}

func withParams(r *http.Request, params httprouter.Params) *http.Request {
	ctx := context.WithValue(r.Context(), httprouter.ParamsKey, params)
	return r.WithContext(ctx)
}

func TestCreateDashboard(t *testing.T) {
	t.Run("criação responde 201", func(t *testing.T) {
		service := &fakeDashboarder{
			dashboard: &domain.Dashboard{ID: 10, UserID: 1, Name: "Visão Diária"},
		}

		request := authenticated(httptest.NewRequest(http.MethodPost, "/dashboards",
			strings.NewReader(`{"name":"Visão Diária","config":{"widgets":[]}}`)), 1)
		recorder := httptest.NewRecorder()

		CreateDashboard(service)(recorder, request)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Equal(t, 1, service.lastUserID)
		assert.Contains(t, recorder.Body.String(), "Visão Diária")
	})

	t.Run("sem claims responde 401", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/dashboards", strings.NewReader(`{}`))
		recorder := httptest.NewRecorder()

		CreateDashboard(&fakeDashboarder{})(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("nome ausente responde 400", func(t *testing.T) {
		service := &fakeDashboarder{err: dashboarding.ErrInvalidName}

		request := authenticated(httptest.NewRequest(http.MethodPost, "/dashboards",
			strings.NewReader(`{"name":""}`)), 1)
		recorder := httptest.NewRecorder()

		CreateDashboard(service)(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), apiErrors.ErrMissingRequiredData)
	})
}

func TestGetDashboard(t *testing.T) {
	t.Run("id inválido responde 400", func(t *testing.T) {
		request := authenticated(httptest.NewRequest(http.MethodGet, "/dashboards/abc", nil), 1)
		request = withParams(request, httprouter.Params{{Key: "id", Value: "abc"}})
		recorder := httptest.NewRecorder()

		GetDashboard(&fakeDashboarder{})(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("inexistente responde 404", func(t *testing.T) {
		service := &fakeDashboarder{err: dashboarding.ErrDashboardNotFound}

		request := authenticated(httptest.NewRequest(http.MethodGet, "/dashboards/99", nil), 1)
		request = withParams(request, httprouter.Params{{Key: "id", Value: "99"}})
		recorder := httptest.NewRecorder()

		GetDashboard(service)(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), apiErrors.ErrResourceNotFound)
	})

	t.Run("dashboard do usuário autenticado", func(t *testing.T) {
		service := &fakeDashboarder{
			dashboard: &domain.Dashboard{ID: 10, UserID: 1, Name: "Visão Diária"},
		}

		request := authenticated(httptest.NewRequest(http.MethodGet, "/dashboards/10", nil), 1)
		request = withParams(request, httprouter.Params{{Key: "id", Value: "10"}})
		recorder := httptest.NewRecorder()

		GetDashboard(service)(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 10, service.lastID)
		assert.Equal(t, 1, service.lastUserID)
	})
}

func TestDeleteDashboard(t *testing.T) {
	service := &fakeDashboarder{}

	request := authenticated(httptest.NewRequest(http.MethodDelete, "/dashboards/10", nil), 1)
	request = withParams(request, httprouter.Params{{Key: "id", Value: "10"}})
	recorder := httptest.NewRecorder()

	DeleteDashboard(service)(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}

func TestGetSharedDashboard(t *testing.T) {
	t.Run("token válido dispensa autenticação", func(t *testing.T) {
		service := &fakeDashboarder{
			dashboard: &domain.Dashboard{ID: 10, Name: "Visão Diária"},
		}

		request := httptest.NewRequest(http.MethodGet, "/dashboards/shared/abc123", nil)
		request = withParams(request, httprouter.Params{
			{Key: "id", Value: "shared"},
			{Key: "token", Value: "abc123"},
		})
		recorder := httptest.NewRecorder()

		GetSharedDashboard(service)(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "abc123", service.lastToken)
	})

	t.Run("segmento diferente de shared responde 404", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/dashboards/10/abc123", nil)
		request = withParams(request, httprouter.Params{
			{Key: "id", Value: "10"},
			{Key: "token", Value: "abc123"},
		})
		recorder := httptest.NewRecorder()

		GetSharedDashboard(&fakeDashboarder{})(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("token desconhecido responde 404", func(t *testing.T) {
		service := &fakeDashboarder{err: dashboarding.ErrDashboardNotFound}

		request := httptest.NewRequest(http.MethodGet, "/dashboards/shared/nao-existe", nil)
		request = withParams(request, httprouter.Params{
			{Key: "id", Value: "shared"},
			{Key: "token", Value: "nao-existe"},
		})
		recorder := httptest.NewRecorder()

		GetSharedDashboard(service)(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestShareDashboard(t *testing.T) {
	token := "token-novo"
	service := &fakeDashboarder{
		dashboard: &domain.Dashboard{ID: 10, UserID: 1, Name: "Visão Diária", ShareToken: &token},
	}

	request := authenticated(httptest.NewRequest(http.MethodPost, "/dashboards/10/share", nil), 1)
	request = withParams(request, httprouter.Params{{Key: "id", Value: "10"}})
	recorder := httptest.NewRecorder()

	ShareDashboard(service)(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "token-novo")
}
