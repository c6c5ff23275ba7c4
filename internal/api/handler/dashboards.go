package handler

import (
	stdjson "encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/dashboarding"
	"github.com/vfg2006/restaurant-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-analytics-api/pkg/middleware"
)

type DashboardRequest struct {
	Name   string             `json:"name"`
	Config stdjson.RawMessage `json:"config"`
}

func CreateDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}

		var req DashboardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		dashboard, err := service.Create(userClaims.UserID, req.Name, req.Config)
		if err != nil {
			handleDashboardError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		writeBody(w, dashboard)
	}
}

func ListDashboards(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}

		dashboards, err := service.List(userClaims.UserID)
		if err != nil {
			handleDashboardError(w, err)
			return
		}

		writeJSON(w, dashboards)
	}
}

func GetDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}

		id, ok := dashboardID(w, r)
		if !ok {
			return
		}

		dashboard, err := service.Get(id, userClaims.UserID)
		if err != nil {
			handleDashboardError(w, err)
			return
		}

		writeJSON(w, dashboard)
	}
}

func UpdateDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}

		id, ok := dashboardID(w, r)
		if !ok {
			return
		}

		var req DashboardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		dashboard, err := service.Update(id, userClaims.UserID, req.Name, req.Config)
		if err != nil {
			handleDashboardError(w, err)
			return
		}

		writeJSON(w, dashboard)
	}
}

func DeleteDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}

		id, ok := dashboardID(w, r)
		if !ok {
			return
		}

		if err := service.Delete(id, userClaims.UserID); err != nil {
			handleDashboardError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ShareDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}

		id, ok := dashboardID(w, r)
		if !ok {
			return
		}

		dashboard, err := service.Share(id, userClaims.UserID)
		if err != nil {
			handleDashboardError(w, err)
			return
		}

		writeJSON(w, dashboard)
	}
}

// GetSharedDashboard serve um dashboard compartilhado sem autenticação; o
// token público é a única credencial. A URL esperada é
// /dashboards/shared/:token.
func GetSharedDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		if params.ByName("id") != "shared" {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Recurso não encontrado", nil)
			return
		}

		token := params.ByName("token")

		dashboard, err := service.GetShared(token)
		if err != nil {
			handleDashboardError(w, err)
			return
		}

		writeJSON(w, dashboard)
	}
}

func claimsFromContext(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}

	return userClaims, true
}

func dashboardID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")

	id, err := strconv.Atoi(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do dashboard inválido", nil)
		return 0, false
	}

	return id, true
}

func handleDashboardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dashboarding.ErrDashboardNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Dashboard não encontrado", nil)

	case errors.Is(err, dashboarding.ErrInvalidName):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do dashboard é obrigatório", nil)

	default:
		logrus.WithError(err).Error("Erro inesperado em dashboards")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}

func writeBody(w http.ResponseWriter, payload any) {
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao escrever resposta JSON")
	}
}
