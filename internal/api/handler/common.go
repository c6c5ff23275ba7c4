package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-analytics-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// parseMetricFilters resolve os parâmetros comuns dos endpoints de métricas
// (startDate, endDate, channelId, storeId). Em caso de entrada inválida a
// resposta 400 já foi escrita e o segundo retorno vem false.
func parseMetricFilters(w http.ResponseWriter, r *http.Request) (domain.MetricFilters, bool) {
	query := r.URL.Query()

	dateRange, err := utils.ResolveDateRange(query.Get("startDate"), query.Get("endDate"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
		return domain.MetricFilters{}, false
	}

	filters := domain.MetricFilters{
		Start: dateRange.Start,
		End:   dateRange.End,
	}

	if raw := query.Get("channelId"); raw != "" {
		channelID, err := strconv.Atoi(raw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "channelId deve ser um número inteiro", nil)
			return domain.MetricFilters{}, false
		}
		filters.ChannelID = &channelID
	}

	if raw := query.Get("storeId"); raw != "" {
		storeID, err := strconv.Atoi(raw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "storeId deve ser um número inteiro", nil)
			return domain.MetricFilters{}, false
		}
		filters.StoreID = &storeID
	}

	return filters, true
}

// parseLimit lê o parâmetro limit; 0 significa "use o padrão do serviço".
func parseLimit(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}

	limit, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um número inteiro positivo", nil)
		return 0, false
	}

	return limit, true
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao escrever resposta JSON")
	}
}
