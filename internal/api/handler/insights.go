package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/insighting"
	"github.com/vfg2006/restaurant-analytics-api/pkg/apiErrors"
)

func GetInsights(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, ok := parseMetricFilters(w, r)
		if !ok {
			return
		}

		insights, err := service.Generate(filters)
		if err != nil {
			logrus.WithError(err).Error("Erro ao gerar insights de vendas")
			apiErrors.WriteInternalError(w)
			return
		}

		writeJSON(w, insights)
	}
}
