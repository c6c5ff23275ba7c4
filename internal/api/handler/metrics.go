package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/exporting"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/metricating"
	"github.com/vfg2006/restaurant-analytics-api/pkg/apiErrors"
)

func GetOverview(service metricating.Metricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, ok := parseMetricFilters(w, r)
		if !ok {
			return
		}

		overview, err := service.Overview(filters)
		if err != nil {
			logrus.WithError(err).Error("Erro ao calcular overview de vendas")
			apiErrors.WriteInternalError(w)
			return
		}

		writeJSON(w, overview)
	}
}

func GetTopProducts(service metricating.Metricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, ok := parseMetricFilters(w, r)
		if !ok {
			return
		}

		limit, ok := parseLimit(w, r)
		if !ok {
			return
		}

		products, err := service.TopProducts(filters, limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar produtos mais vendidos")
			apiErrors.WriteInternalError(w)
			return
		}

		writeJSON(w, products)
	}
}

func GetSalesByChannel(service metricating.Metricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, ok := parseMetricFilters(w, r)
		if !ok {
			return
		}

		channels, err := service.SalesByChannel(filters)
		if err != nil {
			logrus.WithError(err).Error("Erro ao agrupar vendas por canal")
			apiErrors.WriteInternalError(w)
			return
		}

		writeJSON(w, channels)
	}
}

func GetSalesByStore(service metricating.Metricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, ok := parseMetricFilters(w, r)
		if !ok {
			return
		}

		stores, err := service.SalesByStore(filters)
		if err != nil {
			logrus.WithError(err).Error("Erro ao agrupar vendas por loja")
			apiErrors.WriteInternalError(w)
			return
		}

		writeJSON(w, stores)
	}
}

func GetHeatmap(service metricating.Metricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, ok := parseMetricFilters(w, r)
		if !ok {
			return
		}

		heatmap, err := service.Heatmap(filters)
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar heatmap de vendas")
			apiErrors.WriteInternalError(w)
			return
		}

		writeJSON(w, heatmap)
	}
}

func GetTimeSeries(service metricating.Metricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, ok := parseMetricFilters(w, r)
		if !ok {
			return
		}

		groupBy := r.URL.Query().Get("groupBy")
		if groupBy == "" {
			groupBy = "day"
		}

		if !isValidGroupBy(groupBy) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "groupBy deve ser hour, day, week ou month", nil)
			return
		}

		series, err := service.TimeSeries(filters, groupBy)
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar série temporal de vendas")
			apiErrors.WriteInternalError(w)
			return
		}

		writeJSON(w, series)
	}
}

func isValidGroupBy(groupBy string) bool {
	switch groupBy {
	case "hour", "day", "week", "month":
		return true
	}
	return false
}

func GetCategories(service metricating.Metricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, ok := parseMetricFilters(w, r)
		if !ok {
			return
		}

		categories, err := service.Categories(filters)
		if err != nil {
			logrus.WithError(err).Error("Erro ao agrupar vendas por categoria")
			apiErrors.WriteInternalError(w)
			return
		}

		writeJSON(w, categories)
	}
}

func GetFilterOptions(service metricating.Metricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options, err := service.FilterOptions()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar opções de filtro")
			apiErrors.WriteInternalError(w)
			return
		}

		writeJSON(w, options)
	}
}

func ExportCSV(service exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, ok := parseMetricFilters(w, r)
		if !ok {
			return
		}

		limit, ok := parseLimit(w, r)
		if !ok {
			return
		}

		content, err := service.ExportCSV(filters, limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao gerar export CSV de vendas")
			apiErrors.WriteInternalError(w)
			return
		}

		filename := fmt.Sprintf("sales-export-%d.csv", time.Now().UnixMilli())

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		if _, err := w.Write([]byte(content)); err != nil {
			logrus.WithError(err).Error("Erro ao enviar export CSV")
		}
	}
}
