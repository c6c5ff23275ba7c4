package handler

import (
	"net/http"

	"github.com/vfg2006/restaurant-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/restaurant-analytics-api/internal/config"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/dashboarding"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/exporting"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/insighting"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/metricating"
	"github.com/vfg2006/restaurant-analytics-api/pkg/cache"
	"github.com/vfg2006/restaurant-analytics-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/auth/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/auth/profile",
			Method:  http.MethodGet,
			Handler: GetProfile(service),
		},
	}
}

// Metrics registra os endpoints de métricas. As respostas GET passam pelo
// cache com o TTL padrão; as opções de filtro mudam pouco e ficam mais
// tempo; o export CSV nunca é cacheado.
func Metrics(
	metricService metricating.Metricer,
	insightService insighting.Insighter,
	exportService exporting.Exporter,
	responseCache cache.Cache,
	cfg *config.Config,
) []router.Route {
	cached := middleware.CacheMiddleware(responseCache, cfg.Cache.DefaultTTL)
	cachedLong := middleware.CacheMiddleware(responseCache, cfg.Cache.FiltersTTL)

	return []router.Route{
		{
			Path:        "/metrics/overview",
			Method:      http.MethodGet,
			Handler:     GetOverview(metricService),
			Middlewares: []func(http.Handler) http.Handler{cached},
		},
		{
			Path:        "/metrics/top-products",
			Method:      http.MethodGet,
			Handler:     GetTopProducts(metricService),
			Middlewares: []func(http.Handler) http.Handler{cached},
		},
		{
			Path:        "/metrics/sales-by-channel",
			Method:      http.MethodGet,
			Handler:     GetSalesByChannel(metricService),
			Middlewares: []func(http.Handler) http.Handler{cached},
		},
		{
			Path:        "/metrics/sales-by-store",
			Method:      http.MethodGet,
			Handler:     GetSalesByStore(metricService),
			Middlewares: []func(http.Handler) http.Handler{cached},
		},
		{
			Path:        "/metrics/heatmap",
			Method:      http.MethodGet,
			Handler:     GetHeatmap(metricService),
			Middlewares: []func(http.Handler) http.Handler{cached},
		},
		{
			Path:        "/metrics/time-series",
			Method:      http.MethodGet,
			Handler:     GetTimeSeries(metricService),
			Middlewares: []func(http.Handler) http.Handler{cached},
		},
		{
			Path:        "/metrics/categories",
			Method:      http.MethodGet,
			Handler:     GetCategories(metricService),
			Middlewares: []func(http.Handler) http.Handler{cached},
		},
		{
			Path:        "/metrics/filters",
			Method:      http.MethodGet,
			Handler:     GetFilterOptions(metricService),
			Middlewares: []func(http.Handler) http.Handler{cachedLong},
		},
		{
			Path:        "/metrics/insights",
			Method:      http.MethodGet,
			Handler:     GetInsights(insightService),
			Middlewares: []func(http.Handler) http.Handler{cached},
		},
		{
			Path:    "/metrics/export-csv",
			Method:  http.MethodGet,
			Handler: ExportCSV(exportService),
		},
	}
}

func Dashboards(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/dashboards",
			Method:  http.MethodPost,
			Handler: CreateDashboard(service),
		},
		{
			Path:    "/dashboards",
			Method:  http.MethodGet,
			Handler: ListDashboards(service),
		},
		{
			// httprouter não aceita o literal "shared" ao lado do curinga
			// :id, então a rota pública casa pelo padrão de dois segmentos
			// e o handler exige o literal.
			Path:    "/dashboards/:id/:token",
			Method:  http.MethodGet,
			Handler: GetSharedDashboard(service),
		},
		{
			Path:    "/dashboards/:id",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/dashboards/:id",
			Method:  http.MethodPut,
			Handler: UpdateDashboard(service),
		},
		{
			Path:    "/dashboards/:id",
			Method:  http.MethodDelete,
			Handler: DeleteDashboard(service),
		},
		{
			Path:    "/dashboards/:id/share",
			Method:  http.MethodPost,
			Handler: ShareDashboard(service),
		},
	}
}
