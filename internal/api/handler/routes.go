package handler

import (
	"net/http"

	"github.com/vlima/reforma-manager-api/internal/api/handler/router"
	"github.com/vlima/reforma-manager-api/internal/usecases/aiinsights"
	"github.com/vlima/reforma-manager-api/internal/usecases/analytics"
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

func Analytics(service analytics.Analyzer, fetcher aiinsights.InsightFetcher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analytics/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/analytics/funnel",
			Method:  http.MethodGet,
			Handler: GetConversionFunnel(service),
		},
		{
			Path:    "/v1/analytics/funnel/ai-insights",
			Method:  http.MethodGet,
			Handler: GetFunnelAIInsights(service, fetcher),
		},
		{
			Path:    "/v1/analytics/closures/export",
			Method:  http.MethodGet,
			Handler: ExportClosures(service),
		},
	}
}
