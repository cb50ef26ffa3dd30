package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vlima/reforma-manager-api/internal/domain"
	"github.com/vlima/reforma-manager-api/internal/usecases/aiinsights"
	"github.com/vlima/reforma-manager-api/internal/usecases/analytics"
	"github.com/vlima/reforma-manager-api/pkg/apiErrors"
	"github.com/vlima/reforma-manager-api/pkg/log"
)

// GetConversionFunnel calcula e devolve o funil de conversão de orçamentos
func GetConversionFunnel(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		funnel, err := service.GetConversionFunnel(r.Context())
		if err != nil {
			logger.WithError(err).Error("funnel: erro ao calcular o funil de conversão")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"total_quotes":    funnel.TotalQuotes,
			"conversion_rate": funnel.OverallConversionRate,
		}).Info("funnel: funil de conversão calculado")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(funnel); err != nil {
			logger.WithError(err).Error("funnel: erro ao serializar resposta do funil")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

type aiInsightsResponse struct {
	Insights []*domain.Insight `json:"insights"`
}

// GetFunnelAIInsights calcula o funil atual e devolve os insights
// complementares do serviço de inferência. A lista pode vir vazia quando há
// poucos orçamentos, quando o cooldown está ativo ou quando a chamada externa
// falha; nunca devolve erro por causa da inferência.
func GetFunnelAIInsights(service analytics.Analyzer, fetcher aiinsights.InsightFetcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		funnel, err := service.GetConversionFunnel(r.Context())
		if err != nil {
			logger.WithError(err).Error("funnel: erro ao calcular o funil para inferência")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		insights := fetcher.FetchInsights(r.Context(), funnel)

		logger.WithField("insight_count", len(insights)).Info("funnel: insights de inferência obtidos")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(aiInsightsResponse{Insights: insights}); err != nil {
			logger.WithError(err).Error("funnel: erro ao serializar insights de inferência")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}
