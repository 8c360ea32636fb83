package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/dashboard-insights-api/internal/domain"
	"github.com/vfg2006/dashboard-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/dashboard-insights-api/pkg/apiErrors"
	"github.com/vfg2006/dashboard-insights-api/pkg/log"
	"github.com/vfg2006/dashboard-insights-api/pkg/utils"
)

// DashboardMetricsResponse é a resposta dos cards de métrica
type DashboardMetricsResponse struct {
	Range     domain.RangeSelector   `json:"range"`
	Summaries []domain.MetricSummary `json:"summaries"`
}

// RefreshResponse confirma o agendamento de uma recomputação
type RefreshResponse struct {
	RequestID string               `json:"request_id"`
	Range     domain.RangeSelector `json:"range"`
}

// resolveAnchor interpreta o parâmetro opcional as_of como âncora da janela;
// ausente, a âncora é o relógio corrente
func resolveAnchor(r *http.Request) (time.Time, error) {
	asOf := r.URL.Query().Get("as_of")
	if asOf == "" {
		return time.Now().UTC(), nil
	}

	parsed, err := utils.ParseDate(asOf)
	if err != nil {
		return time.Time{}, err
	}

	return *parsed, nil
}

func GetDashboardMetrics(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rng := domain.ParseRange(r.URL.Query().Get("range"))

		now, err := resolveAnchor(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"as_of": r.URL.Query().Get("as_of"),
				"error": err.Error(),
			}).Warn("dashboard: invalid as_of parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro as_of inválido", nil)
			return
		}

		logger.WithField("range", string(rng)).Info("dashboard: computing metric summaries")

		response := DashboardMetricsResponse{
			Range:     rng,
			Summaries: service.Summaries(rng, now),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithField("error", err.Error()).Error("dashboard: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// RefreshDashboard agenda a recomputação com o atraso simulado de busca.
// Um pedido novo substitui o pendente: o resultado exposto é sempre o do
// último pedido feito.
func RefreshDashboard(refresher *insighting.Refresher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rng := domain.ParseRange(r.URL.Query().Get("range"))

		now, err := resolveAnchor(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro as_of inválido", nil)
			return
		}

		requestID, err := refresher.Request(rng, now)
		if err != nil {
			logger.WithField("error", err.Error()).Error("dashboard: failed to schedule refresh")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Falha ao agendar recomputação", nil)
			return
		}

		logger.WithFields(log.Fields{
			"request_id": requestID,
			"range":      string(rng),
		}).Info("dashboard: refresh scheduled")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(RefreshResponse{RequestID: requestID, Range: rng}); err != nil {
			logger.WithField("error", err.Error()).Error("dashboard: failed to encode response")
		}
	})
}

// GetLatestRefresh devolve o último resultado de recomputação concluído
func GetLatestRefresh(refresher *insighting.Refresher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		latest := refresher.Latest()
		if latest == nil {
			apiErrors.WriteError(w, apiErrors.ErrNoData, "Nenhuma recomputação concluída", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(latest); err != nil {
			logger.WithField("error", err.Error()).Error("dashboard: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
