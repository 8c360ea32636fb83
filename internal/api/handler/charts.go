package handler

import (
	"net/http"

	"github.com/vfg2006/dashboard-insights-api/infrastructure/dataset"
	"github.com/vfg2006/dashboard-insights-api/internal/domain"
	"github.com/vfg2006/dashboard-insights-api/internal/usecases/charting"
	"github.com/vfg2006/dashboard-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/dashboard-insights-api/pkg/apiErrors"
	"github.com/vfg2006/dashboard-insights-api/pkg/log"
)

// windowPoints projeta a janela em pontos de gráfico usando o acessor da
// métrica; o rótulo do eixo X é a data abreviada
func windowPoints(window []domain.DailyRecord, metric domain.Metric) []domain.ChartPoint {
	points := make([]domain.ChartPoint, 0, len(window))
	for _, record := range window {
		points = append(points, domain.ChartPoint{
			Label: record.Date.Format("Jan 2"),
			Value: metric.Value(record),
		})
	}
	return points
}

func parseMetricParam(r *http.Request, fallback domain.Metric) (domain.Metric, bool) {
	value := r.URL.Query().Get("metric")
	if value == "" {
		return fallback, true
	}

	metric := domain.Metric(value)
	if !metric.Valid() {
		return "", false
	}
	return metric, true
}

func writeChartError(w http.ResponseWriter, logger log.Logger, err error) {
	switch err {
	case charting.ErrNoData:
		apiErrors.WriteError(w, apiErrors.ErrNoData, "Sem dados para o gráfico", nil)
	case charting.ErrInsufficientStages:
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Funil requer pelo menos duas etapas", nil)
	default:
		logger.WithField("error", err.Error()).Error("charts: failed to build geometry")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Falha ao calcular geometria", nil)
	}
}

func GetLineChart(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rng := domain.ParseRange(r.URL.Query().Get("range"))

		metric, ok := parseMetricParam(r, domain.MetricRevenue)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnknownMetric, "Métrica desconhecida", nil)
			return
		}

		now, err := resolveAnchor(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro as_of inválido", nil)
			return
		}

		window, _ := service.Window(rng, now)

		geometry, err := charting.MapLine(windowPoints(window, metric))
		if err != nil {
			writeChartError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"range":  string(rng),
			"metric": string(metric),
		}).Info("charts: line geometry computed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(geometry); err != nil {
			logger.WithField("error", err.Error()).Error("charts: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetBarChart(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rng := domain.ParseRange(r.URL.Query().Get("range"))

		metric, ok := parseMetricParam(r, domain.MetricUsers)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnknownMetric, "Métrica desconhecida", nil)
			return
		}

		now, err := resolveAnchor(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro as_of inválido", nil)
			return
		}

		window, _ := service.Window(rng, now)

		geometry, err := charting.MapBar(windowPoints(window, metric))
		if err != nil {
			writeChartError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"range":  string(rng),
			"metric": string(metric),
		}).Info("charts: bar geometry computed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(geometry); err != nil {
			logger.WithField("error", err.Error()).Error("charts: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetPieChart distribui o gasto das campanhas por canal
func GetPieChart(store *dataset.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot := store.Snapshot()
		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrNoData, "Conjunto ainda não carregado", nil)
			return
		}

		spendByChannel := make(map[domain.Channel]float64)
		for _, campaign := range snapshot.Campaigns {
			spendByChannel[campaign.Channel] += campaign.Spend
		}

		// Ordem fixa dos canais conhecidos; canais sem gasto ficam de fora
		points := make([]domain.ChartPoint, 0, len(spendByChannel))
		for _, channel := range domain.Channels() {
			if spend, ok := spendByChannel[channel]; ok && spend > 0 {
				points = append(points, domain.ChartPoint{Label: string(channel), Value: spend})
			}
		}

		geometry, err := charting.MapPie(points)
		if err != nil {
			writeChartError(w, logger, err)
			return
		}

		logger.WithField("slices", len(geometry.Slices)).Info("charts: pie geometry computed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(geometry); err != nil {
			logger.WithField("error", err.Error()).Error("charts: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetFunnelChart monta o funil de conversão da janela: impressões,
// cliques e conversões somados no período
func GetFunnelChart(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rng := domain.ParseRange(r.URL.Query().Get("range"))

		now, err := resolveAnchor(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro as_of inválido", nil)
			return
		}

		window, _ := service.Window(rng, now)
		if len(window) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrNoData, "Sem dados para o gráfico", nil)
			return
		}

		var impressions, clicks, conversions float64
		for _, record := range window {
			impressions += float64(record.Impressions)
			clicks += float64(record.Clicks)
			conversions += float64(record.Conversions)
		}

		stages := []domain.ChartPoint{
			{Label: "Impressions", Value: impressions},
			{Label: "Clicks", Value: clicks},
			{Label: "Conversions", Value: conversions},
		}

		geometry, err := charting.MapFunnel(stages)
		if err != nil {
			writeChartError(w, logger, err)
			return
		}

		logger.WithField("range", string(rng)).Info("charts: funnel geometry computed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(geometry); err != nil {
			logger.WithField("error", err.Error()).Error("charts: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
