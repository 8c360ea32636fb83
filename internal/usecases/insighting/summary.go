package insighting

import (
	"github.com/vfg2006/dashboard-insights-api/internal/domain"
	"github.com/vfg2006/dashboard-insights-api/pkg/utils"
)

// Summarize reduz uma janela em um resumo exibível para a métrica.
//
// A variação intra-janela compara o último valor diário contra o primeiro,
// na base diária mesmo para métricas aditivas: o card mostra a tendência
// dentro do período, distinta da comparação de totais. A variação contra a
// janela anterior usa a mesma base de agregação do valor exibido (soma
// contra soma, ou último contra último).
//
// Janela vazia devolve o sumário sentinela; base de comparação zero devolve
// percentual indisponível. Nunca propaga NaN ou infinito.
func Summarize(window, previousWindow []domain.DailyRecord, metric domain.Metric) domain.MetricSummary {
	if len(window) == 0 {
		return domain.UnavailableSummary(metric)
	}

	value := aggregate(window, metric)

	summary := domain.MetricSummary{
		Metric:         metric,
		DisplayValue:   formatValue(metric, value),
		TrendDirection: domain.TrendPositive,
		Available:      true,
	}

	first := metric.Value(window[0])
	latest := metric.Value(window[len(window)-1])
	if first != 0 {
		pct := utils.RoundWithTwoDecimalPlace((latest - first) / first * 100)
		summary.PercentChangeWithinWindow = &pct
		if pct < 0 {
			summary.TrendDirection = domain.TrendNegative
		}
	}

	if len(previousWindow) > 0 {
		previousValue := aggregate(previousWindow, metric)
		if previousValue != 0 {
			pct := utils.RoundWithTwoDecimalPlace((value - previousValue) / previousValue * 100)
			summary.PercentChangeVsPreviousWindow = &pct
		}
	}

	return summary
}

// aggregate consolida a janela conforme a base da métrica
func aggregate(window []domain.DailyRecord, metric domain.Metric) float64 {
	if metric.Basis() == domain.BasisLatest {
		return metric.Value(window[len(window)-1])
	}

	total := 0.0
	for _, record := range window {
		total += metric.Value(record)
	}
	return total
}

func formatValue(metric domain.Metric, value float64) string {
	switch metric.Format() {
	case domain.FormatCurrency:
		return utils.FormatCurrency(value)
	case domain.FormatRate:
		return utils.FormatRate(value)
	default:
		return utils.FormatCount(value)
	}
}
