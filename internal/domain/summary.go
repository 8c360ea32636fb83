package domain

// RangeSelector identifica o período selecionado no dashboard
type RangeSelector string

const (
	RangeLast7Days  RangeSelector = "last-7-days"
	RangeLast30Days RangeSelector = "last-30-days"
	RangeLast90Days RangeSelector = "last-90-days"
	RangeLastYear   RangeSelector = "last-year"
)

var rangeWindowDays = map[RangeSelector]int{
	RangeLast7Days:  7,
	RangeLast30Days: 30,
	RangeLast90Days: 90,
	RangeLastYear:   365,
}

// WindowDays retorna o tamanho da janela em dias. Valores desconhecidos
// caem no padrão de 30 dias.
func (r RangeSelector) WindowDays() int {
	if days, ok := rangeWindowDays[r]; ok {
		return days
	}
	return 30
}

// ParseRange normaliza o parâmetro de período vindo da requisição
func ParseRange(value string) RangeSelector {
	r := RangeSelector(value)
	if _, ok := rangeWindowDays[r]; ok {
		return r
	}
	return RangeLast30Days
}

// TrendDirection indica a direção da variação dentro da janela
type TrendDirection string

const (
	TrendPositive TrendDirection = "positive"
	TrendNegative TrendDirection = "negative"
)

// MetricSummary é o resumo exibido em um card do dashboard. Percentuais
// nulos significam "indisponível" (janela vazia ou base de comparação zero).
type MetricSummary struct {
	Metric                        Metric         `json:"metric"`
	DisplayValue                  string         `json:"display_value"`
	PercentChangeWithinWindow     *float64       `json:"percent_change_within_window,omitempty"`
	TrendDirection                TrendDirection `json:"trend_direction"`
	PercentChangeVsPreviousWindow *float64       `json:"percent_change_vs_previous_window,omitempty"`
	Available                     bool           `json:"available"`
}

// UnavailableSummary é o sumário sentinela para janelas vazias; quem consome
// nunca precisa tratar aritmética inválida.
func UnavailableSummary(m Metric) MetricSummary {
	return MetricSummary{
		Metric:         m,
		DisplayValue:   "--",
		TrendDirection: TrendPositive,
		Available:      false,
	}
}
