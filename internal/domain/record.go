package domain

import "time"

// DailyRecord representa os dados sintéticos de um único dia do dashboard.
// O conjunto é gerado uma única vez por processo e nunca é alterado depois;
// todas as janelas (atual/anterior) são fatias sobre o mesmo array.
type DailyRecord struct {
	Date         time.Time `json:"date"`
	Revenue      float64   `json:"revenue"`
	Users        int       `json:"users"`
	Conversions  int       `json:"conversions"`
	CostPerClick float64   `json:"cost_per_click"`
	Impressions  int       `json:"impressions"`
	Clicks       int       `json:"clicks"`
}

// Metric identifica uma métrica exibida nos cards do dashboard
type Metric string

const (
	MetricRevenue      Metric = "revenue"
	MetricUsers        Metric = "users"
	MetricConversions  Metric = "conversions"
	MetricCostPerClick Metric = "cost_per_click"
	MetricImpressions  Metric = "impressions"
	MetricClicks       Metric = "clicks"
)

// AggregationBasis define como uma métrica é consolidada dentro de uma janela
type AggregationBasis int

const (
	// BasisSum soma os valores diários da janela (métricas aditivas)
	BasisSum AggregationBasis = iota
	// BasisLatest usa o último valor diário da janela (métricas de taxa)
	BasisLatest
)

// MetricFormat define a formatação do valor exibido
type MetricFormat int

const (
	FormatCurrency MetricFormat = iota
	FormatCount
	FormatRate
)

// metricAccessors é a enumeração fechada de acessores por métrica. O acesso
// por chave dinâmica do dashboard original vira indexação por enum tipado.
var metricAccessors = map[Metric]func(DailyRecord) float64{
	MetricRevenue:      func(r DailyRecord) float64 { return r.Revenue },
	MetricUsers:        func(r DailyRecord) float64 { return float64(r.Users) },
	MetricConversions:  func(r DailyRecord) float64 { return float64(r.Conversions) },
	MetricCostPerClick: func(r DailyRecord) float64 { return r.CostPerClick },
	MetricImpressions:  func(r DailyRecord) float64 { return float64(r.Impressions) },
	MetricClicks:       func(r DailyRecord) float64 { return float64(r.Clicks) },
}

// Metrics retorna as métricas na ordem fixa de exibição dos cards
func Metrics() []Metric {
	return []Metric{
		MetricRevenue,
		MetricUsers,
		MetricConversions,
		MetricCostPerClick,
		MetricImpressions,
		MetricClicks,
	}
}

// Valid indica se a métrica é conhecida
func (m Metric) Valid() bool {
	_, ok := metricAccessors[m]
	return ok
}

// Value extrai o valor diário da métrica a partir de um registro
func (m Metric) Value(r DailyRecord) float64 {
	accessor, ok := metricAccessors[m]
	if !ok {
		return 0
	}
	return accessor(r)
}

// Basis retorna a base de agregação da métrica: custo por clique é uma taxa
// e usa o último valor; as demais são aditivas e usam a soma da janela.
func (m Metric) Basis() AggregationBasis {
	if m == MetricCostPerClick {
		return BasisLatest
	}
	return BasisSum
}

// Format retorna o formato de exibição da métrica
func (m Metric) Format() MetricFormat {
	switch m {
	case MetricRevenue:
		return FormatCurrency
	case MetricCostPerClick:
		return FormatRate
	default:
		return FormatCount
	}
}
