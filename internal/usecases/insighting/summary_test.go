package insighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/dashboard-insights-api/internal/domain"
)

func TestSummarize_RevenueTrendScenario(t *testing.T) {
	lastDay := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	series := makeRevenueSeries(lastDay, 10, 100, 10)

	current, previous := SelectWindow(series, domain.RangeLast7Days, lastDay)

	summary := Summarize(current, previous, domain.MetricRevenue)

	assert.True(t, summary.Available)

	// Soma da janela: 130+140+...+190 = 1120, com separador de milhar
	assert.Equal(t, "$1,120", summary.DisplayValue)

	// Variação intra-janela: (190-130)/130*100 ≈ 46.15%
	if assert.NotNil(t, summary.PercentChangeWithinWindow) {
		assert.InDelta(t, 46.15, *summary.PercentChangeWithinWindow, 0.01)
	}
	assert.Equal(t, domain.TrendPositive, summary.TrendDirection)

	// Variação contra a janela anterior usa soma contra soma:
	// (1120-330)/330*100 ≈ 239.39%
	if assert.NotNil(t, summary.PercentChangeVsPreviousWindow) {
		assert.InDelta(t, 239.39, *summary.PercentChangeVsPreviousWindow, 0.01)
	}
}

func TestSummarize_EmptyWindowReturnsSentinel(t *testing.T) {
	summary := Summarize(nil, nil, domain.MetricRevenue)

	assert.False(t, summary.Available)
	assert.Equal(t, "--", summary.DisplayValue)
	assert.Nil(t, summary.PercentChangeWithinWindow)
	assert.Nil(t, summary.PercentChangeVsPreviousWindow)
}

func TestSummarize_EmptyPreviousWindowIsUnavailableNotError(t *testing.T) {
	lastDay := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	window := makeRevenueSeries(lastDay, 7, 100, 10)

	summary := Summarize(window, nil, domain.MetricRevenue)

	assert.True(t, summary.Available)
	assert.Nil(t, summary.PercentChangeVsPreviousWindow)
}

func TestSummarize_CostPerClickUsesLatestValue(t *testing.T) {
	lastDay := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	window := []domain.DailyRecord{
		{Date: lastDay.AddDate(0, 0, -2), CostPerClick: 1.00},
		{Date: lastDay.AddDate(0, 0, -1), CostPerClick: 1.20},
		{Date: lastDay, CostPerClick: 1.50},
	}
	previous := []domain.DailyRecord{
		{Date: lastDay.AddDate(0, 0, -5), CostPerClick: 2.00},
		{Date: lastDay.AddDate(0, 0, -4), CostPerClick: 1.25},
		{Date: lastDay.AddDate(0, 0, -3), CostPerClick: 1.25},
	}

	summary := Summarize(window, previous, domain.MetricCostPerClick)

	// Base "último valor": exibe o CPC do último dia, com duas casas
	assert.Equal(t, "$1.50", summary.DisplayValue)

	// Intra-janela: (1.50-1.00)/1.00*100 = 50%
	if assert.NotNil(t, summary.PercentChangeWithinWindow) {
		assert.InDelta(t, 50.0, *summary.PercentChangeWithinWindow, 0.01)
	}

	// Contra a anterior: último contra último, (1.50-1.25)/1.25*100 = 20%
	if assert.NotNil(t, summary.PercentChangeVsPreviousWindow) {
		assert.InDelta(t, 20.0, *summary.PercentChangeVsPreviousWindow, 0.01)
	}
}

func TestSummarize_ZeroBasesAreUnavailable(t *testing.T) {
	lastDay := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	// Primeiro dia com zero usuários: base intra-janela indisponível
	window := []domain.DailyRecord{
		{Date: lastDay.AddDate(0, 0, -1), Users: 0},
		{Date: lastDay, Users: 50},
	}

	// Janela anterior com soma zero: comparação indisponível
	previous := []domain.DailyRecord{
		{Date: lastDay.AddDate(0, 0, -3), Users: 0},
		{Date: lastDay.AddDate(0, 0, -2), Users: 0},
	}

	summary := Summarize(window, previous, domain.MetricUsers)

	assert.True(t, summary.Available)
	assert.Nil(t, summary.PercentChangeWithinWindow)
	assert.Nil(t, summary.PercentChangeVsPreviousWindow)
	assert.Equal(t, "50", summary.DisplayValue)
}

func TestSummarize_NegativeTrend(t *testing.T) {
	lastDay := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	window := makeRevenueSeries(lastDay, 5, 500, -50)

	summary := Summarize(window, nil, domain.MetricRevenue)

	assert.Equal(t, domain.TrendNegative, summary.TrendDirection)
	if assert.NotNil(t, summary.PercentChangeWithinWindow) {
		assert.Less(t, *summary.PercentChangeWithinWindow, 0.0)
	}
}

func TestSummarize_IsIdempotent(t *testing.T) {
	lastDay := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	series := makeRevenueSeries(lastDay, 20, 100, 10)

	current, previous := SelectWindow(series, domain.RangeLast7Days, lastDay)

	for _, metric := range domain.Metrics() {
		first := Summarize(current, previous, metric)
		second := Summarize(current, previous, metric)
		assert.Equal(t, first, second, "métrica %s", metric)
	}
}

func TestSummarize_CountFormattingGroupsThousands(t *testing.T) {
	lastDay := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	window := []domain.DailyRecord{
		{Date: lastDay.AddDate(0, 0, -1), Impressions: 600000},
		{Date: lastDay, Impressions: 650000},
	}

	summary := Summarize(window, nil, domain.MetricImpressions)

	assert.Equal(t, "1,250,000", summary.DisplayValue)
}
