package insighting

import (
	"sort"
	"time"

	"github.com/vfg2006/dashboard-insights-api/internal/domain"
)

// SelectWindow fatia a série diária na janela atual e na janela anterior de
// mesmo tamanho. A janela atual cobre (now-w, now] e a anterior cobre
// (now-2w, now-w], com w = dias do período selecionado. As duas fatias
// compartilham o array da série (visões, nunca cópias), preservam a ordem
// ascendente por data e são disjuntas por construção.
//
// Se a série tiver menos registros que a janela pede, a fatia simplesmente
// contém o que existe; não há preenchimento nem erro.
func SelectWindow(series []domain.DailyRecord, rng domain.RangeSelector, now time.Time) (current, previous []domain.DailyRecord) {
	windowDays := rng.WindowDays()

	windowStart := now.AddDate(0, 0, -windowDays)
	previousStart := now.AddDate(0, 0, -2*windowDays)

	// A série é ordenada por data, então os limites saem por busca binária
	previousFrom := sort.Search(len(series), func(i int) bool {
		return series[i].Date.After(previousStart)
	})
	currentFrom := sort.Search(len(series), func(i int) bool {
		return series[i].Date.After(windowStart)
	})
	currentTo := sort.Search(len(series), func(i int) bool {
		return series[i].Date.After(now)
	})

	current = series[currentFrom:currentTo]
	previous = series[previousFrom:currentFrom]

	return current, previous
}
