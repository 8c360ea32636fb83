package insighting

import (
	"time"

	"github.com/vfg2006/dashboard-insights-api/infrastructure/dataset"
	"github.com/vfg2006/dashboard-insights-api/internal/domain"
)

// Insighter expõe as visões derivadas da série diária
type Insighter interface {
	Summaries(rng domain.RangeSelector, now time.Time) []domain.MetricSummary
	Window(rng domain.RangeSelector, now time.Time) (current, previous []domain.DailyRecord)
}

// Service implementa Insighter sobre o retrato corrente do conjunto
type Service struct {
	store *dataset.Store
}

// NewService cria uma nova instância do serviço de insights
func NewService(store *dataset.Store) Insighter {
	return &Service{store: store}
}

// Window seleciona as janelas atual e anterior do retrato corrente
func (s *Service) Window(rng domain.RangeSelector, now time.Time) ([]domain.DailyRecord, []domain.DailyRecord) {
	snapshot := s.store.Snapshot()
	if snapshot == nil {
		return nil, nil
	}

	return SelectWindow(snapshot.Series, rng, now)
}

// Summaries calcula o resumo de todas as métricas para o período. Cálculo
// puro sobre o retrato: entradas idênticas produzem saídas idênticas.
func (s *Service) Summaries(rng domain.RangeSelector, now time.Time) []domain.MetricSummary {
	current, previous := s.Window(rng, now)

	metrics := domain.Metrics()
	summaries := make([]domain.MetricSummary, 0, len(metrics))
	for _, metric := range metrics {
		summaries = append(summaries, Summarize(current, previous, metric))
	}

	return summaries
}
