// Package tracking calcula o progresso das metas do dashboard.
package tracking

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/dashboard-insights-api/internal/domain"
	"github.com/vfg2006/dashboard-insights-api/pkg/log"
	"github.com/vfg2006/dashboard-insights-api/pkg/utils"
)

// ErrInvalidTarget indica uma meta sem alvo positivo
var ErrInvalidTarget = errors.New("meta requer alvo positivo")

// Progress compara o acumulado contra o alvo fixo da meta. O percentual da
// barra é limitado a [0,100], mas Complete reflete o progresso real: uma
// meta acima de 100% mostra barra cheia e Complete verdadeiro.
func Progress(goal domain.Goal) (domain.GoalProgress, error) {
	if goal.Target <= 0 {
		return domain.GoalProgress{}, ErrInvalidTarget
	}

	percent := goal.Current / goal.Target * 100
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	return domain.GoalProgress{
		Goal:     goal,
		Percent:  utils.RoundWithTwoDecimalPlace(percent),
		Complete: goal.Current >= goal.Target,
	}, nil
}

// ProgressAll calcula o progresso de todas as metas, descartando as
// inválidas com aviso em vez de falhar a listagem inteira
func ProgressAll(goals []domain.Goal) []domain.GoalProgress {
	results := make([]domain.GoalProgress, 0, len(goals))
	for _, goal := range goals {
		progress, err := Progress(goal)
		if err != nil {
			log.L.WithFields(log.Fields{
				"goal_id": goal.ID,
				"error":   err.Error(),
			}).Warn("meta ignorada no cálculo de progresso")
			continue
		}

		results = append(results, progress)
	}

	return results
}
