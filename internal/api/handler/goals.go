package handler

import (
	"net/http"

	"github.com/vfg2006/dashboard-insights-api/infrastructure/dataset"
	"github.com/vfg2006/dashboard-insights-api/internal/usecases/tracking"
	"github.com/vfg2006/dashboard-insights-api/pkg/apiErrors"
	"github.com/vfg2006/dashboard-insights-api/pkg/log"
)

// GetGoals devolve o progresso de todas as metas do retrato corrente
func GetGoals(store *dataset.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot := store.Snapshot()
		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrNoData, "Conjunto ainda não carregado", nil)
			return
		}

		progress := tracking.ProgressAll(snapshot.Goals)

		logger.WithField("goals", len(progress)).Info("goals: progress computed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(progress); err != nil {
			logger.WithField("error", err.Error()).Error("goals: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
