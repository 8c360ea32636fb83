package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dashboard-insights-api/internal/scheduler"
	"github.com/vfg2006/dashboard-insights-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDatasetRoll = "dataset-roll"
	CronJobTypeAll         = "all"
)

// CronJobServices contém os serviços de cron executáveis manualmente
type CronJobServices struct {
	DatasetRollService *scheduler.DatasetRollService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDatasetRoll, CronJobTypeAll:
			if services.DatasetRollService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de rolagem do conjunto não disponível", nil)
				return
			}
			services.DatasetRollService.TriggerManualRoll()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job desconhecido", nil)
			return
		}

		logrus.WithField("cron_type", cronType).Info("Cron job disparada manualmente")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(map[string]string{"status": "scheduled", "type": cronType}); err != nil {
			logrus.WithError(err).Error("Erro ao codificar resposta da cron job")
		}
	}
}

// GetCronStatus retorna o estado corrente dos agendadores
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.DatasetRollService != nil {
			status[CronJobTypeDatasetRoll] = services.DatasetRollService.Status()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Error("Erro ao codificar status das cron jobs")
		}
	}
}
