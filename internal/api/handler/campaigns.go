package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/dashboard-insights-api/infrastructure/dataset"
	"github.com/vfg2006/dashboard-insights-api/internal/domain"
	"github.com/vfg2006/dashboard-insights-api/internal/usecases/campaigning"
	"github.com/vfg2006/dashboard-insights-api/pkg/apiErrors"
	"github.com/vfg2006/dashboard-insights-api/pkg/log"
)

// ListCampaigns aplica filtro, ordenação e paginação sobre a lista fixa de
// campanhas. O estado da tabela vem inteiro da query string; quem apresenta
// é responsável por voltar à página 1 quando o filtro muda.
func ListCampaigns(service campaigning.TableService, store *dataset.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot := store.Snapshot()
		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrNoData, "Conjunto ainda não carregado", nil)
			return
		}

		state := domain.TableViewState{
			FilterText:    r.URL.Query().Get("filter"),
			SortDirection: domain.SortAsc,
			CurrentPage:   1,
		}

		if sortParam := r.URL.Query().Get("sort"); sortParam != "" {
			column, ok := domain.ParseSortColumn(sortParam)
			if !ok {
				logger.WithField("sort", sortParam).Warn("campaigns: unknown sort column")
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Coluna de ordenação desconhecida", nil)
				return
			}
			state.SortColumn = &column
		}

		if r.URL.Query().Get("direction") == string(domain.SortDesc) {
			state.SortDirection = domain.SortDesc
		}

		if pageParam := r.URL.Query().Get("page"); pageParam != "" {
			page, err := strconv.Atoi(pageParam)
			if err != nil || page < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro page inválido", nil)
				return
			}
			state.CurrentPage = page
		}

		view := service.View(snapshot.Campaigns, state)

		logger.WithFields(log.Fields{
			"filter":      state.FilterText,
			"page":        view.Page,
			"total_pages": view.TotalPages,
		}).Info("campaigns: table view computed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(view); err != nil {
			logger.WithField("error", err.Error()).Error("campaigns: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
