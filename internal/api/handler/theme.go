package handler

import (
	"net/http"

	"github.com/vfg2006/dashboard-insights-api/internal/domain"
	"github.com/vfg2006/dashboard-insights-api/internal/usecases/theming"
	"github.com/vfg2006/dashboard-insights-api/pkg/apiErrors"
	"github.com/vfg2006/dashboard-insights-api/pkg/log"
)

// ThemeResponse descreve a preferência corrente e o tema resolvido
type ThemeResponse struct {
	Theme     domain.Theme `json:"theme"`
	Effective domain.Theme `json:"effective"`
}

// ThemeRequest é o corpo do PUT de preferência de tema
type ThemeRequest struct {
	Theme domain.Theme `json:"theme"`
}

func GetThemePreference(manager theming.ThemeManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		response := ThemeResponse{
			Theme:     manager.Current(),
			Effective: manager.Effective(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithField("error", err.Error()).Error("theme: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func UpdateThemePreference(manager theming.ThemeManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request ThemeRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if err := manager.Set(request.Theme); err != nil {
			if err == theming.ErrInvalidTheme {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tema desconhecido", nil)
				return
			}

			logger.WithField("error", err.Error()).Error("theme: failed to persist preference")
			apiErrors.WriteError(w, apiErrors.ErrPreferenceIO, "Falha ao persistir preferência", nil)
			return
		}

		logger.WithField("theme", string(request.Theme)).Info("theme: preference updated")

		response := ThemeResponse{
			Theme:     manager.Current(),
			Effective: manager.Effective(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithField("error", err.Error()).Error("theme: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ToggleTheme alterna entre claro e escuro a partir do tema efetivo
func ToggleTheme(manager theming.ThemeManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		next, err := manager.Toggle()
		if err != nil {
			logger.WithField("error", err.Error()).Error("theme: failed to toggle preference")
			apiErrors.WriteError(w, apiErrors.ErrPreferenceIO, "Falha ao alternar tema", nil)
			return
		}

		logger.WithField("theme", string(next)).Info("theme: preference toggled")

		response := ThemeResponse{
			Theme:     manager.Current(),
			Effective: manager.Effective(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithField("error", err.Error()).Error("theme: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
