package handler

import (
	"net/http"

	"github.com/vfg2006/dashboard-insights-api/infrastructure/dataset"
	"github.com/vfg2006/dashboard-insights-api/internal/api/handler/router"
	"github.com/vfg2006/dashboard-insights-api/internal/usecases/campaigning"
	"github.com/vfg2006/dashboard-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/dashboard-insights-api/internal/usecases/theming"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service insighting.Insighter, refresher *insighting.Refresher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/metrics",
			Method:  http.MethodGet,
			Handler: GetDashboardMetrics(service),
		},
		{
			Path:    "/v1/dashboard/refresh",
			Method:  http.MethodPost,
			Handler: RefreshDashboard(refresher),
		},
		{
			Path:    "/v1/dashboard/refresh",
			Method:  http.MethodGet,
			Handler: GetLatestRefresh(refresher),
		},
	}
}

func Charts(service insighting.Insighter, store *dataset.Store) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/charts/line",
			Method:  http.MethodGet,
			Handler: GetLineChart(service),
		},
		{
			Path:    "/v1/dashboard/charts/bar",
			Method:  http.MethodGet,
			Handler: GetBarChart(service),
		},
		{
			Path:    "/v1/dashboard/charts/pie",
			Method:  http.MethodGet,
			Handler: GetPieChart(store),
		},
		{
			Path:    "/v1/dashboard/charts/funnel",
			Method:  http.MethodGet,
			Handler: GetFunnelChart(service),
		},
	}
}

func Campaigns(service campaigning.TableService, store *dataset.Store) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service, store),
		},
	}
}

func Goals(store *dataset.Store) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/goals",
			Method:  http.MethodGet,
			Handler: GetGoals(store),
		},
	}
}

func Theme(manager theming.ThemeManager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/preferences/theme",
			Method:  http.MethodGet,
			Handler: GetThemePreference(manager),
		},
		{
			Path:    "/v1/preferences/theme",
			Method:  http.MethodPut,
			Handler: UpdateThemePreference(manager),
		},
		{
			Path:    "/v1/preferences/theme/toggle",
			Method:  http.MethodPost,
			Handler: ToggleTheme(manager),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
