package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dashboard-insights-api/infrastructure/dataset"
	"github.com/vfg2006/dashboard-insights-api/infrastructure/repository"
	"github.com/vfg2006/dashboard-insights-api/internal/api"
	"github.com/vfg2006/dashboard-insights-api/internal/config"
	"github.com/vfg2006/dashboard-insights-api/internal/scheduler"
	"github.com/vfg2006/dashboard-insights-api/internal/usecases/campaigning"
	"github.com/vfg2006/dashboard-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/dashboard-insights-api/internal/usecases/theming"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Gera o conjunto sintético uma única vez; as visões derivadas são
	// sempre recomputadas a partir deste retrato
	source := dataset.NewSyntheticSource()
	store := dataset.NewStore(source, cfg.Dataset.Seed, cfg.Dataset.Days, cfg.Dataset.CampaignCount)
	store.Load(time.Now())

	logrus.WithFields(logrus.Fields{
		"seed":      cfg.Dataset.Seed,
		"days":      cfg.Dataset.Days,
		"campaigns": cfg.Dataset.CampaignCount,
	}).Info("Conjunto sintético gerado")

	insightService := insighting.NewService(store)
	refresher := insighting.NewRefresher(insightService, cfg.Dashboard.FetchDelay)

	tableService := campaigning.NewService(cfg.Dashboard.PageSize)

	preferenceRepo := repository.NewFilePreferenceRepository(cfg.Theme.StorePath)
	themeManager, err := theming.NewService(preferenceRepo, cfg.Theme.PreferenceKey, nil)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar a preferência de tema")
	}

	// Inicializa o agendador de rolagem diária do conjunto
	datasetRollService := scheduler.NewDatasetRollService(store, cfg)
	if err := datasetRollService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de rolagem do conjunto")
	} else {
		logrus.Info("Agendador de rolagem do conjunto iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		insightService,
		refresher,
		tableService,
		themeManager,
		store,
		datasetRollService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
