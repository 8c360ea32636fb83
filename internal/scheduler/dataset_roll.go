// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dashboard-insights-api/infrastructure/dataset"
	"github.com/vfg2006/dashboard-insights-api/internal/config"
)

// DatasetRollConfig configura a rolagem diária do conjunto sintético
type DatasetRollConfig struct {
	CronSchedule string
	Enabled      bool
}

// DatasetRollStatus é o retrato do agendador exposto pelo endpoint de cron
type DatasetRollStatus struct {
	Enabled         bool       `json:"enabled"`
	CronSchedule    string     `json:"cron_schedule"`
	Running         bool       `json:"running"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
}

// DatasetRollService regenera o conjunto sintético avançado até a data
// corrente, trocando o retrato do Store de forma atômica. A série em si
// nunca é alterada in place; cada rolagem produz um retrato novo.
type DatasetRollService struct {
	scheduler *gocron.Scheduler
	store     *dataset.Store
	config    DatasetRollConfig

	rollRunning         bool
	rollMutex           sync.Mutex
	lastRollStartedAt   time.Time
	lastRollCompletedAt time.Time
}

// NewDatasetRollService cria o serviço de rolagem do conjunto
func NewDatasetRollService(store *dataset.Store, cfg *config.Config) *DatasetRollService {
	rollConfig := DatasetRollConfig{
		CronSchedule: cfg.DatasetRoll.CronSchedule,
		Enabled:      cfg.DatasetRoll.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": rollConfig.CronSchedule,
	}).Info("Configuração do agendador de rolagem do conjunto carregada")

	return &DatasetRollService{
		scheduler: scheduler,
		store:     store,
		config:    rollConfig,
	}
}

// Start agenda a rolagem diária; desligado por configuração vira no-op
func (s *DatasetRollService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de rolagem do conjunto desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de rolagem do conjunto")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RollDataset(); err != nil {
			logrus.WithError(err).Error("Erro na rolagem do conjunto")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar rolagem do conjunto: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de rolagem do conjunto")
		s.scheduler.Stop()
	}()

	return nil
}

// RollDataset executa uma rolagem, serializada pelo mutex
func (s *DatasetRollService) RollDataset() error {
	s.rollMutex.Lock()
	defer s.rollMutex.Unlock()

	if s.rollRunning {
		logrus.Warn("Rolagem do conjunto já está em execução")
		return nil
	}

	s.rollRunning = true
	s.lastRollStartedAt = time.Now()
	defer func() {
		s.rollRunning = false
		s.lastRollCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando rolagem do conjunto sintético")

	s.store.RollForward(time.Now())

	logrus.Info("Rolagem do conjunto sintético concluída")

	return nil
}

// TriggerManualRoll dispara uma rolagem fora do agendamento
func (s *DatasetRollService) TriggerManualRoll() {
	go func() {
		if err := s.RollDataset(); err != nil {
			logrus.WithError(err).Error("Erro na rolagem manual do conjunto")
		}
	}()
}

// Status retorna o retrato corrente do agendador
func (s *DatasetRollService) Status() DatasetRollStatus {
	s.rollMutex.Lock()
	defer s.rollMutex.Unlock()

	status := DatasetRollStatus{
		Enabled:      s.config.Enabled,
		CronSchedule: s.config.CronSchedule,
		Running:      s.rollRunning,
	}

	if !s.lastRollStartedAt.IsZero() {
		startedAt := s.lastRollStartedAt
		status.LastStartedAt = &startedAt
	}
	if !s.lastRollCompletedAt.IsZero() {
		completedAt := s.lastRollCompletedAt
		status.LastCompletedAt = &completedAt
	}

	return status
}
