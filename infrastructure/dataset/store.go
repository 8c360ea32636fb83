package dataset

import (
	"sync"
	"time"

	"github.com/vfg2006/dashboard-insights-api/internal/domain"
)

// Snapshot é o retrato imutável do conjunto sintético. Os consumidores
// recebem o ponteiro e nunca alteram o conteúdo; a troca é sempre atômica.
type Snapshot struct {
	Series      []domain.DailyRecord
	Campaigns   []*domain.Campaign
	Goals       []domain.Goal
	Seed        int64
	GeneratedAt time.Time
}

// Store guarda o retrato corrente do conjunto atrás de um RWMutex. A única
// escrita depois da carga inicial é a troca do retrato pelo job de rolagem.
type Store struct {
	mu       sync.RWMutex
	source   Source
	snapshot *Snapshot

	seed          int64
	days          int
	campaignCount int
}

// NewStore cria um Store vazio; Load precisa ser chamado antes do uso
func NewStore(source Source, seed int64, days, campaignCount int) *Store {
	return &Store{
		source:        source,
		seed:          seed,
		days:          days,
		campaignCount: campaignCount,
	}
}

// Load gera o conjunto completo terminando em `until` e troca o retrato
func (s *Store) Load(until time.Time) {
	snapshot := &Snapshot{
		Series:      s.source.GenerateDailyRecords(s.seed, s.days, until),
		Campaigns:   s.source.GenerateCampaigns(s.seed, s.campaignCount),
		Goals:       s.source.GenerateGoals(s.seed),
		Seed:        s.seed,
		GeneratedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()
}

// Snapshot retorna o retrato corrente
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// RollForward regenera o conjunto avançado até `now`; usado pelo job diário
func (s *Store) RollForward(now time.Time) {
	s.Load(now)
}
