// Package dataset gera o conjunto sintético que alimenta o dashboard.
// O gerador é um processo pseudoaleatório com semente explícita: a mesma
// semente produz sempre o mesmo conjunto, o que torna a saída verificável
// em testes.
package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vfg2006/dashboard-insights-api/internal/domain"
	"github.com/vfg2006/dashboard-insights-api/pkg/utils"
)

// Source é a interface do gerador do conjunto sintético
type Source interface {
	GenerateDailyRecords(seed int64, days int, until time.Time) []domain.DailyRecord
	GenerateCampaigns(seed int64, count int) []*domain.Campaign
	GenerateGoals(seed int64) []domain.Goal
}

// SyntheticSource implementa Source com math/rand semeado
type SyntheticSource struct{}

// NewSyntheticSource cria uma nova fonte sintética
func NewSyntheticSource() Source {
	return &SyntheticSource{}
}

// GenerateDailyRecords produz uma série diária ordenada ascendente por data,
// um registro por dia, sem lacunas, terminando em `until` (truncado para
// meia-noite UTC). A série tem sazonalidade semanal leve mais ruído.
func (s *SyntheticSource) GenerateDailyRecords(seed int64, days int, until time.Time) []domain.DailyRecord {
	rnd := rand.New(rand.NewSource(seed))

	lastDay := time.Date(until.Year(), until.Month(), until.Day(), 0, 0, 0, 0, time.UTC)

	records := make([]domain.DailyRecord, 0, days)
	for i := 0; i < days; i++ {
		date := lastDay.AddDate(0, 0, -(days - 1 - i))

		// Fator de sazonalidade semanal: fins de semana rendem menos
		weekday := float64(date.Weekday())
		seasonal := 1.0 + 0.25*math.Sin(weekday/6.0*2*math.Pi)

		revenue := utils.RoundWithTwoDecimalPlace((3000 + rnd.Float64()*2500) * seasonal)
		users := int((800 + rnd.Float64()*1200) * seasonal)
		conversions := 40 + rnd.Intn(100)
		costPerClick := utils.RoundWithTwoDecimalPlace(0.8 + rnd.Float64()*1.2)
		impressions := 40000 + rnd.Intn(60000)
		clicks := 1500 + rnd.Intn(3000)

		records = append(records, domain.DailyRecord{
			Date:         date,
			Revenue:      revenue,
			Users:        users,
			Conversions:  conversions,
			CostPerClick: costPerClick,
			Impressions:  impressions,
			Clicks:       clicks,
		})
	}

	return records
}

var campaignThemes = []string{
	"Summer Sale",
	"Brand Awareness",
	"Holiday Push",
	"Product Launch",
	"Retargeting",
	"Lead Gen",
	"Flash Deals",
	"Loyalty Program",
}

// GenerateCampaigns produz a lista fixa de campanhas da tabela. Spend nunca
// excede Budget por construção e o ROI é derivado de receita e gasto.
func (s *SyntheticSource) GenerateCampaigns(seed int64, count int) []*domain.Campaign {
	rnd := rand.New(rand.NewSource(seed))

	statuses := domain.CampaignStatuses()
	channels := domain.Channels()

	campaigns := make([]*domain.Campaign, 0, count)
	for i := 0; i < count; i++ {
		theme := campaignThemes[rnd.Intn(len(campaignThemes))]
		name := fmt.Sprintf("%s Q%d", theme, 1+rnd.Intn(4))

		budget := float64(5000 + rnd.Intn(45000))
		// Gasto entre 30% e 100% do orçamento
		spend := utils.RoundWithTwoDecimalPlace(budget * (0.3 + rnd.Float64()*0.7))

		conversions := 50 + rnd.Intn(500)
		// Receita gerada: conversões vezes um valor unitário aleatório
		unitValue := 50 + rnd.Float64()*150
		revenue := utils.RoundWithTwoDecimalPlace(float64(conversions) * unitValue)

		roi := utils.RoundWithTwoDecimalPlace((revenue - spend) / spend * 100)

		campaigns = append(campaigns, &domain.Campaign{
			ID:               i + 1,
			Name:             name,
			Status:           statuses[rnd.Intn(len(statuses))],
			Channel:          channels[rnd.Intn(len(channels))],
			Budget:           budget,
			Spend:            spend,
			Conversions:      conversions,
			RevenueGenerated: revenue,
			ROI:              roi,
		})
	}

	return campaigns
}

// GenerateGoals produz as metas do dashboard. O valor corrente é um retrato
// calculado aqui e tratado como fato fixo dali em diante.
func (s *SyntheticSource) GenerateGoals(seed int64) []domain.Goal {
	rnd := rand.New(rand.NewSource(seed))

	targets := []struct {
		label  string
		target float64
		unit   string
	}{
		{"Monthly Revenue", 150000, "$"},
		{"New Users", 40000, "users"},
		{"Conversions", 3000, "conversions"},
		{"Ad Clicks", 90000, "clicks"},
	}

	goals := make([]domain.Goal, 0, len(targets))
	for i, t := range targets {
		current := utils.RoundWithTwoDecimalPlace(t.target * (0.4 + rnd.Float64()*0.8))

		goals = append(goals, domain.Goal{
			ID:      i + 1,
			Label:   t.label,
			Target:  t.target,
			Current: current,
			Unit:    t.unit,
		})
	}

	return goals
}
