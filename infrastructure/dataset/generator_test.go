package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeed = int64(20240101)

func TestGenerateDailyRecords_SameSeedSameSeries(t *testing.T) {
	source := NewSyntheticSource()
	until := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

	first := source.GenerateDailyRecords(testSeed, 365, until)
	second := source.GenerateDailyRecords(testSeed, 365, until)

	assert.Equal(t, first, second)
}

func TestGenerateDailyRecords_DifferentSeedsDiffer(t *testing.T) {
	source := NewSyntheticSource()
	until := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	first := source.GenerateDailyRecords(testSeed, 30, until)
	second := source.GenerateDailyRecords(testSeed+1, 30, until)

	assert.NotEqual(t, first, second)
}

func TestGenerateDailyRecords_OneRecordPerDayNoGaps(t *testing.T) {
	source := NewSyntheticSource()
	until := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

	records := source.GenerateDailyRecords(testSeed, 365, until)
	require.Len(t, records, 365)

	// Último registro na meia-noite UTC do dia de `until`
	last := records[len(records)-1].Date
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), last)

	for i := 1; i < len(records); i++ {
		gap := records[i].Date.Sub(records[i-1].Date)
		assert.Equal(t, 24*time.Hour, gap, "lacuna entre %s e %s", records[i-1].Date, records[i].Date)
	}
}

func TestGenerateDailyRecords_ValuesWithinExpectedBounds(t *testing.T) {
	source := NewSyntheticSource()
	until := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	for _, record := range source.GenerateDailyRecords(testSeed, 90, until) {
		assert.Greater(t, record.Revenue, 0.0)
		assert.Greater(t, record.Users, 0)
		assert.GreaterOrEqual(t, record.Conversions, 40)
		assert.GreaterOrEqual(t, record.CostPerClick, 0.8)
		assert.LessOrEqual(t, record.CostPerClick, 2.0)
		assert.GreaterOrEqual(t, record.Impressions, 40000)
		assert.GreaterOrEqual(t, record.Clicks, 1500)
	}
}

func TestGenerateCampaigns_SpendNeverExceedsBudget(t *testing.T) {
	source := NewSyntheticSource()

	campaigns := source.GenerateCampaigns(testSeed, 15)
	require.Len(t, campaigns, 15)

	for _, campaign := range campaigns {
		assert.LessOrEqual(t, campaign.Spend, campaign.Budget, "campanha %d", campaign.ID)
		assert.GreaterOrEqual(t, campaign.Budget, 5000.0)
		assert.NotEmpty(t, campaign.Name)
		assert.NotEmpty(t, string(campaign.Status))
		assert.NotEmpty(t, string(campaign.Channel))
	}
}

func TestGenerateCampaigns_IDsAreSequentialAndStable(t *testing.T) {
	source := NewSyntheticSource()

	first := source.GenerateCampaigns(testSeed, 15)
	second := source.GenerateCampaigns(testSeed, 15)

	for i := range first {
		assert.Equal(t, i+1, first[i].ID)
		assert.Equal(t, *first[i], *second[i])
	}
}

func TestGenerateGoals_FixedTargetsWithSnapshotCurrent(t *testing.T) {
	source := NewSyntheticSource()

	goals := source.GenerateGoals(testSeed)
	require.Len(t, goals, 4)

	assert.Equal(t, "Monthly Revenue", goals[0].Label)
	assert.Equal(t, 150000.0, goals[0].Target)
	assert.Equal(t, "New Users", goals[1].Label)
	assert.Equal(t, 40000.0, goals[1].Target)
	assert.Equal(t, "Conversions", goals[2].Label)
	assert.Equal(t, 3000.0, goals[2].Target)
	assert.Equal(t, "Ad Clicks", goals[3].Label)
	assert.Equal(t, 90000.0, goals[3].Target)

	for _, goal := range goals {
		assert.Greater(t, goal.Current, 0.0)
		assert.Greater(t, goal.Target, 0.0)
	}

	assert.Equal(t, goals, source.GenerateGoals(testSeed))
}
