package campaigning

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dashboard-insights-api/internal/domain"
)

func makeCampaigns(count int) []*domain.Campaign {
	statuses := domain.CampaignStatuses()
	channels := domain.Channels()

	campaigns := make([]*domain.Campaign, 0, count)
	for i := 0; i < count; i++ {
		campaigns = append(campaigns, &domain.Campaign{
			ID:               i + 1,
			Name:             fmt.Sprintf("Campanha %02d", i+1),
			Status:           statuses[i%len(statuses)],
			Channel:          channels[i%len(channels)],
			Budget:           float64(1000 * (i + 1)),
			Spend:            float64(500 * (i + 1)),
			Conversions:      10 * (i + 1),
			RevenueGenerated: float64(2000 * (i + 1)),
			ROI:              float64(i * 10),
		})
	}
	return campaigns
}

func campaignIDs(rows []*domain.Campaign) []int {
	ids := make([]int, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids
}

func TestView_PaginatesFifteenRowsIntoThreePages(t *testing.T) {
	service := NewService(5)
	campaigns := makeCampaigns(15)

	seen := make([]int, 0, 15)
	for page := 1; page <= 3; page++ {
		view := service.View(campaigns, domain.TableViewState{CurrentPage: page})

		assert.Equal(t, page, view.Page)
		assert.Equal(t, 3, view.TotalPages)
		assert.Equal(t, 15, view.TotalCount)
		require.Len(t, view.Rows, 5)

		seen = append(seen, campaignIDs(view.Rows)...)
	}

	// As páginas concatenadas cobrem o conjunto inteiro, sem repetição
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, seen)
}

func TestView_PageBeyondRangeReturnsEmptyRows(t *testing.T) {
	service := NewService(5)
	campaigns := makeCampaigns(15)

	view := service.View(campaigns, domain.TableViewState{CurrentPage: 4})

	assert.Empty(t, view.Rows)
	assert.Equal(t, 4, view.Page)
	assert.Equal(t, 3, view.TotalPages)
	assert.Equal(t, 15, view.TotalCount)
}

func TestView_EmptySetHasOnePage(t *testing.T) {
	service := NewService(5)

	view := service.View(nil, domain.TableViewState{CurrentPage: 1})

	assert.Empty(t, view.Rows)
	assert.Equal(t, 1, view.TotalPages)
	assert.Equal(t, 0, view.TotalCount)
}

func TestView_FilterMatchesNameStatusOrChannel(t *testing.T) {
	service := NewService(50)
	campaigns := makeCampaigns(15)

	tests := []struct {
		name     string
		filter   string
		expected func(*domain.Campaign) bool
	}{
		{
			name:     "por nome, sem diferenciar maiúsculas",
			filter:   "campanha 01",
			expected: func(c *domain.Campaign) bool { return c.ID == 1 },
		},
		{
			name:     "por status",
			filter:   "paused",
			expected: func(c *domain.Campaign) bool { return c.Status == domain.StatusPaused },
		},
		{
			name:     "por canal",
			filter:   "google",
			expected: func(c *domain.Campaign) bool { return c.Channel == domain.ChannelGoogleAds },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := service.View(campaigns, domain.TableViewState{FilterText: tt.filter, CurrentPage: 1})

			require.NotEmpty(t, view.Rows)
			for _, row := range view.Rows {
				assert.True(t, tt.expected(row), "campanha %d não deveria passar no filtro %q", row.ID, tt.filter)
			}

			// Toda linha do resultado pertence ao conjunto original
			want := 0
			for _, c := range campaigns {
				if tt.expected(c) {
					want++
				}
			}
			assert.Equal(t, want, view.TotalCount)
		})
	}
}

func TestView_EmptyFilterReturnsAllRows(t *testing.T) {
	service := NewService(50)
	campaigns := makeCampaigns(15)

	view := service.View(campaigns, domain.TableViewState{FilterText: "   ", CurrentPage: 1})

	assert.Equal(t, 15, view.TotalCount)
	assert.Equal(t, campaignIDs(campaigns), campaignIDs(view.Rows))
}

func TestView_StableSortPreservesOriginalOrderOnTies(t *testing.T) {
	service := NewService(50)
	campaigns := makeCampaigns(15)

	column := domain.SortByStatus
	view := service.View(campaigns, domain.TableViewState{
		SortColumn:    &column,
		SortDirection: domain.SortAsc,
		CurrentPage:   1,
	})

	require.Len(t, view.Rows, 15)

	// Dentro de cada grupo de status, os IDs seguem a ordem original
	lastID := map[domain.CampaignStatus]int{}
	for _, row := range view.Rows {
		assert.Greater(t, row.ID, lastID[row.Status], "empate em %q fora de ordem", row.Status)
		lastID[row.Status] = row.ID
	}
}

func TestView_SortIsIdempotent(t *testing.T) {
	service := NewService(50)
	campaigns := makeCampaigns(15)

	column := domain.SortByStatus
	state := domain.TableViewState{
		SortColumn:    &column,
		SortDirection: domain.SortAsc,
		CurrentPage:   1,
	}

	first := service.View(campaigns, state)
	second := service.View(campaigns, state)

	assert.Equal(t, campaignIDs(first.Rows), campaignIDs(second.Rows))
}

func TestView_NumericSortDescending(t *testing.T) {
	service := NewService(50)
	campaigns := makeCampaigns(15)

	column := domain.SortByBudget
	view := service.View(campaigns, domain.TableViewState{
		SortColumn:    &column,
		SortDirection: domain.SortDesc,
		CurrentPage:   1,
	})

	require.Len(t, view.Rows, 15)
	for i := 1; i < len(view.Rows); i++ {
		assert.GreaterOrEqual(t, view.Rows[i-1].Budget, view.Rows[i].Budget)
	}
}

func TestView_DoesNotMutateInput(t *testing.T) {
	service := NewService(50)
	campaigns := makeCampaigns(15)
	original := campaignIDs(campaigns)

	column := domain.SortByBudget
	service.View(campaigns, domain.TableViewState{
		SortColumn:    &column,
		SortDirection: domain.SortDesc,
		FilterText:    "active",
		CurrentPage:   1,
	})

	assert.Equal(t, original, campaignIDs(campaigns))
}

func TestNewService_DefaultsPageSize(t *testing.T) {
	service := NewService(0)
	campaigns := makeCampaigns(7)

	view := service.View(campaigns, domain.TableViewState{CurrentPage: 1})

	assert.Len(t, view.Rows, 5)
	assert.Equal(t, 2, view.TotalPages)
}
