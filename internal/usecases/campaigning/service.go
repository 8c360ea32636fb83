// Package campaigning implementa a visão tabular das campanhas: filtro por
// substring, ordenação estável por coluna e paginação de tamanho fixo.
package campaigning

import (
	"sort"
	"strings"

	"github.com/vfg2006/dashboard-insights-api/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const defaultPageSize = 5

// TableService é a função pura (campanhas, estado) -> visão paginada
type TableService interface {
	View(campaigns []*domain.Campaign, state domain.TableViewState) domain.TableView
}

// Service implementa TableService
type Service struct {
	pageSize int
}

// NewService cria o serviço de tabela com o tamanho de página configurado
func NewService(pageSize int) TableService {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &Service{pageSize: pageSize}
}

// View aplica filtro, ordenação e paginação na ordem fixa do pipeline.
// A lista de entrada nunca é alterada; a ordenação acontece numa cópia.
// Página fora do intervalo devolve linhas vazias, nunca indexa fora dos
// limites; o clamp de navegação é responsabilidade de quem apresenta.
func (s *Service) View(campaigns []*domain.Campaign, state domain.TableViewState) domain.TableView {
	rows := filterCampaigns(campaigns, state.FilterText)

	if state.SortColumn != nil {
		sortCampaigns(rows, *state.SortColumn, state.SortDirection)
	}

	totalPages := (len(rows) + s.pageSize - 1) / s.pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := state.CurrentPage
	if page < 1 {
		page = 1
	}

	start := (page - 1) * s.pageSize
	end := start + s.pageSize

	var pageRows []*domain.Campaign
	switch {
	case start >= len(rows):
		pageRows = []*domain.Campaign{}
	case end > len(rows):
		pageRows = rows[start:]
	default:
		pageRows = rows[start:end]
	}

	return domain.TableView{
		Rows:       pageRows,
		Page:       page,
		TotalPages: totalPages,
		TotalCount: len(rows),
	}
}

// filterCampaigns retorna as campanhas cujo nome, status OU canal contém o
// texto do filtro, sem diferenciar maiúsculas. Filtro vazio devolve todas.
// Sempre devolve uma cópia, preservando a ordem original.
func filterCampaigns(campaigns []*domain.Campaign, filterText string) []*domain.Campaign {
	needle := strings.ToLower(strings.TrimSpace(filterText))

	filtered := make([]*domain.Campaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		if needle == "" || matchesFilter(campaign, needle) {
			filtered = append(filtered, campaign)
		}
	}

	return filtered
}

func matchesFilter(campaign *domain.Campaign, needle string) bool {
	return strings.Contains(strings.ToLower(campaign.Name), needle) ||
		strings.Contains(strings.ToLower(string(campaign.Status)), needle) ||
		strings.Contains(strings.ToLower(string(campaign.Channel)), needle)
}

// sortCampaigns ordena in place por uma única coluna. A ordenação é estável:
// empates preservam a ordem relativa original, o que importa porque valores
// repetidos (status, canal) são comuns.
func sortCampaigns(rows []*domain.Campaign, column domain.SortColumn, direction domain.SortDirection) {
	// Collator por chamada: o Collator do x/text não é seguro para uso
	// concorrente entre requisições
	collator := collate.New(language.English, collate.IgnoreCase)

	less := func(a, b *domain.Campaign) bool {
		if left, ok := column.StringKey(a); ok {
			right, _ := column.StringKey(b)
			return collator.CompareString(left, right) < 0
		}

		left, _ := column.NumericKey(a)
		right, _ := column.NumericKey(b)
		return left < right
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if direction == domain.SortDesc {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}
