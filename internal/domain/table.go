package domain

// SortColumn identifica a coluna de ordenação da tabela de campanhas
type SortColumn string

const (
	SortByName        SortColumn = "name"
	SortByStatus      SortColumn = "status"
	SortByChannel     SortColumn = "channel"
	SortByBudget      SortColumn = "budget"
	SortBySpend       SortColumn = "spend"
	SortByConversions SortColumn = "conversions"
	SortByRevenue     SortColumn = "revenue_generated"
	SortByROI         SortColumn = "roi"
)

// SortDirection indica a direção da ordenação
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Acessores fechados por coluna: colunas textuais comparam com collation,
// colunas numéricas comparam por valor. Sem indexação por string livre.
var sortStringKeys = map[SortColumn]func(*Campaign) string{
	SortByName:    func(c *Campaign) string { return c.Name },
	SortByStatus:  func(c *Campaign) string { return string(c.Status) },
	SortByChannel: func(c *Campaign) string { return string(c.Channel) },
}

var sortNumericKeys = map[SortColumn]func(*Campaign) float64{
	SortByBudget:      func(c *Campaign) float64 { return c.Budget },
	SortBySpend:       func(c *Campaign) float64 { return c.Spend },
	SortByConversions: func(c *Campaign) float64 { return float64(c.Conversions) },
	SortByRevenue:     func(c *Campaign) float64 { return c.RevenueGenerated },
	SortByROI:         func(c *Campaign) float64 { return c.ROI },
}

// ParseSortColumn valida o parâmetro de coluna vindo da requisição
func ParseSortColumn(value string) (SortColumn, bool) {
	col := SortColumn(value)
	if _, ok := sortStringKeys[col]; ok {
		return col, true
	}
	if _, ok := sortNumericKeys[col]; ok {
		return col, true
	}
	return "", false
}

// StringKey retorna o valor textual da coluna, se ela for textual
func (c SortColumn) StringKey(campaign *Campaign) (string, bool) {
	accessor, ok := sortStringKeys[c]
	if !ok {
		return "", false
	}
	return accessor(campaign), true
}

// NumericKey retorna o valor numérico da coluna, se ela for numérica
func (c SortColumn) NumericKey(campaign *Campaign) (float64, bool) {
	accessor, ok := sortNumericKeys[c]
	if !ok {
		return 0, false
	}
	return accessor(campaign), true
}

// TableViewState é o estado da tabela controlado pela camada de apresentação.
// Trocar o filtro reinicia CurrentPage para 1 (responsabilidade de quem chama).
type TableViewState struct {
	FilterText    string
	SortColumn    *SortColumn
	SortDirection SortDirection
	CurrentPage   int
}

// TableView é o resultado paginado de (campanhas, estado)
type TableView struct {
	Rows       []*Campaign `json:"rows"`
	Page       int         `json:"page"`
	TotalPages int         `json:"total_pages"`
	TotalCount int         `json:"total_count"`
}
