package domain

// ChartPoint é a entrada genérica dos mapeadores de gráfico: um rótulo do
// eixo X e o valor já extraído pelo acessor da métrica.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Point é uma coordenada 2D normalizada para o canvas do gráfico
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LineGeometry descreve um gráfico de linha pronto para renderização
type LineGeometry struct {
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
	Points []Point  `json:"points"`
	Path   string   `json:"path"`
	Labels []string `json:"labels"`
}

// Bar é uma barra individual do gráfico de barras
type Bar struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
}

// BarGeometry descreve um gráfico de barras; a largura do canvas cresce com
// o tamanho da série, respeitando uma largura mínima.
type BarGeometry struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Bars   []Bar   `json:"bars"`
}

// PieSlice é uma fatia do gráfico de pizza com ângulos em graus
type PieSlice struct {
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	Percent    string  `json:"percent"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	LargeArc   bool    `json:"large_arc"`
	ColorIndex int     `json:"color_index"`
}

// PieGeometry descreve um gráfico de pizza
type PieGeometry struct {
	CX     float64    `json:"cx"`
	CY     float64    `json:"cy"`
	Radius float64    `json:"radius"`
	Slices []PieSlice `json:"slices"`
}

// FunnelBand é um trapézio de uma etapa do funil, empilhado verticalmente
type FunnelBand struct {
	Label       string  `json:"label"`
	Value       float64 `json:"value"`
	TopWidth    float64 `json:"top_width"`
	BottomWidth float64 `json:"bottom_width"`
	Y           float64 `json:"y"`
	Height      float64 `json:"height"`
}

// FunnelGeometry descreve um gráfico de funil
type FunnelGeometry struct {
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Bands  []FunnelBand `json:"bands"`
}
