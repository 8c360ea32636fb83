// Package charting contém os mapeadores de geometria dos gráficos: funções
// puras que transformam uma série de pontos em coordenadas normalizadas
// prontas para renderização vetorial. Nenhum mapeador altera a entrada.
package charting

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/dashboard-insights-api/internal/domain"
	"github.com/vfg2006/dashboard-insights-api/pkg/utils"
)

// ErrNoData indica entrada vazia ou totais zerados: um estado contratual
// de "sem dados", nunca uma geometria com NaN.
var ErrNoData = errors.New("série sem dados para o gráfico")

// ErrInsufficientStages indica um funil com menos de duas etapas
var ErrInsufficientStages = errors.New("funil requer pelo menos duas etapas")

const (
	lineWidth   = 600.0
	lineHeight  = 220.0
	linePadding = 20.0

	barCanvasHeight = 220.0
	barPadding      = 20.0
	barWidth        = 32.0
	barGap          = 16.0
	barMinCanvas    = 300.0

	pieCenter = 110.0
	pieRadius = 100.0
	// Tamanho da paleta de cores da apresentação; a cor é o índice módulo isso
	paletteSize = 6

	funnelWidth      = 400.0
	funnelBandHeight = 56.0
)

// MapLine normaliza os valores numa banda vertical com margem fixa; as
// posições X são espaçadas uniformemente pelo índice. Série com um único
// ponto fica centrada; série plana (max == min) fica na linha média em vez
// de dividir por zero.
func MapLine(points []domain.ChartPoint) (*domain.LineGeometry, error) {
	if len(points) == 0 {
		return nil, ErrNoData
	}

	minValue, maxValue := points[0].Value, points[0].Value
	for _, p := range points[1:] {
		if p.Value < minValue {
			minValue = p.Value
		}
		if p.Value > maxValue {
			maxValue = p.Value
		}
	}

	band := lineHeight - 2*linePadding
	flat := maxValue == minValue

	coords := make([]domain.Point, 0, len(points))
	labels := make([]string, 0, len(points))
	var path strings.Builder

	for i, p := range points {
		x := lineWidth / 2
		if len(points) > 1 {
			x = float64(i) * lineWidth / float64(len(points)-1)
		}

		y := lineHeight / 2
		if !flat {
			normalized := (p.Value - minValue) / (maxValue - minValue)
			y = lineHeight - linePadding - normalized*band
		}

		point := domain.Point{
			X: utils.RoundWithTwoDecimalPlace(x),
			Y: utils.RoundWithTwoDecimalPlace(y),
		}
		coords = append(coords, point)
		labels = append(labels, p.Label)

		if i == 0 {
			fmt.Fprintf(&path, "M%.2f,%.2f", point.X, point.Y)
		} else {
			fmt.Fprintf(&path, " L%.2f,%.2f", point.X, point.Y)
		}
	}

	return &domain.LineGeometry{
		Width:  lineWidth,
		Height: lineHeight,
		Points: coords,
		Path:   path.String(),
		Labels: labels,
	}, nil
}

// MapBar escala a altura de cada barra linearmente contra o máximo da série.
// O passo (largura + espaço) é fixo e a largura do canvas cresce com a
// série, respeitando um piso mínimo.
func MapBar(points []domain.ChartPoint) (*domain.BarGeometry, error) {
	if len(points) == 0 {
		return nil, ErrNoData
	}

	maxValue := 0.0
	for _, p := range points {
		if p.Value > maxValue {
			maxValue = p.Value
		}
	}

	pitch := barWidth + barGap
	canvasWidth := float64(len(points)) * pitch
	if canvasWidth < barMinCanvas {
		canvasWidth = barMinCanvas
	}

	band := barCanvasHeight - 2*barPadding

	bars := make([]domain.Bar, 0, len(points))
	for i, p := range points {
		height := 0.0
		if maxValue > 0 {
			height = p.Value / maxValue * band
		}

		bars = append(bars, domain.Bar{
			X:      utils.RoundWithTwoDecimalPlace(float64(i)*pitch + barGap/2),
			Y:      utils.RoundWithTwoDecimalPlace(barCanvasHeight - barPadding - height),
			Width:  barWidth,
			Height: utils.RoundWithTwoDecimalPlace(height),
			Label:  p.Label,
			Value:  p.Value,
		})
	}

	return &domain.BarGeometry{
		Width:  canvasWidth,
		Height: barCanvasHeight,
		Bars:   bars,
	}, nil
}

// MapPie converte cada valor na extensão angular proporcional ao total,
// desenhando as fatias consecutivamente a partir do ângulo zero. Total zero
// ou negativo é estado sem dados, não uma divisão por zero.
func MapPie(points []domain.ChartPoint) (*domain.PieGeometry, error) {
	if len(points) == 0 {
		return nil, ErrNoData
	}

	total := 0.0
	for _, p := range points {
		total += p.Value
	}
	if total <= 0 {
		return nil, ErrNoData
	}

	slices := make([]domain.PieSlice, 0, len(points))
	cursor := 0.0
	for i, p := range points {
		sweep := p.Value / total * 360

		slices = append(slices, domain.PieSlice{
			Label:      p.Label,
			Value:      p.Value,
			Percent:    utils.FormatPercent(p.Value / total * 100),
			StartAngle: utils.RoundWithTwoDecimalPlace(cursor),
			EndAngle:   utils.RoundWithTwoDecimalPlace(cursor + sweep),
			LargeArc:   sweep > 180,
			ColorIndex: i % paletteSize,
		})

		cursor += sweep
	}

	return &domain.PieGeometry{
		CX:     pieCenter,
		CY:     pieCenter,
		Radius: pieRadius,
		Slices: slices,
	}, nil
}

// MapFunnel empilha as etapas em bandas de altura igual. O topo de cada
// trapézio é proporcional à razão da etapa anterior contra o máximo e a
// base é proporcional à razão da própria etapa; a primeira usa a própria
// razão nas duas bordas.
func MapFunnel(points []domain.ChartPoint) (*domain.FunnelGeometry, error) {
	if len(points) == 0 {
		return nil, ErrNoData
	}
	if len(points) < 2 {
		return nil, ErrInsufficientStages
	}

	maxValue := 0.0
	for _, p := range points {
		if p.Value > maxValue {
			maxValue = p.Value
		}
	}
	if maxValue <= 0 {
		return nil, ErrNoData
	}

	bands := make([]domain.FunnelBand, 0, len(points))
	for i, p := range points {
		ownRatio := p.Value / maxValue

		topRatio := ownRatio
		if i > 0 {
			topRatio = points[i-1].Value / maxValue
		}

		bands = append(bands, domain.FunnelBand{
			Label:       p.Label,
			Value:       p.Value,
			TopWidth:    utils.RoundWithTwoDecimalPlace(topRatio * funnelWidth),
			BottomWidth: utils.RoundWithTwoDecimalPlace(ownRatio * funnelWidth),
			Y:           float64(i) * funnelBandHeight,
			Height:      funnelBandHeight,
		})
	}

	return &domain.FunnelGeometry{
		Width:  funnelWidth,
		Height: float64(len(points)) * funnelBandHeight,
		Bands:  bands,
	}, nil
}
