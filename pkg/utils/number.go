package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatCurrency formata um valor monetário com prefixo e separador de milhar
func FormatCurrency(value float64) string {
	return printer.Sprintf("$%d", int64(math.Round(value)))
}

// FormatCount formata uma contagem com separador de milhar
func FormatCount(value float64) string {
	return printer.Sprintf("%d", int64(math.Round(value)))
}

// FormatRate formata uma taxa monetária com duas casas decimais
func FormatRate(value float64) string {
	return printer.Sprintf("$%.2f", value)
}

// FormatPercent formata um percentual com uma casa decimal
func FormatPercent(value float64) string {
	return printer.Sprintf("%.1f%%", value)
}
