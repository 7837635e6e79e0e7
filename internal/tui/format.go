package tui

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// English locale keeps thousand separators consistent across terminals.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatKg formats a kg CO2 quantity with separators and 3 decimals of
// display precision, trimming to fewer decimals for large values.
func FormatKg(kg float64) string {
	switch {
	case math.Abs(kg) >= 1000:
		return printer.Sprintf("%.1f", kg)
	default:
		return printer.Sprintf("%.3f", kg)
	}
}

// FormatHours formats a travel time in hours with one decimal.
func FormatHours(h float64) string {
	return printer.Sprintf("%.1f", h)
}

// FormatUSD formats a dollar amount with separators and cents.
func FormatUSD(usd float64) string {
	return printer.Sprintf("$%.2f", usd)
}

// FormatPct formats a percentage with one decimal and a trailing sign.
func FormatPct(pct float64) string {
	return printer.Sprintf("%.1f%%", pct)
}
