package tui

import (
	"fmt"
	"strings"

	"github.com/greenpath-labs/greenpath/internal/emissions"
)

// RenderResult renders a single emission calculation as a labeled block.
func RenderResult(result emissions.EmissionResult) string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("EMISSION ESTIMATE"))
	b.WriteString("\n")
	writeField(&b, "Mode", string(result.Mode))
	writeField(&b, "Distance", printer.Sprintf("%.1f km", result.DistanceKm))
	writeField(&b, "Weight", printer.Sprintf("%.2f t", result.WeightTonnes))
	writeField(&b, "CO2", FormatKg(result.CO2Kg)+" kg")
	writeField(&b, "Factor", printer.Sprintf("%.3f kg/t-km", result.Factor))
	writeField(&b, "Source", result.FactorSource)

	return BoxStyle.Render(b.String())
}

// RenderTax renders a carbon tax assessment line.
func RenderTax(tax emissions.TaxAssessment) string {
	return fmt.Sprintf("%s %s at %s/tonne",
		LabelStyle.Render("Carbon tax:"),
		ValueStyle.Render(FormatUSD(tax.CostUSD)),
		FormatUSD(tax.RatePerTonne))
}

// RenderComparison renders ranked comparison rows as a fixed-width table.
// Returns an informational message when rows is empty.
func RenderComparison(rows []emissions.ComparisonRow) string {
	if len(rows) == 0 {
		return InfoStyle.Render("No comparable transport modes.")
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("MODE COMPARISON"))
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render(fmt.Sprintf("%-4s %-16s %14s %12s %10s",
		"#", "MODE", "CO2 (KG)", "VS BEST", "EXCESS")))
	b.WriteString("\n")

	for _, row := range rows {
		line := fmt.Sprintf("%-4d %-16s %14s %12s %9s%%",
			row.Rank,
			row.Mode,
			FormatKg(row.CO2Kg),
			FormatKg(row.DiffVsBestKg),
			printer.Sprintf("%.1f", row.PctVsBest))
		if row.Rank == 1 {
			line = OKStyle.Render(line) + " " + IconLeaf
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// RenderRecommendation renders a green-mode recommendation with its
// tradeoff summary.
func RenderRecommendation(rec emissions.Recommendation) string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("GREEN RECOMMENDATION"))
	b.WriteString("\n")
	writeField(&b, "Mode", OKStyle.Render(string(rec.RecommendedMode))+" "+IconLeaf)
	writeField(&b, "CO2", FormatKg(rec.CO2Kg)+" kg")
	writeField(&b, "Travel time", FormatHours(rec.TravelTimeHours)+" h")
	writeField(&b, "Time penalty", FormatPct(rec.TimePenaltyPct))
	writeField(&b, "CO2 saved", FormatKg(rec.SavingsVsFastestKg)+" kg vs fastest")
	writeField(&b, "Reduction", FormatPct(rec.ReductionPct))

	if rec.WithinTimeConstraint {
		b.WriteString(OKStyle.Render(IconCheck + " within time budget"))
	} else {
		b.WriteString(WarnStyle.Render(IconWarning + " exceeds time budget"))
	}
	b.WriteString("\n")

	return BoxStyle.Render(b.String())
}

// RenderFactorTable renders the emission factor catalog ascending by
// factor value.
func RenderFactorTable(factors []emissions.EmissionFactor) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("EMISSION FACTORS (kg CO2 / tonne-km)"))
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render(fmt.Sprintf("%-16s %8s  %-36s %s",
		"MODE", "FACTOR", "DESCRIPTION", "SOURCE")))
	b.WriteString("\n")

	for _, f := range factors {
		b.WriteString(fmt.Sprintf("%-16s %8.3f  %-36s %s\n",
			f.Mode, f.KgPerTonneKm, f.Description, f.Source))
	}
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(LabelStyle.Render(fmt.Sprintf("%-13s", label+":")))
	b.WriteString(" ")
	b.WriteString(value)
	b.WriteString("\n")
}
