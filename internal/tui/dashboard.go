package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/greenpath-labs/greenpath/internal/emissions"
)

// Dashboard layout constants.
const (
	dashboardDefaultWidth = 100
	comparisonTableHeight = 8

	distanceStepKm  = 50.0
	weightStepT     = 0.5
	penaltyStepPct  = 1.0
	minDistanceKm   = distanceStepKm
	minWeightTonnes = weightStepT
)

// DashboardModel is the Bubble Tea model for the interactive emissions
// dashboard. It recomputes the comparison and recommendation on every
// input change; the engine is pure, so recomputing is cheap.
type DashboardModel struct {
	engine *emissions.Engine

	distanceKm    float64
	weightTonnes  float64
	maxPenaltyPct float64
	taxRate       float64

	table  table.Model
	rows   []emissions.ComparisonRow
	rec    emissions.Recommendation
	recErr error

	width    int
	quitting bool
}

// NewDashboard builds a dashboard for the given shipment parameters.
func NewDashboard(engine *emissions.Engine, distanceKm, weightTonnes, maxPenaltyPct, taxRate float64) DashboardModel {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Mode", Width: 16},
		{Title: "CO2 (kg)", Width: 14},
		{Title: "vs best (kg)", Width: 14},
		{Title: "Excess", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(comparisonTableHeight),
	)

	m := DashboardModel{
		engine:        engine,
		distanceKm:    distanceKm,
		weightTonnes:  weightTonnes,
		maxPenaltyPct: maxPenaltyPct,
		taxRate:       taxRate,
		table:         t,
		width:         dashboardDefaultWidth,
	}
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "D":
			m.distanceKm += distanceStepKm
			m.recompute()
			return m, nil
		case "d":
			if m.distanceKm-distanceStepKm >= minDistanceKm {
				m.distanceKm -= distanceStepKm
				m.recompute()
			}
			return m, nil
		case "W":
			m.weightTonnes += weightStepT
			m.recompute()
			return m, nil
		case "w":
			if m.weightTonnes-weightStepT >= minWeightTonnes {
				m.weightTonnes -= weightStepT
				m.recompute()
			}
			return m, nil
		case "T":
			m.maxPenaltyPct += penaltyStepPct
			m.recompute()
			return m, nil
		case "t":
			if m.maxPenaltyPct-penaltyStepPct >= 0 {
				m.maxPenaltyPct -= penaltyStepPct
				m.recompute()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m DashboardModel) View() string {
	if m.quitting {
		return ""
	}

	var view string

	view += HeaderStyle.Render("GREENPATH EMISSIONS DASHBOARD") + "\n"
	view += LabelStyle.Render("Distance: ") + ValueStyle.Render(printer.Sprintf("%.0f km", m.distanceKm))
	view += LabelStyle.Render("   Weight: ") + ValueStyle.Render(printer.Sprintf("%.1f t", m.weightTonnes))
	view += LabelStyle.Render("   Time budget: ") + ValueStyle.Render(FormatPct(m.maxPenaltyPct))
	view += "\n\n"

	view += m.table.View() + "\n\n"

	if m.recErr != nil {
		view += WarnStyle.Render(fmt.Sprintf("%s %v", IconWarning, m.recErr)) + "\n"
	} else {
		view += RenderRecommendation(m.rec) + "\n"
		view += RenderTax(m.engine.CarbonTax(m.rec.CO2Kg, m.taxRate)) + "\n"
	}

	view += InfoStyle.Render("d/D distance  w/W weight  t/T time budget  ↑/↓ rows  q quit")
	return view
}

// Distance returns the current distance, for tests.
func (m DashboardModel) Distance() float64 { return m.distanceKm }

// Weight returns the current weight, for tests.
func (m DashboardModel) Weight() float64 { return m.weightTonnes }

// recompute refreshes the comparison rows and recommendation from the
// current inputs.
func (m *DashboardModel) recompute() {
	m.rows = m.engine.Compare(m.distanceKm, m.weightTonnes, nil)

	tableRows := make([]table.Row, 0, len(m.rows))
	for _, row := range m.rows {
		tableRows = append(tableRows, table.Row{
			fmt.Sprintf("%d", row.Rank),
			string(row.Mode),
			FormatKg(row.CO2Kg),
			FormatKg(row.DiffVsBestKg),
			FormatPct(row.PctVsBest),
		})
	}
	m.table.SetRows(tableRows)

	m.rec, m.recErr = m.engine.RecommendGreenest(
		m.distanceKm, m.weightTonnes, m.engine.Catalog().AllModes(), m.maxPenaltyPct)
}
