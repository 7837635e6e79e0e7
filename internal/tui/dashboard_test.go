package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenpath-labs/greenpath/internal/emissions"
)

func newTestDashboard() DashboardModel {
	return NewDashboard(emissions.NewEngine(nil), 500, 2,
		emissions.DefaultMaxTimePenaltyPct, emissions.DefaultCarbonTaxRate)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDashboardInitialView(t *testing.T) {
	m := newTestDashboard()

	view := m.View()
	assert.Contains(t, view, "GREENPATH EMISSIONS DASHBOARD")
	assert.Contains(t, view, "500 km")
	assert.Contains(t, view, "2.0 t")
	assert.Contains(t, view, "ship_bulk")
	assert.Contains(t, view, "GREEN RECOMMENDATION")
	assert.Contains(t, view, "Carbon tax")
}

func TestDashboardAdjustDistance(t *testing.T) {
	m := newTestDashboard()

	updated, _ := m.Update(keyMsg("D"))
	dm, ok := updated.(DashboardModel)
	require.True(t, ok)
	assert.InDelta(t, 550.0, dm.Distance(), 1e-9)

	updated, _ = dm.Update(keyMsg("d"))
	dm = updated.(DashboardModel)
	assert.InDelta(t, 500.0, dm.Distance(), 1e-9)
}

func TestDashboardDistanceFloor(t *testing.T) {
	m := NewDashboard(emissions.NewEngine(nil), 50, 2,
		emissions.DefaultMaxTimePenaltyPct, emissions.DefaultCarbonTaxRate)

	updated, _ := m.Update(keyMsg("d"))
	dm := updated.(DashboardModel)
	assert.InDelta(t, 50.0, dm.Distance(), 1e-9, "distance must not drop below the floor")
}

func TestDashboardAdjustWeight(t *testing.T) {
	m := newTestDashboard()

	updated, _ := m.Update(keyMsg("W"))
	dm := updated.(DashboardModel)
	assert.InDelta(t, 2.5, dm.Weight(), 1e-9)

	view := dm.View()
	assert.Contains(t, view, "2.5 t")
}

func TestDashboardQuit(t *testing.T) {
	m := newTestDashboard()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	dm := updated.(DashboardModel)
	assert.Empty(t, dm.View())
}
