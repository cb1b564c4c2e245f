package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/AniDashyan/parallel-summation/internal/ui"
)

// Style variables for the TUI view.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle       lipgloss.Style
	titleStyle       lipgloss.Style
	paramStyle       lipgloss.Style
	tableHeaderStyle lipgloss.Style
	rowStyle         lipgloss.Style
	rowErrorStyle    lipgloss.Style
	fastestStyle     lipgloss.Style
	statusOKStyle    lipgloss.Style
	statusErrStyle   lipgloss.Style
	spinnerStyle     lipgloss.Style
	helpStyle        lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	paramStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	tableHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	rowStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	rowErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	fastestStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	statusOKStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	statusErrStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	spinnerStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	helpStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}
