package tui

import "github.com/charmbracelet/lipgloss"

var (
	lime     = lipgloss.Color("#D8DB2F")
	slate900 = lipgloss.Color("#133041")
	slate700 = lipgloss.Color("#4E6E7E")
	slate300 = lipgloss.Color("#9ABED5")
	red      = lipgloss.Color("#D73328")
	white    = lipgloss.Color("#FFFFFF")
)

// styles groups the lipgloss styles used by the form and results panel
type styles struct {
	title        lipgloss.Style
	label        lipgloss.Style
	affix        lipgloss.Style
	focusedAffix lipgloss.Style
	errorAffix   lipgloss.Style
	errorText    lipgloss.Style
	radio        lipgloss.Style
	radioChecked lipgloss.Style
	button       lipgloss.Style
	panel        lipgloss.Style
	panelTitle   lipgloss.Style
	panelText    lipgloss.Style
	headline     lipgloss.Style
	figure       lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(slate900),
		label: lipgloss.NewStyle().Foreground(slate700),
		affix: lipgloss.NewStyle().
			Foreground(slate700).
			Padding(0, 1),
		focusedAffix: lipgloss.NewStyle().
			Foreground(slate900).
			Background(lime).
			Padding(0, 1),
		errorAffix: lipgloss.NewStyle().
			Foreground(white).
			Background(red).
			Padding(0, 1),
		errorText: lipgloss.NewStyle().Foreground(red),
		radio:     lipgloss.NewStyle().Foreground(slate700),
		radioChecked: lipgloss.NewStyle().
			Foreground(slate900).
			Background(lime).
			Bold(true),
		button: lipgloss.NewStyle().
			Foreground(slate900).
			Background(lime).
			Bold(true).
			Padding(0, 2),
		panel: lipgloss.NewStyle().
			Foreground(white).
			Background(slate900).
			Padding(1, 2).
			MarginTop(1),
		panelTitle: lipgloss.NewStyle().Bold(true).Foreground(white),
		panelText:  lipgloss.NewStyle().Foreground(slate300),
		headline:   lipgloss.NewStyle().Bold(true).Foreground(lime),
		figure:     lipgloss.NewStyle().Bold(true).Foreground(white),
	}
}
