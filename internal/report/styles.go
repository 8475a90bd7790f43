package report

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Width(24)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	badgeBase = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	aaaBadge  = badgeBase.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("42"))
	aaBadge   = badgeBase.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("114"))
	failBadge = badgeBase.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("196"))
)
