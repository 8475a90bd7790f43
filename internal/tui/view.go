package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tokensmith/internal/strategy"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.confirmed || m.cancelled {
		return ""
	}

	bp := m.blueprint
	var sections []string

	title := titleStyle.Render(fmt.Sprintf("Sitemap • %s", strings.ToUpper(string(bp.Context.BusinessType))))
	sections = append(sections, title, fmt.Sprintf("%s (%s)", bp.Template.Name, bp.Recommendation().Title))

	sections = append(sections, sectionStyle.Render("Pages"), renderPages(bp.Pages, m.cursor))

	selected := len(bp.Selected())
	sections = append(sections, fmt.Sprintf("%d of %d pages selected", selected, len(bp.Pages)))

	if m.notice != "" {
		sections = append(sections, noticeStyle.Render(m.notice))
	}

	sections = append(sections, helpStyle.Render("↑/↓ move • space toggle • r reset • enter confirm • q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderPages(pages []strategy.PageDefinition, cursor int) string {
	lines := make([]string, 0, len(pages))
	for i, p := range pages {
		pointer := "  "
		if i == cursor {
			pointer = cursorStyle.Render("> ")
		}
		lines = append(lines, fmt.Sprintf("%s%s %-14s %s", pointer, PageIcon(p), p.Slug, pendingStyle.Render(p.Reason)))
	}
	return strings.Join(lines, "\n")
}

// PageIcon returns the checkbox glyph for a page.
func PageIcon(p strategy.PageDefinition) string {
	switch {
	case p.Required:
		return requiredStyle.Render("[*]")
	case p.Selected:
		return selectedStyle.Render("[x]")
	default:
		return pendingStyle.Render("[ ]")
	}
}
