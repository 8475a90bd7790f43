// Package tui implements the interactive sitemap picker.
package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tokensmith/internal/strategy"
)

// Model is the Bubbletea state for choosing which sitemap pages to build.
type Model struct {
	blueprint strategy.Blueprint
	cursor    int
	notice    string
	confirmed bool
	cancelled bool
}

// NewModel starts the picker on the blueprint's current page selection.
func NewModel(bp strategy.Blueprint) Model {
	return Model{blueprint: bp}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Blueprint returns the blueprint with the current selection.
func (m Model) Blueprint() strategy.Blueprint {
	return m.blueprint
}

// Cursor returns the index of the highlighted page.
func (m Model) Cursor() int {
	return m.cursor
}

// Confirmed reports whether the user accepted the selection.
func (m Model) Confirmed() bool {
	return m.confirmed
}

// Cancelled reports whether the user quit without accepting.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// MoveCursorUp moves the highlight up, stopping at the first page.
func (m *Model) MoveCursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// MoveCursorDown moves the highlight down, stopping at the last page.
func (m *Model) MoveCursorDown() {
	if m.cursor < len(m.blueprint.Pages)-1 {
		m.cursor++
	}
}

func (m *Model) toggleCurrent() {
	if m.cursor < 0 || m.cursor >= len(m.blueprint.Pages) {
		return
	}
	page := m.blueprint.Pages[m.cursor]
	if page.Required {
		m.notice = fmt.Sprintf("%s is required", page.Name)
		return
	}
	m.notice = ""
	m.blueprint = m.blueprint.Toggle(page.ID)
}

func (m *Model) reset() {
	m.blueprint = m.blueprint.WithPages(strategy.DefaultSitemap(m.blueprint.Context.BusinessType))
	m.notice = "selection reset"
}

// Run shows the picker on in/out until the user confirms or quits. The
// returned bool is false when the user quit without confirming.
func Run(ctx context.Context, bp strategy.Blueprint, in io.Reader, out io.Writer) (strategy.Blueprint, bool, error) {
	p := tea.NewProgram(NewModel(bp), tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return bp, false, fmt.Errorf("failed to run sitemap picker: %w", err)
	}
	m, ok := final.(Model)
	if !ok || !m.confirmed {
		return bp, false, nil
	}
	return m.blueprint, true, nil
}
