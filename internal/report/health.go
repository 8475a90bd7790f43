package report

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// HealthBar renders the 0..100 accessibility health score.
type HealthBar struct {
	bar progress.Model
}

// NewHealthBar creates a bar of the given width in cells.
func NewHealthBar(width int) HealthBar {
	bar := progress.New(progress.WithGradient("#EF4444", "#10B981"), progress.WithoutPercentage())
	bar.Width = width
	return HealthBar{bar: bar}
}

// View renders the score label followed by the bar. Scores outside 0..100
// are clamped for the bar but shown as given.
func (h HealthBar) View(score int) string {
	ratio := math.Max(0, math.Min(1, float64(score)/100))
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%3d/100", score))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", h.bar.ViewAs(ratio))
}
