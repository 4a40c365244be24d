package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/stagiaire/internal/render"
)

const defaultBarWidth = 40

var (
	chartTitleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	barStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	emptyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
)

// TerminalRenderer draws horizontal bars scaled to the largest value.
type TerminalRenderer struct {
	width int
}

// NewTerminalRenderer returns a renderer whose longest bar is width cells.
// A non-positive width uses the default.
func NewTerminalRenderer(width int) *TerminalRenderer {
	if width <= 0 {
		width = defaultBarWidth
	}
	return &TerminalRenderer{width: width}
}

func (t *TerminalRenderer) RenderBar(c BarChart) (string, error) {
	if err := c.validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(chartTitleStyle.Render(render.Clean(c.Title)))
	b.WriteString("\n")

	if len(c.Labels) == 0 {
		b.WriteString(emptyStyle.Render("Aucune donnée"))
		return b.String(), nil
	}

	labels := make([]string, len(c.Labels))
	labelWidth, maxValue := 0, 0
	for i, l := range c.Labels {
		l = render.Clean(l)
		labels[i] = l
		labelWidth = max(labelWidth, lipgloss.Width(l))
		maxValue = max(maxValue, c.Values[i])
	}

	for i, l := range labels {
		v := c.Values[i]
		n := 0
		if maxValue > 0 && v > 0 {
			n = max(1, v*t.width/maxValue)
		}
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(l))
		fmt.Fprintf(&b, "%s%s │%s %d", l, pad, barStyle.Render(strings.Repeat("█", n)), v)
		if i < len(c.Labels)-1 {
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
