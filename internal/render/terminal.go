package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/stagiaire/internal/model"
)

var (
	offerTitleStyle = lipgloss.NewStyle().Bold(true)

	offerCityStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	offerActionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Bold(true)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// TerminalRenderer formats regions for a terminal. Control characters in
// server fields are stripped so they cannot drive the terminal.
type TerminalRenderer struct{}

func NewTerminalRenderer() *TerminalRenderer { return &TerminalRenderer{} }

func (TerminalRenderer) Offers(offers []model.Offer) (string, error) {
	lines := make([]string, 0, len(offers))
	for _, o := range offers {
		line := offerTitleStyle.Render(Clean(o.Titre))
		if o.Ville != "" {
			line += " - " + offerCityStyle.Render(Clean(o.Ville))
		}
		line += "  " + offerActionStyle.Render("[Candidater: "+Clean(o.ID)+"]")
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func (TerminalRenderer) Recommendations(recos []model.Recommendation) (string, error) {
	lines := make([]string, 0, len(recos))
	for _, r := range recos {
		lines = append(lines, "• "+Clean(r.Titre)+" "+scoreStyle.Render("(score "+r.Score.String()+")"))
	}
	return strings.Join(lines, "\n"), nil
}

func (TerminalRenderer) Status(msg string, failed bool) string {
	if failed {
		return errStyle.Render("✗ " + msg)
	}
	return okStyle.Render(msg)
}

// Clean drops C0 and C1 control characters (including ESC and CSI) from
// server text.
func Clean(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || (r >= 0x7f && r <= 0x9f) {
			return -1
		}
		return r
	}, s)
}
