// Package browse is the interactive offer browser: offers and
// recommendations side by side, enter applies, / searches.
package browse

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/stagiaire/internal/model"
	"github.com/amishk599/stagiaire/internal/render"
)

// Lines per item in a pane (title + subtitle + blank separator).
const itemHeight = 3

const (
	offersPane = 0
	recoPane   = 1
)

var (
	activeBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("39")) // bright blue

	inactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")) // dim gray

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	activeHeaderStyle = headerStyle.
				Foreground(lipgloss.Color("39"))

	inactiveHeaderStyle = headerStyle.
				Foreground(lipgloss.Color("240"))

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))

	statusOKStyle = statusBarStyle.
			Foreground(lipgloss.Color("42"))

	statusErrStyle = statusBarStyle.
			Foreground(lipgloss.Color("196"))

	itemTitleStyle = lipgloss.NewStyle().
			Bold(true)

	itemSubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	selectedTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("24"))

	selectedSubtitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Background(lipgloss.Color("24"))

	appliedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)

// Actions are the portal operations the browser triggers.
type Actions interface {
	Postuler(ctx context.Context, offreID string) error
	Search(input string) (string, error)
}

// appliedMsg is sent when an async application completes.
type appliedMsg struct {
	offreID string
	err     error
}

// searchedMsg is sent when a search navigation completes.
type searchedMsg struct {
	url string
	err error
}

type item struct {
	offreID  string
	title    string
	subtitle string
}

type browseModel struct {
	ctx     context.Context
	actions Actions

	panes   [2][]item
	vps     [2]viewport.Model
	cursors [2]int
	active  int
	width   int
	height  int
	ready   bool

	searching bool
	input     textinput.Model

	busy         bool
	applied      map[string]bool
	status       string
	statusFailed bool
}

func newModel(ctx context.Context, offers []model.Offer, recos []model.Recommendation, actions Actions) browseModel {
	ti := textinput.New()
	ti.Placeholder = "Rechercher une offre"
	ti.Prompt = "/ "
	ti.CharLimit = 200

	return browseModel{
		ctx:     ctx,
		actions: actions,
		panes:   [2][]item{offerItems(offers), recoItems(recos)},
		input:   ti,
		applied: make(map[string]bool),
	}
}

func offerItems(offers []model.Offer) []item {
	items := make([]item, 0, len(offers))
	for _, o := range offers {
		items = append(items, item{
			offreID:  o.ID,
			title:    render.Clean(o.Titre),
			subtitle: fmt.Sprintf("%s · %s", render.Clean(o.Ville), render.Clean(o.ID)),
		})
	}
	return items
}

func recoItems(recos []model.Recommendation) []item {
	items := make([]item, 0, len(recos))
	for _, r := range recos {
		items = append(items, item{
			offreID:  r.OffreID,
			title:    render.Clean(r.Titre),
			subtitle: "score " + r.Score.String(),
		})
	}
	return items
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case appliedMsg:
		m.busy = false
		if msg.err != nil {
			m.setStatus(model.UserMessage(msg.err), true)
		} else {
			m.applied[msg.offreID] = true
			m.setStatus("Candidature envoyée", false)
			m.recalcContent()
		}
		return m, nil

	case searchedMsg:
		switch {
		case msg.err != nil:
			m.setStatus(msg.err.Error(), true)
		case msg.url != "":
			m.setStatus("Recherche: "+msg.url, false)
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m browseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "left", "right":
		m.active = 1 - m.active
		m.recalcContent()
		return m, nil
	case "up", "k":
		m.moveCursor(-1)
		return m, nil
	case "down", "j":
		m.moveCursor(1)
		return m, nil
	case "/":
		m.searching = true
		m.input.SetValue("")
		return m, m.input.Focus()
	case "enter":
		return m.apply()
	}

	// Forward other keys (pgup/pgdn/home/end) to the active viewport.
	var cmd tea.Cmd
	m.vps[m.active], cmd = m.vps[m.active].Update(msg)
	return m, cmd
}

func (m browseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.searching = false
		m.input.Blur()
		return m, nil
	case "enter":
		m.searching = false
		m.input.Blur()
		return m, m.searchCmd(m.input.Value())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m browseModel) apply() (tea.Model, tea.Cmd) {
	items := m.panes[m.active]
	if m.busy || len(items) == 0 {
		return m, nil
	}
	it := items[m.cursors[m.active]]
	if it.offreID == "" {
		m.setStatus("Pas d'identifiant d'offre pour cette recommandation", true)
		return m, nil
	}
	m.busy = true
	m.setStatus("Envoi de la candidature...", false)
	return m, m.applyCmd(it.offreID)
}

func (m browseModel) applyCmd(offreID string) tea.Cmd {
	actions, ctx := m.actions, m.ctx
	return func() tea.Msg {
		return appliedMsg{offreID: offreID, err: actions.Postuler(ctx, offreID)}
	}
}

func (m browseModel) searchCmd(input string) tea.Cmd {
	actions := m.actions
	return func() tea.Msg {
		url, err := actions.Search(input)
		return searchedMsg{url: url, err: err}
	}
}

func (m *browseModel) setStatus(msg string, failed bool) {
	m.status = msg
	m.statusFailed = failed
}

func (m *browseModel) moveCursor(delta int) {
	n := len(m.panes[m.active])
	m.cursors[m.active] = clamp(m.cursors[m.active]+delta, 0, max(n-1, 0))
	m.recalcContent()
	m.ensureCursorVisible()
}

func (m *browseModel) ensureCursorVisible() {
	vp := &m.vps[m.active]
	cursorTop := m.cursors[m.active] * itemHeight
	cursorBottom := cursorTop + itemHeight - 1

	if cursorTop < vp.YOffset {
		vp.SetYOffset(cursorTop)
	} else if cursorBottom >= vp.YOffset+vp.Height {
		vp.SetYOffset(cursorBottom - vp.Height + 1)
	}
}

func (m *browseModel) recalcLayout() {
	// 2 border chars per pane + 1 gap between panes.
	paneWidth := max((m.width-5)/2, 20)

	// Header (1 line) + border top/bottom (2) + status bar (1) + search line (1).
	paneHeight := max(m.height-5, 5)

	if !m.ready {
		m.vps[offersPane] = viewport.New(paneWidth, paneHeight)
		m.vps[recoPane] = viewport.New(paneWidth, paneHeight)
		m.ready = true
	} else {
		for i := range m.vps {
			m.vps[i].Width = paneWidth
			m.vps[i].Height = paneHeight
		}
	}
	m.input.Width = max(m.width-4, 10)

	m.recalcContent()
}

func (m *browseModel) recalcContent() {
	for i := range m.vps {
		m.vps[i].SetContent(m.renderItems(i))
	}
}

func (m browseModel) View() string {
	if !m.ready {
		return "Chargement..."
	}

	paneWidth := m.vps[offersPane].Width
	headers := [2]string{
		fmt.Sprintf(" Offres (%d)", len(m.panes[offersPane])),
		fmt.Sprintf(" Recommandations (%d)", len(m.panes[recoPane])),
	}

	var renderedHeaders, renderedPanes [2]string
	for i := range headers {
		headerSt, borderSt := inactiveHeaderStyle, inactiveBorderStyle
		if i == m.active {
			headerSt, borderSt = activeHeaderStyle, activeBorderStyle
		}
		renderedHeaders[i] = lipgloss.NewStyle().Width(paneWidth + 2).Render(headerSt.Render(headers[i]))
		renderedPanes[i] = borderSt.Width(paneWidth).Render(m.vps[i].View())
	}

	headerRow := lipgloss.JoinHorizontal(lipgloss.Top, renderedHeaders[0], " ", renderedHeaders[1])
	panes := lipgloss.JoinHorizontal(lipgloss.Top, renderedPanes[0], " ", renderedPanes[1])

	var bottom string
	if m.searching {
		bottom = m.input.View()
	} else {
		bottom = " ←/→/Tab switch  ↑/↓ cursor  Enter candidater  / rechercher  q quit"
	}

	st := statusBarStyle
	if m.status != "" {
		st = statusOKStyle
		if m.statusFailed {
			st = statusErrStyle
		}
	}
	statusBar := st.Width(m.width).Render(m.status)

	return headerRow + "\n" + panes + "\n" + bottom + "\n" + statusBar
}

func (m browseModel) renderItems(pane int) string {
	items := m.panes[pane]
	if len(items) == 0 {
		if pane == offersPane {
			return "  (aucune offre)"
		}
		return "  (aucune recommandation)"
	}

	var b strings.Builder
	for i, it := range items {
		isSelected := pane == m.active && i == m.cursors[pane]

		titleSt := itemTitleStyle
		subtitleSt := itemSubtitleStyle
		prefix := "  "
		if isSelected {
			titleSt = selectedTitleStyle
			subtitleSt = selectedSubtitleStyle
			prefix = "> "
		}

		b.WriteString(prefix)
		b.WriteString(titleSt.Render(it.title))
		if m.applied[it.offreID] {
			b.WriteString(" " + appliedStyle.Render("✔"))
		}
		b.WriteByte('\n')
		b.WriteString(prefix)
		b.WriteString(subtitleSt.Render(it.subtitle))
		b.WriteByte('\n')

		if i < len(items)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Run launches the full-screen browser. It returns when the user quits.
func Run(ctx context.Context, offers []model.Offer, recos []model.Recommendation, actions Actions) error {
	m := newModel(ctx, offers, recos, actions)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
