package render

import "github.com/amishk599/stagiaire/internal/model"

// Renderer formats API results for a region. Implementations must escape or
// otherwise neutralise every server-provided field.
type Renderer interface {
	Offers(offers []model.Offer) (string, error)
	Recommendations(recos []model.Recommendation) (string, error)
	Status(msg string, failed bool) string
}

var (
	_ Renderer = (*HTMLRenderer)(nil)
	_ Renderer = (*TerminalRenderer)(nil)
)

// New returns the renderer for the configured output format.
func New(format string) Renderer {
	if format == "html" {
		return NewHTMLRenderer()
	}
	return NewTerminalRenderer()
}
