package portal

import (
	"github.com/amishk599/stagiaire/internal/search"
)

// Search navigates to the results page for input. Blank input does nothing
// and reports nothing. The returned URL is empty when no navigation
// happened.
func (p *Portal) Search(input string) (string, error) {
	target, ok := search.Target(p.resultsPage, input)
	if !ok {
		return "", nil
	}
	if p.navigator == nil {
		return target, nil
	}
	if err := p.navigator.Navigate(target); err != nil {
		p.logger.Error("navigation failed", "url", target, "error", err)
		return target, err
	}
	return target, nil
}
