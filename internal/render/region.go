// Package render turns API results into text for named output regions.
package render

import (
	"fmt"
	"io"
	"sync"
)

// Region names, one per area the client writes into.
const (
	LoginStatus = "loginStatus"
	CVStatus    = "cvStatus"
	Offres      = "offres"
	Reco        = "reco"
	Stats       = "statsChart"
	Alert       = "alert"
)

// Region is an output area whose content is only ever replaced as a whole.
type Region struct {
	name    string
	mu      sync.Mutex
	content string
	failed  bool
}

// Replace swaps the region content. failed marks the content as an error
// state.
func (r *Region) Replace(content string, failed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.content = content
	r.failed = failed
}

// Content returns the current content and whether it represents a failure.
func (r *Region) Content() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.content, r.failed
}

func (r *Region) Name() string { return r.name }

// Page owns the fixed set of regions. Concurrent operations write disjoint
// regions; each region also guards itself.
type Page struct {
	regions map[string]*Region
	order   []string
}

// NewPage creates a page with every known region, empty.
func NewPage() *Page {
	names := []string{LoginStatus, CVStatus, Offres, Reco, Stats, Alert}
	p := &Page{regions: make(map[string]*Region, len(names)), order: names}
	for _, n := range names {
		p.regions[n] = &Region{name: n}
	}
	return p
}

// Region returns the named region. It panics on an unknown name since the
// set is fixed at compile time.
func (p *Page) Region(name string) *Region {
	r, ok := p.regions[name]
	if !ok {
		panic(fmt.Sprintf("render: unknown region %q", name))
	}
	return r
}

// Print writes the named regions to w, skipping empty ones.
func (p *Page) Print(w io.Writer, names ...string) error {
	if len(names) == 0 {
		names = p.order
	}
	for _, n := range names {
		content, _ := p.Region(n).Content()
		if content == "" {
			continue
		}
		if _, err := fmt.Fprintln(w, content); err != nil {
			return err
		}
	}
	return nil
}
