// Package chart draws bar charts from parallel label/value slices.
package chart

import (
	"fmt"
	"strings"
)

// BarChart is the input every renderer receives. Labels and Values are
// parallel and keep the order the caller gave them.
type BarChart struct {
	Title        string
	DatasetLabel string
	Labels       []string
	Values       []int
}

func (c BarChart) validate() error {
	if len(c.Labels) != len(c.Values) {
		return fmt.Errorf("chart: %d labels but %d values", len(c.Labels), len(c.Values))
	}
	return nil
}

// BarRenderer draws a chart and returns a short description of the result
// for the stats region.
type BarRenderer interface {
	RenderBar(c BarChart) (string, error)
}

// Multi renders the same chart with several renderers and joins their
// output, stopping at the first error.
type Multi []BarRenderer

func (m Multi) RenderBar(c BarChart) (string, error) {
	outs := make([]string, 0, len(m))
	for _, r := range m {
		out, err := r.RenderBar(c)
		if err != nil {
			return "", err
		}
		if out != "" {
			outs = append(outs, out)
		}
	}
	return strings.Join(outs, "\n"), nil
}
