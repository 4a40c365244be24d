package chart

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const statsSheet = "Stats"

// XLSXRenderer writes the data and a native column chart to a workbook.
type XLSXRenderer struct {
	path string
}

func NewXLSXRenderer(path string) *XLSXRenderer {
	return &XLSXRenderer{path: path}
}

func (x *XLSXRenderer) RenderBar(c BarChart) (string, error) {
	if err := c.validate(); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", statsSheet); err != nil {
		return "", fmt.Errorf("xlsx: rename sheet: %w", err)
	}
	if err := f.SetSheetRow(statsSheet, "A1", &[]any{"Ville", c.DatasetLabel}); err != nil {
		return "", fmt.Errorf("xlsx: header: %w", err)
	}
	for i, label := range c.Labels {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("xlsx: cell name: %w", err)
		}
		if err := f.SetSheetRow(statsSheet, cell, &[]any{label, c.Values[i]}); err != nil {
			return "", fmt.Errorf("xlsx: row %d: %w", i+2, err)
		}
	}

	// A chart over an empty range is rejected by Excel, so an empty
	// aggregation produces a data sheet only.
	if n := len(c.Labels); n > 0 {
		last := n + 1
		err := f.AddChart(statsSheet, "D2", &excelize.Chart{
			Type: excelize.Col,
			Series: []excelize.ChartSeries{{
				Name:       fmt.Sprintf("%s!$B$1", statsSheet),
				Categories: fmt.Sprintf("%s!$A$2:$A$%d", statsSheet, last),
				Values:     fmt.Sprintf("%s!$B$2:$B$%d", statsSheet, last),
			}},
			Title:  []excelize.RichTextRun{{Text: c.Title}},
			Legend: excelize.ChartLegend{Position: "bottom"},
		})
		if err != nil {
			return "", fmt.Errorf("xlsx: add chart: %w", err)
		}
	}

	if err := f.SaveAs(x.path); err != nil {
		return "", fmt.Errorf("xlsx: save %s: %w", x.path, err)
	}
	return "Graphique enregistré: " + x.path, nil
}
