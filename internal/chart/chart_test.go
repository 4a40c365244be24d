package chart

import (
	"archive/zip"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sample() BarChart {
	return BarChart{
		Title:        "Candidatures par ville",
		DatasetLabel: "Candidatures",
		Labels:       []string{"Rabat", "Casablanca", "Fès"},
		Values:       []int{4, 1, 2},
	}
}

func TestTerminal_BarsInInputOrder(t *testing.T) {
	out, err := NewTerminalRenderer(8).RenderBar(sample())
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	// title, blank margin line, then one line per bar
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "Candidatures par ville")
	assert.True(t, strings.HasPrefix(lines[2], "Rabat"))
	assert.True(t, strings.HasPrefix(lines[3], "Casablanca"))
	assert.True(t, strings.HasPrefix(lines[4], "Fès"))

	assert.Equal(t, 8, strings.Count(lines[2], "█"))
	assert.Equal(t, 2, strings.Count(lines[3], "█"))
	assert.Equal(t, 4, strings.Count(lines[4], "█"))
	assert.True(t, strings.HasSuffix(lines[2], " 4"))
}

func TestTerminal_Empty(t *testing.T) {
	out, err := NewTerminalRenderer(0).RenderBar(BarChart{Title: "Stats", DatasetLabel: "Candidatures"})
	require.NoError(t, err)
	assert.Contains(t, out, "Aucune donnée")
}

func TestTerminal_ZeroValuesDrawNothing(t *testing.T) {
	out, err := NewTerminalRenderer(10).RenderBar(BarChart{Labels: []string{"A"}, Values: []int{0}})
	require.NoError(t, err)
	assert.NotContains(t, out, "█")
}

func TestMismatchedLengths(t *testing.T) {
	bad := BarChart{Labels: []string{"A", "B"}, Values: []int{1}}

	_, err := NewTerminalRenderer(0).RenderBar(bad)
	require.Error(t, err)

	_, err = NewXLSXRenderer(filepath.Join(t.TempDir(), "x.xlsx")).RenderBar(bad)
	require.Error(t, err)
}

func TestXLSX_DataAndChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.xlsx")

	out, err := NewXLSXRenderer(path).RenderBar(sample())
	require.NoError(t, err)
	assert.Contains(t, out, path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(statsSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Ville", "Candidatures"},
		{"Rabat", "4"},
		{"Casablanca", "1"},
		{"Fès", "2"},
	}, rows)

	assert.True(t, zipHas(t, path, "xl/charts/chart1.xml"), "workbook should embed a chart")
}

func TestXLSX_EmptyHasNoChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	_, err := NewXLSXRenderer(path).RenderBar(BarChart{Title: "Stats", DatasetLabel: "Candidatures"})
	require.NoError(t, err)

	assert.False(t, zipHas(t, path, "xl/charts/chart1.xml"))
}

type stubRenderer struct {
	out string
	err error
}

func (s stubRenderer) RenderBar(BarChart) (string, error) { return s.out, s.err }

func TestMulti(t *testing.T) {
	out, err := Multi{stubRenderer{out: "a"}, stubRenderer{}, stubRenderer{out: "b"}}.RenderBar(sample())
	require.NoError(t, err)
	assert.Equal(t, "a\nb", out)

	boom := errors.New("boom")
	_, err = Multi{stubRenderer{out: "a"}, stubRenderer{err: boom}}.RenderBar(sample())
	assert.ErrorIs(t, err, boom)
}

func zipHas(t *testing.T, path, name string) bool {
	t.Helper()
	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()
	for _, f := range zr.File {
		if f.Name == name {
			return true
		}
	}
	return false
}
