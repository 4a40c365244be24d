package main

import (
	"github.com/spf13/cobra"

	"github.com/amishk599/stagiaire/internal/chart"
	"github.com/amishk599/stagiaire/internal/portal"
	"github.com/amishk599/stagiaire/internal/render"
)

var (
	statsXLSX   string
	statsGlobal bool
	statsWidth  int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Chart applications per city",
	Long:  "Draws the current trainee's applications per city as a bar chart. --xlsx also writes a workbook with a native column chart.",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsXLSX, "xlsx", "", "also write the chart to this .xlsx file")
	statsCmd.Flags().BoolVar(&statsGlobal, "global", false, "platform-wide counters instead of the current trainee")
	statsCmd.Flags().IntVar(&statsWidth, "width", 0, "bar width in cells for the terminal chart")
	rootCmd.AddCommand(statsCmd)
}

func chartOption() portal.Option {
	var r chart.BarRenderer = chart.NewTerminalRenderer(statsWidth)
	if statsXLSX != "" {
		r = chart.Multi{r, chart.NewXLSXRenderer(statsXLSX)}
	}
	return portal.WithChart(r)
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := newApp(chartOption())
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signalContext()
	defer stop()

	if statsGlobal {
		_, err = a.portal.LoadGlobalStats(ctx)
	} else {
		_, err = a.portal.LoadStats(ctx)
	}
	a.print(render.Stats)
	return err
}
