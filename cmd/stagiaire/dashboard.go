package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/amishk599/stagiaire/internal/scheduler"
)

var dashRefresh time.Duration

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Load offers, recommendations and stats together",
	Long:  "Runs the three page loads concurrently and prints every region. With --refresh, reloads on that interval until interrupted.",
	RunE:  runDashboard,
}

func init() {
	dashboardCmd.Flags().DurationVar(&dashRefresh, "refresh", 0, "reload interval (e.g. 30s); 0 loads once")
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	a, err := newApp(chartOption(), offerFilterOption())
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signalContext()
	defer stop()

	if dashRefresh <= 0 {
		err := a.portal.LoadPage(ctx)
		a.print()
		return err
	}

	clearScreen := isatty.IsTerminal(os.Stdout.Fd())
	sched := scheduler.NewScheduler(func(ctx context.Context) error {
		err := a.portal.LoadPage(ctx)
		if clearScreen {
			fmt.Print("\033[H\033[2J")
		}
		a.print()
		fmt.Printf("\n· %s, prochaine mise à jour dans %s\n", time.Now().Format("15:04:05"), dashRefresh)
		return err
	}, dashRefresh, a.logger)

	return sched.Run(ctx)
}
