package main

import (
	"github.com/spf13/cobra"

	"github.com/amishk599/stagiaire/internal/render"
)

var recoCmd = &cobra.Command{
	Use:     "reco",
	Aliases: []string{"recommandations"},
	Short:   "Show recommended offers for the current trainee",
	RunE:    runReco,
}

func init() {
	rootCmd.AddCommand(recoCmd)
}

func runReco(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signalContext()
	defer stop()

	_, err = a.portal.LoadReco(ctx)
	a.print(render.Reco)
	return err
}
