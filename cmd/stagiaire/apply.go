package main

import (
	"github.com/spf13/cobra"

	"github.com/amishk599/stagiaire/internal/render"
)

var applyCmd = &cobra.Command{
	Use:     "apply <offre-id>",
	Aliases: []string{"candidater", "postuler"},
	Short:   "Apply to an offer as the current trainee",
	Args:    cobra.ExactArgs(1),
	RunE:    runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signalContext()
	defer stop()

	err = a.portal.Postuler(ctx, args[0])
	a.print(render.Alert)
	return err
}
