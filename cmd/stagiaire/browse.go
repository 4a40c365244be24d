package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/amishk599/stagiaire/internal/browse"
	"github.com/amishk599/stagiaire/internal/model"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactive offer browser",
	Long:  "Full-screen list of offers and recommendations. enter applies to the selected offer, / searches, q quits.",
	RunE:  runBrowse,
}

func init() {
	browseCmd.Flags().StringSliceVar(&offerTitles, "title", nil, "title keywords")
	browseCmd.Flags().StringSliceVar(&offerCities, "city", nil, "cities")
	rootCmd.AddCommand(browseCmd)
}

type browseData struct {
	offers []model.Offer
	recos  []model.Recommendation
}

func runBrowse(cmd *cobra.Command, args []string) error {
	fullscreen = true
	a, err := newApp(offerFilterOption())
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signalContext()
	defer stop()

	data, err := browse.RunLoader(ctx, "Chargement des offres", func(ctx context.Context) (browseData, error) {
		offers, err := a.portal.LoadOffres(ctx)
		if err != nil {
			return browseData{}, err
		}
		// Recommendations need a trainee ID; browsing works without them.
		recos, err := a.portal.LoadReco(ctx)
		if err != nil {
			a.logger.Warn("recommendations unavailable", "error", err)
		}
		return browseData{offers: offers, recos: recos}, nil
	})
	if err != nil {
		a.print()
		return err
	}

	return browse.Run(ctx, data.offers, data.recos, a.portal)
}
