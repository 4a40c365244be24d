package main

import (
	"github.com/spf13/cobra"

	"github.com/amishk599/stagiaire/internal/filter"
	"github.com/amishk599/stagiaire/internal/portal"
	"github.com/amishk599/stagiaire/internal/render"
)

var (
	offerTitles []string
	offerCities []string
)

var offersCmd = &cobra.Command{
	Use:     "offers",
	Aliases: []string{"offres"},
	Short:   "List job offers",
	Long:    "Lists the offer catalog in server order. --title and --city narrow it client-side (case-insensitive, any keyword matches).",
	RunE:    runOffers,
}

func init() {
	offersCmd.Flags().StringSliceVar(&offerTitles, "title", nil, "title keywords")
	offersCmd.Flags().StringSliceVar(&offerCities, "city", nil, "cities")
	rootCmd.AddCommand(offersCmd)
}

func offerFilterOption() portal.Option {
	return portal.WithOfferFilter(filter.NewTitleAndCityFilter(offerTitles, offerCities))
}

func runOffers(cmd *cobra.Command, args []string) error {
	a, err := newApp(offerFilterOption())
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signalContext()
	defer stop()

	_, err = a.portal.LoadOffres(ctx)
	a.print(render.Offres)
	return err
}
