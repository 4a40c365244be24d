package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Go to the search results page for a query",
	Long:  "Builds <results_page>?q=<query> and opens it (search.open_browser) or prints it. A blank query does nothing.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	target, err := a.portal.Search(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if target != "" {
		a.logger.Debug("search", "url", target)
	}
	return nil
}
