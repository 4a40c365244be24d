package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amishk599/stagiaire/internal/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect or change the stored session",
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored trainee ID and whether a token is present",
	Args:  cobra.NoArgs,
	RunE:  runSessionShow,
}

var sessionSetIDCmd = &cobra.Command{
	Use:   "set-id <stagiaire-id>",
	Short: "Set the current trainee ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionSetID,
}

var sessionClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the trainee ID and token",
	Args:  cobra.NoArgs,
	RunE:  runSessionClear,
}

func init() {
	sessionCmd.AddCommand(sessionShowCmd, sessionSetIDCmd, sessionClearCmd)
	rootCmd.AddCommand(sessionCmd)
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	sess, err := a.portal.Session()
	if err != nil {
		return err
	}
	id := sess.Identity
	if id == "" {
		id = "(aucun)"
	}
	fmt.Printf("%-14s %s\n", "Stagiaire", id)
	fmt.Printf("%-14s %s\n", "Token", maskToken(sess.Token))
	fmt.Printf("%-14s %s\n", "Stockage", sessionLabel(a.cfg))
	return nil
}

func runSessionSetID(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := session.SaveIdentity(a.store, args[0]); err != nil {
		return err
	}
	fmt.Printf("Stagiaire courant: %s\n", args[0])
	return nil
}

func runSessionClear(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := session.Clear(a.store); err != nil {
		return err
	}
	fmt.Println("Session effacée")
	return nil
}

// maskToken shows only the first characters of a token.
func maskToken(token string) string {
	const keep = 8
	switch {
	case token == "":
		return "(non connecté)"
	case len(token) <= keep:
		return "********"
	default:
		return token[:keep] + "…"
	}
}
