package main

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/amishk599/stagiaire/internal/model"
	"github.com/amishk599/stagiaire/internal/render"
)

var (
	regNom         string
	regEmail       string
	regVille       string
	regCompetences []string
	regPassword    string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a trainee account and remember its ID",
	RunE:  runRegister,
}

func init() {
	registerCmd.Flags().StringVar(&regNom, "nom", "", "full name")
	registerCmd.Flags().StringVarP(&regEmail, "email", "e", "", "account email")
	registerCmd.Flags().StringVar(&regVille, "ville", "", "city")
	registerCmd.Flags().StringSliceVar(&regCompetences, "competences", nil, "skills, comma separated")
	registerCmd.Flags().StringVarP(&regPassword, "password", "p", "", "account password (prompted if omitted)")
	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	if regNom == "" || regEmail == "" || regPassword == "" {
		if !interactive() {
			return errMissingInput
		}
		skills := strings.Join(regCompetences, ", ")
		if err := registerForm(&skills).Run(); err != nil {
			return err
		}
		regCompetences = splitList(skills)
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signalContext()
	defer stop()

	profile := model.Profile{
		Nom:         strings.TrimSpace(regNom),
		Email:       strings.TrimSpace(regEmail),
		Ville:       strings.TrimSpace(regVille),
		Competences: regCompetences,
	}
	_, err = a.portal.Register(ctx, profile, regPassword)
	a.print(render.LoginStatus)
	return err
}

func registerForm(skills *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Nom").Value(&regNom).Validate(required("le nom")),
			huh.NewInput().Title("Email").Value(&regEmail).Validate(required("l'email")),
			huh.NewInput().Title("Ville").Value(&regVille),
			huh.NewInput().Title("Compétences").Description("séparées par des virgules").Value(skills),
			huh.NewInput().
				Title("Mot de passe").
				EchoMode(huh.EchoModePassword).
				Value(&regPassword).
				Validate(required("le mot de passe")),
		),
	)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
