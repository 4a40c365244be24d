package main

import (
	"github.com/spf13/cobra"

	"github.com/amishk599/stagiaire/internal/render"
)

var uploadCmd = &cobra.Command{
	Use:   "upload-cv <file>",
	Short: "Upload a CV for the current trainee",
	Long:  "Sends the file as multipart/form-data. Requires a stored trainee ID and a login token.",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signalContext()
	defer stop()

	err = a.portal.UploadCV(ctx, args[0])
	a.print(render.CVStatus)
	return err
}
