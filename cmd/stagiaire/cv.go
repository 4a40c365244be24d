package main

import (
	"github.com/spf13/cobra"

	"github.com/amishk599/stagiaire/internal/render"
)

var cvOutput string

var cvCmd = &cobra.Command{
	Use:   "cv",
	Short: "Manage the stored CV",
}

var cvDownloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download the CV stored for the current trainee",
	Args:  cobra.NoArgs,
	RunE:  runCVDownload,
}

func init() {
	cvDownloadCmd.Flags().StringVarP(&cvOutput, "output", "o", "", "file or directory to write to (default: server filename in the current directory)")
	cvCmd.AddCommand(cvDownloadCmd)
	rootCmd.AddCommand(cvCmd)
}

func runCVDownload(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signalContext()
	defer stop()

	_, err = a.portal.DownloadCV(ctx, cvOutput)
	a.print(render.CVStatus)
	return err
}
