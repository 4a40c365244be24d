package search

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
)

// Navigator sends the user to a URL.
type Navigator interface {
	Navigate(url string) error
}

// BrowserNavigator opens the URL with the platform's default handler.
type BrowserNavigator struct{}

func (BrowserNavigator) Navigate(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return fmt.Errorf("open %s: unsupported platform %s", url, runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

// PrintNavigator writes the URL to w instead of opening it.
type PrintNavigator struct {
	W io.Writer
}

func (p PrintNavigator) Navigate(url string) error {
	_, err := fmt.Fprintln(p.W, url)
	return err
}
