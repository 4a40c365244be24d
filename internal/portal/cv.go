package portal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"github.com/amishk599/stagiaire/internal/api"
	"github.com/amishk599/stagiaire/internal/render"
)

// UploadCV sends the file at path as the trainee's résumé. The part
// Content-Type is sniffed from the bytes; nothing is rejected client-side.
func (p *Portal) UploadCV(ctx context.Context, path string) error {
	sess, err := p.requireSession(true)
	if err != nil {
		p.fail(render.CVStatus, "upload_cv", err)
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("reading cv: %w", err)
		p.fail(render.CVStatus, "upload_cv", err)
		return err
	}

	cv := api.CVFile{
		Name:        filepath.Base(path),
		ContentType: mimetype.Detect(data).String(),
		Data:        data,
	}
	msg, err := p.api.UploadCV(ctx, sess.Identity, sess.Token, cv)
	if err != nil {
		p.fail(render.CVStatus, "upload_cv", err)
		return err
	}

	p.show(render.CVStatus, "CV envoyé ✔")
	p.logger.Info("cv uploaded",
		"file", cv.Name,
		"content_type", cv.ContentType,
		"bytes", len(data),
		"server_message", msg,
	)
	return nil
}

// DownloadCV saves the stored résumé. When dest is a directory (or empty,
// meaning the working directory) the server's filename is used inside it.
func (p *Portal) DownloadCV(ctx context.Context, dest string) (string, error) {
	sess, err := p.requireSession(false)
	if err != nil {
		p.fail(render.CVStatus, "download_cv", err)
		return "", err
	}

	name, data, err := p.api.DownloadCV(ctx, sess.Identity)
	if err != nil {
		p.fail(render.CVStatus, "download_cv", err)
		return "", err
	}

	path := downloadPath(dest, name, sess.Identity)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		err = fmt.Errorf("writing cv: %w", err)
		p.fail(render.CVStatus, "download_cv", err)
		return "", err
	}

	p.show(render.CVStatus, "CV enregistré: "+path)
	return path, nil
}

func downloadPath(dest, serverName, identity string) string {
	name := filepath.Base(serverName)
	if name == "." || name == "/" || name == "" {
		name = "cv-" + identity
	}
	if dest == "" {
		return name
	}
	if info, err := os.Stat(dest); err == nil && info.IsDir() {
		return filepath.Join(dest, name)
	}
	return dest
}
