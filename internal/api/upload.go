package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/amishk599/stagiaire/internal/model"
)

// CVFile is a résumé ready to be sent as the "file" form part.
type CVFile struct {
	Name        string // base name sent as the part filename
	ContentType string // MIME type of the part; the API filters on it
	Data        []byte
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// UploadCV posts the résumé as multipart/form-data with a single part named
// "file".
func (c *Client) UploadCV(ctx context.Context, stagiaireID, token string, cv CVFile) (string, error) {
	const op = "upload_cv"

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	contentType := cv.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(cv.Name)))
	h.Set("Content-Type", contentType)

	part, err := writer.CreatePart(h)
	if err != nil {
		return "", fmt.Errorf("%s: creating form part: %w", op, err)
	}
	if _, err := part.Write(cv.Data); err != nil {
		return "", fmt.Errorf("%s: writing form part: %w", op, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("%s: finalizing form: %w", op, err)
	}

	return c.doAck(ctx, request{
		op:          op,
		method:      http.MethodPost,
		path:        "/api/stagiaires/" + segment(stagiaireID) + "/upload-cv",
		body:        &body,
		contentType: writer.FormDataContentType(),
		token:       token,
	})
}

// DownloadCV fetches the stored résumé. The filename comes from the
// Content-Disposition header and is empty when the server sends none.
func (c *Client) DownloadCV(ctx context.Context, stagiaireID string) (string, []byte, error) {
	const op = "download_cv"

	resp, err := c.do(ctx, request{
		op:     op,
		method: http.MethodGet,
		path:   "/api/stagiaires/" + segment(stagiaireID) + "/cv",
	})
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, &model.OpError{Op: op, Kind: model.FailureNetwork, Err: err}
	}

	return dispositionFilename(resp.Header.Get("Content-Disposition")), data, nil
}

// dispositionFilename extracts the filename parameter. Servers often send it
// unquoted even when it contains spaces, which mime.ParseMediaType rejects,
// so the raw parameter is used as a fallback.
func dispositionFilename(cd string) string {
	if cd == "" {
		return ""
	}
	if _, params, err := mime.ParseMediaType(cd); err == nil {
		return params["filename"]
	}
	for _, param := range strings.Split(cd, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "filename") {
			continue
		}
		return strings.Trim(strings.TrimSpace(value), `"`)
	}
	return ""
}
