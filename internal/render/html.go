package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/amishk599/stagiaire/internal/model"
)

// Each entry carries its offer ID, escaped, in the button's data-offre-id
// attribute; the fragment itself contains no script.
var offersTmpl = template.Must(template.New("offres").Parse(
	`{{range .}}<p>{{.Titre}} - {{.Ville}} <button type="button" class="candidater" data-offre-id="{{.ID}}">Candidater</button></p>
{{end}}`))

var recoTmpl = template.Must(template.New("reco").Parse(
	`{{range .}}<li>{{.Titre}} (score {{.Score}})</li>
{{end}}`))

var statusTmpl = template.Must(template.New("status").Parse(
	`<span class="status{{if .Failed}} status-error{{end}}">{{.Msg}}</span>`))

// HTMLRenderer produces markup fragments with every field escaped by
// html/template.
type HTMLRenderer struct{}

func NewHTMLRenderer() *HTMLRenderer { return &HTMLRenderer{} }

func (HTMLRenderer) Offers(offers []model.Offer) (string, error) {
	var buf bytes.Buffer
	if err := offersTmpl.Execute(&buf, offers); err != nil {
		return "", fmt.Errorf("render offres: %w", err)
	}
	return buf.String(), nil
}

func (HTMLRenderer) Recommendations(recos []model.Recommendation) (string, error) {
	var buf bytes.Buffer
	if err := recoTmpl.Execute(&buf, recos); err != nil {
		return "", fmt.Errorf("render recommandations: %w", err)
	}
	return buf.String(), nil
}

func (HTMLRenderer) Status(msg string, failed bool) string {
	var buf bytes.Buffer
	// Only fails on a broken writer; bytes.Buffer never is.
	_ = statusTmpl.Execute(&buf, struct {
		Msg    string
		Failed bool
	}{msg, failed})
	return buf.String()
}
