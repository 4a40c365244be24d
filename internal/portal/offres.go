package portal

import (
	"context"
	"fmt"

	"github.com/amishk599/stagiaire/internal/model"
	"github.com/amishk599/stagiaire/internal/render"
)

// LoadOffres fetches the catalog and replaces the offres region with one
// entry per offer, in server order.
func (p *Portal) LoadOffres(ctx context.Context) ([]model.Offer, error) {
	offers, err := p.api.ListOffres(ctx)
	if err != nil {
		p.fail(render.Offres, "offres", err)
		return nil, err
	}
	fetched := len(offers)
	if p.filter != nil {
		offers = p.filter.Apply(offers)
	}

	if len(offers) == 0 {
		p.show(render.Offres, "Aucune offre")
	} else {
		out, err := p.renderer.Offers(offers)
		if err != nil {
			p.fail(render.Offres, "offres", err)
			return nil, err
		}
		p.page.Region(render.Offres).Replace(out, false)
	}

	p.logger.Debug("offres loaded", "fetched", fetched, "shown", len(offers))
	return offers, nil
}

// Postuler applies to offreID as the trainee currently stored in the
// session.
func (p *Portal) Postuler(ctx context.Context, offreID string) error {
	sess, err := p.requireSession(true)
	if err != nil {
		p.fail(render.Alert, "candidater", err)
		return err
	}
	if offreID == "" {
		err := fmt.Errorf("candidater: empty offer id")
		p.fail(render.Alert, "candidater", err)
		return err
	}

	app := model.Application{StagiaireID: sess.Identity, OffreID: offreID}
	msg, err := p.api.Candidater(ctx, app, sess.Token)
	if err != nil {
		p.fail(render.Alert, "candidater", err)
		return err
	}

	p.show(render.Alert, "Candidature envoyée")
	p.logger.Info("application sent", "stagiaire_id", sess.Identity, "offre_id", offreID, "server_message", msg)
	return nil
}

// LoadReco fetches the trainee's recommendations and replaces the reco
// region. Scores are shown exactly as the server sent them.
func (p *Portal) LoadReco(ctx context.Context) ([]model.Recommendation, error) {
	sess, err := p.requireSession(false)
	if err != nil {
		p.fail(render.Reco, "recommandations", err)
		return nil, err
	}

	recos, err := p.api.Recommandations(ctx, sess.Identity)
	if err != nil {
		p.fail(render.Reco, "recommandations", err)
		return nil, err
	}

	if len(recos) == 0 {
		p.show(render.Reco, "Aucune recommandation")
		return recos, nil
	}
	out, err := p.renderer.Recommendations(recos)
	if err != nil {
		p.fail(render.Reco, "recommandations", err)
		return nil, err
	}
	p.page.Region(render.Reco).Replace(out, false)
	return recos, nil
}
