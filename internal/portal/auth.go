package portal

import (
	"context"
	"fmt"

	"github.com/amishk599/stagiaire/internal/model"
	"github.com/amishk599/stagiaire/internal/render"
	"github.com/amishk599/stagiaire/internal/session"
)

// Login exchanges credentials for a token and persists it. The stored token
// is only replaced when the server actually issued a new one.
func (p *Portal) Login(ctx context.Context, email, password string) error {
	token, err := p.api.Login(ctx, email, password)
	if err != nil {
		p.fail(render.LoginStatus, "login", err)
		return err
	}
	if err := session.SaveToken(p.store, token); err != nil {
		err = fmt.Errorf("saving token: %w", err)
		p.fail(render.LoginStatus, "login", err)
		return err
	}

	p.show(render.LoginStatus, "Connecté")
	p.logger.Info("logged in", "email", email)
	return nil
}

// Register creates an account and stores the returned identifier as the
// current trainee.
func (p *Portal) Register(ctx context.Context, profile model.Profile, password string) (string, error) {
	id, err := p.api.Register(ctx, profile, password)
	if err != nil {
		p.fail(render.LoginStatus, "register", err)
		return "", err
	}
	if err := session.SaveIdentity(p.store, id); err != nil {
		err = fmt.Errorf("saving identity: %w", err)
		p.fail(render.LoginStatus, "register", err)
		return "", err
	}

	p.show(render.LoginStatus, "Compte créé ("+id+")")
	p.logger.Info("registered", "stagiaire_id", id)
	return id, nil
}
