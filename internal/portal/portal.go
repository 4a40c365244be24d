// Package portal implements the trainee-facing operations: each one reads
// the session, makes a single API call and writes the outcome into its
// region of the page.
package portal

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amishk599/stagiaire/internal/api"
	"github.com/amishk599/stagiaire/internal/chart"
	"github.com/amishk599/stagiaire/internal/model"
	"github.com/amishk599/stagiaire/internal/render"
	"github.com/amishk599/stagiaire/internal/search"
	"github.com/amishk599/stagiaire/internal/session"
)

var (
	// ErrNoIdentity is returned when an operation needs the trainee ID and
	// none is stored.
	ErrNoIdentity = errors.New("no trainee identity stored (run register or session set-id)")

	// ErrNotLoggedIn is returned when an operation needs an access token and
	// none is stored.
	ErrNotLoggedIn = errors.New("not logged in (run login)")
)

// API is the subset of the platform client the portal drives.
type API interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, p model.Profile, password string) (string, error)
	UploadCV(ctx context.Context, stagiaireID, token string, cv api.CVFile) (string, error)
	DownloadCV(ctx context.Context, stagiaireID string) (string, []byte, error)
	ListOffres(ctx context.Context) ([]model.Offer, error)
	Candidater(ctx context.Context, app model.Application, token string) (string, error)
	Recommandations(ctx context.Context, stagiaireID string) ([]model.Recommendation, error)
	StagiaireStats(ctx context.Context, stagiaireID string) (model.Stats, error)
	GlobalStats(ctx context.Context) (model.GlobalStats, error)
}

var _ API = (*api.Client)(nil)

// OfferFilter narrows the catalog before it is rendered.
type OfferFilter interface {
	Apply(offers []model.Offer) []model.Offer
}

// Portal wires the API client, session store and page together.
type Portal struct {
	api         API
	store       session.Store
	page        *render.Page
	renderer    render.Renderer
	chart       chart.BarRenderer
	navigator   search.Navigator
	resultsPage string
	filter      OfferFilter
	logger      *slog.Logger
}

// Option customises a Portal.
type Option func(*Portal)

// WithChart sets the renderer the stats are drawn with.
func WithChart(c chart.BarRenderer) Option {
	return func(p *Portal) { p.chart = c }
}

// WithNavigator sets where searches send the user.
func WithNavigator(n search.Navigator, resultsPage string) Option {
	return func(p *Portal) {
		p.navigator = n
		p.resultsPage = resultsPage
	}
}

// WithOfferFilter narrows LoadOffres output.
func WithOfferFilter(f OfferFilter) Option {
	return func(p *Portal) { p.filter = f }
}

const defaultResultsPage = "search_results.html"

// New creates a portal. Without options, stats are drawn on the terminal and
// searches only report the target URL.
func New(client API, store session.Store, page *render.Page, renderer render.Renderer, logger *slog.Logger, opts ...Option) *Portal {
	p := &Portal{
		api:         client,
		store:       store,
		page:        page,
		renderer:    renderer,
		chart:       chart.NewTerminalRenderer(0),
		resultsPage: defaultResultsPage,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Page returns the page the portal renders into.
func (p *Portal) Page() *render.Page {
	return p.page
}

// Session returns the persisted session as it is right now.
func (p *Portal) Session() (model.Session, error) {
	return session.Load(p.store)
}

// requireSession loads the session and checks the values an operation needs.
func (p *Portal) requireSession(needToken bool) (model.Session, error) {
	sess, err := session.Load(p.store)
	if err != nil {
		return model.Session{}, err
	}
	if !sess.HasIdentity() {
		return sess, ErrNoIdentity
	}
	if needToken && !sess.HasToken() {
		return sess, ErrNotLoggedIn
	}
	return sess, nil
}

// show writes a success message into region.
func (p *Portal) show(region, msg string) {
	p.page.Region(region).Replace(p.renderer.Status(msg, false), false)
}

// fail writes the user-facing form of err into region and logs it.
func (p *Portal) fail(region, op string, err error) {
	p.page.Region(region).Replace(p.renderer.Status(model.UserMessage(err), true), true)
	p.logger.Error("operation failed",
		"op", op,
		"outcome", model.OutcomeOf(err).String(),
		"error", err,
	)
}
