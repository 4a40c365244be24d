package portal

import (
	"context"

	"github.com/amishk599/stagiaire/internal/chart"
	"github.com/amishk599/stagiaire/internal/model"
	"github.com/amishk599/stagiaire/internal/render"
)

const datasetLabel = "Candidatures"

// LoadStats fetches the per-city aggregation and hands it to the chart
// renderer with labels and values in response order.
func (p *Portal) LoadStats(ctx context.Context) (model.Stats, error) {
	sess, err := p.requireSession(false)
	if err != nil {
		p.fail(render.Stats, "stats", err)
		return model.Stats{}, err
	}

	stats, err := p.api.StagiaireStats(ctx, sess.Identity)
	if err != nil {
		p.fail(render.Stats, "stats", err)
		return model.Stats{}, err
	}

	err = p.draw(chart.BarChart{
		Title:        "Candidatures par ville",
		DatasetLabel: datasetLabel,
		Labels:       stats.ParVille.Labels(),
		Values:       stats.ParVille.Values(),
	})
	if err != nil {
		p.fail(render.Stats, "stats", err)
		return model.Stats{}, err
	}
	return stats, nil
}

// LoadGlobalStats charts the platform-wide counters.
func (p *Portal) LoadGlobalStats(ctx context.Context) (model.GlobalStats, error) {
	stats, err := p.api.GlobalStats(ctx)
	if err != nil {
		p.fail(render.Stats, "stats_global", err)
		return model.GlobalStats{}, err
	}

	err = p.draw(chart.BarChart{
		Title:        "Plateforme",
		DatasetLabel: "Total",
		Labels:       []string{"Stagiaires", "Offres", "Candidatures"},
		Values:       []int{stats.Stagiaires, stats.Offres, stats.Candidatures},
	})
	if err != nil {
		p.fail(render.Stats, "stats_global", err)
		return model.GlobalStats{}, err
	}
	return stats, nil
}

func (p *Portal) draw(c chart.BarChart) error {
	out, err := p.chart.RenderBar(c)
	if err != nil {
		return err
	}
	p.page.Region(render.Stats).Replace(out, false)
	return nil
}
