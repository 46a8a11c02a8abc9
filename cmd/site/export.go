package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jobmetric.dev/internal/config"
	"jobmetric.dev/internal/content"
	"jobmetric.dev/internal/models"
	"jobmetric.dev/internal/render"
	"jobmetric.dev/internal/services"
	"jobmetric.dev/pkg/logger"
)

func exportCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <output-dir>",
		Short: "Renders every page and API document to a static output directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			outputDir := args[0]

			reg, err := content.Load(cfg.DataDir)
			if err != nil {
				return errors.Wrap(err, "could not load content")
			}

			if err := exportSite(ctx, outputDir, reg); err != nil {
				return err
			}

			logger.Info(ctx, "export complete", zap.String("dir", outputDir))

			return nil
		},
	}

	return cmd
}

// exportSite writes the rendered pages and JSON snapshots of the content
// API into outputDir. The export never raises the newsletter submitted
// flag; static pages always carry the blank signup form.
func exportSite(ctx context.Context, outputDir string, reg *content.Registry) error {
	teamService := services.NewTeamService(reg.Team)
	renderer, err := render.New()
	if err != nil {
		return err
	}

	var home bytes.Buffer
	if err := renderer.HomePage(&home, render.ComposeHome(reg, models.NewsletterStatus{})); err != nil {
		return err
	}

	var team bytes.Buffer
	if err := renderer.TeamPage(&team, render.ComposeTeam(teamService.Grouped(), models.NewsletterStatus{})); err != nil {
		return err
	}

	pages := map[string][]byte{
		"index.html":      home.Bytes(),
		"team/index.html": team.Bytes(),
	}

	snapshots := map[string]any{
		"api/features.json":     reg.Features,
		"api/packages.json":     reg.Packages,
		"api/projects.json":     reg.Projects,
		"api/stats.json":        reg.Stats,
		"api/team.json":         reg.Team,
		"api/team_grouped.json": teamService.Grouped(),
		"api/testimonials.json": reg.Testimonials,
		"api/blog.json":         reg.Posts,
	}

	for name, data := range pages {
		if err := writeArtifact(ctx, outputDir, name, data); err != nil {
			return err
		}
	}

	for name, v := range snapshots {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return errors.Wrapf(err, "could not marshal %s", name)
		}
		if err := writeArtifact(ctx, outputDir, name, data); err != nil {
			return err
		}
	}

	return nil
}

// writeArtifact writes one file under outputDir, creating directories as
// needed
func writeArtifact(ctx context.Context, outputDir, name string, data []byte) error {
	path := filepath.Join(outputDir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "could not create directory for %s", name)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "could not write %s", name)
	}

	logger.Info(ctx, "wrote artifact", zap.String("file", name), zap.Int("bytes", len(data)))

	return nil
}
