package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"jobmatch-backend/internal/bootstrap"
	"jobmatch-backend/internal/candidate"
	"jobmatch-backend/internal/extract"
	"jobmatch-backend/internal/profiles"
)

type rootOptions struct {
	catalogPath string
	lexiconPath string
	matchMode   string
	topJobs     int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "jobmatch",
		Short:         "Extract candidate profiles from résumés and match them against a job catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.catalogPath, "catalog", os.Getenv("JOB_CATALOG_PATH"), "Path to a JSON job catalog (default: embedded sample jobs)")
	flags.StringVar(&opts.lexiconPath, "lexicon", os.Getenv("SKILL_LEXICON_PATH"), "Path to a JSON skill lexicon (default: embedded lexicon)")
	flags.StringVar(&opts.matchMode, "match-mode", "substring", "Skill matching mode: substring or word")
	flags.IntVar(&opts.topJobs, "top-jobs", profiles.DefaultTopJobs, "Number of top ranked jobs feeding recommendations")

	cmd.AddCommand(
		newExtractCmd(opts),
		newMatchCmd(opts),
		newRecommendCmd(opts),
	)
	return cmd
}

func (o *rootOptions) engine() (bootstrap.Engine, error) {
	return bootstrap.BuildEngine(bootstrap.EngineOptions{
		LexiconPath: o.lexiconPath,
		CatalogPath: o.catalogPath,
		MatchMode:   o.matchMode,
	})
}

// readProfile decodes a résumé file and extracts its profile.
func readProfile(ctx context.Context, engine bootstrap.Engine, path string) (candidate.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return candidate.Profile{}, fmt.Errorf("read %s: %w", path, err)
	}
	text, err := extract.FromBytes(ctx, data, "", path)
	if err != nil {
		return candidate.Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	return engine.Extractor.Extract(text), nil
}

// readProfiles extracts every file concurrently; results keep argument order.
func readProfiles(ctx context.Context, engine bootstrap.Engine, paths []string) ([]candidate.Profile, error) {
	out := make([]candidate.Profile, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, path := range paths {
		g.Go(func() error {
			p, err := readProfile(gctx, engine, path)
			if err != nil {
				return err
			}
			out[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
