package bootstrap

import (
	"fmt"
	"strings"

	"jobmatch-backend/internal/candidate"
	"jobmatch-backend/internal/jobs"
	"jobmatch-backend/internal/recommendations"
	"jobmatch-backend/internal/skills"
)

// EngineOptions selects the data tables and matching mode. Empty paths use the embedded defaults.
type EngineOptions struct {
	LexiconPath string
	CatalogPath string
	MatchMode   string
}

// Engine bundles the pure extraction and matching components.
type Engine struct {
	Lexicon     skills.Lexicon
	MatchMode   skills.MatchMode
	Catalog     *jobs.Catalog
	Extractor   *candidate.Extractor
	Recommender *recommendations.Engine
}

// BuildEngine loads the lexicon and catalog and constructs the extractor and recommender.
func BuildEngine(opts EngineOptions) (Engine, error) {
	mode, err := skills.ParseMatchMode(opts.MatchMode)
	if err != nil {
		return Engine{}, err
	}

	lexicon := skills.Default()
	if path := strings.TrimSpace(opts.LexiconPath); path != "" {
		if lexicon, err = skills.LoadFile(path); err != nil {
			return Engine{}, fmt.Errorf("load skill lexicon: %w", err)
		}
	}

	catalog := jobs.Default()
	if path := strings.TrimSpace(opts.CatalogPath); path != "" {
		if catalog, err = jobs.LoadFile(path); err != nil {
			return Engine{}, fmt.Errorf("load job catalog: %w", err)
		}
	}

	return Engine{
		Lexicon:     lexicon,
		MatchMode:   mode,
		Catalog:     catalog,
		Extractor:   candidate.NewExtractor(lexicon, mode),
		Recommender: recommendations.Default(),
	}, nil
}
