package main

import (
	"github.com/spf13/cobra"

	"jobmatch-backend/internal/candidate"
	"jobmatch-backend/internal/matching"
	"jobmatch-backend/internal/recommendations"
)

type matchOutput struct {
	Profile candidate.Profile `json:"profile"`
	Matches []matching.Match  `json:"matches"`
}

type recommendOutput struct {
	Profile         candidate.Profile                `json:"profile"`
	Recommendations []recommendations.Recommendation `json:"recommendations"`
}

func newMatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "match <file>",
		Short: "Rank catalog jobs against a résumé",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}
			p, err := readProfile(cmd.Context(), engine, args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), matchOutput{
				Profile: p,
				Matches: matching.Score(p, engine.Catalog.Records()),
			})
		},
	}
}

func newRecommendCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend <file>",
		Short: "Suggest learning resources for skills missing from the best matching jobs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}
			p, err := readProfile(cmd.Context(), engine, args[0])
			if err != nil {
				return err
			}
			ranked := matching.Score(p, engine.Catalog.Records())
			missing := matching.MissingSkillsFromTop(ranked, opts.topJobs)
			return writeJSON(cmd.OutOrStdout(), recommendOutput{
				Profile:         p,
				Recommendations: engine.Recommender.Recommend(missing),
			})
		},
	}
}
