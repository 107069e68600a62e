package main

import (
	"github.com/spf13/cobra"
)

func newExtractCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "extract <file> [file...]",
		Short: "Extract candidate profiles from PDF, DOCX or TXT résumés",
		Long:  "Decodes each résumé and prints the extracted profiles as a JSON array in argument order.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}
			profiles, err := readProfiles(cmd.Context(), engine, args)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), profiles)
		},
	}
}
