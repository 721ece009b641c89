package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all content with a JSON or YAML document",
		Long: "Reads a document in the shape served by GET /api/cms/content and " +
			"replaces every collection of the configured backend with it.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			f, err := formatOf(path)
			if err != nil {
				return err
			}
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			doc, err := decodeDocument(raw, f)
			if err != nil {
				return err
			}
			snap, err := toSnapshot(doc, nil)
			if err != nil {
				return fmt.Errorf("invalid document %s: %w", path, err)
			}

			cfg, err := opts.config()
			if err != nil {
				return err
			}
			store, closeStore, err := openContentStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := store.Import(ctx, snap); err != nil {
				return fmt.Errorf("failed to import %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d categories, %d skills, %d projects, %d experience, %d education entries\n",
				len(snap.Categories), len(snap.Skills), len(snap.Projects), len(snap.Experience), len(snap.Education))
			return nil
		},
	}
}
