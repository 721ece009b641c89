package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shohaib/portfolio-cms/internal/service"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file|->",
		Short: "Write all content as a JSON or YAML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			f := formatJSON
			if path != "-" {
				var err error
				if f, err = formatOf(path); err != nil {
					return err
				}
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

			snap, err := store.Snapshot(ctx)
			if err != nil {
				return fmt.Errorf("failed to read content: %w", err)
			}
			raw, err := encodeDocument(service.BuildContent(ctx, snap, nil), f)
			if err != nil {
				return fmt.Errorf("failed to encode content: %w", err)
			}

			if path == "-" {
				_, err = cmd.OutOrStdout().Write(raw)
				return err
			}
			if err := os.WriteFile(path, raw, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			return nil
		},
	}
}
