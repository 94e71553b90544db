// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/moodrec/internal/app"
	"github.com/tomtom215/moodrec/internal/catalog"
	"github.com/tomtom215/moodrec/internal/logging"
	"github.com/tomtom215/moodrec/internal/recommend"
)

func newGenresCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "genres <positive|neutral|negative>",
		Short: "Show the genre affinities of a sentiment label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label, err := recommend.ParseLabel(args[0])
			if err != nil {
				return err
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			table, err := app.LoadAffinity(cfg.Affinity.File)
			if err != nil {
				return err
			}

			weights := table.WeightsFor(label)
			return opts.print(cmd, weights, genresTable(label, weights))
		},
	}
}

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List, import or export the media catalog",
	}
	cmd.AddCommand(
		newCatalogListCmd(opts),
		newCatalogImportCmd(opts),
		newCatalogExportCmd(opts),
	)
	return cmd
}

func newCatalogListCmd(opts *rootOptions) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := recommend.ParseMediaKind(kind)
			if err != nil {
				return err
			}
			c, err := opts.loadCatalog(cmd)
			if err != nil {
				return err
			}
			items := c.Filter(k)
			return opts.print(cmd, items, catalogTable(c.Source(), items))
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "Restrict to movie or book")
	return cmd
}

func newCatalogImportCmd(opts *rootOptions) *cobra.Command {
	var (
		store string
		path  string
	)
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a YAML or JSON catalog file into a persistent store",
		Long: `Validate a catalog file and write it into a badger or sqlite store. The
store's previous contents are replaced.

Examples:
  moodrec catalog import catalog.yaml --store badger --path ./data/catalog
  moodrec catalog import catalog.json --store sqlite --path ./data/catalog.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := args[0]
			c, err := catalog.Load(cmd.Context(), catalog.NewFileProvider(file), logging.Logger())
			if err != nil {
				return err
			}

			dst, err := catalog.OpenStore(store, path)
			if err != nil {
				return err
			}
			defer func() { _ = dst.Close() }()

			n, err := dst.Import(cmd.Context(), "file:"+file, c.Items())
			if err != nil {
				return fmt.Errorf("import catalog: %w", err)
			}

			result := importResult{Store: store, Path: path, Source: file, Imported: n}
			return opts.print(cmd, result, importTable(result))
		},
	}
	cmd.Flags().StringVar(&store, "store", catalog.SourceBadger, "Store kind: badger or sqlite")
	cmd.Flags().StringVar(&path, "path", "", "Store directory (badger) or database file (sqlite)")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}

func newCatalogExportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the configured catalog to a YAML or JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadCatalog(cmd)
			if err != nil {
				return err
			}
			if err := catalog.WriteFile(args[0], c.Items()); err != nil {
				return fmt.Errorf("export catalog: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d items to %s\n", c.Len(), args[0])
			return nil
		},
	}
}

// loadCatalog opens the configured catalog source without building an engine.
func (o *rootOptions) loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	provider, closeFn, err := catalog.Open(cfg.Catalog.Source, cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = closeFn() }()
	return catalog.Load(cmd.Context(), provider, logging.Logger())
}
