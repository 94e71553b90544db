// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/moodrec/internal/app"
	"github.com/tomtom215/moodrec/internal/cli"
	"github.com/tomtom215/moodrec/internal/config"
	"github.com/tomtom215/moodrec/internal/logging"
)

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	output        string
	configPath    string
	catalogSource string
	catalogPath   string
	provider      string
	affinityFile  string
	logLevel      string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "moodrec",
		Short: "Sentiment-weighted movie and book recommendations",
		Long: `moodrec classifies text into positive, neutral and negative sentiment and
ranks a catalog of movies and books by how well their genres suit the mood.

Examples:
  moodrec analyze "what a wonderful, uplifting day"
  moodrec recommend --positive 0.7 --neutral 0.2 --negative 0.1 -k 3 --kind book
  moodrec batch reviews.txt -o json
  moodrec genres negative
  moodrec catalog import catalog.yaml --store badger --path ./data/catalog`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := cli.ParseFormat(opts.output); err != nil {
				return err
			}
			logging.Init(logging.Config{
				Level:  opts.logLevel,
				Format: "console",
				Output: cmd.ErrOrStderr(),
			})
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.output, "output", "o", string(cli.FormatTable), "Output format: table, yaml or json")
	pf.StringVar(&opts.configPath, "config", "", "Config file (default: CONFIG_PATH or ./config.yaml)")
	pf.StringVar(&opts.catalogSource, "catalog-source", "", "Catalog source: static, file, badger or sqlite")
	pf.StringVar(&opts.catalogPath, "catalog-path", "", "Catalog file or store path")
	pf.StringVar(&opts.provider, "provider", "", "Sentiment provider: lexicon or http")
	pf.StringVar(&opts.affinityFile, "affinity", "", "Genre affinity file (YAML or JSON)")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "Log level")

	cmd.AddCommand(
		newAnalyzeCmd(opts),
		newRecommendCmd(opts),
		newBatchCmd(opts),
		newGenresCmd(opts),
		newCatalogCmd(opts),
	)
	return cmd
}

// loadConfig reads the config and applies flag overrides.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFrom(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if o.catalogSource != "" {
		cfg.Catalog.Source = o.catalogSource
	}
	if o.catalogPath != "" {
		cfg.Catalog.Path = o.catalogPath
	}
	if o.provider != "" {
		cfg.Sentiment.Provider = o.provider
	}
	if o.affinityFile != "" {
		cfg.Affinity.File = o.affinityFile
	}
	return cfg, nil
}

// buildApp loads the config and assembles the engine. The caller closes
// the returned App.
func (o *rootOptions) buildApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	return app.Build(cmd.Context(), cfg, logging.Logger())
}

// print writes result in the selected output format.
func (o *rootOptions) print(cmd *cobra.Command, result any, tbl *cli.Table) error {
	format, err := cli.ParseFormat(o.output)
	if err != nil {
		return err
	}
	return cli.Output(cmd.OutOrStdout(), result, cli.Options{Format: format, Table: tbl})
}
