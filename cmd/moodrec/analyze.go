// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/moodrec/internal/recommend"
)

// maxLineBytes bounds a single line read by batch.
const maxLineBytes = 1 << 20

// rankFlags are the ranking options shared by analyze, recommend and batch.
type rankFlags struct {
	k    int
	kind string
	mode string
}

func (f *rankFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.k, "k", "k", 0, "Number of recommendations (default from config)")
	cmd.Flags().StringVar(&f.kind, "kind", "", "Restrict to movie or book")
	cmd.Flags().StringVar(&f.mode, "mode", "", "Scoring mode: weighted or dominant")
}

func (f *rankFlags) parse() (recommend.MediaKind, recommend.Mode, error) {
	kind, err := recommend.ParseMediaKind(f.kind)
	if err != nil {
		return "", "", err
	}
	mode, err := recommend.ParseMode(f.mode)
	if err != nil {
		return "", "", err
	}
	return kind, mode, nil
}

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	var rf rankFlags
	cmd := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Classify text and recommend media for its mood",
		Long: `Classify text with the configured sentiment provider and rank the catalog
for the resulting score. Without arguments the text is read from stdin.

Examples:
  moodrec analyze "I can't stop smiling today"
  echo "gloomy and tired" | moodrec analyze --kind book -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, mode, err := rf.parse()
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), maxLineBytes))
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(data)
			}
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("no text to analyze")
			}

			a, err := opts.buildApp(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			resp, err := a.Engine.RecommendText(cmd.Context(), recommend.TextRequest{
				Text: text,
				K:    rf.k,
				Kind: kind,
				Mode: mode,
			})
			if err != nil {
				return err
			}
			return opts.print(cmd, resp, responseTable(resp))
		},
	}
	rf.register(cmd)
	return cmd
}

func newRecommendCmd(opts *rootOptions) *cobra.Command {
	var (
		rf    rankFlags
		score recommend.SentimentScore
	)
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend media for a known sentiment score",
		Long: `Rank the catalog for a sentiment score. The three probabilities must each be
within [0, 1] and sum to 1.

Examples:
  moodrec recommend --positive 1
  moodrec recommend --positive 0.2 --neutral 0.3 --negative 0.5 -k 10 --mode dominant`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, mode, err := rf.parse()
			if err != nil {
				return err
			}

			a, err := opts.buildApp(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			resp, err := a.Engine.Recommend(cmd.Context(), recommend.Request{
				Score: score,
				K:     rf.k,
				Kind:  kind,
				Mode:  mode,
			})
			if err != nil {
				return err
			}
			return opts.print(cmd, resp, responseTable(resp))
		},
	}
	rf.register(cmd)
	cmd.Flags().Float64Var(&score.Positive, "positive", 0, "Probability of positive sentiment")
	cmd.Flags().Float64Var(&score.Neutral, "neutral", 0, "Probability of neutral sentiment")
	cmd.Flags().Float64Var(&score.Negative, "negative", 0, "Probability of negative sentiment")
	return cmd
}

func newBatchCmd(opts *rootOptions) *cobra.Command {
	var rf rankFlags
	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Analyze newline-delimited texts from a file or stdin",
		Long: `Classify every non-blank line of a file (or stdin when the file is omitted
or "-") and recommend media for each one.

Examples:
  moodrec batch reviews.txt
  cat tweets.txt | moodrec batch -k 3 -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, mode, err := rf.parse()
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			texts, err := readLines(in)
			if err != nil {
				return err
			}
			if len(texts) == 0 {
				return fmt.Errorf("no texts to analyze")
			}

			a, err := opts.buildApp(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			resp, err := a.Engine.AnalyzeBatch(cmd.Context(), recommend.BatchRequest{
				Texts: texts,
				K:     rf.k,
				Kind:  kind,
				Mode:  mode,
			})
			if err != nil {
				return err
			}
			return opts.print(cmd, resp, batchTable(resp))
		},
	}
	rf.register(cmd)
	return cmd
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}
