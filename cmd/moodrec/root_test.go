// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/moodrec/internal/catalog"
	"github.com/tomtom215/moodrec/internal/recommend"
)

// run executes the CLI against an isolated config file and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("catalog:\n  source: static\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--log-level", "disabled", "--config", cfgPath}, args...))

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func decodeJSON(t *testing.T, out string, v any) {
	t.Helper()
	if err := json.Unmarshal([]byte(out), v); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
}

func TestRecommendCommand(t *testing.T) {
	out, err := run(t, "", "recommend", "--positive", "1", "-k", "3", "-o", "json")
	if err != nil {
		t.Fatalf("recommend error = %v", err)
	}

	var resp recommend.Response
	decodeJSON(t, out, &resp)
	if resp.Dominant != recommend.Positive {
		t.Errorf("Dominant = %v, want Positive", resp.Dominant)
	}
	if n := len(resp.Recommendations); n == 0 || n > 3 {
		t.Errorf("len(Recommendations) = %d, want 1..3", n)
	}
	for i := 1; i < len(resp.Recommendations); i++ {
		if resp.Recommendations[i].Score > resp.Recommendations[i-1].Score {
			t.Errorf("recommendations not sorted by score at %d", i)
		}
	}
}

func TestRecommendCommand_Table(t *testing.T) {
	out, err := run(t, "", "recommend", "--negative", "1", "-k", "2")
	if err != nil {
		t.Fatalf("recommend error = %v", err)
	}
	if !strings.Contains(out, "Mood: Negative") {
		t.Errorf("table output missing mood title:\n%s", out)
	}
}

func TestRecommendCommand_Errors(t *testing.T) {
	t.Run("invalid score", func(t *testing.T) {
		_, err := run(t, "", "recommend", "--positive", "0.5", "--neutral", "0.2")
		var scoreErr *recommend.InvalidScoreError
		if !errors.As(err, &scoreErr) {
			t.Errorf("error = %v, want InvalidScoreError", err)
		}
	})

	t.Run("negative k", func(t *testing.T) {
		_, err := run(t, "", "recommend", "--positive", "1", "--k=-1")
		var paramErr *recommend.InvalidParameterError
		if !errors.As(err, &paramErr) {
			t.Errorf("error = %v, want InvalidParameterError", err)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		if _, err := run(t, "", "recommend", "--positive", "1", "--kind", "podcast"); err == nil {
			t.Error("error = nil, want invalid kind")
		}
	})

	t.Run("unknown output format", func(t *testing.T) {
		if _, err := run(t, "", "recommend", "--positive", "1", "-o", "xml"); err == nil {
			t.Error("error = nil, want invalid format")
		}
	})
}

func TestAnalyzeCommand(t *testing.T) {
	out, err := run(t, "", "analyze", "a", "wonderful", "happy", "day", "-o", "json")
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}

	var resp recommend.Response
	decodeJSON(t, out, &resp)
	if err := resp.Score.Validate(); err != nil {
		t.Errorf("score %v is invalid: %v", resp.Score, err)
	}
	if resp.Metadata.Provider == "" {
		t.Error("Metadata.Provider is empty")
	}
}

func TestAnalyzeCommand_Stdin(t *testing.T) {
	out, err := run(t, "gloomy and tired\n", "analyze", "-o", "yaml")
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}
	if !strings.Contains(out, "recommendations:") {
		t.Errorf("yaml output missing recommendations:\n%s", out)
	}

	if _, err := run(t, "   \n", "analyze"); err == nil {
		t.Error("blank stdin error = nil, want error")
	}
}

func TestBatchCommand(t *testing.T) {
	out, err := run(t, "what a great film\n\nthis is awful\n", "batch", "-k", "2", "-o", "json")
	if err != nil {
		t.Fatalf("batch error = %v", err)
	}

	var resp recommend.BatchResponse
	decodeJSON(t, out, &resp)
	if resp.Summary.Total != 2 {
		t.Errorf("Summary.Total = %d, want 2 (blank lines skipped)", resp.Summary.Total)
	}
	if len(resp.Items) != 2 || resp.Items[1].Preview != "this is awful" {
		t.Errorf("Items = %+v, want input order", resp.Items)
	}
}

func TestBatchCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "texts.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "", "batch", path)
	if err != nil {
		t.Fatalf("batch error = %v", err)
	}
	if !strings.Contains(out, "Batch: 3 texts") {
		t.Errorf("table output missing summary:\n%s", out)
	}

	if _, err := run(t, "", "batch", filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("missing file error = nil, want error")
	}
}

func TestGenresCommand(t *testing.T) {
	out, err := run(t, "", "genres", "negative", "-o", "json")
	if err != nil {
		t.Fatalf("genres error = %v", err)
	}

	var weights []recommend.GenreWeight
	decodeJSON(t, out, &weights)
	if len(weights) == 0 {
		t.Fatal("no genres for negative")
	}
	for _, w := range weights {
		if w.Label != recommend.Negative {
			t.Errorf("Label = %v, want Negative", w.Label)
		}
	}

	if _, err := run(t, "", "genres", "angry"); err == nil {
		t.Error("unknown label error = nil, want error")
	}
}

func TestCatalogListCommand(t *testing.T) {
	out, err := run(t, "", "catalog", "list", "--kind", "book", "-o", "json")
	if err != nil {
		t.Fatalf("catalog list error = %v", err)
	}

	var items []recommend.MediaItem
	decodeJSON(t, out, &items)
	if len(items) == 0 {
		t.Fatal("no books in static catalog")
	}
	for _, item := range items {
		if item.Kind != recommend.KindBook {
			t.Errorf("%s kind = %s, want book", item.Title, item.Kind)
		}
	}
}

func TestCatalogImportAndExport(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "catalog.yaml")
	items := []recommend.MediaItem{
		{Title: "Laugh Riot", Kind: recommend.KindMovie, Genres: []string{"Comedy"}, Year: 2001},
		{Title: "Happy Pages", Kind: recommend.KindBook, Genres: []string{"Comedy"}, Creator: "A. Writer"},
	}
	if err := catalog.WriteFile(src, items); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	db := filepath.Join(dir, "catalog.db")
	out, err := run(t, "", "catalog", "import", src, "--store", "sqlite", "--path", db, "-o", "json")
	if err != nil {
		t.Fatalf("catalog import error = %v", err)
	}
	var result importResult
	decodeJSON(t, out, &result)
	if result.Imported != 2 {
		t.Errorf("Imported = %d, want 2", result.Imported)
	}

	out, err = run(t, "", "--catalog-source", "sqlite", "--catalog-path", db, "catalog", "list", "-o", "json")
	if err != nil {
		t.Fatalf("catalog list error = %v", err)
	}
	var listed []recommend.MediaItem
	decodeJSON(t, out, &listed)
	if len(listed) != 2 || listed[0].Title != "Laugh Riot" {
		t.Errorf("listed = %+v, want the imported items in order", listed)
	}

	exported := filepath.Join(dir, "export.json")
	if _, err := run(t, "", "--catalog-source", "sqlite", "--catalog-path", db, "catalog", "export", exported); err != nil {
		t.Fatalf("catalog export error = %v", err)
	}
	reloaded, err := catalog.NewFileProvider(exported).Load(context.Background())
	if err != nil {
		t.Fatalf("reload export: %v", err)
	}
	if len(reloaded) != 2 {
		t.Errorf("exported %d items, want 2", len(reloaded))
	}
}

func TestReadLines(t *testing.T) {
	got, err := readLines(strings.NewReader("  first \n\n\t\nsecond\r\n"))
	if err != nil {
		t.Fatalf("readLines error = %v", err)
	}
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("readLines = %q, want [first second]", got)
	}
}
