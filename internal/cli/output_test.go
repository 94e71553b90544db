// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

type sample struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Output(&buf, sample{Name: "test", Value: 123}, Options{Format: FormatJSON}); err != nil {
		t.Fatalf("Output error: %v", err)
	}

	var got sample
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if got.Name != "test" || got.Value != 123 {
		t.Errorf("decoded = %+v, want {test 123}", got)
	}
}

func TestOutput_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Output(&buf, sample{Name: "test", Value: 123}, Options{Format: FormatYAML}); err != nil {
		t.Fatalf("Output error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "name: test") {
		t.Errorf("output should contain 'name: test', got: %s", out)
	}
	if !strings.Contains(out, "value: 123") {
		t.Errorf("output should contain 'value: 123', got: %s", out)
	}
}

func TestOutput_Table(t *testing.T) {
	tbl := &Table{
		Title:   "Recommendations",
		Headers: []string{"#", "Title"},
		Footer:  []string{"2 results"},
	}
	tbl.AddRow("1", "Laugh Riot")
	tbl.AddRow("2", "Deep Sea")

	var buf bytes.Buffer
	if err := Output(&buf, nil, Options{Format: FormatTable, Table: tbl}); err != nil {
		t.Fatalf("Output error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Recommendations", "Title", "Laugh Riot", "Deep Sea", "2 results"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Laugh Riot") > strings.Index(out, "Deep Sea") {
		t.Error("rows are out of order")
	}
}

func TestOutput_TableEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := Output(&buf, nil, Options{Format: FormatTable, Table: &Table{Headers: []string{"Genre"}}})
	if err != nil {
		t.Fatalf("Output error: %v", err)
	}
	if !strings.Contains(buf.String(), "(no results)") {
		t.Errorf("output = %q, want no results marker", buf.String())
	}
}

func TestOutput_Errors(t *testing.T) {
	var buf bytes.Buffer
	if err := Output(&buf, sample{}, Options{Format: FormatTable}); err == nil {
		t.Error("table format without a table should fail")
	}
	if err := Output(&buf, sample{}, Options{Format: "xml"}); err == nil {
		t.Error("unknown format should fail")
	}
}
