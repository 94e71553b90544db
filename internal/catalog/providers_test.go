// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package catalog

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moodrec/internal/recommend"
)

func TestStaticProvider(t *testing.T) {
	items, err := NewStaticProvider().Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(items) != 60 {
		t.Fatalf("len(items) = %d, want 60", len(items))
	}
	if items[0].Title != "The Pursuit of Happyness" {
		t.Errorf("first item = %q", items[0].Title)
	}
	if items[59].Title != "Pet Sematary" || items[59].Creator != "Stephen King" {
		t.Errorf("last item = %q by %q", items[59].Title, items[59].Creator)
	}

	c, err := New("static", items)
	if err != nil {
		t.Fatalf("built-in catalog invalid: %v", err)
	}
	counts := c.CountsByKind()
	if counts["movie"] != 30 || counts["book"] != 30 {
		t.Errorf("CountsByKind() = %v, want 30/30", counts)
	}

	again, _ := NewStaticProvider().Load(context.Background())
	if again[0].ID != items[0].ID {
		t.Error("static IDs differ between loads")
	}
	items[0].Genres[0] = "Changed"
	if again[0].Genres[0] == "Changed" || builtinItems[0].Genres[0] == "Changed" {
		t.Error("Load() shares genre slices")
	}
}

func TestStaticProvider_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewStaticProvider().Load(ctx); err == nil {
		t.Error("Load() with canceled context succeeded")
	}
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFileProvider(t *testing.T) {
	t.Run("yaml with delimited genre and aliases", func(t *testing.T) {
		path := writeFile(t, "catalog.yaml", `items:
  - title: The Road
    kind: book
    author: Cormac McCarthy
    genre: Fiction, Post-Apocalyptic
    year: 2006
  - title: Inception
    kind: movie
    genres: [Action, Adventure]
    release_year: 2010
    rating: 8.8
`)
		items, err := NewFileProvider(path).Load(context.Background())
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("len(items) = %d, want 2", len(items))
		}
		if items[0].Creator != "Cormac McCarthy" {
			t.Errorf("Creator = %q", items[0].Creator)
		}
		if want := []string{"Fiction", "Post-Apocalyptic"}; !reflect.DeepEqual(items[0].Genres, want) {
			t.Errorf("Genres = %v, want %v", items[0].Genres, want)
		}
		if items[1].Year != 2010 || items[1].Rating != 8.8 {
			t.Errorf("Inception = %+v", items[1])
		}
	})

	t.Run("json", func(t *testing.T) {
		path := writeFile(t, "catalog.json", `{"items":[{"title":"Up","kind":"movie","genres":["Animation"]}]}`)
		items, err := NewFileProvider(path).Load(context.Background())
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(items) != 1 || items[0].Kind != recommend.KindMovie {
			t.Errorf("items = %+v", items)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := NewFileProvider(filepath.Join(t.TempDir(), "none.yaml")).Load(context.Background()); err == nil {
			t.Error("Load() of missing file succeeded")
		}
	})

	t.Run("empty path", func(t *testing.T) {
		if _, err := NewFileProvider("").Load(context.Background()); err == nil {
			t.Error("Load() with empty path succeeded")
		}
	})
}

func TestWriteFile_RoundTrip(t *testing.T) {
	c, err := New("test", sampleItems())
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := WriteFile(path, c.Items()); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	items, err := NewFileProvider(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(items, c.Items()) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", items, c.Items())
	}
}

func TestBadgerStore(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "badger")

	store, err := OpenBadgerStore(dir)
	if err != nil {
		t.Fatalf("OpenBadgerStore() error = %v", err)
	}

	t.Run("empty store", func(t *testing.T) {
		items, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(items) != 0 {
			t.Errorf("len(items) = %d, want 0", len(items))
		}
		meta, err := store.Meta(ctx)
		if err != nil || meta != nil {
			t.Errorf("Meta() = %v, %v, want nil, nil", meta, err)
		}
	})

	static, _ := NewStaticProvider().Load(ctx)
	n, err := store.Import(ctx, "static", static)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if n != 60 {
		t.Errorf("Import() = %d, want 60", n)
	}

	t.Run("load preserves order", func(t *testing.T) {
		items, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(items) != 60 {
			t.Fatalf("len(items) = %d, want 60", len(items))
		}
		for i := range items {
			if items[i].Title != static[i].Title {
				t.Fatalf("items[%d] = %q, want %q", i, items[i].Title, static[i].Title)
			}
		}
		meta, err := store.Meta(ctx)
		if err != nil || meta == nil || meta.Count != 60 || meta.Source != "static" {
			t.Errorf("Meta() = %+v, %v", meta, err)
		}
	})

	t.Run("reimport replaces", func(t *testing.T) {
		if _, err := store.Import(ctx, "sample", sampleItems()); err != nil {
			t.Fatalf("Import() error = %v", err)
		}
		items, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(items) != 3 || items[0].Title != "Up" {
			t.Errorf("after reimport: %d items, first %q", len(items), items[0].Title)
		}
	})

	t.Run("invalid import writes nothing", func(t *testing.T) {
		bad := append(sampleItems(), recommend.MediaItem{Title: "", Kind: recommend.KindBook})
		if _, err := store.Import(ctx, "bad", bad); err == nil {
			t.Fatal("Import() of invalid items succeeded")
		}
		items, _ := store.Load(ctx)
		if len(items) != 3 {
			t.Errorf("len(items) = %d after failed import, want 3", len(items))
		}
	})

	t.Run("unfinished import stays invisible", func(t *testing.T) {
		meta, err := store.Meta(ctx)
		if err != nil || meta == nil {
			t.Fatalf("Meta() = %v, %v", meta, err)
		}
		live := meta.Generation

		// Items staged under the next generation without a meta switch, as
		// left behind by an import whose flush failed.
		stray, _ := json.Marshal(recommend.MediaItem{Title: "Stray", Kind: recommend.KindBook, Genres: []string{"Drama"}})
		err = store.db.Update(func(txn *badger.Txn) error {
			return txn.Set(itemKey(live+1, 99), stray)
		})
		if err != nil {
			t.Fatalf("stage stray item: %v", err)
		}

		items, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(items) != 3 {
			t.Errorf("len(items) = %d with a staged generation, want 3", len(items))
		}

		if _, err := store.Import(ctx, "sample", sampleItems()); err != nil {
			t.Fatalf("Import() error = %v", err)
		}
		items, _ = store.Load(ctx)
		if len(items) != 3 {
			t.Errorf("len(items) = %d after import over stray keys, want 3", len(items))
		}
		meta, _ = store.Meta(ctx)
		if meta == nil || meta.Generation != live+1 {
			t.Errorf("Meta().Generation = %+v, want %d", meta, live+1)
		}
		if n := countKeys(t, store, generationPrefix(live)); n != 0 {
			t.Errorf("previous generation still has %d keys", n)
		}
	})

	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	t.Run("persists across reopen", func(t *testing.T) {
		reopened, err := OpenBadgerStore(dir)
		if err != nil {
			t.Fatalf("OpenBadgerStore() error = %v", err)
		}
		defer reopened.Close()

		c, err := Load(ctx, reopened, zerolog.Nop())
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if c.Len() != 3 || c.Source() != "badger" {
			t.Errorf("catalog = %d items from %s", c.Len(), c.Source())
		}
	})
}

func countKeys(t *testing.T, store *BadgerStore, prefix []byte) int {
	t.Helper()
	n := 0
	err := store.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("count keys: %v", err)
	}
	return n
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	store, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("OpenSQLiteStore() error = %v", err)
	}
	defer store.Close()

	if _, err := store.Import(ctx, "sample", sampleItems()); err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	items, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want, _ := New("sample", sampleItems())
	if !reflect.DeepEqual(items, want.Items()) {
		t.Errorf("Load() mismatch:\n got %+v\nwant %+v", items, want.Items())
	}

	static, _ := NewStaticProvider().Load(ctx)
	n, err := store.Import(ctx, "static", static)
	if err != nil || n != 60 {
		t.Fatalf("Import() = %d, %v", n, err)
	}
	items, _ = store.Load(ctx)
	if len(items) != 60 || items[0].Title != static[0].Title {
		t.Errorf("after reimport: %d items, first %q", len(items), items[0].Title)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		source   string
		path     string
		wantName string
		wantErr  bool
	}{
		{"default", "", "", "static", false},
		{"static", SourceStatic, "", "static", false},
		{"file", SourceFile, filepath.Join(dir, "c.yaml"), "file", false},
		{"file without path", SourceFile, "", "", true},
		{"badger", SourceBadger, filepath.Join(dir, "b"), "badger", false},
		{"sqlite", SourceSQLite, filepath.Join(dir, "c.db"), "sqlite", false},
		{"sqlite without path", SourceSQLite, "", "", true},
		{"unknown", "s3", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, closeFn, err := Open(tt.source, tt.path)
			if tt.wantErr {
				if err == nil {
					t.Error("Open() succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			defer func() {
				if err := closeFn(); err != nil {
					t.Errorf("close error = %v", err)
				}
			}()
			if p.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.wantName)
			}
		})
	}
}
