// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/moodrec/internal/recommend"
)

// Key layout. Each import writes its items under a new generation; the
// meta record names the live one. Item keys carry a zero-padded position so
// iteration returns items in catalog order.
const (
	itemKeyPrefix = "catalog:gen:"
	metaKey       = "catalog:meta"
)

// ImportMeta describes the last Import into a BadgerStore.
type ImportMeta struct {
	Count      int       `json:"count"`
	Source     string    `json:"source"`
	ImportedAt time.Time `json:"imported_at"`
	Generation uint64    `json:"generation"`
}

// BadgerStore persists a catalog in BadgerDB.
type BadgerStore struct {
	db     *badger.DB
	ownsDB bool
}

// OpenBadgerStore opens (or creates) a BadgerDB at path. Close releases it.
func OpenBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Suppress BadgerDB logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for catalog: %w", err)
	}
	return &BadgerStore{db: db, ownsDB: true}, nil
}

// NewBadgerStore uses an already open database. Close leaves it open.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// Import replaces the stored catalog with items. Items are normalized and
// validated first; nothing is written if any item is invalid. The new items
// become visible only when the meta record is switched to their generation,
// so a failed import leaves the previous catalog in place.
func (s *BadgerStore) Import(ctx context.Context, source string, items []recommend.MediaItem) (int, error) {
	c, err := New(source, items)
	if err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	prev, err := s.Meta(ctx)
	if err != nil {
		return 0, err
	}
	var gen uint64 = 1
	if prev != nil {
		gen = prev.Generation + 1
	}

	// Leftovers from an import that failed before its swap.
	if err := s.db.DropPrefix(generationPrefix(gen)); err != nil {
		return 0, fmt.Errorf("clear staged catalog: %w", err)
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	for i, item := range c.items {
		data, err := json.Marshal(item)
		if err != nil {
			return 0, fmt.Errorf("marshal item %q: %w", item.Title, err)
		}
		if err := wb.Set(itemKey(gen, i), data); err != nil {
			return 0, fmt.Errorf("set item %q: %w", item.Title, err)
		}
	}
	if err := wb.Flush(); err != nil {
		return 0, fmt.Errorf("flush catalog: %w", err)
	}

	meta, err := json.Marshal(ImportMeta{
		Count:      c.Len(),
		Source:     source,
		ImportedAt: time.Now().UTC(),
		Generation: gen,
	})
	if err != nil {
		return 0, fmt.Errorf("marshal import meta: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(metaKey), meta)
	})
	if err != nil {
		return 0, fmt.Errorf("switch catalog generation: %w", err)
	}

	if prev != nil {
		if err := s.db.DropPrefix(generationPrefix(prev.Generation)); err != nil {
			return c.Len(), fmt.Errorf("catalog imported, previous generation not removed: %w", err)
		}
	}
	return c.Len(), nil
}

// Load implements Provider. An empty store yields no items.
func (s *BadgerStore) Load(ctx context.Context) ([]recommend.MediaItem, error) {
	var items []recommend.MediaItem

	err := s.db.View(func(txn *badger.Txn) error {
		meta, err := readMeta(txn)
		if err != nil || meta == nil {
			return err
		}

		opts := badger.DefaultIteratorOptions
		opts.Prefix = generationPrefix(meta.Generation)
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var item recommend.MediaItem
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &item)
			})
			if err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return items, nil
}

// Meta returns details of the last import, or nil if nothing was imported.
func (s *BadgerStore) Meta(ctx context.Context) (*ImportMeta, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var meta *ImportMeta
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		meta, err = readMeta(txn)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load import meta: %w", err)
	}
	return meta, nil
}

func readMeta(txn *badger.Txn) (*ImportMeta, error) {
	item, err := txn.Get([]byte(metaKey))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	meta := &ImportMeta{}
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, meta)
	}); err != nil {
		return nil, err
	}
	return meta, nil
}

// Name implements Provider.
func (s *BadgerStore) Name() string { return "badger" }

// Close closes the database if the store opened it.
func (s *BadgerStore) Close() error {
	if s.ownsDB {
		return s.db.Close()
	}
	return nil
}

func generationPrefix(gen uint64) []byte {
	return []byte(fmt.Sprintf("%s%d:", itemKeyPrefix, gen))
}

func itemKey(gen uint64, i int) []byte {
	return append(generationPrefix(gen), fmt.Sprintf("%08d", i)...)
}
