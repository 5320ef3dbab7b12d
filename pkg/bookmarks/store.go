// Package bookmarks persists the user's saved record snapshots in a local
// per-user key-value store. The whole set lives under one fixed key and is
// rewritten in full on every mutation; concurrent processes editing bookmarks
// race last-write-wins, which is accepted for this mutation volume.
package bookmarks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/peterbourgon/diskv/v3"

	"github.com/XolaniXAD/cosmic-calendar/pkg/record"
)

// setKey is the fixed namespaced identifier the whole set is stored under.
const setKey = "cosmic-calendar.bookmarks"

// Persistence defines the persistence contract for bookmark snapshots.
type Persistence interface {
	Load() (Set, error)
	Save(s Set) error
	Has(date string) bool
	Add(r *record.Record) error
	Remove(date string) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Open creates a Persistence backed by diskv using the provided config.
func Open(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:  basePath,
		Transform: func(string) []string { return nil },
		// No read cache: every wrapper re-reads the set before writing so
		// edits from another process are picked up.
		CacheSizeMax: 0,
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Load reads the persisted set. A missing key yields an empty set. A legacy
// value holding a JSON array instead of a mapping is treated as absent and
// discarded rather than converted.
func (p *persistence) Load() (Set, error) {
	val, err := p.d.Read(setKey)
	if err != nil {
		if !p.d.Has(setKey) {
			return make(Set), nil
		}
		return nil, fmt.Errorf("bookmarks: read store: %w", err)
	}
	if len(val) == 0 {
		return make(Set), nil
	}
	s := make(Set)
	if err := json.Unmarshal(val, &s); err != nil {
		var legacy []json.RawMessage
		if err2 := json.Unmarshal(val, &legacy); err2 == nil {
			return make(Set), nil
		}
		return nil, fmt.Errorf("bookmarks: decode store: %w", err)
	}
	return s, nil
}

// Save serializes and overwrites the entire persisted set.
func (p *persistence) Save(s Set) error {
	if s == nil {
		s = make(Set)
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("bookmarks: encode store: %w", err)
	}
	if err := p.d.Write(setKey, data); err != nil {
		return fmt.Errorf("bookmarks: write store: %w", err)
	}
	return nil
}

// Has reports whether a snapshot exists for the date. Read failures report
// false; callers needing the distinction use Load.
func (p *persistence) Has(date string) bool {
	s, err := p.Load()
	if err != nil {
		return false
	}
	return s.Has(date)
}

// Add snapshots the record under its date, replacing any existing snapshot.
func (p *persistence) Add(r *record.Record) error {
	if r == nil || r.Date == "" {
		return errors.New("bookmarks: record with a date required")
	}
	s, err := p.Load()
	if err != nil {
		return err
	}
	s[r.Date] = r.Clone()
	return p.Save(s)
}

// Remove drops the snapshot for the date. Removing an absent date is not an
// error.
func (p *persistence) Remove(date string) error {
	s, err := p.Load()
	if err != nil {
		return err
	}
	if !s.Has(date) {
		return nil
	}
	delete(s, date)
	return p.Save(s)
}
