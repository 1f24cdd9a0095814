////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package journal keeps the append-only activity log derived from gallery
// writes. The log is independently persisted and bounded: every append trims
// it to the 50 most recent entries, oldest silently discarded.
package journal

import (
	"fmt"
	"sort"
	"time"

	"github.com/aquilax/truncate"
	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/astrovues/astrovues-wasm/imaging"
	"gitlab.com/astrovues/astrovues-wasm/storage"
)

// journalKey is the storage key holding the entry list, newest first.
const journalKey = "astro-journal"

// maxEntries bounds the persisted log.
const maxEntries = 50

// Entry actions.
const (
	ActionUpload = "upload"
	ActionDelete = "delete"
	ActionView   = "view"
)

// Entry is one recorded action. Date is the action timestamp; ImageDate is
// the user-supplied capture date and never participates in ordering. Delete
// entries carry no payload.
type Entry struct {
	Action    string `json:"action"`
	Section   string `json:"section"`
	Page      string `json:"page,omitempty"`
	Caption   string `json:"caption,omitempty"`
	Date      string `json:"date"`
	ImageDate string `json:"imageDate,omitempty"`
	ID        string `json:"id"`
	Src       string `json:"src,omitempty"`
}

// Store reads and appends the activity log.
type Store struct {
	kv storage.KV

	// now is the clock used for assigned timestamps and ids; injectable for
	// tests.
	now func() time.Time
}

// NewStore creates a journal store over the key-value store.
func NewStore(kv storage.KV) *Store {
	return &Store{kv: kv, now: time.Now}
}

// Append records the entry at the head of the log and trims the log to the
// cap. An id and action timestamp are assigned when absent, and any payload
// is degraded to the thumbnail target before persisting. Returns false when
// the log could not be persisted.
func (s *Store) Append(entry Entry) bool {
	if entry.ID == "" {
		entry.ID = fmt.Sprintf("entry-%d", s.now().UnixMilli())
	}
	if entry.Date == "" {
		entry.Date = s.now().UTC().Format(time.RFC3339)
	}
	if entry.Src != "" {
		entry.Src = imaging.Degrade(entry.Src, imaging.ThumbMaxKB)
	}

	jww.DEBUG.Printf("Journal %s in %s: %s", entry.Action, entry.Section,
		truncate.Truncate(entry.Caption, 48, "...", truncate.PositionEnd))

	entries := s.List()
	if len(entries) > maxEntries-1 {
		entries = entries[:maxEntries-1]
	}
	entries = append([]Entry{entry}, entries...)

	return storage.Write(s.kv, journalKey, entries)
}

// List returns all entries, newest first.
func (s *Store) List() []Entry {
	return storage.Read(s.kv, journalKey, []Entry{})
}

// LatestUploads returns up to n upload entries that still carry a payload,
// ordered by their action timestamp descending. The user-supplied image date
// is ignored for ordering.
func (s *Store) LatestUploads(n int) []Entry {
	var uploads []Entry
	for _, entry := range s.List() {
		if entry.Action == ActionUpload && entry.Src != "" {
			uploads = append(uploads, entry)
		}
	}

	sort.SliceStable(uploads, func(i, j int) bool {
		return laterTimestamp(uploads[i].Date, uploads[j].Date)
	})

	if len(uploads) > n {
		uploads = uploads[:n]
	}
	return uploads
}

// laterTimestamp reports whether a sorts after b. Timestamps the store
// assigned are RFC 3339; anything unparsable falls back to a lexicographic
// comparison, which matches RFC 3339 ordering anyway.
func laterTimestamp(a, b string) bool {
	ta, errA := time.Parse(time.RFC3339, a)
	tb, errB := time.Parse(time.RFC3339, b)
	if errA != nil || errB != nil {
		return a > b
	}
	return ta.After(tb)
}
