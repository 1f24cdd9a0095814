////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package search answers cross-collection queries by scanning every live
// gallery namespace on demand. There is no maintained index to fall out of
// date: a record is findable the moment its slot write lands.
package search

import (
	"strings"

	"gitlab.com/astrovues/astrovues-wasm/gallery"
	"gitlab.com/astrovues/astrovues-wasm/storage"
)

// Result is one matching record with its provenance label and navigable path.
type Result struct {
	gallery.ImageRecord
	Source string `json:"source"`
	Link   string `json:"link"`
}

// Query filters the scan. Zero-value fields do not filter: an empty Query
// returns every stored record.
type Query struct {
	// Term matches records whose caption, object name, or date contains it,
	// case-insensitively.
	Term string

	// CategoryID selects a predefined keyword table; any keyword occurring
	// in the record's combined text matches. An unknown id matches nothing.
	CategoryID string
}

// Search scans every namespace in enumeration order and returns the records
// matching all of the query's filters. Occupied slots only; empty slots and
// empty collections contribute nothing.
func Search(kv storage.KV, q Query) []Result {
	var category *Category
	if q.CategoryID != "" {
		category = categoryByID(q.CategoryID)
		if category == nil {
			return nil
		}
	}
	term := strings.ToLower(q.Term)

	var results []Result
	for _, ns := range gallery.Namespaces(kv) {
		slots := gallery.New(kv, ns).Load()
		for slot, record := range slots {
			if record == nil {
				continue
			}
			if term != "" && !matchesTerm(record, term) {
				continue
			}
			if category != nil && !matchesCategory(record, category) {
				continue
			}
			results = append(results, Result{
				ImageRecord: *record,
				Source:      ns.Source,
				Link:        ns.Link(slot),
			})
		}
	}
	return results
}

// matchesTerm reports whether the lowercased term occurs in the caption,
// object name, or date.
func matchesTerm(record *gallery.ImageRecord, term string) bool {
	return strings.Contains(strings.ToLower(record.Caption), term) ||
		strings.Contains(strings.ToLower(record.ObjectName), term) ||
		strings.Contains(strings.ToLower(record.Date), term)
}

// matchesCategory reports whether any category keyword occurs in the
// record's combined caption, object name, and date text.
func matchesCategory(record *gallery.ImageRecord, category *Category) bool {
	text := strings.ToLower(strings.Join(
		[]string{record.Caption, record.ObjectName, record.Date}, " "))
	for _, keyword := range category.Keywords {
		if strings.Contains(text, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
