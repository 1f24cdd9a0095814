////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package gallery

import (
	"gitlab.com/astrovues/astrovues-wasm/storage"
)

// indexKey is the storage key for the locator index.
const indexKey = "astro-index"

// Location is the authoritative position of a record. It replaces re-deriving
// collection/page/slot by parsing the record id.
type Location struct {
	Collection string `json:"collection"`
	Page       string `json:"page,omitempty"`
	Slot       int    `json:"slot"`
}

// Locate resolves a record id to its location. The second return is false for
// ids the index does not know.
func Locate(kv storage.KV, id string) (Location, bool) {
	index := loadIndex(kv)
	loc, exists := index[id]
	return loc, exists
}

// loadIndex returns the full id → location mapping.
func loadIndex(kv storage.KV) map[string]Location {
	return storage.Read(kv, indexKey, map[string]Location{})
}

// stageIndexPut stages an index update registering the id at the location.
// Staged alongside the slot write so the two land in one commit.
func stageIndexPut(stage *storage.Stage, kv storage.KV, id string, loc Location) {
	index := loadIndex(kv)
	index[id] = loc
	stage.SetJSON(indexKey, index)
}

// stageIndexRemove stages an index update dropping the id.
func stageIndexRemove(stage *storage.Stage, kv storage.KV, id string) {
	index := loadIndex(kv)
	if _, exists := index[id]; !exists {
		return
	}
	delete(index, id)
	stage.SetJSON(indexKey, index)
}
