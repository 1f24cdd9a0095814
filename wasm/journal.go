////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

package wasm

import (
	"syscall/js"

	"gitlab.com/astrovues/astrovues-wasm/journal"
)

// GetJournal returns the activity log, newest first.
//
// Returns:
//   - Array of journal entries.
func GetJournal(js.Value, []js.Value) any {
	entries := appJournal.List()
	if entries == nil {
		entries = []journal.Entry{}
	}
	return jsJSON(entries)
}

// GetLatestUploads returns the most recent upload entries that still carry a
// payload, for the home page's recent-images strip.
//
// Parameters:
//   - args[0] - Maximum number of entries to return (int).
//
// Returns:
//   - Array of journal entries ordered by action timestamp descending.
func GetLatestUploads(_ js.Value, args []js.Value) any {
	uploads := appJournal.LatestUploads(args[0].Int())
	if uploads == nil {
		uploads = []journal.Entry{}
	}
	return jsJSON(uploads)
}

// RecordView journals a view action for an image, used by the detail pages.
//
// Parameters:
//   - args[0] - Image record id (string).
//   - args[1] - Section label (string).
//   - args[2] - Caption (string).
//
// Returns:
//   - Boolean indicating whether the entry was persisted.
func RecordView(_ js.Value, args []js.Value) any {
	return appJournal.Append(journal.Entry{
		Action:  journal.ActionView,
		ID:      args[0].String(),
		Section: args[1].String(),
		Caption: args[2].String(),
	})
}
