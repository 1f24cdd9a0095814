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

	"gitlab.com/astrovues/astrovues-wasm/search"
)

// SearchImages scans every collection for records matching the term and
// category. Both filters are optional; with neither set, every stored record
// is returned.
//
// Parameters:
//   - args[0] - Search term; "" for no term filter (string).
//   - args[1] - Category id; "" for no category filter (string).
//
// Returns:
//   - Array of results, each an image record extended with source and link
//     fields.
func SearchImages(_ js.Value, args []js.Value) any {
	results := search.Search(appKV, search.Query{
		Term:       args[0].String(),
		CategoryID: args[1].String(),
	})
	if results == nil {
		results = []search.Result{}
	}
	return jsJSON(results)
}

// SearchCategories returns the predefined category filters in display order.
//
// Returns:
//   - Array of {ID, Name, Keywords} objects.
func SearchCategories(js.Value, []js.Value) any {
	return jsJSON(search.Categories())
}
