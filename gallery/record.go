////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package gallery manages the fixed-slot image collections: the paged Messier
// catalog, the solar-system gallery, the free-form other-views gallery, the
// night-camera session pages, and the per-image extra sub-galleries. Each
// collection is a fixed-length slot array persisted whole under its own key.
package gallery

// ImageRecord is one stored image. The id embeds the originating collection,
// page, and slot by convention; the authoritative location mapping lives in
// the locator index (see index.go).
type ImageRecord struct {
	ID         string `json:"id"`
	Src        string `json:"src"`
	Caption    string `json:"caption"`
	Date       string `json:"date"`
	ObjectName string `json:"objectName,omitempty"`
}

// Slots is a fixed-length slot array. A nil element is an empty slot; it
// serializes to JSON null, which is what the page's reader expects for empty
// slots.
type Slots []*ImageRecord

// emptySlots returns a slot array of n empty slots.
func emptySlots(n int) Slots {
	return make(Slots, n)
}

// normalize pads or truncates loaded slots to exactly n entries, repairing a
// stored array whose length drifted from the collection's shape.
func (s Slots) normalize(n int) Slots {
	if len(s) == n {
		return s
	}
	out := make(Slots, n)
	copy(out, s)
	return out
}
