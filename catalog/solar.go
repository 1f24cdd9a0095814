////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package catalog holds the static object tables the fixed collections are
// index-bound to. Lookups only; no state.
package catalog

// SolarSystemObjects is the fixed table the 10 solar-system slots are bound
// to. Slot index maps directly to an entry; the order never changes because
// persisted ids embed it.
var SolarSystemObjects = [10]string{
	"Soleil",
	"Mercure",
	"Venus",
	"Terre",
	"Lune",
	"Mars",
	"Jupiter",
	"Saturne",
	"Uranus",
	"Neptune",
}

// SolarObjectName returns the object bound to the given solar-system slot, or
// "" for an out-of-range slot.
func SolarObjectName(slot int) string {
	if slot < 0 || slot >= len(SolarSystemObjects) {
		return ""
	}
	return SolarSystemObjects[slot]
}
