////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package catalog

import "fmt"

// Messier catalog shape: 110 objects over 11 pages of 10 slots.
const (
	MessierPages        = 11
	MessierSlotsPerPage = 10
	MessierObjects      = MessierPages * MessierSlotsPerPage
)

// MessierNumber returns the catalog number for a slot on a page (both
// starting at page 1, slot 0), or 0 when out of range. The mapping is
// deterministic: page 3 slot 0 is M21.
func MessierNumber(page, slot int) int {
	if page < 1 || page > MessierPages ||
		slot < 0 || slot >= MessierSlotsPerPage {
		return 0
	}
	return (page-1)*MessierSlotsPerPage + slot + 1
}

// MessierDesignation returns the "M<n>" designation for a catalog number, or
// "" when out of range.
func MessierDesignation(n int) string {
	if n < 1 || n > MessierObjects {
		return ""
	}
	return fmt.Sprintf("M%d", n)
}

// MessierObjectName returns the designation with the common name appended
// when the object has one, e.g. "M31 - Galaxie d'Andromède".
func MessierObjectName(n int) string {
	designation := MessierDesignation(n)
	if designation == "" {
		return ""
	}
	if common, exists := messierCommonNames[n]; exists {
		return designation + " - " + common
	}
	return designation
}
