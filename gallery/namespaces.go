////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package gallery

import (
	"fmt"

	"gitlab.com/astrovues/astrovues-wasm/catalog"
	"gitlab.com/astrovues/astrovues-wasm/storage"
)

// Slot counts per collection kind. Fixed at creation, never resized.
const (
	otherViewsSlots     = 10
	solarSystemSlots    = 10
	solarSecondarySlots = 12
	messierExtraSlots   = 9
	nightCamSlots       = 12
)

// Namespace describes one slot-array store entry: where it persists, its
// shape, how its record ids and links are formed, and how it is labelled in
// the journal and in search results.
type Namespace struct {
	// Key is the storage key holding the slot array.
	Key string

	// SlotCount is the fixed number of slots.
	SlotCount int

	// Collection and Page identify the namespace in the locator index.
	Collection string
	Page       string

	// Section is the journal label; PageLabel the optional journal page
	// field; Source the search provenance label.
	Section   string
	PageLabel string
	Source    string

	// AllowAnonymous marks the surfaces that accept uploads without an
	// authorized session (main Messier pages, solar-system, other-views).
	AllowAnonymous bool

	// recordID forms the slot's record id; link its navigable page path;
	// objectName the bound object label, when the collection has one.
	recordID   func(slot int) string
	link       func(slot int) string
	objectName func(slot int) string
}

// RecordID returns the deterministic id for a slot of this namespace.
func (ns Namespace) RecordID(slot int) string {
	return ns.recordID(slot)
}

// Link returns the navigable path for a slot of this namespace.
func (ns Namespace) Link(slot int) string {
	return ns.link(slot)
}

// ObjectName returns the object bound to the slot, or "" when the collection
// has no binding.
func (ns Namespace) ObjectName(slot int) string {
	if ns.objectName == nil {
		return ""
	}
	return ns.objectName(slot)
}

// MessierPage is one of the 11 ten-slot catalog pages. Slot index binds to a
// catalog number.
func MessierPage(page int) Namespace {
	return Namespace{
		Key:            fmt.Sprintf("messier-page-%d", page),
		SlotCount:      catalog.MessierSlotsPerPage,
		Collection:     "messier",
		Page:           fmt.Sprintf("%d", page),
		Section:        "Messier",
		PageLabel:      fmt.Sprintf("Page %d", page),
		Source:         "Messier",
		AllowAnonymous: true,
		recordID: func(slot int) string {
			return fmt.Sprintf("messier-%d-%d", page, slot)
		},
		link: func(slot int) string {
			return fmt.Sprintf("/messier/detail/%d/%d", page, slot)
		},
		objectName: func(slot int) string {
			return catalog.MessierObjectName(catalog.MessierNumber(page, slot))
		},
	}
}

// MessierExtra is the nine-slot sub-gallery owned by one Messier slot. Its
// lifecycle is independent of the parent slot: deleting the parent leaves the
// extra gallery addressable under its own key.
func MessierExtra(page, index int) Namespace {
	return Namespace{
		Key:        fmt.Sprintf("messier-extra-%d-%d", page, index),
		SlotCount:  messierExtraSlots,
		Collection: "messier-extra",
		Page:       fmt.Sprintf("%d-%d", page, index),
		Section:    "Messier",
		PageLabel: fmt.Sprintf("Image supplémentaire %s",
			catalog.MessierObjectName(catalog.MessierNumber(page, index))),
		Source: "Messier (Supplémentaire)",
		recordID: func(slot int) string {
			return fmt.Sprintf("messier-extra-%d-%d-%d", page, index, slot)
		},
		link: func(slot int) string {
			return fmt.Sprintf("/messier/extra/%d/%d/%d", page, index, slot)
		},
		objectName: func(slot int) string {
			return catalog.MessierObjectName(catalog.MessierNumber(page, index))
		},
	}
}

// SolarSystem is the ten-slot gallery index-bound to the fixed planet table.
func SolarSystem() Namespace {
	return Namespace{
		Key:            "solar-system",
		SlotCount:      solarSystemSlots,
		Collection:     "solar-system",
		Section:        "Système Solaire",
		Source:         "Système Solaire",
		AllowAnonymous: true,
		recordID: func(slot int) string {
			return fmt.Sprintf("solar-system-%d", slot)
		},
		link: func(slot int) string {
			return fmt.Sprintf("/solar-system/detail/%d", slot)
		},
		objectName: catalog.SolarObjectName,
	}
}

// SolarSecondary is the twelve-slot sub-gallery owned by one solar-system
// slot. Same independent lifecycle as MessierExtra.
func SolarSecondary(index int) Namespace {
	return Namespace{
		Key:        fmt.Sprintf("solar-system-secondary-%d", index),
		SlotCount:  solarSecondarySlots,
		Collection: "solar-system-secondary",
		Page:       fmt.Sprintf("%d", index),
		Section:    "Système Solaire",
		PageLabel: fmt.Sprintf("Image supplémentaire %s",
			catalog.SolarObjectName(index)),
		Source: "Système Solaire (Supplémentaire)",
		recordID: func(slot int) string {
			return fmt.Sprintf("solar-system-secondary-%d-%d", index, slot)
		},
		link: func(slot int) string {
			return fmt.Sprintf("/solar-system/secondary/%d/%d", index, slot)
		},
		objectName: func(int) string {
			return catalog.SolarObjectName(index)
		},
	}
}

// OtherViews is the free-form ten-slot gallery.
func OtherViews() Namespace {
	return Namespace{
		Key:            "other-views",
		SlotCount:      otherViewsSlots,
		Collection:     "other-views",
		Section:        "Autres Vues",
		Source:         "Autres Vues",
		AllowAnonymous: true,
		recordID: func(slot int) string {
			return fmt.Sprintf("other-views-%d", slot)
		},
		link: func(slot int) string {
			return fmt.Sprintf("/other-views/detail/%d", slot)
		},
	}
}

// NightCam is one twelve-slot night-camera session page.
func NightCam(session SessionInfo) Namespace {
	return Namespace{
		Key:        fmt.Sprintf("nightcam-%s", session.ID),
		SlotCount:  nightCamSlots,
		Collection: "nightcam",
		Page:       session.ID,
		Section:    "NightCam",
		PageLabel:  session.Name,
		Source:     fmt.Sprintf("NightCam - %s", session.Name),
		recordID: func(slot int) string {
			return fmt.Sprintf("nightcam-%s-%d", session.ID, slot)
		},
		link: func(slot int) string {
			return fmt.Sprintf("/nightcam/%s/%d", session.ID, slot)
		},
	}
}

// Namespaces enumerates every live namespace in a fixed order: Messier pages
// with each page's per-slot extras, solar-system with its secondaries,
// registered night-camera sessions, then other-views. Search and any other
// cross-collection reader iterate this list, so a collection registered here
// is visible everywhere.
func Namespaces(kv storage.KV) []Namespace {
	var all []Namespace

	for page := 1; page <= catalog.MessierPages; page++ {
		all = append(all, MessierPage(page))
		for index := 0; index < catalog.MessierSlotsPerPage; index++ {
			all = append(all, MessierExtra(page, index))
		}
	}

	all = append(all, SolarSystem())
	for index := 0; index < solarSystemSlots; index++ {
		all = append(all, SolarSecondary(index))
	}

	for _, session := range LoadSessions(kv) {
		all = append(all, NightCam(session))
	}

	all = append(all, OtherViews())
	return all
}
