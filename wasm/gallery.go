////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

package wasm

import (
	"fmt"
	"syscall/js"

	"github.com/pkg/errors"

	"gitlab.com/astrovues/astrovues-wasm/catalog"
	"gitlab.com/astrovues/astrovues-wasm/gallery"
	"gitlab.com/astrovues/astrovues-wasm/utils"
)

// parseNamespace resolves a collection name and page string from the page to
// a gallery namespace.
//
// Accepted forms:
//   - "messier" with page "1".."11"
//   - "messier-extra" with page "<page>-<index>"
//   - "solar-system" with no page
//   - "solar-system-secondary" with page "0".."9"
//   - "nightcam" with a registered session page id
//   - "other-views" with no page
func parseNamespace(name, page string) (gallery.Namespace, error) {
	switch name {
	case "messier":
		var p int
		if _, err := fmt.Sscanf(page, "%d", &p); err != nil ||
			p < 1 || p > catalog.MessierPages {
			return gallery.Namespace{},
				errors.Errorf("invalid messier page %q", page)
		}
		return gallery.MessierPage(p), nil

	case "messier-extra":
		var p, index int
		if _, err := fmt.Sscanf(page, "%d-%d", &p, &index); err != nil ||
			p < 1 || p > catalog.MessierPages ||
			index < 0 || index >= catalog.MessierSlotsPerPage {
			return gallery.Namespace{},
				errors.Errorf("invalid messier extra page %q", page)
		}
		return gallery.MessierExtra(p, index), nil

	case "solar-system":
		return gallery.SolarSystem(), nil

	case "solar-system-secondary":
		var index int
		if _, err := fmt.Sscanf(page, "%d", &index); err != nil ||
			index < 0 || index >= len(catalog.SolarSystemObjects) {
			return gallery.Namespace{},
				errors.Errorf("invalid solar secondary index %q", page)
		}
		return gallery.SolarSecondary(index), nil

	case "nightcam":
		for _, session := range gallery.LoadSessions(appKV) {
			if session.ID == page {
				return gallery.NightCam(session), nil
			}
		}
		return gallery.Namespace{},
			errors.Errorf("unknown nightcam session %q", page)

	case "other-views":
		return gallery.OtherViews(), nil

	default:
		return gallery.Namespace{},
			errors.Errorf("unknown collection %q", name)
	}
}

// LoadCollection returns the slot array of a collection.
//
// Parameters:
//   - args[0] - Collection name (string).
//   - args[1] - Page identifier; "" for unpaged collections (string).
//
// Returns:
//   - Array of image records; empty slots are null.
//   - Throws TypeError if the collection or page is invalid.
func LoadCollection(_ js.Value, args []js.Value) any {
	ns, err := parseNamespace(args[0].String(), args[1].String())
	if err != nil {
		utils.Throw(utils.TypeError, err)
		return nil
	}

	return jsJSON(collection(ns).Load())
}

// UploadImage stores an image into a collection slot and fans it out to the
// journal, mirror, and vault. Image degradation can involve a full decode and
// re-encode, so the work runs behind a promise.
//
// Parameters:
//   - args[0] - Collection name (string).
//   - args[1] - Page identifier; "" for unpaged collections (string).
//   - args[2] - Slot index (int).
//   - args[3] - Image payload data URL (string).
//   - args[4] - Caption (string).
//   - args[5] - Capture date (string).
//
// Returns a promise:
//   - Resolves to the stored image record.
//   - Rejected with an error if the namespace is invalid, the slot is out of
//     range, the session is not authorized, or the write failed.
func UploadImage(_ js.Value, args []js.Value) any {
	name := args[0].String()
	page := args[1].String()
	slot := args[2].Int()
	payload := args[3].String()
	caption := args[4].String()
	date := args[5].String()

	promiseFn := func(resolve, reject func(args ...any) js.Value) {
		ns, err := parseNamespace(name, page)
		if err != nil {
			reject(utils.JsTrace(err))
			return
		}

		record, err := collection(ns).Upload(
			appSession, slot, payload, caption, date)
		if err != nil {
			reject(utils.JsTrace(err))
			return
		}
		resolve(jsJSON(record))
	}

	return utils.CreatePromise(promiseFn)
}

// RemoveImage deletes the image with the given id from whichever collection
// slot holds it.
//
// Parameters:
//   - args[0] - Image record id (string).
//
// Returns:
//   - The removed image record, or null if no slot holds the id.
//   - Throws TypeError if the session is not authorized or the write failed.
func RemoveImage(_ js.Value, args []js.Value) any {
	id := args[0].String()

	loc, exists := gallery.Locate(appKV, id)
	if !exists {
		return js.Null()
	}

	ns, err := parseNamespace(loc.Collection, loc.Page)
	if err != nil {
		utils.Throw(utils.TypeError, err)
		return nil
	}

	removed, err := collection(ns).Remove(appSession, id)
	if err != nil {
		utils.Throw(utils.TypeError, err)
		return nil
	}
	if removed == nil {
		return js.Null()
	}
	return jsJSON(removed)
}

// LocateImage resolves an image record id to its collection, page, and slot.
//
// Parameters:
//   - args[0] - Image record id (string).
//
// Returns:
//   - An object with collection, page, and slot fields, or null for unknown
//     ids.
func LocateImage(_ js.Value, args []js.Value) any {
	loc, exists := gallery.Locate(appKV, args[0].String())
	if !exists {
		return js.Null()
	}
	return jsJSON(loc)
}

// LoadNightCamSessions returns the registered night-camera sessions in
// creation order.
//
// Returns:
//   - Array of {id, name} objects.
func LoadNightCamSessions(js.Value, []js.Value) any {
	return jsJSON(gallery.LoadSessions(appKV))
}

// AddNightCamSession registers a new night-camera session page.
//
// Returns:
//   - The new {id, name} object.
//   - Throws TypeError if the session is not authorized or the write failed.
func AddNightCamSession(js.Value, []js.Value) any {
	added, err := gallery.AddSession(appKV, appSession)
	if err != nil {
		utils.Throw(utils.TypeError, err)
		return nil
	}
	return jsJSON(added)
}
