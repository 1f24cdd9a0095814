////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

package storage

import (
	"encoding/json"
	"os"
	"syscall/js"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/astrovues/astrovues-wasm/utils"
)

// LocalStorage implements [KV] on top of Javascript's localStorage. Keys are
// stored unprefixed and values unencoded because the persisted layout
// (messier-page-1, astro-journal, ...) is read directly by the page.
type LocalStorage struct {
	// The Javascript value containing the localStorage object
	v js.Value
}

// jsStorage is the global that stores Javascript as window.localStorage.
//
//   - Specification:
//     https://html.spec.whatwg.org/multipage/webstorage.html#dom-localstorage-dev
//   - Documentation:
//     https://developer.mozilla.org/en-US/docs/Web/API/Window/localStorage
var jsStorage = &LocalStorage{js.Global().Get("localStorage")}

// GetLocalStorage returns Javascript's local storage.
func GetLocalStorage() *LocalStorage {
	return jsStorage
}

// Get returns a key's value from the local storage given its name. Returns
// os.ErrNotExist if the key does not exist. Underneath, it calls
// localStorage.getItem().
//
//   - Specification:
//     https://html.spec.whatwg.org/multipage/webstorage.html#dom-storage-getitem-dev
//   - Documentation:
//     https://developer.mozilla.org/en-US/docs/Web/API/Storage/getItem
func (ls *LocalStorage) Get(keyName string) (string, error) {
	keyValue := ls.getItem(keyName)
	if keyValue.IsNull() {
		return "", os.ErrNotExist
	}

	return keyValue.String(), nil
}

// Set adds a key's value to local storage given its name. Underneath, it calls
// localStorage.setItem().
//
// A full store surfaces as a thrown QuotaExceededError, which syscall/js
// delivers as a panic; it is recovered here and returned as an error so that
// callers see a plain write failure.
//
//   - Specification:
//     https://html.spec.whatwg.org/multipage/webstorage.html#dom-storage-setitem-dev
//   - Documentation:
//     https://developer.mozilla.org/en-US/docs/Web/API/Storage/setItem
func (ls *LocalStorage) Set(keyName, keyValue string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf(
				"localStorage.setItem failed for %q: %+v", keyName, r)
		}
	}()

	ls.setItem(keyName, keyValue)
	return nil
}

// Remove removes a key's value from local storage given its name. If there is
// no item with the given key, this function does nothing. Underneath, it calls
// localStorage.removeItem().
//
//   - Specification:
//     https://html.spec.whatwg.org/multipage/webstorage.html#dom-storage-removeitem-dev
//   - Documentation:
//     https://developer.mozilla.org/en-US/docs/Web/API/Storage/removeItem
func (ls *LocalStorage) Remove(keyName string) {
	ls.removeItem(keyName)
}

// Clear clears all the keys in storage. Underneath, it calls
// localStorage.clear().
//
//   - Specification:
//     https://html.spec.whatwg.org/multipage/webstorage.html#dom-storage-clear-dev
//   - Documentation:
//     https://developer.mozilla.org/en-US/docs/Web/API/Storage/clear
func (ls *LocalStorage) Clear() {
	ls.clear()
}

// Keys returns a list of all key names in local storage.
func (ls *LocalStorage) Keys() []string {
	keyNamesJson := utils.JSON.Call("stringify", ls.keys())

	var keyNames []string
	err := json.Unmarshal([]byte(keyNamesJson.String()), &keyNames)
	if err != nil {
		jww.FATAL.Panicf(
			"Failed to JSON unmarshal localStorage key name list: %+v", err)
	}

	return keyNames
}

// Length returns the number of keys in localStorage. Underneath, it accesses
// the property localStorage.length.
//
//   - Specification:
//     https://html.spec.whatwg.org/multipage/webstorage.html#dom-storage-key-dev
//   - Documentation:
//     https://developer.mozilla.org/en-US/docs/Web/API/Storage/length
func (ls *LocalStorage) Length() int {
	return ls.length().Int()
}

// Wrappers for Javascript Storage methods and properties.
func (ls *LocalStorage) getItem(keyName string) js.Value  { return ls.v.Call("getItem", keyName) }
func (ls *LocalStorage) setItem(keyName, keyValue string) { ls.v.Call("setItem", keyName, keyValue) }
func (ls *LocalStorage) removeItem(keyName string)        { ls.v.Call("removeItem", keyName) }
func (ls *LocalStorage) clear()                           { ls.v.Call("clear") }
func (ls *LocalStorage) length() js.Value                 { return ls.v.Get("length") }
func (ls *LocalStorage) keys() js.Value                   { return utils.Object.Call("keys", ls.v) }
