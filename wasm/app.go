////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

// Package wasm exposes the gallery operations to the page as Javascript
// functions. Each binding adheres to the signature js.FuncOf expects; main
// registers them on the global object.
package wasm

import (
	"encoding/json"
	"syscall/js"

	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/astrovues/astrovues-wasm/access"
	"gitlab.com/astrovues/astrovues-wasm/archive"
	"gitlab.com/astrovues/astrovues-wasm/gallery"
	"gitlab.com/astrovues/astrovues-wasm/indexedDb"
	"gitlab.com/astrovues/astrovues-wasm/journal"
	"gitlab.com/astrovues/astrovues-wasm/storage"
	"gitlab.com/astrovues/astrovues-wasm/utils"
)

// Shared application state. Set once by Setup before any binding is
// registered; the bindings are never called concurrently because Javascript
// invokes them from a single thread.
var (
	appKV      storage.KV
	appSession *access.Session
	appJournal *journal.Store
	appMirror  *archive.Store
	appVault   *indexedDb.Vault
)

// Setup wires the bindings to the key-value store and session. The vault may
// be nil when IndexedDB is unavailable; uploads then skip the full-resolution
// copy.
func Setup(kv storage.KV, sess *access.Session, vault *indexedDb.Vault) {
	appKV = kv
	appSession = sess
	appJournal = journal.NewStore(kv)
	appMirror = archive.NewStore(kv)
	appVault = vault
	if vault != nil {
		appMirror = appMirror.WithVault(vault)
	}
}

// collection builds a fully wired collection over the namespace.
func collection(ns gallery.Namespace) *gallery.Collection {
	c := gallery.New(appKV, ns).WithJournal(appJournal).WithMirror(appMirror)
	if appVault != nil {
		c = c.WithVault(appVault)
	}
	return c
}

// jsJSON converts v to a Javascript value by round-tripping it through JSON.
// Unlike js.ValueOf, this handles arbitrary Go structs and slices.
func jsJSON(v any) js.Value {
	data, err := json.Marshal(v)
	if err != nil {
		jww.ERROR.Printf("Failed to JSON marshal %T for Javascript: %+v",
			v, err)
		utils.Throw(utils.TypeError, err)
		return js.Undefined()
	}
	return utils.JSON.Call("parse", string(data))
}
