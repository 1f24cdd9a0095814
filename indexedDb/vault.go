////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

// Package indexedDb keeps the full-resolution vault in the browser's
// IndexedDB, which is not subject to localStorage's quota. The vault stores
// the original payload of every mirrored upload under the mirror's synthetic
// key.
package indexedDb

import (
	"encoding/json"
	"syscall/js"
	"time"

	"github.com/hack-pad/go-indexeddb/idb"
	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/astrovues/astrovues-wasm/utils"
)

const (
	// databaseName is the IndexedDB database holding the vault.
	databaseName = "astrovues"

	// vaultStoreName is the object store for vault entries.
	vaultStoreName = "vault"

	// pkeyName is the key path of the vault object store.
	pkeyName = "key"

	// currentVersion is the current database schema version. Used for
	// migration purposes.
	currentVersion uint = 1
)

// entry is one vault row. StoredAt is the write time in Unix milliseconds.
type entry struct {
	Key      string `json:"key"`
	Src      string `json:"src"`
	StoredAt int64  `json:"storedAt"`
}

// Vault is the full-resolution image store backed by IndexedDB.
//
// NOTE: the vault is NOT thread safe; it is the responsibility of the caller
// to ensure that its methods are called sequentially.
type Vault struct {
	db *idb.Database
}

// NewVault opens the vault database, creating or upgrading it as needed.
func NewVault() (*Vault, error) {
	ctx, cancel := NewContext()
	defer cancel()
	openRequest, err := idb.Global().Open(ctx, databaseName, currentVersion,
		func(db *idb.Database, oldVersion, newVersion uint) error {
			if oldVersion == newVersion {
				jww.INFO.Printf("IndexedDb version for %s is current: v%d",
					databaseName, newVersion)
				return nil
			}

			jww.INFO.Printf("IndexedDb upgrade required for %s: v%d -> v%d",
				databaseName, oldVersion, newVersion)

			if oldVersion == 0 && newVersion >= 1 {
				return v1Upgrade(db)
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	db, err := openRequest.Await(ctx)
	if err != nil {
		return nil, err
	} else if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return &Vault{db: db}, nil
}

// v1Upgrade performs the v0 -> v1 database upgrade.
//
// This can never be changed without permanently breaking backwards
// compatibility.
func v1Upgrade(db *idb.Database) error {
	storeOpts := idb.ObjectStoreOptions{
		KeyPath:       js.ValueOf(pkeyName),
		AutoIncrement: false,
	}
	_, err := db.CreateObjectStore(vaultStoreName, storeOpts)
	return err
}

// Put stores the payload under the key, replacing any previous entry.
func (v *Vault) Put(key, src string) error {
	data, err := json.Marshal(
		entry{Key: key, Src: src, StoredAt: time.Now().UnixMilli()})
	if err != nil {
		return errors.Errorf("Unable to marshal vault entry: %+v", err)
	}
	obj, err := utils.JsonToJS(data)
	if err != nil {
		return errors.Errorf("Unable to convert vault entry: %+v", err)
	}

	return put(v.db, vaultStoreName, obj)
}

// Get returns the payload stored under the key.
func (v *Vault) Get(key string) (string, error) {
	result, err := get(v.db, vaultStoreName, js.ValueOf(key))
	if err != nil {
		return "", err
	}

	var e entry
	if err = json.Unmarshal([]byte(utils.JsToJson(result)), &e); err != nil {
		return "", err
	}
	return e.Src, nil
}

// Delete removes the entry under the key. Deleting an absent key is not an
// error.
func (v *Vault) Delete(key string) error {
	return del(v.db, vaultStoreName, js.ValueOf(key))
}

// Keys returns every vault key in primary-key order.
func (v *Vault) Keys() ([]string, error) {
	var keys []string
	err := forEach(v.db, vaultStoreName, func(value js.Value) error {
		var e entry
		if err := json.Unmarshal([]byte(utils.JsToJson(value)), &e); err != nil {
			return err
		}
		keys = append(keys, e.Key)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}
