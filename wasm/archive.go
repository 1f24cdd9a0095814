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

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/astrovues/astrovues-wasm/access"
	"gitlab.com/astrovues/astrovues-wasm/utils"
)

// ListArchive returns the synthetic keys of every mirrored image in
// insertion order.
//
// Returns:
//   - Array of keys (string).
func ListArchive(js.Value, []js.Value) any {
	keys := appMirror.List()
	if keys == nil {
		keys = []string{}
	}
	return jsJSON(keys)
}

// GetArchiveFile returns the mirrored image under a synthetic key.
//
// Parameters:
//   - args[0] - Synthetic key (string).
//
// Returns:
//   - The mirrored file object, or null for unknown keys.
func GetArchiveFile(_ js.Value, args []js.Value) any {
	file, exists := appMirror.Get(args[0].String())
	if !exists {
		return js.Null()
	}
	return jsJSON(file)
}

// RemoveArchiveFile deletes a mirrored image along with its full-resolution
// vault copy. This is the only way a mirror copy goes away; deleting from a
// collection never cascades here.
//
// Parameters:
//   - args[0] - Synthetic key (string).
//
// Returns:
//   - Throws TypeError if the session is not authorized or the write failed.
func RemoveArchiveFile(_ js.Value, args []js.Value) any {
	if !appSession.IsAuthorized() {
		utils.Throw(utils.TypeError, access.ErrNotAuthorized)
		return nil
	}
	if !appMirror.Remove(args[0].String()) {
		utils.Throw(utils.TypeError,
			errors.New("failed to remove mirrored file"))
		return nil
	}
	return nil
}

// GetVaultImage returns the full-resolution payload stored in the IndexedDB
// vault under a mirror key.
//
// Parameters:
//   - args[0] - Synthetic key (string).
//
// Returns a promise:
//   - Resolves to the payload data URL (string).
//   - Rejected with an error if the vault is unavailable or the key is
//     unknown.
func GetVaultImage(_ js.Value, args []js.Value) any {
	key := args[0].String()

	promiseFn := func(resolve, reject func(args ...any) js.Value) {
		if appVault == nil {
			reject(utils.JsError(errors.New("vault is unavailable")))
			return
		}
		src, err := appVault.Get(key)
		if err != nil {
			reject(utils.JsTrace(err))
			return
		}
		resolve(src)
	}

	return utils.CreatePromise(promiseFn)
}

// PruneVault deletes the vault entries whose mirror copy is gone. Vault
// deletes during removal are best effort, so a failure there can strand a
// full-resolution copy; the page calls this to reclaim them.
//
// Returns a promise:
//   - Resolves to the number of entries deleted (int).
//   - Rejected with an error if the vault cannot be enumerated.
func PruneVault(js.Value, []js.Value) any {
	promiseFn := func(resolve, reject func(args ...any) js.Value) {
		if appVault == nil {
			resolve(0)
			return
		}

		keys, err := appVault.Keys()
		if err != nil {
			reject(utils.JsTrace(err))
			return
		}

		pruned := 0
		for _, key := range appMirror.Orphans(keys) {
			if err = appVault.Delete(key); err != nil {
				jww.WARN.Printf("Vault delete failed for %s: %+v", key, err)
				continue
			}
			pruned++
		}
		resolve(pruned)
	}

	return utils.CreatePromise(promiseFn)
}
