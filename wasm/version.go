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

	"gitlab.com/astrovues/astrovues-wasm/storage"
)

// GetVersion returns the module's semantic version.
//
// Returns:
//   - string
func GetVersion(js.Value, []js.Value) any {
	return storage.SEMVER
}
