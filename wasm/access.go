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
)

// Login attempts to authorize the session with the admin credentials.
//
// Parameters:
//   - args[0] - Username (string).
//   - args[1] - Password (string).
//
// Returns:
//   - Boolean indicating whether authorization was granted.
func Login(_ js.Value, args []js.Value) any {
	return appSession.Authorize(args[0].String(), args[1].String())
}

// Logout clears the session's authorization and the persisted marker.
func Logout(js.Value, []js.Value) any {
	appSession.Deauthorize()
	return nil
}

// IsAuthorized reports whether mutating operations are currently permitted.
//
// Returns:
//   - Boolean.
func IsAuthorized(js.Value, []js.Value) any {
	return appSession.IsAuthorized()
}
