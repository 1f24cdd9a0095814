////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package imaging

import "encoding/base64"

// placeholderSVG is the graphic substituted for payloads too large to keep.
// The label is user-visible, so it stays in the gallery's language.
const placeholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="100" ` +
	`height="100" viewBox="0 0 100 100"><rect width="100%" height="100%" ` +
	`fill="#4A4A6A"/><text x="50%" y="50%" font-family="Arial" ` +
	`font-size="12" fill="white" text-anchor="middle" ` +
	`dominant-baseline="middle">Image trop grande</text></svg>`

var placeholderPayload = "data:image/svg+xml;base64," +
	base64.StdEncoding.EncodeToString([]byte(placeholderSVG))

// Placeholder returns the fixed "Image trop grande" data URL. The same value
// is returned on every call.
func Placeholder() string {
	return placeholderPayload
}

// IsPlaceholder reports whether the payload is the degradation placeholder.
func IsPlaceholder(payload string) bool {
	return payload == placeholderPayload
}
