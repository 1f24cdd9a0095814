////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package imaging encodes uploaded files as inline data URLs and applies the
// size-based degradation policy before anything is persisted. Everything here
// is pure: no storage access, no Javascript.
package imaging

import (
	"encoding/base64"
	"strings"

	"github.com/pkg/errors"
)

// Size targets, in kilobytes of encoded payload.
const (
	// CollectionMaxKB is the target for images stored in collection slots.
	CollectionMaxKB = 100

	// ThumbMaxKB is the target for the journal and mirror thumbnails.
	ThumbMaxKB = 20

	// placeholderCutoffKB is the size past which a payload that cannot be
	// re-encoded is replaced by the placeholder graphic.
	placeholderCutoffKB = 500
)

// dataURLPrefix marks a payload as an inline image renderable by the page.
const dataURLPrefix = "data:image"

// Encode builds an inline data URL from raw file bytes and a MIME type. The
// result is directly renderable by the display layer without further decoding.
func Encode(data []byte, mime string) string {
	if mime == "" {
		mime = "image/jpeg"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// IsImagePayload reports whether the payload is an inline image data URL.
// Degradation only ever touches payloads for which this is true.
func IsImagePayload(payload string) bool {
	return strings.HasPrefix(payload, dataURLPrefix)
}

// SizeKB returns the payload size in kilobytes, rounded to the nearest whole
// kilobyte.
func SizeKB(payload string) int {
	return (len(payload) + 512) / 1024
}

// Decode splits an inline data URL into its MIME type and raw bytes. Only
// base64 data URLs are supported; anything else is an error.
func Decode(payload string) (mime string, data []byte, err error) {
	header, encoded, found := strings.Cut(payload, ",")
	if !found {
		return "", nil, errors.New("payload is not a data URL")
	}

	header = strings.TrimPrefix(header, "data:")
	mime, enc, _ := strings.Cut(header, ";")
	if enc != "base64" {
		return "", nil, errors.Errorf("unsupported data URL encoding %q", enc)
	}

	data, err = base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to decode data URL payload")
	}

	return mime, data, nil
}
