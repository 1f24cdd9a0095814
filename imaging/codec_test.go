////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package imaging

import (
	"bytes"
	"testing"
)

// Tests that Encode followed by Decode returns the original bytes and MIME
// type.
func TestEncode_Decode(t *testing.T) {
	original := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 1, 2, 3}

	payload := Encode(original, "image/jpeg")
	mime, data, err := Decode(payload)
	if err != nil {
		t.Fatalf("Failed to decode payload: %+v", err)
	}

	if mime != "image/jpeg" {
		t.Errorf("Wrong MIME type.\nexpected: %s\nreceived: %s",
			"image/jpeg", mime)
	}
	if !bytes.Equal(original, data) {
		t.Errorf("Decoded bytes do not match original."+
			"\nexpected: %v\nreceived: %v", original, data)
	}
}

// Tests that Encode defaults the MIME type when none is given.
func TestEncode_DefaultMime(t *testing.T) {
	payload := Encode([]byte{1}, "")
	if !IsImagePayload(payload) {
		t.Errorf("Payload with default MIME is not an image payload: %q",
			payload)
	}
}

// Tests that Decode rejects non-data-URL and non-base64 payloads.
func TestDecode_Errors(t *testing.T) {
	for _, payload := range []string{
		"no comma here",
		"data:image/png;utf8,abc",
		"data:image/png;base64,!!!not base64!!!",
	} {
		if _, _, err := Decode(payload); err == nil {
			t.Errorf("No error for invalid payload %q", payload)
		}
	}
}

// Tests that IsImagePayload accepts data URLs and rejects everything else.
func TestIsImagePayload(t *testing.T) {
	if !IsImagePayload("data:image/png;base64,AAAA") {
		t.Error("Rejected a valid image payload.")
	}
	if IsImagePayload("/images/nebula1.jpg") {
		t.Error("Accepted a path payload.")
	}
	if !IsImagePayload(Placeholder()) {
		t.Error("Rejected the placeholder payload.")
	}
}
