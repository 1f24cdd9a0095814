////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package imaging

import (
	"bytes"
	"image"
	"image/jpeg"

	// Register the decoders for the upload formats the page accepts.
	_ "image/gif"
	_ "image/png"

	jww "github.com/spf13/jwalterweatherman"
	"golang.org/x/image/draw"
)

// dimLadder is the sequence of maximum dimensions Degrade steps through when
// re-encoding. The last rung produces a thumbnail of a few kilobytes, so the
// descent always terminates under any sane target.
var dimLadder = []int{1600, 1200, 800, 600, 400, 300, 200, 100}

// reencodeQuality is the JPEG quality used for every re-encoded payload. Fixed
// so that Degrade is deterministic.
const reencodeQuality = 75

// Degrade enforces the size target on an inline image payload. It is pure and
// idempotent: a payload at or under maxKB is returned unchanged, including
// repeated application to its own output.
//
// Oversized payloads are decoded, scaled down, and re-encoded as JPEG at
// descending dimensions until the result fits. A payload that cannot be
// decoded at all is returned unchanged below the placeholder cutoff and
// replaced by the fixed "Image trop grande" placeholder above it; the original
// pixel data is discarded, not recoverable.
func Degrade(payload string, maxKB int) string {
	if payload == "" || !IsImagePayload(payload) {
		return payload
	}

	if SizeKB(payload) <= maxKB {
		return payload
	}

	_, data, err := Decode(payload)
	if err != nil {
		return degradeFallback(payload, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return degradeFallback(payload, err)
	}

	for _, dim := range dimLadder {
		scaled := scaleToFit(img, dim)

		var buf bytes.Buffer
		err = jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: reencodeQuality})
		if err != nil {
			return degradeFallback(payload, err)
		}

		if reencoded := Encode(buf.Bytes(), "image/jpeg"); SizeKB(reencoded) <= maxKB {
			return reencoded
		}
	}

	// The ladder bottomed out without fitting. Only reachable for absurdly
	// small targets; treat like an undecodable payload.
	return degradeFallback(payload, nil)
}

// degradeFallback is the pre-re-encode policy: pass through under the cutoff,
// placeholder above it.
func degradeFallback(payload string, err error) string {
	if SizeKB(payload) <= placeholderCutoffKB {
		return payload
	}

	if err != nil {
		jww.WARN.Printf(
			"Substituting placeholder for %d KB payload: %+v",
			SizeKB(payload), err)
	}
	return Placeholder()
}

// scaleToFit scales img so its longest side is at most dim, preserving aspect
// ratio. Images already within dim are returned as is; nothing is ever
// upscaled.
func scaleToFit(img image.Image, dim int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= dim && h <= dim {
		return img
	}

	if w >= h {
		h = h * dim / w
		w = dim
	} else {
		w = w * dim / h
		h = dim
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}
