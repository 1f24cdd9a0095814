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
	"image/color"
	"image/jpeg"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// noisyJPEG builds an inline JPEG payload of pseudo-random pixels.
// Noise compresses poorly, so a large canvas reliably exceeds the collection
// size target.
func noisyJPEG(t *testing.T, size int) string {
	t.Helper()
	prng := rand.New(rand.NewSource(42))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(prng.Intn(256)),
				G: uint8(prng.Intn(256)),
				B: uint8(prng.Intn(256)),
				A: 255,
			})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}))
	return Encode(buf.Bytes(), "image/jpeg")
}

// Tests that a payload at or under the target passes through unchanged, for
// repeated application.
func TestDegrade_Idempotent(t *testing.T) {
	payload := noisyJPEG(t, 32)
	require.LessOrEqual(t, SizeKB(payload), CollectionMaxKB)

	once := Degrade(payload, CollectionMaxKB)
	require.Equal(t, payload, once)
	require.Equal(t, once, Degrade(once, CollectionMaxKB))
}

// Tests that degrading an oversized image yields a smaller, still renderable
// JPEG payload under the target, and that the output is a fixed point of
// Degrade.
func TestDegrade_ReencodesOversized(t *testing.T) {
	payload := noisyJPEG(t, 800)
	require.Greater(t, SizeKB(payload), CollectionMaxKB)

	degraded := Degrade(payload, CollectionMaxKB)
	require.NotEqual(t, payload, degraded)
	require.LessOrEqual(t, SizeKB(degraded), CollectionMaxKB)
	require.True(t, strings.HasPrefix(degraded, "data:image/jpeg;base64,"))
	require.False(t, IsPlaceholder(degraded))

	// A degraded payload must survive another pass untouched
	require.Equal(t, degraded, Degrade(degraded, CollectionMaxKB))

	// The output must still decode
	_, data, err := Decode(degraded)
	require.NoError(t, err)
	_, err = jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
}

// Tests that the journal thumbnail target produces a payload a fraction of the
// collection target.
func TestDegrade_ThumbTarget(t *testing.T) {
	payload := noisyJPEG(t, 800)

	thumb := Degrade(payload, ThumbMaxKB)
	require.LessOrEqual(t, SizeKB(thumb), ThumbMaxKB)
}

// Tests that an undecodable oversized payload becomes the fixed placeholder.
func TestDegrade_PlaceholderForUndecodable(t *testing.T) {
	junk := make([]byte, 600*1024)
	payload := Encode(junk, "image/webp")
	require.Greater(t, SizeKB(payload), placeholderCutoffKB)

	degraded := Degrade(payload, CollectionMaxKB)
	require.True(t, IsPlaceholder(degraded))

	// The placeholder is deterministic and idempotent
	require.Equal(t, degraded, Degrade(payload, CollectionMaxKB))
	require.Equal(t, degraded, Degrade(degraded, CollectionMaxKB))
}

// Tests that an undecodable payload between the target and the placeholder
// cutoff passes through unchanged.
func TestDegrade_UndecodableMidBandPassThrough(t *testing.T) {
	junk := make([]byte, 200*1024)
	payload := Encode(junk, "image/webp")

	require.Equal(t, payload, Degrade(payload, CollectionMaxKB))
}

// Tests that non-image payloads are never touched.
func TestDegrade_NonImagePassThrough(t *testing.T) {
	for _, payload := range []string{"", "/images/galaxy1.jpg", "not a url"} {
		if got := Degrade(payload, CollectionMaxKB); got != payload {
			t.Errorf("Non-image payload modified.\nexpected: %q\nreceived: %q",
				payload, got)
		}
	}
}
