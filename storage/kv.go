////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package storage

import (
	"encoding/json"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
)

// errStoreUnavailable is returned for every write once the availability probe
// has failed.
var errStoreUnavailable = errors.New("local store is unavailable")

// KV is the key-value contract that all gallery state persists through. Values
// are plain JSON strings so that the page can read them without an extra
// decoding step.
//
// Get returns [os.ErrNotExist] when the key is missing. Set returns an error
// on capacity exhaustion or store unavailability; the prior value remains
// untouched (the underlying set operation is atomic per key).
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string)
	Keys() []string
}

// probeKey is the scratch key used to verify the store accepts writes at all.
const probeKey = "__astro_probe__"

// Probe reports whether the store accepts writes. It performs one throwaway
// write/remove cycle.
func Probe(kv KV) bool {
	if err := kv.Set(probeKey, probeKey); err != nil {
		jww.ERROR.Printf("Storage probe failed, writes will be disabled: %+v",
			err)
		return false
	}
	kv.Remove(probeKey)
	return true
}

// Guard wraps the store with a one-time availability probe. If the probe
// fails, every subsequent write through the returned KV degrades to a no-op
// failure and reads pass through unchanged.
func Guard(kv KV) KV {
	if Probe(kv) {
		return kv
	}
	return unavailableKV{kv}
}

// unavailableKV passes reads through to the underlying store but refuses all
// writes.
type unavailableKV struct {
	KV
}

func (u unavailableKV) Set(key, string2 string) error {
	return errStoreUnavailable
}

func (u unavailableKV) Remove(string) {}

// Read loads the JSON value under key into a value of type T. A missing key or
// malformed stored content never propagates an error: both return def, and
// malformed content is logged.
func Read[T any](kv KV, key string, def T) T {
	raw, err := kv.Get(key)
	if err != nil {
		return def
	}

	var v T
	if err = json.Unmarshal([]byte(raw), &v); err != nil {
		jww.WARN.Printf("Malformed value under %q, using default: %+v",
			key, err)
		return def
	}

	return v
}

// ReadString loads the raw string under key without a JSON decoding step,
// returning def when the key is missing.
func ReadString(kv KV, key, def string) string {
	raw, err := kv.Get(key)
	if err != nil {
		return def
	}
	return raw
}

// Write stores v as JSON under key. It never throws; a serialization or store
// failure is logged and reported as false.
func Write(kv KV, key string, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		jww.ERROR.Printf("Failed to JSON marshal value for %q: %+v", key, err)
		return false
	}

	if err = kv.Set(key, string(data)); err != nil {
		jww.ERROR.Printf("Failed to store value for %q: %+v", key, err)
		return false
	}

	return true
}
