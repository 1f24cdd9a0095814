////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package storage

import (
	"os"
	"sort"
)

// MemoryKV is a map-backed [KV] used by tests and by any caller that needs
// gallery semantics without a browser store behind them.
type MemoryKV struct {
	m map[string]string

	// failNext, when set, makes the next Set fail. Lets tests exercise the
	// capacity-exceeded path.
	failNext bool
}

// NewMemoryKV creates an empty in-memory key-value store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{m: make(map[string]string)}
}

// Get returns the value under key or os.ErrNotExist.
func (mkv *MemoryKV) Get(key string) (string, error) {
	v, exists := mkv.m[key]
	if !exists {
		return "", os.ErrNotExist
	}
	return v, nil
}

// Set stores the value under key.
func (mkv *MemoryKV) Set(key, value string) error {
	if mkv.failNext {
		mkv.failNext = false
		return errStoreUnavailable
	}
	mkv.m[key] = value
	return nil
}

// Remove deletes the key. Removing an absent key does nothing.
func (mkv *MemoryKV) Remove(key string) {
	delete(mkv.m, key)
}

// Keys returns all key names, sorted for deterministic iteration.
func (mkv *MemoryKV) Keys() []string {
	keys := make([]string, 0, len(mkv.m))
	for k := range mkv.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FailNextSet makes the next call to Set report a write failure.
func (mkv *MemoryKV) FailNextSet() {
	mkv.failNext = true
}
