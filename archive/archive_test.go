////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package archive

import (
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"gitlab.com/astrovues/astrovues-wasm/imaging"
	"gitlab.com/astrovues/astrovues-wasm/storage"
)

// recordingVault records every delete and optionally fails them all.
type recordingVault struct {
	deleted []string
	err     error
}

func (v *recordingVault) Delete(key string) error {
	v.deleted = append(v.deleted, key)
	return v.err
}

// newTestStore returns a store with a deterministic advancing clock.
func newTestStore(kv storage.KV) *Store {
	s := NewStore(kv)
	t0 := time.Date(2024, 9, 19, 20, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		t0 = t0.Add(time.Second)
		return t0
	}
	return s
}

// Tests that Put followed by Get round-trips the file, modulo payload
// degradation, and that the synthetic key embeds the slugified section and
// the copied id.
func TestStore_Put_Get(t *testing.T) {
	s := newTestStore(storage.NewMemoryKV())

	f := File{
		ID:      "other-views-2",
		Src:     "data:image/png;base64,AAAA",
		Caption: "Orion Nebula",
		Date:    "2024-09-19",
		Section: "Autres Vues",
	}

	key, ok := s.Put(f)
	require.True(t, ok)
	require.True(t, strings.HasPrefix(key, "autres-vues-other-views-2-"))

	got, exists := s.Get(key)
	require.True(t, exists)
	require.Equal(t, f.ID, got.ID)
	require.Equal(t, f.Caption, got.Caption)
	require.Equal(t, f.Date, got.Date)
	require.Equal(t, f.Section, got.Section)
	require.Equal(t, imaging.Degrade(f.Src, imaging.ThumbMaxKB), got.Src)
}

// Tests that every Put key lands in the index exactly once and that the blob
// behind each indexed key is present.
func TestStore_List_IndexConsistent(t *testing.T) {
	s := newTestStore(storage.NewMemoryKV())

	for _, id := range []string{"messier-1-0", "messier-1-1", "solar-system-4"} {
		_, ok := s.Put(File{ID: id, Src: "x", Section: "Messier"})
		require.True(t, ok)
	}

	keys := s.List()
	require.Len(t, keys, 3)
	seen := map[string]bool{}
	for _, key := range keys {
		require.False(t, seen[key], "duplicate index entry %q", key)
		seen[key] = true

		_, exists := s.Get(key)
		require.True(t, exists, "indexed key %q has no blob", key)
	}
}

// Tests that Remove deletes the blob and drops the key from the index.
func TestStore_Remove(t *testing.T) {
	s := newTestStore(storage.NewMemoryKV())

	key, ok := s.Put(File{ID: "nightcam-page-1-3", Src: "x", Section: "NightCam"})
	require.True(t, ok)

	require.True(t, s.Remove(key))

	_, exists := s.Get(key)
	require.False(t, exists)
	require.Empty(t, s.List())

	// Removing again still reports success
	require.True(t, s.Remove(key))
}

// Tests that removing a mirror entry deletes the full-resolution vault copy
// under the same key, and that a vault failure never blocks the removal.
func TestStore_Remove_VaultCopy(t *testing.T) {
	vault := &recordingVault{}
	s := newTestStore(storage.NewMemoryKV()).WithVault(vault)

	key, ok := s.Put(File{ID: "other-views-2", Src: "x", Section: "Autres Vues"})
	require.True(t, ok)

	require.True(t, s.Remove(key))
	require.Equal(t, []string{key}, vault.deleted)

	// A failing vault is logged, not surfaced
	vault.err = errors.New("vault is unavailable")
	key2, ok := s.Put(File{ID: "messier-3-1", Src: "x", Section: "Messier"})
	require.True(t, ok)
	require.True(t, s.Remove(key2))
	require.Empty(t, s.List())
}

// Tests that a removal whose commit fails never touches the vault: the mirror
// entry survives, so the full-resolution copy must too.
func TestStore_Remove_CommitFailureKeepsVault(t *testing.T) {
	kv := storage.NewMemoryKV()
	vault := &recordingVault{}
	s := newTestStore(kv).WithVault(vault)

	key, ok := s.Put(File{ID: "solar-system-4", Src: "x", Section: "Système Solaire"})
	require.True(t, ok)

	kv.FailNextSet()
	require.False(t, s.Remove(key))
	require.Empty(t, vault.deleted)

	_, exists := s.Get(key)
	require.True(t, exists)
}

// Tests that Orphans reports exactly the vault keys with no mirror entry,
// preserving their order.
func TestStore_Orphans(t *testing.T) {
	s := newTestStore(storage.NewMemoryKV())

	key1, ok := s.Put(File{ID: "messier-1-0", Src: "x", Section: "Messier"})
	require.True(t, ok)
	key2, ok := s.Put(File{ID: "messier-1-1", Src: "x", Section: "Messier"})
	require.True(t, ok)

	orphans := s.Orphans([]string{"stale-1", key1, "stale-2", key2})
	require.Equal(t, []string{"stale-1", "stale-2"}, orphans)

	require.Empty(t, s.Orphans([]string{key1, key2}))
	require.Empty(t, s.Orphans(nil))
}

// Tests that a failed commit reports false and leaves the index unchanged.
func TestStore_Put_CommitFailure(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := newTestStore(kv)

	kv.FailNextSet()
	_, ok := s.Put(File{ID: "messier-2-0", Src: "x", Section: "Messier"})
	require.False(t, ok)
	require.Empty(t, s.List())
}

// Tests the accent folding and hyphenation of section labels.
func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Autres Vues":               "autres-vues",
		"Système Solaire":           "systeme-solaire",
		"Messier (Supplémentaire)":  "messier-supplementaire",
		"NightCam - Session 1":      "nightcam-session-1",
		"  espaces  multiples  ":    "espaces-multiples",
	}

	for in, expected := range tests {
		if got := Slugify(in); got != expected {
			t.Errorf("Slugify(%q) = %q, expected %q", in, got, expected)
		}
	}
}
