////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Tests that Commit applies every staged write and clears the pending-commit
// record.
func TestStage_Commit(t *testing.T) {
	kv := NewMemoryKV()

	s := NewStage(kv)
	s.Set("astro:autres-vues-1", `{"id":"other-views-2"}`)
	s.SetJSON("astro:files", []string{"autres-vues-1"})
	require.True(t, s.Commit())

	require.Equal(t, `{"id":"other-views-2"}`,
		ReadString(kv, "astro:autres-vues-1", ""))
	require.Equal(t, []string{"autres-vues-1"},
		Read(kv, "astro:files", []string{}))

	_, err := kv.Get(walKey)
	require.Error(t, err, "pending-commit record was not cleared")
}

// Tests that a staged Remove deletes the key on commit.
func TestStage_Commit_Remove(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set("astro:stale", "blob"))

	s := NewStage(kv)
	s.Remove("astro:stale")
	require.True(t, s.Commit())

	_, err := kv.Get("astro:stale")
	require.Error(t, err)
}

// Tests that an empty stage commits trivially.
func TestStage_Commit_Empty(t *testing.T) {
	require.True(t, NewStage(NewMemoryKV()).Commit())
}

// Tests that a commit interrupted mid-apply is replayed by Recover.
func TestRecover_ReplaysInterruptedCommit(t *testing.T) {
	kv := NewMemoryKV()

	s := NewStage(kv)
	s.Set("a", "1")
	s.Set("b", "2")

	// The record write succeeds, the first apply fails; the commit record
	// stays behind.
	record := `[{"key":"a","value":"1"},{"key":"b","value":"2"}]`
	require.NoError(t, kv.Set(walKey, record))

	applied := Recover(kv)
	require.Equal(t, 2, applied)
	require.Equal(t, "1", ReadString(kv, "a", ""))
	require.Equal(t, "2", ReadString(kv, "b", ""))

	_, err := kv.Get(walKey)
	require.Error(t, err, "commit record must be cleared after replay")
}

// Tests that Recover discards an unreadable commit record instead of wedging.
func TestRecover_DiscardsTornRecord(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(walKey, "{torn"))

	require.Equal(t, 0, Recover(kv))

	_, err := kv.Get(walKey)
	require.Error(t, err)
}

// Tests that Recover is a no-op when there is no pending commit.
func TestRecover_NoPendingCommit(t *testing.T) {
	require.Equal(t, 0, Recover(NewMemoryKV()))
}
