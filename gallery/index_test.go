////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package gallery

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/astrovues/astrovues-wasm/storage"
)

// Tests resolving ids through the locator index across staged updates.
func TestLocate(t *testing.T) {
	kv := storage.NewMemoryKV()

	_, exists := Locate(kv, "messier-2-4")
	require.False(t, exists)

	stage := storage.NewStage(kv)
	stageIndexPut(stage, kv, "messier-2-4",
		Location{Collection: "messier", Page: "2", Slot: 4})
	require.True(t, stage.Commit())

	loc, exists := Locate(kv, "messier-2-4")
	require.True(t, exists)
	require.Equal(t, Location{Collection: "messier", Page: "2", Slot: 4}, loc)

	stage = storage.NewStage(kv)
	stageIndexRemove(stage, kv, "messier-2-4")
	require.True(t, stage.Commit())

	_, exists = Locate(kv, "messier-2-4")
	require.False(t, exists)
}

// Tests that removing an unknown id stages nothing, so the commit is empty.
func TestStageIndexRemove_Unknown(t *testing.T) {
	kv := storage.NewMemoryKV()

	stage := storage.NewStage(kv)
	stageIndexRemove(stage, kv, "nowhere")
	require.True(t, stage.Commit())
	require.Empty(t, kv.Keys())
}

// Tests that a corrupt persisted index reads as empty instead of failing.
func TestLocate_MalformedIndex(t *testing.T) {
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(indexKey, "[not-a-map"))

	_, exists := Locate(kv, "anything")
	require.False(t, exists)
}
