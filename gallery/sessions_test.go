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

	"gitlab.com/astrovues/astrovues-wasm/access"
	"gitlab.com/astrovues/astrovues-wasm/storage"
)

// Tests that a store with no registered sessions reports the initial session.
func TestLoadSessions_Default(t *testing.T) {
	sessions := LoadSessions(storage.NewMemoryKV())
	require.Equal(t, []SessionInfo{{ID: "page-1", Name: "Session 1"}}, sessions)
}

// Tests that AddSession allocates monotonic ids and persists the list.
func TestAddSession(t *testing.T) {
	kv := storage.NewMemoryKV()
	sess := authorizedSession(t, kv)

	added, err := AddSession(kv, sess)
	require.NoError(t, err)
	require.Equal(t, SessionInfo{ID: "page-2", Name: "Session 2"}, added)

	added, err = AddSession(kv, sess)
	require.NoError(t, err)
	require.Equal(t, "page-3", added.ID)

	sessions := LoadSessions(kv)
	require.Len(t, sessions, 3)
	require.Equal(t, "page-1", sessions[0].ID)
	require.Equal(t, "page-3", sessions[2].ID)
}

// Tests that session creation is gated.
func TestAddSession_Unauthorized(t *testing.T) {
	kv := storage.NewMemoryKV()

	_, err := AddSession(kv, access.NewSession(kv))
	require.ErrorIs(t, err, access.ErrNotAuthorized)
	require.Len(t, LoadSessions(kv), 1)
}

// Tests that a write failure surfaces and the stored list is unchanged.
func TestAddSession_NotPersisted(t *testing.T) {
	kv := storage.NewMemoryKV()
	sess := authorizedSession(t, kv)

	kv.FailNextSet()
	_, err := AddSession(kv, sess)
	require.ErrorIs(t, err, ErrNotPersisted)
	require.Len(t, LoadSessions(kv), 1)
}

// Tests that registering a session makes its namespace visible to the
// cross-collection enumeration.
func TestNamespaces_IncludesSessions(t *testing.T) {
	kv := storage.NewMemoryKV()
	sess := authorizedSession(t, kv)

	added, err := AddSession(kv, sess)
	require.NoError(t, err)

	var keys []string
	for _, ns := range Namespaces(kv) {
		keys = append(keys, ns.Key)
	}
	require.Contains(t, keys, "nightcam-page-1")
	require.Contains(t, keys, "nightcam-"+added.ID)
	require.Contains(t, keys, "messier-page-11")
	require.Contains(t, keys, "messier-extra-11-9")
	require.Contains(t, keys, "solar-system-secondary-9")
	require.Equal(t, "other-views", keys[len(keys)-1])
}
