////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package gallery

import (
	"fmt"

	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/astrovues/astrovues-wasm/access"
	"gitlab.com/astrovues/astrovues-wasm/storage"
)

// sessionsKey is the storage key for the ordered night-camera session list.
const sessionsKey = "nightcam-pages"

// SessionInfo describes one night-camera session page.
type SessionInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LoadSessions returns the registered night-camera sessions in creation
// order. A store with no registered sessions has the initial session.
func LoadSessions(kv storage.KV) []SessionInfo {
	return storage.Read(kv, sessionsKey,
		[]SessionInfo{{ID: "page-1", Name: "Session 1"}})
}

// AddSession appends a new session page. Session ids are allocated
// monotonically (page-1, page-2, ...) and never reused; there is no removal
// operation. Requires an authorized session.
func AddSession(kv storage.KV, sess *access.Session) (SessionInfo, error) {
	if !sess.IsAuthorized() {
		jww.WARN.Print("Rejected unauthorized session creation")
		return SessionInfo{}, access.ErrNotAuthorized
	}

	sessions := LoadSessions(kv)
	next := SessionInfo{
		ID:   fmt.Sprintf("page-%d", len(sessions)+1),
		Name: fmt.Sprintf("Session %d", len(sessions)+1),
	}

	if !storage.Write(kv, sessionsKey, append(sessions, next)) {
		return SessionInfo{}, ErrNotPersisted
	}
	return next, nil
}
