////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package access gates every mutating gallery operation behind the shared
// admin credentials. Authorization state lives in an explicit Session passed
// to the operations that need it, never in package globals.
package access

import (
	"crypto/subtle"
	"encoding/hex"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
	"golang.org/x/crypto/blake2b"

	"gitlab.com/astrovues/astrovues-wasm/storage"
)

// The shared admin credentials. A static secret, not a credential system; it
// only keeps casual visitors from mutating the galleries.
const (
	adminUsername = "cosmos"
	adminSecret   = "AstroBoy"
)

// markerKey is the storage key for the logged-in marker. Its presence at
// startup is treated as sufficient to restore authorization.
const markerKey = "admin-status"

// ErrNotAuthorized is returned by mutating operations invoked without an
// authorized session.
var ErrNotAuthorized = errors.New("operation requires authorization")

// Session carries the write-authorization state for one running instance.
// Construct it once at startup with NewSession and pass it to every mutating
// call.
type Session struct {
	kv         storage.KV
	authorized bool
}

// NewSession restores a session from the store. Authorization is restored
// when the persisted marker is present; the marker's value is not verified.
func NewSession(kv storage.KV) *Session {
	_, err := kv.Get(markerKey)
	s := &Session{kv: kv, authorized: err == nil}
	if s.authorized {
		jww.INFO.Print("Restored authorized session from stored marker")
	}
	return s
}

// Authorize grants write authorization iff the credentials match the
// configured values. On success the session is marked authorized and a marker
// is persisted so the authorization survives a reload. On failure the state
// is unchanged.
func (s *Session) Authorize(username, secret string) bool {
	userDigest := blake2b.Sum256([]byte(username))
	wantUserDigest := blake2b.Sum256([]byte(adminUsername))
	secretDigest := blake2b.Sum256([]byte(secret))
	wantSecretDigest := blake2b.Sum256([]byte(adminSecret))

	userOK := subtle.ConstantTimeCompare(
		userDigest[:], wantUserDigest[:]) == 1
	secretOK := subtle.ConstantTimeCompare(
		secretDigest[:], wantSecretDigest[:]) == 1
	if !userOK || !secretOK {
		jww.WARN.Print("Rejected authorization attempt")
		return false
	}

	s.authorized = true
	if err := s.kv.Set(
		markerKey, hex.EncodeToString(secretDigest[:])); err != nil {
		// The session is still authorized for this run; it just will not
		// survive a reload.
		jww.ERROR.Printf("Failed to persist authorization marker: %+v", err)
	}

	return true
}

// Deauthorize clears the session's authorization and the persisted marker.
func (s *Session) Deauthorize() {
	s.authorized = false
	s.kv.Remove(markerKey)
}

// IsAuthorized reports whether mutating operations are permitted.
func (s *Session) IsAuthorized() bool {
	return s != nil && s.authorized
}
