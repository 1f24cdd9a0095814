////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package storage

import (
	"encoding/json"

	jww "github.com/spf13/jwalterweatherman"
)

// walKey holds the pending-commit record while a staged commit is being
// applied. Its presence at startup means a previous commit was interrupted.
const walKey = "astro-wal"

// stagedOp is one write of a staged commit.
type stagedOp struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Delete bool   `json:"delete,omitempty"`
}

// Stage collects writes that must land together: a collection slot write and
// its locator-index update, or a mirror blob and its key index. Commit first
// persists the full set as a pending-commit record, then applies each write,
// then clears the record, so an interruption mid-apply is repaired by
// [Recover] instead of leaving a torn pair behind.
type Stage struct {
	kv  KV
	ops []stagedOp
}

// NewStage creates an empty staged commit against the store.
func NewStage(kv KV) *Stage {
	return &Stage{kv: kv}
}

// Set stages a raw string write.
func (s *Stage) Set(key, value string) {
	s.ops = append(s.ops, stagedOp{Key: key, Value: value})
}

// SetJSON stages a write of v serialized as JSON. A value that cannot be
// serialized is logged and skipped; the rest of the stage is unaffected.
func (s *Stage) SetJSON(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		jww.ERROR.Printf("Failed to JSON marshal staged value for %q: %+v",
			key, err)
		return
	}
	s.Set(key, string(data))
}

// Remove stages a key deletion.
func (s *Stage) Remove(key string) {
	s.ops = append(s.ops, stagedOp{Key: key, Delete: true})
}

// Commit applies all staged writes. Returns false without applying anything
// when the pending-commit record itself cannot be written; a failure while
// applying leaves the record in place for [Recover].
func (s *Stage) Commit() bool {
	if len(s.ops) == 0 {
		return true
	}

	record, err := json.Marshal(s.ops)
	if err != nil {
		jww.ERROR.Printf("Failed to JSON marshal commit record: %+v", err)
		return false
	}

	if err = s.kv.Set(walKey, string(record)); err != nil {
		jww.ERROR.Printf("Failed to write commit record: %+v", err)
		return false
	}

	ok := applyOps(s.kv, s.ops)
	if ok {
		s.kv.Remove(walKey)
	}
	s.ops = nil
	return ok
}

// Recover replays an interrupted staged commit left behind by a previous
// session. Returns the number of writes applied. Call once at startup, before
// the first read.
func Recover(kv KV) int {
	record, err := kv.Get(walKey)
	if err != nil {
		return 0
	}

	var ops []stagedOp
	if err = json.Unmarshal([]byte(record), &ops); err != nil {
		// A torn record cannot be replayed. Drop it so it does not wedge
		// every future commit.
		jww.WARN.Printf("Discarding unreadable commit record: %+v", err)
		kv.Remove(walKey)
		return 0
	}

	jww.INFO.Printf("Replaying interrupted commit of %d writes", len(ops))
	if !applyOps(kv, ops) {
		return 0
	}

	kv.Remove(walKey)
	return len(ops)
}

// applyOps performs the writes in order, stopping at the first failure.
func applyOps(kv KV, ops []stagedOp) bool {
	for _, op := range ops {
		if op.Delete {
			kv.Remove(op.Key)
			continue
		}
		if err := kv.Set(op.Key, op.Value); err != nil {
			jww.ERROR.Printf("Failed to apply staged write for %q: %+v",
				op.Key, err)
			return false
		}
	}
	return true
}
