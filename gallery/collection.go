////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package gallery

import (
	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/astrovues/astrovues-wasm/access"
	"gitlab.com/astrovues/astrovues-wasm/archive"
	"gitlab.com/astrovues/astrovues-wasm/imaging"
	"gitlab.com/astrovues/astrovues-wasm/journal"
	"gitlab.com/astrovues/astrovues-wasm/storage"
)

// ErrNotPersisted is returned when a mutation succeeded in memory but the
// store write failed; the caller sees state ahead of what a reload will show.
var ErrNotPersisted = errors.New("changes were not persisted to the store")

// Vault receives the original, undegraded payload of each mirrored upload.
// Implemented by the IndexedDB vault; failures are best-effort and never fail
// the upload.
type Vault interface {
	Put(key, src string) error
}

// Collection is one slot-array store instance. The optional journal, mirror,
// and vault are notified on mutation; a Collection without them only writes
// its own namespace.
type Collection struct {
	kv      storage.KV
	ns      Namespace
	journal *journal.Store
	mirror  *archive.Store
	vault   Vault
}

// New creates a collection over its namespace.
func New(kv storage.KV, ns Namespace) *Collection {
	return &Collection{kv: kv, ns: ns}
}

// WithJournal attaches the activity journal that receives one entry per
// mutation.
func (c *Collection) WithJournal(j *journal.Store) *Collection {
	c.journal = j
	return c
}

// WithMirror attaches the permanent-folder mirror that receives an
// independent copy of every upload.
func (c *Collection) WithMirror(m *archive.Store) *Collection {
	c.mirror = m
	return c
}

// WithVault attaches the full-resolution vault. Only used when a mirror is
// also attached, since vault entries share the mirror's synthetic keys.
func (c *Collection) WithVault(v Vault) *Collection {
	c.vault = v
	return c
}

// Namespace returns the collection's namespace description.
func (c *Collection) Namespace() Namespace {
	return c.ns
}

// Load returns the slot array, padded to the collection's fixed shape. A
// missing or malformed store entry yields all-empty slots.
func (c *Collection) Load() Slots {
	return storage.Read(c.kv, c.ns.Key, emptySlots(c.ns.SlotCount)).
		normalize(c.ns.SlotCount)
}

// Upload places a new record into the slot, persists the collection, and
// fans out to the journal, mirror, and vault. Uploading over an occupied slot
// replaces it: last write wins, there is no concurrency check.
//
// The slot copy is degraded to the collection size target before persisting.
// The journal and mirror receive the original payload and apply their own,
// smaller degradation independently.
//
// Requires an authorized session unless the namespace allows anonymous
// uploads. Returns ErrNotPersisted when the record exists in memory but the
// store write failed.
func (c *Collection) Upload(sess *access.Session, slot int,
	payload, caption, date string) (*ImageRecord, error) {
	if !c.ns.AllowAnonymous && !sess.IsAuthorized() {
		jww.WARN.Printf("Rejected unauthorized upload to %s", c.ns.Key)
		return nil, access.ErrNotAuthorized
	}
	if slot < 0 || slot >= c.ns.SlotCount {
		return nil, errors.Errorf("slot %d out of range for %s (%d slots)",
			slot, c.ns.Key, c.ns.SlotCount)
	}

	record := &ImageRecord{
		ID:         c.ns.RecordID(slot),
		Src:        imaging.Degrade(payload, imaging.CollectionMaxKB),
		Caption:    caption,
		Date:       date,
		ObjectName: c.ns.ObjectName(slot),
	}

	slots := c.Load()
	slots[slot] = record

	stage := storage.NewStage(c.kv)
	stage.SetJSON(c.ns.Key, slots)
	stageIndexPut(stage, c.kv, record.ID, Location{
		Collection: c.ns.Collection,
		Page:       c.ns.Page,
		Slot:       slot,
	})
	if !stage.Commit() {
		return record, ErrNotPersisted
	}

	if c.journal != nil {
		c.journal.Append(journal.Entry{
			Action:    journal.ActionUpload,
			Section:   c.ns.Section,
			Page:      c.ns.PageLabel,
			Caption:   caption,
			ImageDate: date,
			ID:        record.ID,
			Src:       payload,
		})
	}

	if c.mirror != nil {
		key, ok := c.mirror.Put(archive.File{
			ID:         record.ID,
			Src:        payload,
			Caption:    caption,
			Date:       date,
			Section:    c.ns.Section,
			ObjectName: record.ObjectName,
		})
		if ok && c.vault != nil {
			if err := c.vault.Put(key, payload); err != nil {
				jww.WARN.Printf(
					"Vault write failed for %s: %+v", record.ID, err)
			}
		}
	}

	return record, nil
}

// Remove empties the slot holding the record with the given id and records
// the deletion in the journal with the record's caption and date but not its
// payload. Returns the removed record, or nil when no slot holds the id.
//
// Nothing cascades: the record's extra sub-gallery stays addressable under
// its own key, and the mirror and journal keep their independent copies.
//
// Always requires an authorized session.
func (c *Collection) Remove(sess *access.Session, id string) (*ImageRecord, error) {
	if !sess.IsAuthorized() {
		jww.WARN.Printf("Rejected unauthorized removal from %s", c.ns.Key)
		return nil, access.ErrNotAuthorized
	}

	slots := c.Load()
	slot := -1
	for i, record := range slots {
		if record != nil && record.ID == id {
			slot = i
			break
		}
	}
	if slot == -1 {
		return nil, nil
	}

	removed := slots[slot]
	slots[slot] = nil

	stage := storage.NewStage(c.kv)
	stage.SetJSON(c.ns.Key, slots)
	stageIndexRemove(stage, c.kv, id)
	if !stage.Commit() {
		return removed, ErrNotPersisted
	}

	if c.journal != nil {
		c.journal.Append(journal.Entry{
			Action:    journal.ActionDelete,
			Section:   c.ns.Section,
			Page:      c.ns.PageLabel,
			Caption:   removed.Caption,
			ImageDate: removed.Date,
			ID:        id,
		})
	}

	return removed, nil
}
