////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package archive maintains the permanent-folder mirror: an independent copy
// of every uploaded image, addressable outside its originating collection.
// Deleting an image from a collection never touches its mirror copy.
package archive

import (
	"fmt"
	"strings"
	"time"

	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/astrovues/astrovues-wasm/imaging"
	"gitlab.com/astrovues/astrovues-wasm/storage"
)

// Key layout: each blob lives under blobPrefix + its synthetic key, and the
// list of known synthetic keys is kept under indexKey.
const (
	blobPrefix = "astro:"
	indexKey   = "astro:files"
)

// File is one mirrored image. ID is a copy of the originating record's id,
// not a reference: the mirror survives the original's deletion.
type File struct {
	ID         string `json:"id"`
	Src        string `json:"src"`
	Caption    string `json:"caption,omitempty"`
	Date       string `json:"date,omitempty"`
	Section    string `json:"section"`
	ObjectName string `json:"objectName,omitempty"`
}

// Vault is the full-resolution side store whose entries share the mirror's
// synthetic keys. Satisfied by indexedDb.Vault.
type Vault interface {
	Delete(key string) error
}

// Store reads and writes the mirror.
type Store struct {
	kv storage.KV

	// vault, when set, has its entry under the same key deleted whenever a
	// mirror entry is removed.
	vault Vault

	// now feeds the synthetic key timestamps; injectable for tests.
	now func() time.Time
}

// NewStore creates a mirror store over the key-value store.
func NewStore(kv storage.KV) *Store {
	return &Store{kv: kv, now: time.Now}
}

// WithVault pairs the store with the full-resolution vault. Returns the store
// for chaining.
func (s *Store) WithVault(v Vault) *Store {
	s.vault = v
	return s
}

// Put persists an independent, thumbnail-degraded copy of the file under a
// fresh synthetic key and records the key in the index. The blob and index
// writes land in one staged commit. Returns the synthetic key and whether the
// commit succeeded.
func (s *Store) Put(f File) (string, bool) {
	key := fmt.Sprintf(
		"%s-%s-%d", Slugify(f.Section), f.ID, s.now().UnixMilli())
	f.Src = imaging.Degrade(f.Src, imaging.ThumbMaxKB)

	stage := storage.NewStage(s.kv)
	stage.SetJSON(blobPrefix+key, f)

	keys := s.List()
	if !contains(keys, key) {
		stage.SetJSON(indexKey, append(keys, key))
	}

	if !stage.Commit() {
		jww.ERROR.Printf("Failed to mirror %s", f.ID)
		return "", false
	}
	return key, true
}

// List returns the known synthetic keys in insertion order.
func (s *Store) List() []string {
	return storage.Read(s.kv, indexKey, []string{})
}

// Get returns the mirrored file under the synthetic key.
func (s *Store) Get(key string) (File, bool) {
	if _, err := s.kv.Get(blobPrefix + key); err != nil {
		return File{}, false
	}
	return storage.Read(s.kv, blobPrefix+key, File{}), true
}

// Remove deletes the blob and drops the key from the index in one staged
// commit, then deletes the full-resolution vault copy under the same key.
// The vault delete is best effort: a failure is logged and never blocks the
// removal. Removing an unknown key reports success.
func (s *Store) Remove(key string) bool {
	stage := storage.NewStage(s.kv)
	stage.Remove(blobPrefix + key)

	keys := s.List()
	kept := keys[:0]
	for _, k := range keys {
		if k != key {
			kept = append(kept, k)
		}
	}
	if len(kept) != len(keys) {
		stage.SetJSON(indexKey, kept)
	}

	if !stage.Commit() {
		return false
	}

	if s.vault != nil {
		if err := s.vault.Delete(key); err != nil {
			jww.WARN.Printf("Vault delete failed for %s: %+v", key, err)
		}
	}
	return true
}

// Orphans returns, in the given order, the vault keys that no longer have a
// mirror entry. Vault deletes are best effort, so a failed delete can leave a
// full-resolution copy behind; a sweep over Orphans reclaims them.
func (s *Store) Orphans(vaultKeys []string) []string {
	indexed := make(map[string]bool)
	for _, k := range s.List() {
		indexed[k] = true
	}

	var orphans []string
	for _, k := range vaultKeys {
		if !indexed[k] {
			orphans = append(orphans, k)
		}
	}
	return orphans
}

// Slugify lowercases a section label and folds it to the hyphenated ASCII
// form used inside synthetic keys ("Système Solaire" → "systeme-solaire").
func Slugify(section string) string {
	section = strings.ToLower(section)
	section = accentFolder.Replace(section)

	var b strings.Builder
	lastHyphen := true
	for _, r := range section {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// accentFolder covers the accented characters that occur in section labels.
var accentFolder = strings.NewReplacer(
	"à", "a", "â", "a", "ç", "c", "é", "e", "è", "e", "ê", "e", "ë", "e",
	"î", "i", "ï", "i", "ô", "o", "ù", "u", "û", "u", "ü", "u", "œ", "oe",
)

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
