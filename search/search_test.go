////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/astrovues/astrovues-wasm/access"
	"gitlab.com/astrovues/astrovues-wasm/archive"
	"gitlab.com/astrovues/astrovues-wasm/gallery"
	"gitlab.com/astrovues/astrovues-wasm/journal"
	"gitlab.com/astrovues/astrovues-wasm/storage"
)

const testPayload = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUg=="

// authorizedSession returns a session granted with the admin credentials.
func authorizedSession(t *testing.T, kv storage.KV) *access.Session {
	t.Helper()
	sess := access.NewSession(kv)
	require.True(t, sess.Authorize("cosmos", "AstroBoy"))
	return sess
}

// upload stores a record through the gallery, failing the test on error.
func upload(t *testing.T, kv storage.KV, ns gallery.Namespace, slot int,
	caption, date string) {
	t.Helper()
	_, err := gallery.New(kv, ns).Upload(nil, slot, testPayload, caption, date)
	require.NoError(t, err)
}

// Tests that an empty query returns every stored record across collections,
// and nothing else.
func TestSearch_Completeness(t *testing.T) {
	kv := storage.NewMemoryKV()

	upload(t, kv, gallery.MessierPage(1), 0, "Crab shot", "2024-01-01")
	upload(t, kv, gallery.MessierPage(7), 9, "", "2024-02-01")
	upload(t, kv, gallery.SolarSystem(), 5, "Red planet", "2024-03-01")
	upload(t, kv, gallery.OtherViews(), 3, "Star trails", "2024-04-01")

	results := Search(kv, Query{})
	require.Len(t, results, 4)

	var ids []string
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	require.Equal(t, []string{
		"messier-1-0", "messier-7-9", "solar-system-5", "other-views-3",
	}, ids)
}

// Tests case-insensitive term matching over caption, object name, and date.
func TestSearch_Term(t *testing.T) {
	kv := storage.NewMemoryKV()

	upload(t, kv, gallery.OtherViews(), 0, "Summer Milky Way", "2024-07-14")
	upload(t, kv, gallery.OtherViews(), 1, "Winter sky", "2023-12-30")
	// Slot 5 of the solar gallery binds to Mars
	upload(t, kv, gallery.SolarSystem(), 5, "", "2024-07-02")

	results := Search(kv, Query{Term: "milky"})
	require.Len(t, results, 1)
	require.Equal(t, "other-views-0", results[0].ID)

	// Object name match
	results = Search(kv, Query{Term: "mars"})
	require.Len(t, results, 1)
	require.Equal(t, "solar-system-5", results[0].ID)

	// Date match
	results = Search(kv, Query{Term: "2024-07"})
	require.Len(t, results, 2)

	require.Empty(t, Search(kv, Query{Term: "jupiter"}))
}

// Tests the category keyword tables, including matches through bound object
// names and the conjunction of term and category.
func TestSearch_Category(t *testing.T) {
	kv := storage.NewMemoryKV()

	// Slot 0 of Messier page 4 binds to M31, "Galaxie d'Andromède"
	upload(t, kv, gallery.MessierPage(4), 0, "First light", "2024-08-01")
	upload(t, kv, gallery.OtherViews(), 0, "Lagune en été", "2024-08-02")
	upload(t, kv, gallery.OtherViews(), 1, "Full moon mosaic", "2024-08-03")

	results := Search(kv, Query{CategoryID: "galaxie"})
	require.Len(t, results, 1)
	require.Equal(t, "messier-4-0", results[0].ID)

	results = Search(kv, Query{CategoryID: "nebuleuse"})
	require.Len(t, results, 1)
	require.Equal(t, "other-views-0", results[0].ID)

	results = Search(kv, Query{CategoryID: "lune"})
	require.Len(t, results, 1)
	require.Equal(t, "other-views-1", results[0].ID)

	// Filters are conjunctive
	require.Empty(t, Search(kv,
		Query{Term: "mosaic", CategoryID: "nebuleuse"}))
	require.Len(t, Search(kv,
		Query{Term: "mosaic", CategoryID: "lune"}), 1)

	// Unknown category id matches nothing rather than everything
	require.Empty(t, Search(kv, Query{CategoryID: "cométe"}))
}

// Tests that results carry the provenance label and navigable link of their
// namespace, including for night-camera sessions.
func TestSearch_Provenance(t *testing.T) {
	kv := storage.NewMemoryKV()

	session := gallery.SessionInfo{ID: "page-1", Name: "Session 1"}
	_, err := gallery.New(kv, gallery.NightCam(session)).
		Upload(authorizedSession(t, kv), 4, testPayload, "Meteor", "")
	require.NoError(t, err)

	results := Search(kv, Query{Term: "meteor"})
	require.Len(t, results, 1)
	require.Equal(t, "NightCam - Session 1", results[0].Source)
	require.Equal(t, "/nightcam/page-1/4", results[0].Link)
}

// Tests the full path from upload to findability: the uploaded record is the
// single search hit, its journal entry is the newest, and its mirror copy
// lives under a section-slugged key.
func TestSearch_UploadEndToEnd(t *testing.T) {
	kv := storage.NewMemoryKV()
	j := journal.NewStore(kv)
	mirror := archive.NewStore(kv)

	c := gallery.New(kv, gallery.OtherViews()).
		WithJournal(j).WithMirror(mirror)
	_, err := c.Upload(nil, 2, testPayload, "Orion Nebula", "2024-09-19")
	require.NoError(t, err)

	results := Search(kv, Query{Term: "Orion"})
	require.Len(t, results, 1)
	require.Equal(t, "other-views-2", results[0].ID)
	require.Equal(t, "Autres Vues", results[0].Source)
	require.Equal(t, "/other-views/detail/2", results[0].Link)

	entries := j.List()
	require.Equal(t, journal.ActionUpload, entries[0].Action)
	require.Equal(t, "Autres Vues", entries[0].Section)

	keys := mirror.List()
	require.Len(t, keys, 1)
	require.Contains(t, keys[0], "autres-vues")
}
