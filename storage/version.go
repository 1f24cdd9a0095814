////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package storage

import (
	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
)

// SEMVER is the current semantic version of the AstroVues WASM module.
const SEMVER = "1.2.0"

// semverKey is the storage key holding the schema version the persisted
// layout was last written with.
const semverKey = "astro-schema-version"

// CheckAndStoreVersion checks that the stored schema version matches the
// current version and if not, upgrades it.
//
// On first load, only the current version is stored.
func CheckAndStoreVersion(kv KV) error {
	// The version is a raw string, not a JSON value.
	storedVersion := ReadString(kv, semverKey, "")

	switch storedVersion {
	case "":
		jww.INFO.Printf("Initialising %s to v%s", semverKey, SEMVER)
	case SEMVER:
		jww.INFO.Printf("Gallery schema version is current: v%s",
			storedVersion)
	default:
		jww.INFO.Printf("Gallery schema out of date; upgrading version: "+
			"v%s -> v%s", storedVersion, SEMVER)
	}

	// Upgrade path code goes here

	if err := kv.Set(semverKey, SEMVER); err != nil {
		return errors.Wrapf(err, "failed to set %q", semverKey)
	}

	return nil
}
