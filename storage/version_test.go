////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package storage

import (
	"testing"
)

// Tests that the first run stores the current version.
func TestCheckAndStoreVersion_FirstRun(t *testing.T) {
	kv := NewMemoryKV()

	if err := CheckAndStoreVersion(kv); err != nil {
		t.Fatalf("Failed to check version: %+v", err)
	}

	stored, err := kv.Get(semverKey)
	if err != nil {
		t.Fatalf("No version stored: %+v", err)
	}
	if stored != SEMVER {
		t.Errorf("Stored wrong version.\nexpected: %s\nreceived: %s",
			SEMVER, stored)
	}
}

// Tests that an out-of-date stored version is upgraded to the current one.
func TestCheckAndStoreVersion_Upgrade(t *testing.T) {
	kv := NewMemoryKV()
	if err := kv.Set(semverKey, "0.1.0"); err != nil {
		t.Fatalf("Failed to seed version: %+v", err)
	}

	if err := CheckAndStoreVersion(kv); err != nil {
		t.Fatalf("Failed to check version: %+v", err)
	}

	stored, _ := kv.Get(semverKey)
	if stored != SEMVER {
		t.Errorf("Version was not upgraded.\nexpected: %s\nreceived: %s",
			SEMVER, stored)
	}
}

// Tests that a store that refuses the version write surfaces an error.
func TestCheckAndStoreVersion_WriteFailure(t *testing.T) {
	kv := NewMemoryKV()

	kv.FailNextSet()
	if err := CheckAndStoreVersion(kv); err == nil {
		t.Error("Expected an error when the version write fails")
	}
}
