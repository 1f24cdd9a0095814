////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"syscall/js"

	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/astrovues/astrovues-wasm/access"
	"gitlab.com/astrovues/astrovues-wasm/indexedDb"
	"gitlab.com/astrovues/astrovues-wasm/logging"
	"gitlab.com/astrovues/astrovues-wasm/storage"
	"gitlab.com/astrovues/astrovues-wasm/utils"
	"gitlab.com/astrovues/astrovues-wasm/wasm"
)

func main() {
	fmt.Println("AstroVues Web Assembly")

	if err := logging.LogLevel(jww.LevelInfo); err != nil {
		fmt.Printf("Failed to initialize logging: %+v\n", err)
	}

	// The store is probed once; if the browser refuses writes, every
	// mutating operation degrades to a reported failure instead of a crash.
	kv := storage.Guard(storage.GetLocalStorage())

	if applied := storage.Recover(kv); applied > 0 {
		jww.INFO.Printf("Recovered %d writes from an interrupted commit",
			applied)
	}

	if err := storage.CheckAndStoreVersion(kv); err != nil {
		jww.ERROR.Printf("Failed to check schema version: %+v", err)
	}

	session := access.NewSession(kv)

	vault, err := indexedDb.NewVault()
	if err != nil {
		jww.WARN.Printf(
			"IndexedDb unavailable, full-resolution vault disabled: %+v", err)
		vault = nil
	}

	wasm.Setup(kv, session, vault)

	// wasm/gallery.go
	js.Global().Set("LoadCollection", js.FuncOf(wasm.LoadCollection))
	js.Global().Set("UploadImage", js.FuncOf(wasm.UploadImage))
	js.Global().Set("RemoveImage", js.FuncOf(wasm.RemoveImage))
	js.Global().Set("LocateImage", js.FuncOf(wasm.LocateImage))
	js.Global().Set("LoadNightCamSessions",
		js.FuncOf(wasm.LoadNightCamSessions))
	js.Global().Set("AddNightCamSession",
		js.FuncOf(wasm.AddNightCamSession))

	// wasm/journal.go
	js.Global().Set("GetJournal", js.FuncOf(wasm.GetJournal))
	js.Global().Set("GetLatestUploads", js.FuncOf(wasm.GetLatestUploads))
	js.Global().Set("RecordView", js.FuncOf(wasm.RecordView))

	// wasm/archive.go
	js.Global().Set("ListArchive", js.FuncOf(wasm.ListArchive))
	js.Global().Set("GetArchiveFile", js.FuncOf(wasm.GetArchiveFile))
	js.Global().Set("RemoveArchiveFile", js.FuncOf(wasm.RemoveArchiveFile))
	js.Global().Set("GetVaultImage", js.FuncOf(wasm.GetVaultImage))
	js.Global().Set("PruneVault", js.FuncOf(wasm.PruneVault))

	// wasm/search.go
	js.Global().Set("SearchImages", js.FuncOf(wasm.SearchImages))
	js.Global().Set("SearchCategories", js.FuncOf(wasm.SearchCategories))

	// wasm/access.go
	js.Global().Set("Login", js.FuncOf(wasm.Login))
	js.Global().Set("Logout", js.FuncOf(wasm.Logout))
	js.Global().Set("IsAuthorized", js.FuncOf(wasm.IsAuthorized))

	// wasm/logging.go
	js.Global().Set("LogLevel", js.FuncOf(wasm.LogLevel))
	js.Global().Set("LogToFile", js.FuncOf(wasm.LogToFile))

	// wasm/version.go
	js.Global().Set("GetVersion", js.FuncOf(wasm.GetVersion))

	// utils/array.go
	js.Global().Set("Uint8ArrayToBase64", js.FuncOf(utils.Uint8ArrayToBase64))
	js.Global().Set("Base64ToUint8Array", js.FuncOf(utils.Base64ToUint8Array))
	js.Global().Set("Uint8ArrayEquals", js.FuncOf(utils.Uint8ArrayEquals))

	// Wait until the user terminates the program
	c := make(chan os.Signal)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	os.Exit(0)
}
