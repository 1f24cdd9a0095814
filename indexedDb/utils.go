////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

// This file contains generic IndexedDB helpers shared by the vault
// operations.

package indexedDb

import (
	"context"
	"syscall/js"
	"time"

	"github.com/hack-pad/go-indexeddb/idb"
	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
)

const (
	// dbTimeout is the global timeout for operations with the storage
	// [context.Context].
	dbTimeout = time.Second

	// ErrDoesNotExist is an error string for got undefined on Get operations.
	ErrDoesNotExist = "result is undefined"
)

// NewContext builds a context for IndexedDB operations.
func NewContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

// sendRequest is a wrapper for the request.Await() method providing a
// timeout.
func sendRequest(request *idb.Request) (js.Value, error) {
	ctx, cancel := NewContext()
	defer cancel()
	result, err := request.Await(ctx)
	if err != nil {
		return js.Undefined(), err
	} else if ctx.Err() != nil {
		return js.Undefined(), ctx.Err()
	}
	return result, nil
}

// sendCursorRequest is a wrapper for the cursorRequest.Iter() method
// providing a timeout.
func sendCursorRequest(cur *idb.CursorWithValueRequest,
	iterFunc func(cursor *idb.CursorWithValue) error) error {
	ctx, cancel := NewContext()
	defer cancel()
	err := cur.Iter(ctx, iterFunc)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// get returns the value under the primary key in the object store.
func get(db *idb.Database, storeName string, key js.Value) (js.Value, error) {
	parentErr := errors.Errorf("failed to Get %s", storeName)

	txn, err := db.Transaction(idb.TransactionReadOnly, storeName)
	if err != nil {
		return js.Undefined(), errors.WithMessagef(parentErr,
			"Unable to create Transaction: %+v", err)
	}
	store, err := txn.ObjectStore(storeName)
	if err != nil {
		return js.Undefined(), errors.WithMessagef(parentErr,
			"Unable to get ObjectStore: %+v", err)
	}

	getRequest, err := store.Get(key)
	if err != nil {
		return js.Undefined(), errors.WithMessagef(parentErr,
			"Unable to Get from ObjectStore: %+v", err)
	}

	resultObj, err := sendRequest(getRequest)
	if err != nil {
		return js.Undefined(), errors.WithMessagef(parentErr,
			"Unable to get from ObjectStore: %+v", err)
	} else if resultObj.IsUndefined() {
		return js.Undefined(), errors.WithMessagef(parentErr,
			"Unable to get from ObjectStore: %s", ErrDoesNotExist)
	}

	return resultObj, nil
}

// put stores the value in the object store, inserting or updating by its key
// path.
func put(db *idb.Database, storeName string, value js.Value) error {
	txn, err := db.Transaction(idb.TransactionReadWrite, storeName)
	if err != nil {
		return errors.Errorf("Unable to create Transaction: %+v", err)
	}
	store, err := txn.ObjectStore(storeName)
	if err != nil {
		return errors.Errorf("Unable to get ObjectStore: %+v", err)
	}

	request, err := store.Put(value)
	if err != nil {
		return errors.Errorf("Unable to Put: %+v", err)
	}

	if _, err = sendRequest(request); err != nil {
		return errors.Errorf("Putting value failed: %+v", err)
	}
	jww.DEBUG.Printf("Successfully put value in %s", storeName)
	return nil
}

// del removes the value under the primary key from the object store.
func del(db *idb.Database, storeName string, key js.Value) error {
	parentErr := errors.Errorf("failed to Delete %s", storeName)

	txn, err := db.Transaction(idb.TransactionReadWrite, storeName)
	if err != nil {
		return errors.WithMessagef(parentErr,
			"Unable to create Transaction: %+v", err)
	}
	store, err := txn.ObjectStore(storeName)
	if err != nil {
		return errors.WithMessagef(parentErr,
			"Unable to get ObjectStore: %+v", err)
	}

	deleteRequest, err := store.Delete(key)
	if err != nil {
		return errors.WithMessagef(parentErr,
			"Unable to Delete from ObjectStore: %+v", err)
	}

	if _, err = sendRequest(deleteRequest.Request); err != nil {
		return errors.WithMessagef(parentErr,
			"Unable to Delete from ObjectStore: %+v", err)
	}
	return nil
}

// forEach iterates the object store in primary-key order.
func forEach(db *idb.Database, storeName string,
	rowFunc func(value js.Value) error) error {
	parentErr := errors.Errorf("failed to iterate %s", storeName)

	txn, err := db.Transaction(idb.TransactionReadOnly, storeName)
	if err != nil {
		return errors.WithMessagef(parentErr,
			"Unable to create Transaction: %+v", err)
	}
	store, err := txn.ObjectStore(storeName)
	if err != nil {
		return errors.WithMessagef(parentErr,
			"Unable to get ObjectStore: %+v", err)
	}

	cursorRequest, err := store.OpenCursor(idb.CursorNext)
	if err != nil {
		return errors.WithMessagef(parentErr,
			"Unable to open Cursor: %+v", err)
	}

	return sendCursorRequest(cursorRequest,
		func(cursor *idb.CursorWithValue) error {
			value, err := cursor.Value()
			if err != nil {
				return err
			}
			return rowFunc(value)
		})
}
