////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

package utils

import (
	"fmt"
	"syscall/js"
)

// TypeError is the Javascript TypeError type. It is the exception thrown by
// bindings when a call fails.
var TypeError = js.Global().Get("TypeError")

// JsError converts the error to a Javascript Error.
func JsError(err error) js.Value {
	return Error.New(err.Error())
}

// JsTrace converts the error to a Javascript Error that includes the error's
// stack trace.
func JsTrace(err error) js.Value {
	return Error.New(fmt.Sprintf("%+v", err))
}

// Throw function stub to throw the exception of the given type with the error's
// stack trace from the Javascript layer.
func Throw(exception js.Value, err error) {
	panic(exception.New(fmt.Sprintf("%+v", err)))
}
