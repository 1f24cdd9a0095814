////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

package logging

import (
	"io"
	"syscall/js"

	jww "github.com/spf13/jwalterweatherman"
)

var consoleObj = js.Global().Get("console")

// console writes through a single method of the Javascript console object, so
// each log level lands on the console channel the browser devtools expect.
//
// Doc: https://developer.mozilla.org/en-US/docs/Web/API/console
type console struct {
	method string
	js.Value
}

// Write writes the data to the Javascript console using the preset method.
func (c *console) Write(p []byte) (n int, err error) {
	c.Call(c.method, string(p))
	return len(p), nil
}

// JsConsoleLogListener redirects log output to the Javascript console using
// the console method matching each log level.
type JsConsoleLogListener struct {
	jww.Threshold

	trace    *console
	debug    *console
	info     *console
	warn     *console
	error    *console
	critical *console
	fatal    *console
	def      *console
}

// NewJsConsoleLogListener initialises a log listener that prints everything
// at or above the threshold to the Javascript console.
func NewJsConsoleLogListener(threshold jww.Threshold) *JsConsoleLogListener {
	return &JsConsoleLogListener{
		Threshold: threshold,
		trace:     &console{"debug", consoleObj},
		debug:     &console{"log", consoleObj},
		info:      &console{"info", consoleObj},
		warn:      &console{"warn", consoleObj},
		error:     &console{"error", consoleObj},
		critical:  &console{"error", consoleObj},
		fatal:     &console{"error", consoleObj},
		def:       &console{"log", consoleObj},
	}
}

// Listen is called for every logging event. This function adheres to the
// [jww.LogListener] type.
func (ll *JsConsoleLogListener) Listen(t jww.Threshold) io.Writer {
	if t < ll.Threshold {
		return nil
	}

	switch t {
	case jww.LevelTrace:
		return ll.trace
	case jww.LevelDebug:
		return ll.debug
	case jww.LevelInfo:
		return ll.info
	case jww.LevelWarn:
		return ll.warn
	case jww.LevelError:
		return ll.error
	case jww.LevelCritical:
		return ll.critical
	case jww.LevelFatal:
		return ll.fatal
	default:
		return ll.def
	}
}
