////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

package wasm

import (
	"syscall/js"

	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/astrovues/astrovues-wasm/logging"
	"gitlab.com/astrovues/astrovues-wasm/utils"
)

// LogLevel sets the level of logging. All logs at the set level and below
// will be displayed (e.g., when the log level is ERROR, only ERROR, CRITICAL,
// and FATAL messages are printed).
//
// Log level options:
//
//	TRACE    - 0
//	DEBUG    - 1
//	INFO     - 2
//	WARN     - 3
//	ERROR    - 4
//	CRITICAL - 5
//	FATAL    - 6
//
// The default log level without updates is INFO.
//
// Parameters:
//   - args[0] - Log level (int).
//
// Returns:
//   - Throws TypeError if the log level is invalid.
func LogLevel(_ js.Value, args []js.Value) any {
	err := logging.LogLevel(jww.Threshold(args[0].Int()))
	if err != nil {
		utils.Throw(utils.TypeError, err)
		return nil
	}
	return nil
}

// LogToFile starts recording logs to an in-memory file that can be
// downloaded for bug reports.
//
// Parameters:
//   - args[0] - Log level (int).
//   - args[1] - Max log file size, in bytes (int).
//
// Returns:
//   - A Javascript object exposing the file logger.
//   - Throws TypeError if starting the log file fails.
func LogToFile(_ js.Value, args []js.Value) any {
	l, err := logging.LogToFile(jww.Threshold(args[0].Int()), args[1].Int())
	if err != nil {
		utils.Throw(utils.TypeError, err)
		return nil
	}
	return newLoggerJS(l)
}

// newLoggerJS creates a Javascript compatible object (map[string]any) that
// matches the [logging.Logger] structure.
func newLoggerJS(l *logging.Logger) map[string]any {
	return map[string]any{
		"StopLogging": js.FuncOf(func(js.Value, []js.Value) any {
			l.StopLogging()
			return nil
		}),
		"GetFile": js.FuncOf(func(js.Value, []js.Value) any {
			return string(l.GetFile())
		}),
		"Threshold": js.FuncOf(func(js.Value, []js.Value) any {
			return int(l.Threshold())
		}),
		"MaxSize": js.FuncOf(func(js.Value, []js.Value) any {
			return l.MaxSize()
		}),
		"Size": js.FuncOf(func(js.Value, []js.Value) any {
			return l.Size()
		}),
	}
}
