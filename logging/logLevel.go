////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

package logging

import (
	"log"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
)

// LogLevel sets the level of logging. All logs at the set level and below
// will be displayed (e.g., when the log level is ERROR, only ERROR, CRITICAL,
// and FATAL messages are printed).
//
// The default log level without updates is INFO.
func LogLevel(threshold jww.Threshold) error {
	if threshold < jww.LevelTrace || threshold > jww.LevelFatal {
		return errors.Errorf("log level is not valid: log level: %d", threshold)
	}

	jww.SetLogThreshold(threshold)
	jww.SetFlags(log.LstdFlags | log.Lmicroseconds)

	ll := NewJsConsoleLogListener(threshold)
	AddLogListener(ll.Listen)
	jww.SetStdoutThreshold(jww.LevelFatal + 1)

	jww.INFO.Printf("Log level set to: %s", threshold)
	return nil
}
