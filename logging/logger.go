////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package logging routes jwalterweatherman output to the browser console and
// to an optional in-memory log file that the page can download for bug
// reports.
package logging

import (
	"io"

	"github.com/armon/circbuf"
	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
)

// logger is the active file logger, nil until LogToFile.
var logger *Logger

// GetLogger returns the active file logger, or nil when file logging was
// never started.
func GetLogger() *Logger {
	return logger
}

// Logger records log output to a bounded in-memory buffer. Once the buffer
// fills, the oldest entries are overwritten, so the file always holds the
// most recent output.
type Logger struct {
	threshold      jww.Threshold
	maxLogFileSize int
	listenerID     uint64
	cb             *circbuf.Buffer
}

// LogToFile starts recording logs at the threshold to an in-memory file of at
// most maxLogFileSize bytes. Returns the logger used to retrieve the file.
func LogToFile(threshold jww.Threshold, maxLogFileSize int) (*Logger, error) {
	if threshold < jww.LevelTrace || threshold > jww.LevelFatal {
		return nil, errors.Errorf("log level of %d is invalid", threshold)
	}
	if logger != nil {
		return nil, errors.New("file logging already started")
	}

	cb, err := circbuf.NewBuffer(int64(maxLogFileSize))
	if err != nil {
		return nil, errors.Wrap(err, "could not create log buffer")
	}

	l := &Logger{
		threshold:      threshold,
		maxLogFileSize: maxLogFileSize,
		cb:             cb,
	}
	l.listenerID = AddLogListener(l.Listen)
	logger = l

	jww.INFO.Printf("Outputting log to file of max size %d at level %s",
		maxLogFileSize, threshold)
	return l, nil
}

// Listen adheres to the [jww.LogListener] type and returns the file writer
// for entries at or above the threshold.
func (l *Logger) Listen(t jww.Threshold) io.Writer {
	if t < l.threshold {
		return nil
	}
	return l
}

// Write appends a log entry to the buffer. Never fails; the buffer discards
// its oldest content instead.
func (l *Logger) Write(p []byte) (n int, err error) {
	return l.cb.Write(p)
}

// StopLogging disables the listener and drops the buffer. Once stopped, file
// logging cannot be resumed and the file cannot be recovered.
func (l *Logger) StopLogging() {
	RemoveLogListener(l.listenerID)
	l.cb.Reset()
	if logger == l {
		logger = nil
	}
}

// GetFile returns the recorded log file.
func (l *Logger) GetFile() []byte {
	return l.cb.Bytes()
}

// Threshold returns the recording threshold.
func (l *Logger) Threshold() jww.Threshold {
	return l.threshold
}

// MaxSize returns the buffer capacity in bytes.
func (l *Logger) MaxSize() int {
	return l.maxLogFileSize
}

// Size returns the number of bytes currently recorded.
func (l *Logger) Size() int {
	return len(l.cb.Bytes())
}
