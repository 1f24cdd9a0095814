////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 AstroVues                                                 //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package logging

import (
	"sync"

	jww "github.com/spf13/jwalterweatherman"
)

// logListeners tracks every listener registered with jwalterweatherman,
// keyed on a unique ID so a listener can be removed without disturbing the
// others.
var logListeners = logListenerList{
	listeners: make(map[uint64]jww.LogListener),
}

type logListenerList struct {
	listeners map[uint64]jww.LogListener
	currentID uint64
	sync.Mutex
}

// AddLogListener registers the log listener with jwalterweatherman. Returns a
// unique ID that can be used to remove the listener.
func AddLogListener(ll jww.LogListener) uint64 {
	logListeners.Lock()
	defer logListeners.Unlock()

	id := logListeners.currentID
	logListeners.currentID++
	logListeners.listeners[id] = ll

	jww.SetLogListeners(logListeners.slice()...)
	return id
}

// RemoveLogListener unregisters the log listener with the ID from
// jwalterweatherman.
func RemoveLogListener(id uint64) {
	logListeners.Lock()
	defer logListeners.Unlock()

	delete(logListeners.listeners, id)
	jww.SetLogListeners(logListeners.slice()...)
}

// slice converts the listener map to the slice form that
// jww.SetLogListeners takes. Callers must hold the lock.
func (lll *logListenerList) slice() []jww.LogListener {
	listeners := make([]jww.LogListener, 0, len(lll.listeners))
	for _, l := range lll.listeners {
		listeners = append(listeners, l)
	}
	return listeners
}
