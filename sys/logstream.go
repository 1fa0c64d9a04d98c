package sys

import (
	"sync"

	"github.com/ebitengine/purego"
)

// AiLogStream routes native log output to a C callback.
type AiLogStream struct {
	Callback uintptr
	User     *byte
}

var (
	logMu       sync.Mutex
	logFn       func(string)
	logCallback uintptr
	logStream   AiLogStream
	logAttached bool
)

// AttachLogStream routes the native importer's log lines to fn. The
// function is called on the goroutine performing the import, once per
// line, with the trailing newline stripped. Calling AttachLogStream again
// replaces the function.
func AttachLogStream(fn func(string)) {
	logMu.Lock()
	defer logMu.Unlock()
	logFn = fn
	if logCallback == 0 {
		// A process may only create a bounded number of C callbacks, so
		// one shared trampoline dispatches to whatever logFn is current.
		logCallback = purego.NewCallback(func(msg, user *byte) uintptr {
			logMu.Lock()
			f := logFn
			logMu.Unlock()
			if f != nil {
				line := cstring(msg)
				if n := len(line); n > 0 && line[n-1] == '\n' {
					line = line[:n-1]
				}
				f(line)
			}
			return 0
		})
		logStream = AiLogStream{Callback: logCallback}
	}
	if !logAttached {
		attachLogStream(&logStream)
		logAttached = true
	}
}

// DetachLogStreams removes all native log streams, including any attached
// outside this package.
func DetachLogStreams() {
	logMu.Lock()
	defer logMu.Unlock()
	logFn = nil
	logAttached = false
	detachAllLogStreams()
}
