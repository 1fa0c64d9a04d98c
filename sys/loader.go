package sys

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

var (
	libMu  sync.Mutex
	handle uintptr

	importFile                 func(path string, flags uint32) *AiScene
	importFileFromMemory       func(buf []byte, length uint32, flags uint32, hint string) *AiScene
	importFileExWithProperties func(path string, flags uint32, fileIO unsafe.Pointer, props *AiPropertyStore) *AiScene
	releaseImport              func(scene *AiScene)
	getErrorString             func() string
	createPropertyStore        func() *AiPropertyStore
	releasePropertyStore       func(store *AiPropertyStore)
	setImportPropertyInteger   func(store *AiPropertyStore, name string, value int32)
	setImportPropertyFloat     func(store *AiPropertyStore, name string, value float32)
	setImportPropertyString    func(store *AiPropertyStore, name string, value *AiString)
	attachLogStream            func(stream *AiLogStream)
	detachAllLogStreams        func()
	enableVerboseLogging       func(enable int32)
)

// Load opens the native import library and resolves the functions this
// package calls. With an empty path the platform default names are probed
// in order. Load is idempotent; once a library is open, later calls are
// no-ops and the path argument is ignored.
func Load(path string) error {
	libMu.Lock()
	defer libMu.Unlock()
	if handle != 0 {
		return nil
	}
	names := defaultLibNames()
	if path != "" {
		names = []string{path}
	}
	var errs []error
	for _, name := range names {
		h, err := openLibrary(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		handle = h
		register(h)
		return nil
	}
	return fmt.Errorf("sys: open native import library: %w", errors.Join(errs...))
}

// Loaded reports whether the native library is open.
func Loaded() bool {
	libMu.Lock()
	defer libMu.Unlock()
	return handle != 0
}

func register(h uintptr) {
	purego.RegisterLibFunc(&importFile, h, "aiImportFile")
	purego.RegisterLibFunc(&importFileFromMemory, h, "aiImportFileFromMemory")
	purego.RegisterLibFunc(&importFileExWithProperties, h, "aiImportFileExWithProperties")
	purego.RegisterLibFunc(&releaseImport, h, "aiReleaseImport")
	purego.RegisterLibFunc(&getErrorString, h, "aiGetErrorString")
	purego.RegisterLibFunc(&createPropertyStore, h, "aiCreatePropertyStore")
	purego.RegisterLibFunc(&releasePropertyStore, h, "aiReleasePropertyStore")
	purego.RegisterLibFunc(&setImportPropertyInteger, h, "aiSetImportPropertyInteger")
	purego.RegisterLibFunc(&setImportPropertyFloat, h, "aiSetImportPropertyFloat")
	purego.RegisterLibFunc(&setImportPropertyString, h, "aiSetImportPropertyString")
	purego.RegisterLibFunc(&attachLogStream, h, "aiAttachLogStream")
	purego.RegisterLibFunc(&detachAllLogStreams, h, "aiDetachAllLogStreams")
	purego.RegisterLibFunc(&enableVerboseLogging, h, "aiEnableVerboseLogging")
}

// ImportFile runs the native importer on a file. A nil result means the
// import failed; ErrorString has the reason. The caller owns the returned
// scene and must pass it to ReleaseImport.
func ImportFile(path string, flags uint32) *AiScene {
	return importFile(path, flags)
}

// ImportFileFromMemory runs the native importer on an in-memory buffer.
// The hint names the likely file format ("obj", "glb", ...) and may be
// empty. Ownership is as for ImportFile.
func ImportFileFromMemory(buf []byte, flags uint32, hint string) *AiScene {
	return importFileFromMemory(buf, uint32(len(buf)), flags, hint)
}

// ImportFileWithProperties is ImportFile with per-import property
// overrides. A nil store behaves like ImportFile.
func ImportFileWithProperties(path string, flags uint32, props *PropertyStore) *AiScene {
	var store *AiPropertyStore
	if props != nil {
		store = props.store
	}
	return importFileExWithProperties(path, flags, nil, store)
}

// ReleaseImport frees a scene returned by the import functions. Every
// pointer read from the scene is invalid afterwards.
func ReleaseImport(scene *AiScene) {
	if scene != nil {
		releaseImport(scene)
	}
}

// ErrorString returns the native importer's description of the most
// recent failure on this thread.
func ErrorString() string {
	return getErrorString()
}

// EnableVerboseLogging makes the native importer emit per-step debug
// output on its attached log streams.
func EnableVerboseLogging(on bool) {
	var v int32
	if on {
		v = 1
	}
	enableVerboseLogging(v)
}
