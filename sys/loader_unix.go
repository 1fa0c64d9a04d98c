//go:build darwin || linux

package sys

import (
	"runtime"

	"github.com/ebitengine/purego"
)

func openLibrary(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func defaultLibNames() []string {
	if runtime.GOOS == "darwin" {
		return []string{
			"libassimp.5.dylib",
			"libassimp.dylib",
			"/opt/homebrew/lib/libassimp.dylib",
			"/usr/local/lib/libassimp.dylib",
		}
	}
	return []string{
		"libassimp.so.5",
		"libassimp.so",
	}
}
