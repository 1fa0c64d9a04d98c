//go:build windows

package sys

import "golang.org/x/sys/windows"

func openLibrary(name string) (uintptr, error) {
	h, err := windows.LoadLibrary(name)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

func defaultLibNames() []string {
	return []string{
		"assimp-vc143-mt.dll",
		"assimp-vc142-mt.dll",
		"assimp.dll",
	}
}
