// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build linux || darwin

package ultralightui

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"

	"github.com/ebitengine/purego"
)

// doInitBridge loads the bridge from baseDir, then from the loader's search
// path (LD_LIBRARY_PATH / DYLD_LIBRARY_PATH).
func doInitBridge(baseDir string) error {
	libPath := filepath.Join(baseDir, bridgeLibName())
	absPath, err := filepath.Abs(libPath)
	if err != nil {
		absPath = libPath
	}
	handle, err := purego.Dlopen(absPath, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		var searchErr error
		handle, searchErr = purego.Dlopen(bridgeLibName(), purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if searchErr != nil {
			return fmt.Errorf("failed to load %s from %s: %w", bridgeLibName(), absPath, err)
		}
		absPath = bridgeLibName()
	}
	Logger().Info("ultralightui: bridge loaded", slog.String("path", absPath))
	return resolveAllSymbols(handle)
}

func getSymbolAddr(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func bridgeLibName() string {
	if runtime.GOOS == "darwin" {
		return "libul_bridge.dylib"
	}
	return "libul_bridge.so"
}
