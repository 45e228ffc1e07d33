// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

//go:build windows

package ultralightui

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"syscall"
)

// doInitBridge loads ul_bridge.dll from baseDir, then from the DLL search
// path.
func doInitBridge(baseDir string) error {
	dllPath := filepath.Join(baseDir, bridgeLibName())
	absPath, err := filepath.Abs(dllPath)
	if err != nil {
		absPath = dllPath
	}
	lib, err := syscall.LoadLibrary(absPath)
	if err != nil {
		var searchErr error
		lib, searchErr = syscall.LoadLibrary(bridgeLibName())
		if searchErr != nil {
			return fmt.Errorf("failed to load %s from %s: %w", bridgeLibName(), absPath, err)
		}
		absPath = bridgeLibName()
	}
	Logger().Info("ultralightui: bridge loaded", slog.String("path", absPath))
	return resolveAllSymbols(uintptr(lib))
}

func getSymbolAddr(handle uintptr, name string) (uintptr, error) {
	sym, err := syscall.GetProcAddress(syscall.Handle(handle), name)
	if err != nil {
		return 0, err
	}
	if sym == 0 {
		return 0, fmt.Errorf("symbol %q not found in DLL", name)
	}
	return sym, nil
}

func bridgeLibName() string {
	return "ul_bridge.dll"
}
