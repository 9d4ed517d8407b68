package main

import (
	"fmt"

	"github.com/winelayer/regsrv/pkg/registry"
	"github.com/winelayer/regsrv/pkg/regtypes"
)

// openPath resolves "<root>" plus an optional relative path under it to a
// handle, used by every subcommand that addresses an existing key.
func openPath(reg *registry.Registry, rootName, relPath string, access regtypes.AccessMask) (registry.Handle, error) {
	if relPath != "" {
		printVerbose("Opening %s\\%s\n", rootName, relPath)
	}

	rootAccess := access
	if relPath != "" {
		rootAccess = regtypes.KeyQueryValue
	}
	rh, err := resolveRoot(reg, rootName, rootAccess)
	if err != nil {
		return 0, err
	}
	if relPath == "" {
		return rh, nil
	}
	defer reg.CloseKey(rh)

	h, err := reg.OpenKey(rh, relPath, access)
	if err != nil {
		return 0, fmt.Errorf("open %s\\%s: %w", rootName, relPath, err)
	}
	return h, nil
}
