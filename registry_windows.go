//go:build windows

package processruntime

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const (
	// ndpSubKey is where the .NET Framework 4.x installer records its release.
	ndpSubKey = `SOFTWARE\Microsoft\NET Framework Setup\NDP\v4\Full`

	releaseValueName = "Release"
)

// SystemReleaseKeyReader returns a reader for the .NET Framework 4.x release
// key in the 32-bit view of HKEY_LOCAL_MACHINE.
func SystemReleaseKeyReader() ReleaseKeyReader {
	return ReleaseKeyFunc(readRegistryReleaseKey)
}

func readRegistryReleaseKey() (uint64, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, ndpSubKey,
		registry.QUERY_VALUE|registry.WOW64_32KEY)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return 0, ErrReleaseKeyNotFound
		}
		return 0, fmt.Errorf("open %s: %w", ndpSubKey, err)
	}
	defer key.Close()

	release, _, err := key.GetIntegerValue(releaseValueName)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return 0, ErrReleaseKeyNotFound
		}
		return 0, fmt.Errorf("read %s value: %w", releaseValueName, err)
	}
	return release, nil
}
