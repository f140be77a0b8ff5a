//go:build !windows

package processruntime

// SystemReleaseKeyReader is a stub for non-Windows platforms.
// The .NET Framework release key only exists in the Windows registry.
func SystemReleaseKeyReader() ReleaseKeyReader {
	return ReleaseKeyFunc(func() (uint64, error) {
		return 0, ErrRegistryUnsupported
	})
}
