package processruntime

import "errors"

var (
	// ErrRegistryUnsupported is returned by SystemReleaseKeyReader on
	// systems without a Windows registry.
	ErrRegistryUnsupported = errors.New("processruntime: registry is not available on this platform")

	// ErrReleaseKeyNotFound is returned when the .NET Framework setup key or
	// its Release value does not exist.
	ErrReleaseKeyNotFound = errors.New("processruntime: .NET Framework release key not found")
)

// VersionResolver determines the final runtime version. candidate is the
// version parsed from the runtime description, Unknown if it had no space.
// Implementations must never return an empty string.
type VersionResolver interface {
	ResolveVersion(candidate string) string
}

// StandardResolver reports the version from the platform's own version API
// and ignores the parsed candidate.
type StandardResolver struct {
	// Version returns the runtime version. A nil func or empty result
	// reports Unknown.
	Version func() string
}

// ResolveVersion implements VersionResolver.
func (r StandardResolver) ResolveVersion(string) string {
	if r.Version == nil {
		return Unknown
	}
	if v := r.Version(); v != "" {
		return v
	}
	return Unknown
}

// ReleaseKeyReader reads the .NET Framework release key from the OS
// configuration store.
type ReleaseKeyReader interface {
	ReadReleaseKey() (uint64, error)
}

// ReleaseKeyFunc adapts an ordinary function to a ReleaseKeyReader.
type ReleaseKeyFunc func() (uint64, error)

// ReadReleaseKey calls f().
func (f ReleaseKeyFunc) ReadReleaseKey() (uint64, error) {
	return f()
}

// LegacyRegistryResolver resolves the .NET Framework version from the
// release key, falling back to the parsed candidate and then Unknown.
type LegacyRegistryResolver struct {
	Reader ReleaseKeyReader
}

// ResolveVersion implements VersionResolver.
func (r LegacyRegistryResolver) ResolveVersion(candidate string) string {
	if v, ok := LookupReleaseVersion(r.Reader); ok {
		return v
	}
	if candidate != "" {
		return candidate
	}
	return Unknown
}

// LookupReleaseVersion reads the release key from r and maps it with
// VersionForReleaseKey. It never fails: a nil reader, any read error and a
// key below every known threshold all report false.
func LookupReleaseVersion(r ReleaseKeyReader) (string, bool) {
	if r == nil {
		return "", false
	}
	key, err := r.ReadReleaseKey()
	if err != nil {
		return "", false
	}
	return VersionForReleaseKey(key)
}
