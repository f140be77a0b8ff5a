package processruntime

// releaseVersions maps the minimum .NET Framework 4.x release key to the
// version it identifies, highest first. Comparing with >= keeps newer
// patch releases mapped to their feature version.
var releaseVersions = []struct {
	minKey  uint64
	version string
}{
	{533320, "4.8.1"},
	{528040, "4.8"},
	{461808, "4.7.2"},
	{461308, "4.7.1"},
	{460798, "4.7"},
	{394802, "4.6.2"},
}

// VersionForReleaseKey returns the .NET Framework version identified by a
// release key. Keys below 394802 (4.6.1 and older, all out of support)
// report false.
func VersionForReleaseKey(key uint64) (string, bool) {
	for _, rv := range releaseVersions {
		if key >= rv.minKey {
			return rv.version, true
		}
	}
	return "", false
}
