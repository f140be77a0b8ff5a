package processruntime

import (
	"strings"

	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.25.0"
)

// Unknown is reported for any value that cannot be determined.
const Unknown = "unknown"

// Description describes the runtime the current process executes under.
type Description struct {
	// Description is the platform-provided runtime description, verbatim
	// (e.g. ".NET Framework 4.8.9195.0" or "go 1.22.1").
	Description string

	// Name is the runtime family name, the text before the last space of Description.
	Name string

	// Version is the runtime version. Never empty; Unknown when it could not be resolved.
	Version string
}

// Attributes returns the description as resource attributes, always three,
// in the order description, name, version.
func (d Description) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		semconv.ProcessRuntimeDescriptionKey.String(d.Description),
		semconv.ProcessRuntimeNameKey.String(d.Name),
		semconv.ProcessRuntimeVersionKey.String(d.Version),
	}
}

// parseDescription splits a "{Name With Optional Spaces} {Version}" string
// at its last space. Without a space both parts are Unknown.
func parseDescription(description string) (name, candidate string) {
	i := strings.LastIndexByte(description, ' ')
	if i < 0 {
		return Unknown, Unknown
	}
	return description[:i], description[i+1:]
}
