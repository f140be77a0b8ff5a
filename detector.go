// Package processruntime provides an OpenTelemetry resource detector that
// reports the runtime a process executes under as process.runtime.description,
// process.runtime.name and process.runtime.version.
//
// Basic usage:
//
//	import processruntime "github.com/last9/go-processruntime"
//
//	res, err := resource.New(ctx,
//	    resource.WithTelemetrySDK(),
//	    processruntime.WithProcessRuntime(),
//	)
//
// Describing a hosted .NET Framework process on Windows:
//
//	d := processruntime.New(
//	    processruntime.WithRuntime("netfx"),
//	    processruntime.WithDescription(".NET Framework 4.8.9195.0"),
//	)
//	desc := d.Describe() // Version resolved from the registry release key
//
// Detection never fails. Values that cannot be determined are reported as
// "unknown".
package processruntime

import (
	"context"
	"log"
	"runtime"
	"strings"

	"github.com/last9/go-processruntime/config"
	"go.opentelemetry.io/otel/sdk/resource"
)

const goRuntimeName = "go"

// Compile-time assertion that Detector implements resource.Detector.
var _ resource.Detector = (*Detector)(nil)

// Option is a functional option for configuring the detector.
// Options override environment variable values.
type Option func(*Detector)

// WithRuntime selects the runtime platform ("go" or "netfx"),
// overriding LAST9_PROCESS_RUNTIME.
func WithRuntime(name string) Option {
	return func(d *Detector) {
		d.cfg.Runtime = name
	}
}

// WithDescription sets the runtime description reported by the host,
// overriding LAST9_PROCESS_RUNTIME_DESCRIPTION. Only the netfx runtime
// reads it.
func WithDescription(description string) Option {
	return func(d *Detector) {
		d.cfg.Description = description
	}
}

// WithDescriptionFunc replaces the platform's runtime description source.
func WithDescriptionFunc(fn func() string) Option {
	return func(d *Detector) {
		d.describe = fn
	}
}

// WithVersionResolver replaces the platform's version resolver.
func WithVersionResolver(r VersionResolver) Option {
	return func(d *Detector) {
		d.resolver = r
	}
}

// Detector detects the process runtime. It is immutable after New and safe
// for concurrent use.
type Detector struct {
	cfg      *config.Config
	describe func() string
	resolver VersionResolver
}

// New creates a Detector with configuration from environment variables,
// optionally overridden by functional options. The platform (description
// source and version resolver) is selected once here.
//
// Environment variables:
//   - LAST9_PROCESS_RUNTIME: "go" (default) or "netfx"
//   - LAST9_PROCESS_RUNTIME_DESCRIPTION: host runtime description for netfx
func New(opts ...Option) *Detector {
	d := &Detector{cfg: config.Load()}
	for _, opt := range opts {
		opt(d)
	}

	d.cfg.Runtime = config.ParseRuntime(d.cfg.Runtime)
	if d.cfg.Runtime == config.RuntimeNetFramework && d.cfg.Description == "" && d.describe == nil {
		log.Println("[Last9 Agent] Warning: LAST9_PROCESS_RUNTIME_DESCRIPTION not set for netfx runtime")
	}

	var (
		describe func() string
		resolver VersionResolver
	)
	switch d.cfg.Runtime {
	case config.RuntimeNetFramework:
		description := d.cfg.Description
		describe = func() string { return description }
		resolver = LegacyRegistryResolver{Reader: SystemReleaseKeyReader()}
	default:
		describe = goDescription
		resolver = StandardResolver{Version: goVersion}
	}

	if d.describe == nil {
		d.describe = describe
	}
	if d.resolver == nil {
		d.resolver = resolver
	}
	return d
}

// Describe returns the runtime description of the current process.
func (d *Detector) Describe() Description {
	description := d.describe()
	name, candidate := parseDescription(description)
	return Description{
		Description: description,
		Name:        name,
		Version:     d.resolver.ResolveVersion(candidate),
	}
}

// Detect implements resource.Detector. The returned error is always nil.
// The resource is schemaless so it merges with the SDK's own detectors
// whatever semantic convention version they carry.
func (d *Detector) Detect(context.Context) (*resource.Resource, error) {
	return resource.NewSchemaless(d.Describe().Attributes()...), nil
}

// WithProcessRuntime returns a resource.Option that adds the process runtime
// attributes detected by New(opts...).
func WithProcessRuntime(opts ...Option) resource.Option {
	return resource.WithDetectors(New(opts...))
}

// goDescription follows the "{Name} {Version}" form, e.g. "go 1.22.1".
func goDescription() string {
	return goRuntimeName + " " + goVersion()
}

func goVersion() string {
	return normalizeGoVersion(runtime.Version())
}

// normalizeGoVersion reduces runtime.Version() to a single space-free token:
// "go1.22.1" -> "1.22.1", "go1.22.1 X:boringcrypto" -> "1.22.1",
// "devel go1.24-abc Tue Jan 1 ..." -> "1.24-abc".
func normalizeGoVersion(v string) string {
	fields := strings.Fields(v)
	for _, f := range fields {
		if strings.HasPrefix(f, "go") {
			return strings.TrimPrefix(f, "go")
		}
	}
	if len(fields) > 0 {
		return fields[0]
	}
	return ""
}
