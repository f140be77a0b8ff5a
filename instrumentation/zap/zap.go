// Package zap attaches the detected process runtime to log entries written
// with Uber's zap logging library.
//
// RuntimeFields helper - works with any existing *zap.Logger:
//
//	import (
//	    "go.uber.org/zap"
//	    zapruntime "github.com/last9/go-processruntime/instrumentation/zap"
//	)
//
//	logger.Info("started", zapruntime.RuntimeFields(nil)...)
//
// Logger constructor - every entry carries the runtime fields:
//
//	l := zapruntime.New(logger, nil)
//	l.Info("started")
//	// Output: {"level":"info","msg":"started","process.runtime.description":"go 1.22.1",...}
//
// Note on package naming: this package is named "zap" which shadows
// "go.uber.org/zap". Import it with an alias when using both.
package zap

import (
	processruntime "github.com/last9/go-processruntime"
	semconv "go.opentelemetry.io/otel/semconv/v1.25.0"
	"go.uber.org/zap"
)

// Options configures the runtime fields.
// All fields are optional; zero value produces sensible defaults.
type Options struct {
	// Description is the runtime description to attach.
	// Defaults to processruntime.New().Describe() if nil.
	Description *processruntime.Description

	// DescriptionKey defaults to "process.runtime.description" if empty.
	DescriptionKey string

	// NameKey defaults to "process.runtime.name" if empty.
	NameKey string

	// VersionKey defaults to "process.runtime.version" if empty.
	VersionKey string
}

func keyOrDefault(key string, def string) string {
	if key != "" {
		return key
	}
	return def
}

// RuntimeFields returns the process runtime as three zap fields.
// opts may be nil, in which case the runtime is detected with defaults.
func RuntimeFields(opts *Options) []zap.Field {
	if opts == nil {
		opts = &Options{}
	}
	desc := opts.Description
	if desc == nil {
		d := processruntime.New().Describe()
		desc = &d
	}
	return []zap.Field{
		zap.String(keyOrDefault(opts.DescriptionKey, string(semconv.ProcessRuntimeDescriptionKey)), desc.Description),
		zap.String(keyOrDefault(opts.NameKey, string(semconv.ProcessRuntimeNameKey)), desc.Name),
		zap.String(keyOrDefault(opts.VersionKey, string(semconv.ProcessRuntimeVersionKey)), desc.Version),
	}
}

// New returns a child of base that adds the runtime fields to every entry.
// opts may be nil, in which case defaults are used.
// Panics if base is nil.
//
// Example:
//
//	base, _ := zap.NewProduction()
//	logger := zapruntime.New(base, nil)
func New(base *zap.Logger, opts *Options) *zap.Logger {
	if base == nil {
		panic("zap: New: base logger must not be nil")
	}
	return base.With(RuntimeFields(opts)...)
}
