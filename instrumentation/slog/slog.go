// Package slog attaches the detected process runtime to every log record
// written through Go's log/slog package.
//
// It wraps any slog.Handler so that each record carries the
// process.runtime.description, process.runtime.name and
// process.runtime.version attributes, letting logs be joined with the
// traces and metrics that carry the same resource.
//
// Basic usage - wrap an existing handler:
//
//	import (
//	    "log/slog"
//	    slogruntime "github.com/last9/go-processruntime/instrumentation/slog"
//	)
//
//	handler := slogruntime.NewJSONHandler(os.Stdout, nil, nil)
//	logger := slog.New(handler)
//	logger.Info("started")
//	// Output: {"time":"...","level":"INFO","msg":"started","process.runtime.description":"go 1.22.1",...}
//
// Set as the global default logger:
//
//	slogruntime.SetDefault(os.Stdout, nil, nil)
//
// Custom attribute key names:
//
//	handler := slogruntime.NewJSONHandler(os.Stdout, nil, &slogruntime.Options{
//	    NameKey:    "runtime.name",
//	    VersionKey: "runtime.version",
//	})
//
// Note on package naming: this package is named "slog" which shadows the
// standard library "log/slog". Import it with an alias when using both.
package slog

import (
	"context"
	"io"
	"log/slog"

	processruntime "github.com/last9/go-processruntime"
	semconv "go.opentelemetry.io/otel/semconv/v1.25.0"
)

// Options configures the behavior of the Handler.
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

func (o *Options) resolvedDescription() processruntime.Description {
	if o != nil && o.Description != nil {
		return *o.Description
	}
	return processruntime.New().Describe()
}

func (o *Options) attrs() []slog.Attr {
	descKey := string(semconv.ProcessRuntimeDescriptionKey)
	nameKey := string(semconv.ProcessRuntimeNameKey)
	versionKey := string(semconv.ProcessRuntimeVersionKey)
	if o != nil {
		if o.DescriptionKey != "" {
			descKey = o.DescriptionKey
		}
		if o.NameKey != "" {
			nameKey = o.NameKey
		}
		if o.VersionKey != "" {
			versionKey = o.VersionKey
		}
	}

	desc := o.resolvedDescription()
	return []slog.Attr{
		slog.String(descKey, desc.Description),
		slog.String(nameKey, desc.Name),
		slog.String(versionKey, desc.Version),
	}
}

// Handler is an slog.Handler that adds the process runtime attributes to
// every record. The attributes stay at the top level even after WithGroup.
//
// Handler is safe for concurrent use. The zero value is not usable;
// use NewHandler, NewJSONHandler, or NewTextHandler.
type Handler struct {
	inner slog.Handler
}

// Compile-time assertion that Handler implements slog.Handler.
var _ slog.Handler = (*Handler)(nil)

// NewHandler wraps inner with the process runtime attributes.
// The runtime is described once, here.
// opts may be nil, in which case defaults are used.
// Panics if inner is nil.
func NewHandler(inner slog.Handler, opts *Options) *Handler {
	if inner == nil {
		panic("slog: NewHandler: inner handler must not be nil")
	}
	return &Handler{inner: inner.WithAttrs(opts.attrs())}
}

// NewJSONHandler creates a Handler that wraps slog.NewJSONHandler(w, handlerOpts).
//
// handlerOpts and opts may both be nil to use defaults.
func NewJSONHandler(w io.Writer, handlerOpts *slog.HandlerOptions, opts *Options) *Handler {
	return NewHandler(slog.NewJSONHandler(w, handlerOpts), opts)
}

// NewTextHandler creates a Handler that wraps slog.NewTextHandler(w, handlerOpts).
//
// handlerOpts and opts may both be nil to use defaults.
func NewTextHandler(w io.Writer, handlerOpts *slog.HandlerOptions, opts *Options) *Handler {
	return NewHandler(slog.NewTextHandler(w, handlerOpts), opts)
}

// SetDefault creates a slog.Logger backed by a JSON handler carrying the
// process runtime attributes, and sets it as the global default via
// slog.SetDefault. Returns the logger for direct use.
func SetDefault(w io.Writer, handlerOpts *slog.HandlerOptions, opts *Options) *slog.Logger {
	logger := slog.New(NewJSONHandler(w, handlerOpts, opts))
	slog.SetDefault(logger)
	return logger
}

// Enabled implements slog.Handler. It delegates to the inner handler.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler. It delegates to the inner handler, which
// already carries the runtime attributes.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	return h.inner.Handle(ctx, r)
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{inner: h.inner.WithAttrs(attrs)}
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &Handler{inner: h.inner.WithGroup(name)}
}
