// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
)

// Structural errors. The tree is unchanged when one is returned.
var (
	// ErrNilLayer is returned when a required layer argument is nil.
	ErrNilLayer = errors.New("brush: nil layer")

	// ErrRootLayer is returned when a Document is used as a child.
	ErrRootLayer = errors.New("brush: document cannot be a child layer")

	// ErrAttached is returned when inserting a layer that already has a parent.
	ErrAttached = errors.New("brush: layer already has a parent")

	// ErrForeignLayer is returned when a layer belongs to another document.
	ErrForeignLayer = errors.New("brush: layer belongs to another document")

	// ErrCycle is returned when an insertion would make a layer its own ancestor.
	ErrCycle = errors.New("brush: layer would become its own ancestor")

	// ErrNotChild is returned when a layer is not a child of the given parent.
	ErrNotChild = errors.New("brush: layer is not a child of the parent")
)

// Other errors.
var (
	// ErrUnsupported is returned when a layer lacks the requested capability.
	ErrUnsupported = errors.New("brush: operation not supported by layer")

	// ErrInvalidSize is returned for non-positive canvas sizes.
	ErrInvalidSize = errors.New("brush: invalid canvas size")

	// ErrInvalidFontSize is returned for non-positive font sizes.
	ErrInvalidFontSize = errors.New("brush: invalid font size")

	// ErrBaseline is returned when a baseline command is applied or reverted.
	ErrBaseline = errors.New("brush: baseline cannot be applied or reverted")

	// ErrNilImage is returned when a document is created from a nil image.
	ErrNilImage = errors.New("brush: nil image")
)

// LayerError records a failure while processing a specific layer.
type LayerError struct {
	Op    string // operation, e.g. "draw text"
	Layer string // layer name
	Err   error
}

func (e *LayerError) Error() string {
	return fmt.Sprintf("brush: %s %q: %v", e.Op, e.Layer, e.Err)
}

func (e *LayerError) Unwrap() error { return e.Err }

// Reporter presents errors to the user.
type Reporter interface {
	// Report shows a one-line summary with expandable details.
	Report(summary, details string)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(summary, details string)

// Report calls f(summary, details).
func (f ReporterFunc) Report(summary, details string) { f(summary, details) }

// logReporter writes reports to the package logger at error level.
type logReporter struct{}

func (logReporter) Report(summary, details string) {
	Logger().Error(summary, slog.String("details", details))
}

// DefaultReporter returns the Reporter used when none is configured.
// It logs through Logger at error level.
func DefaultReporter() Reporter { return logReporter{} }

// summaryPrefix opens every presented summary.
const summaryPrefix = "The operation ended because of an error:\n"

// Present reports err through r. A nil r uses DefaultReporter.
// Nothing happens for a nil err.
func Present(r Reporter, err error) {
	if err == nil {
		return
	}
	if r == nil {
		r = DefaultReporter()
	}
	r.Report(summaryPrefix+err.Error(), errorDetails(err))
}

// errorDetails renders the error chain with dynamic types, followed by the
// stack of the presenting goroutine.
func errorDetails(err error) string {
	var b strings.Builder
	writeChain(&b, err, 0)
	b.WriteString("\n")
	b.Write(debug.Stack())
	return b.String()
}

func writeChain(b *strings.Builder, err error, depth int) {
	for err != nil {
		fmt.Fprintf(b, "%s%T: %v\n", strings.Repeat("  ", depth), err, err)
		switch x := err.(type) {
		case interface{ Unwrap() []error }:
			for _, e := range x.Unwrap() {
				writeChain(b, e, depth+1)
			}
			return
		case interface{ Unwrap() error }:
			err = x.Unwrap()
		default:
			return
		}
	}
}
