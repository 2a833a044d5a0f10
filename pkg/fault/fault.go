// Package fault provides structured invariant-violation errors for the
// listkit binding layer.
//
// The binding layer has no recoverable failure modes: every fault is a
// programmer error (an address out of range against the attached tree, a
// recycled view of the wrong type, a duplicate identifier inside one
// snapshot) and surfaces immediately via [Raise], which reports the fault
// to the installed [Handler] and then panics. No error values cross the
// adapter boundary.
package fault

import (
	"fmt"
	"os"
	"reflect"
	"runtime/debug"
)

// AddressError reports an address that is out of range against the
// currently attached tree.
type AddressError struct {
	// Op is the operation that performed the lookup (e.g. "adapter.CellFor").
	Op string
	// Address is the offending address, formatted.
	Address string
	// Sections is the number of sections in the attached tree.
	Sections int
	// Items is the number of items in the addressed section, or -1 when the
	// section index itself is out of range.
	Items int
}

func (e *AddressError) Error() string {
	switch {
	case e.Items >= 0 && e.Sections > 0:
		return fmt.Sprintf("%s: %s out of range (%d sections, %d items in section)", e.Op, e.Address, e.Sections, e.Items)
	case e.Items >= 0:
		return fmt.Sprintf("%s: %s out of range (%d items)", e.Op, e.Address, e.Items)
	default:
		return fmt.Sprintf("%s: %s out of range (%d sections)", e.Op, e.Address, e.Sections)
	}
}

// ViewTypeError reports a recycled view whose runtime type does not match
// the type the descriptor was constructed for. This is an unrecoverable
// wiring bug: the reuse pool returned a view registered under the wrong key.
type ViewTypeError struct {
	// ReuseKey is the pool key the view was acquired under.
	ReuseKey string
	// Want is the view type captured at descriptor construction.
	Want reflect.Type
	// Got is the runtime type of the view the pool returned.
	Got reflect.Type
}

func (e *ViewTypeError) Error() string {
	return fmt.Sprintf("recycled view for key %q is %v, want %v", e.ReuseKey, e.Got, e.Want)
}

// DuplicateIDError reports two descriptors or sections sharing an
// identifier within one tree snapshot. Identifier uniqueness is the
// caller's invariant; detection here is diagnostic, not recovery.
type DuplicateIDError struct {
	// Scope names where the collision occurred (e.g. "sections",
	// `items of section "inbox"`).
	Scope string
	// ID is the duplicated identifier.
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate identifier %q in %s", e.ID, e.Scope)
}

// Handler receives faults before the panic unwinds. Hosts install one to
// attach crash reporting or richer diagnostics.
type Handler interface {
	// HandleFault is called with the structured fault about to be raised.
	HandleFault(err error)
}

// LogHandler is a Handler that logs faults to stderr.
type LogHandler struct {
	// Verbose enables stack traces.
	Verbose bool
}

// HandleFault logs the fault to stderr.
func (h *LogHandler) HandleFault(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "[listkit fault] %v\n", err)
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
	}
}

var handler Handler = &LogHandler{}

// SetHandler installs a fault handler and returns the previous one. Passing
// nil restores the default LogHandler.
func SetHandler(h Handler) Handler {
	prev := handler
	if h == nil {
		h = &LogHandler{}
	}
	handler = h
	return prev
}

// Raise reports err to the installed handler and panics with it. It never
// returns.
func Raise(err error) {
	if handler != nil {
		handler.HandleFault(err)
	}
	panic(err)
}
