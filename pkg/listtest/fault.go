package listtest

import (
	"testing"

	"github.com/go-drift/listkit/pkg/fault"
)

// FaultRecorder is a fault.Handler that records faults instead of logging
// them to stderr.
type FaultRecorder struct {
	// Faults is the ordered record.
	Faults []error
}

// HandleFault records the fault.
func (r *FaultRecorder) HandleFault(err error) {
	r.Faults = append(r.Faults, err)
}

// RecordFaults installs a FaultRecorder for the duration of the test and
// returns it. The previous handler is restored via t.Cleanup.
func RecordFaults(t *testing.T) *FaultRecorder {
	t.Helper()
	r := &FaultRecorder{}
	prev := fault.SetHandler(r)
	t.Cleanup(func() { fault.SetHandler(prev) })
	return r
}
