// Package atgerr defines the sentinel errors shared by the netlist
// reader and the three simulation engines, wrapped with call-site
// context via github.com/pkg/errors so a caller can both match on the
// sentinel (errors.Is) and print a full cause chain.
package atgerr

import "github.com/pkg/errors"

var (
	// ErrBadInput marks a malformed netlist, fault list, or test
	// vector: wrong token count, non-integer node name, missing -1
	// terminator, unknown node reference, vector length mismatch.
	ErrBadInput = errors.New("bad input")

	// ErrInvariantViolation marks a circuit-model invariant failing at
	// runtime. The PODEM engine raises it when an implied assignment
	// conflicts with the fault site's own stuck-at flag; the search
	// treats that as a local failure and reverts the branch.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrUnsupportedGate marks a gate kind the current engine cannot
	// process — specifically XOR/XNOR reaching the PODEM engine.
	ErrUnsupportedGate = errors.New("unsupported gate for this engine")
)
