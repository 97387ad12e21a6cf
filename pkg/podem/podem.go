// Package podem implements test generation for a single stuck-at
// fault via the PODEM algorithm: five-valued logic, D-frontier
// tracking, objective/backtrace decision making, and a recursive
// imply-and-revert search.
//
// XOR/XNOR gates are not supported by this engine; Prepare rejects a
// circuit containing them rather than producing a silently wrong
// result.
package podem

import (
	"github.com/pkg/errors"

	"github.com/circuitkit/atpg/internal/atgerr"
	"github.com/circuitkit/atpg/internal/xlog"
	"github.com/circuitkit/atpg/pkg/circuit"
)

// Engine holds the state of one PODEM run: the circuit under test,
// the single fault site and its stuck-at polarity. A fresh Engine
// (and a fresh Circuit) is required per fault — state is not reset
// between runs.
type Engine struct {
	c          *circuit.Circuit
	faultSite  int
	faultValue circuit.BinaryValue
	log        *xlog.Logger
}

// Result is PODEM's outcome: either a detecting test vector, or a
// legitimate "no such vector" finding. Generate never returns an
// error for an ordinary search failure — exhausting the search space
// without finding a test is a normal outcome, not an error condition.
type Result struct {
	Found   bool
	Vector  string // primary-input vector, declaration order, 'X' where never assigned
	Message string
}

// Prepare validates c for PODEM use and seeds the fault site. c must
// not contain XOR/XNOR gates. faultValue must be circuit.Zero or
// circuit.One.
func Prepare(c *circuit.Circuit, faultNode int, faultValue circuit.BinaryValue, log *xlog.Logger) (*Engine, error) {
	for _, g := range c.Gates() {
		if g.Kind == circuit.XOR || g.Kind == circuit.XNOR {
			return nil, errors.Wrapf(atgerr.ErrUnsupportedGate, "gate driving %d (%s) unsupported by PODEM", g.Output, g.Kind)
		}
	}
	if faultValue != circuit.Zero && faultValue != circuit.One {
		return nil, errors.Wrap(atgerr.ErrBadInput, "stuck-at value must be 0 or 1")
	}
	n := c.Node(faultNode)
	if n == nil {
		return nil, errors.Wrapf(atgerr.ErrBadInput, "unknown fault node %d", faultNode)
	}
	if log == nil {
		log = xlog.Discard()
	}

	c.ResetFive()
	n.StuckAt0 = faultValue == circuit.Zero
	n.StuckAt1 = faultValue == circuit.One

	return &Engine{c: c, faultSite: faultNode, faultValue: faultValue, log: log}, nil
}

// Generate runs the top-level podem() search to completion and
// renders the outcome.
func (e *Engine) Generate() Result {
	e.log.Algorithm("searching for test on node %d stuck-at-%s", e.faultSite, e.faultValue)
	success, err := e.run()
	if err != nil {
		e.log.Error("podem search aborted: %v", err)
		return Result{Found: false, Message: err.Error()}
	}
	if !success {
		return Result{Found: false, Message: "fault is undetectable"}
	}

	vec := make([]byte, len(e.c.Inputs))
	for i, name := range e.c.Inputs {
		switch e.c.Node(name).Five {
		case circuit.D:
			vec[i] = '1'
		case circuit.Dbar:
			vec[i] = '0'
		case circuit.FZero:
			vec[i] = '0'
		case circuit.FOne:
			vec[i] = '1'
		default:
			vec[i] = 'X'
		}
	}
	return Result{Found: true, Vector: string(vec)}
}

// faultActivationFailed reports whether the fault site has settled on
// a plain good/faulty-identical value — i.e. its good value equals
// its own stuck-at value, so the fault can never be sensitized from
// here. In practice imply's conflict detection (see resolveAssign)
// catches this earlier, but the check is kept as the literal failure
// test PODEM's outer loop performs each pass.
func (e *Engine) faultActivationFailed() bool {
	site := e.c.Node(e.faultSite)
	if site.Five == circuit.X {
		return false
	}
	return site.Five.GoodValue() == e.faultValue
}

func (e *Engine) anyOutputComposite() bool {
	for _, name := range e.c.Outputs {
		if e.c.Node(name).Five.IsComposite() {
			return true
		}
	}
	return false
}
