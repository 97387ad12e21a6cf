// Package logicsim implements the event-driven binary propagation
// engine: it applies a test vector to a circuit's primary inputs and
// propagates values to the primary outputs through a ready-queue of
// nodes whose values have just become definite.
package logicsim

import (
	"github.com/pkg/errors"

	"github.com/circuitkit/atpg/internal/atgerr"
	"github.com/circuitkit/atpg/internal/xlog"
	"github.com/circuitkit/atpg/pkg/circuit"
)

// Simulate applies testVector (a string of '0'/'1', one character per
// primary input in declaration order) to c and returns the primary
// output vector in declaration order, also as '0'/'1'. splitApplied
// tells the simulator whether fan-out has already been split on c —
// when true, stem values are copied to their branches as part of
// propagation.
//
// Simulate resets c's binary state before running, so the same
// Circuit can be reused across vectors.
func Simulate(c *circuit.Circuit, testVector string, splitApplied bool, log *xlog.Logger) (string, error) {
	if log == nil {
		log = xlog.Discard()
	}
	if len(testVector) != len(c.Inputs) {
		return "", errors.Wrapf(atgerr.ErrBadInput,
			"test vector length %d does not match %d primary inputs", len(testVector), len(c.Inputs))
	}

	c.ResetBinary()

	queue := make([]int, 0, len(c.Inputs))
	queued := make(map[int]bool)

	enqueue := func(name int) {
		if !queued[name] {
			queued[name] = true
			queue = append(queue, name)
		}
	}

	for i, name := range c.Inputs {
		v := circuit.Zero
		switch testVector[i] {
		case '1':
			v = circuit.One
		case '0':
			v = circuit.Zero
		default:
			return "", errors.Wrapf(atgerr.ErrBadInput, "test vector has non-binary character %q at position %d", testVector[i], i)
		}
		if err := assign(c, name, v, log); err != nil {
			return "", err
		}
		enqueue(name)
	}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		queued[n] = false

		if branches := c.Branches(n); len(branches) > 0 {
			node := c.Node(n)
			for _, b := range branches {
				if err := assign(c, b, node.Binary, log); err != nil {
					return "", err
				}
				enqueue(b)
			}
		}

		stillNeeded := false
		for _, g := range c.DrivenGates(n) {
			ready, a, b := gateInputsReady(c, g)
			if !ready {
				stillNeeded = true
				continue
			}
			val := g.EvalBinary(a, b)
			if err := assign(c, g.Output, val, log); err != nil {
				return "", err
			}
			enqueue(g.Output)
		}
		if stillNeeded {
			enqueue(n)
		}
	}

	out := make([]byte, len(c.Outputs))
	for i, name := range c.Outputs {
		out[i] = []byte(c.Node(name).Binary.String())[0]
	}
	return string(out), nil
}

func gateInputsReady(c *circuit.Circuit, g *circuit.Gate) (ready bool, a, b circuit.BinaryValue) {
	n1 := c.Node(g.In1)
	if n1 == nil || n1.Binary == circuit.Unassigned {
		return false, circuit.Unassigned, circuit.Unassigned
	}
	a = n1.Binary
	if g.Kind.IsSingleInput() {
		return true, a, circuit.Unassigned
	}
	n2 := c.Node(g.In2)
	if n2 == nil || n2.Binary == circuit.Unassigned {
		return false, a, circuit.Unassigned
	}
	return true, a, n2.Binary
}

// assign writes v to node name once. A later write of the same value
// is a no-op; a later write of a differing value is an
// invariant-violation: logged and the first-written value kept.
func assign(c *circuit.Circuit, name int, v circuit.BinaryValue, log *xlog.Logger) error {
	n := c.Node(name)
	if n == nil {
		return errors.Wrapf(atgerr.ErrBadInput, "unknown node %d", name)
	}
	if n.Binary == circuit.Unassigned {
		n.Binary = v
		return nil
	}
	if n.Binary != v {
		log.Circuit("invariant violation: node %d reassigned from %s to %s, keeping first value", name, n.Binary, v)
	}
	return nil
}
