// Package faultsim implements the deductive fault simulator (spec
// §4.3): for a single test vector, it propagates both binary values
// and per-node fault lists simultaneously and reports the faults
// detected at the primary outputs.
package faultsim

import (
	"github.com/pkg/errors"

	"github.com/circuitkit/atpg/internal/atgerr"
	"github.com/circuitkit/atpg/internal/xlog"
	"github.com/circuitkit/atpg/pkg/circuit"
)

// Mode selects how stuck-at faults are seeded onto the circuit before
// simulation.
type Mode int

const (
	// ExternalList activates only the faults named by an explicit
	// fault list (see netlist.ReadFaultList), via c.Node(x).StuckAt0/1.
	ExternalList Mode = iota
	// EveryNode activates both stuck-at polarities on every node (the
	// -l sweep mode).
	EveryNode
)

// ActivateEveryNode flags both stuck-at polarities on every node of c.
func ActivateEveryNode(c *circuit.Circuit) {
	for _, n := range c.Nodes() {
		n.StuckAt0 = true
		n.StuckAt1 = true
	}
}

// Simulate applies testVector to c — which must NOT have had fan-out
// split, since the deductive algebra is defined at stem nodes — and
// returns the faults detected at the primary outputs: the union of
// the final fault lists of every primary-output node.
func Simulate(c *circuit.Circuit, testVector string, log *xlog.Logger) (circuit.FaultSet, error) {
	if log == nil {
		log = xlog.Discard()
	}
	if len(testVector) != len(c.Inputs) {
		return nil, errors.Wrapf(atgerr.ErrBadInput,
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
		var v circuit.BinaryValue
		switch testVector[i] {
		case '1':
			v = circuit.One
		case '0':
			v = circuit.Zero
		default:
			return nil, errors.Wrapf(atgerr.ErrBadInput, "test vector has non-binary character %q at position %d", testVector[i], i)
		}
		n := c.Node(name)
		n.Binary = v
		n.Faults = seedFaults(n, v)
		enqueue(name)
	}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		queued[n] = false

		stillNeeded := false
		for _, g := range c.DrivenGates(n) {
			in1 := c.Node(g.In1)
			var in2 *circuit.Node
			if !g.Kind.IsSingleInput() {
				in2 = c.Node(g.In2)
			}
			if in1.Binary == circuit.Unassigned || (in2 != nil && in2.Binary == circuit.Unassigned) {
				stillNeeded = true
				continue
			}

			var b2 circuit.BinaryValue
			if in2 != nil {
				b2 = in2.Binary
			}
			out := c.Node(g.Output)
			if out.Binary != circuit.Unassigned {
				continue
			}
			out.Binary = g.EvalBinary(in1.Binary, b2)
			out.Faults = mergeFaults(g, in1, in2, out)
			log.Circuit("node %d -> %s, faults %v", out.Name, out.Binary, out.Faults.Slice())
			enqueue(g.Output)
		}
		if stillNeeded {
			enqueue(n)
		}
	}

	detected := circuit.FaultSet{}
	for _, name := range c.Outputs {
		out := c.Node(name)
		detected = circuit.Union(detected, out.Faults)
	}
	return detected, nil
}

// seedFaults computes a primary input's starting fault list: empty
// unless the input itself carries a sensitized stuck-at fault.
func seedFaults(n *circuit.Node, v circuit.BinaryValue) circuit.FaultSet {
	var flip circuit.BinaryValue
	switch v {
	case circuit.Zero:
		flip = circuit.One
	case circuit.One:
		flip = circuit.Zero
	}
	if n.HasStuckAt(flip) {
		return circuit.NewFaultSet(circuit.FaultEntry{Node: n.Name, Value: flip})
	}
	return nil
}

// mergeFaults computes a gate's output fault list from its merged
// input lists and then appends a locally sensitized fault on the
// output node itself.
func mergeFaults(g *circuit.Gate, in1, in2, out *circuit.Node) circuit.FaultSet {
	var merged circuit.FaultSet

	if g.Kind.IsSingleInput() {
		merged = in1.Faults.Clone()
	} else {
		l1, l2 := in1.Faults, in2.Faults
		switch g.Kind {
		case circuit.XOR, circuit.XNOR:
			merged = circuit.SymmetricDifference(l1, l2)
		default:
			cv, hasControl := g.Kind.ControllingValue()
			c1 := hasControl && in1.Binary == cv
			c2 := hasControl && in2.Binary == cv
			switch {
			case c1 && c2:
				merged = circuit.Intersection(l1, l2)
			case c1:
				merged = circuit.Difference(l1, l2)
			case c2:
				merged = circuit.Difference(l2, l1)
			default:
				merged = circuit.Union(l1, l2)
			}
		}
	}

	var flip circuit.BinaryValue
	switch out.Binary {
	case circuit.Zero:
		flip = circuit.One
	case circuit.One:
		flip = circuit.Zero
	}
	if out.HasStuckAt(flip) {
		merged = merged.Add(circuit.FaultEntry{Node: out.Name, Value: flip})
	}
	return merged
}
