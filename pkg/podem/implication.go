package podem

import (
	"github.com/pkg/errors"

	"github.com/circuitkit/atpg/internal/atgerr"
	"github.com/circuitkit/atpg/pkg/circuit"
)

// change records a node's prior five-valued value so a failed branch
// can be reverted. Only the first prior value for a given node within
// one log is kept — later entries for the same node are duplicates
// and are ignored, so reverting restores the value the node held
// before this log was opened.
type change struct {
	node  int
	prior circuit.FiveValue
}

// resolveAssign converts an incoming value into the value that should
// actually be committed to node, accounting for a stuck-at flag: a
// good value opposing the stuck-at polarity becomes D or D̄
// (activation); a good value matching the stuck-at polarity is a
// conflict — the fault cannot be activated through this assignment.
func resolveAssign(node *circuit.Node, v circuit.FiveValue) (circuit.FiveValue, bool) {
	if !node.StuckAt0 && !node.StuckAt1 {
		return v, true
	}
	switch v {
	case circuit.FZero:
		if node.StuckAt1 {
			return circuit.Dbar, true
		}
		return circuit.FZero, false
	case circuit.FOne:
		if node.StuckAt0 {
			return circuit.D, true
		}
		return circuit.FOne, false
	default:
		return v, true
	}
}

// imply assigns v to node n and propagates the consequence forward
// through every gate n drives, recursing on any output whose value
// changes. Every committed change is appended to log so the caller
// can revert the whole cascade on failure.
func (e *Engine) imply(n int, v circuit.FiveValue, log *[]change) error {
	node := e.c.Node(n)
	resolved, ok := resolveAssign(node, v)
	if !ok {
		return errors.Wrapf(atgerr.ErrInvariantViolation, "node %d: assignment conflicts with its own stuck-at fault", n)
	}
	if resolved == node.Five {
		return nil
	}

	recordChange(log, n, node.Five)
	node.Five = resolved
	e.log.Implication("%d -> %s", n, resolved)

	for _, g := range e.c.DrivenGates(n) {
		out := e.c.Node(g.Output)
		in1 := e.c.Node(g.In1).Five
		in2 := circuit.X
		if !g.Kind.IsSingleInput() {
			in2 = e.c.Node(g.In2).Five
		}
		newVal := g.EvalFive(in1, in2)
		if newVal != out.Five {
			if err := e.imply(g.Output, newVal, log); err != nil {
				return err
			}
		}
	}
	return nil
}

func recordChange(log *[]change, node int, prior circuit.FiveValue) {
	for _, c := range *log {
		if c.node == node {
			return
		}
	}
	*log = append(*log, change{node: node, prior: prior})
}

func revert(c *circuit.Circuit, log []change) {
	for i := len(log) - 1; i >= 0; i-- {
		c.Node(log[i].node).Five = log[i].prior
	}
}
