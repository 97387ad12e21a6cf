package podem

import "github.com/circuitkit/atpg/pkg/circuit"

// objective computes the (node, value) pair the current decision
// should try to drive toward: activate the fault if it's still
// dormant, otherwise pick a D-frontier gate and push one of its X
// inputs away from the gate's controlling value. ok is false when the
// D-frontier is empty and no objective exists.
func (e *Engine) objective() (node int, value circuit.FiveValue, ok bool) {
	site := e.c.Node(e.faultSite)
	if site.Five == circuit.X {
		target := circuit.One
		if e.faultValue == circuit.One {
			target = circuit.Zero
		}
		return e.faultSite, circuit.FiveFromBinary(target), true
	}

	frontier := dFrontier(e.c)
	if len(frontier) == 0 {
		return 0, circuit.X, false
	}
	g := frontier[0]

	want := circuit.One
	if cv, hasControl := g.Kind.ControllingValue(); hasControl && cv == circuit.One {
		want = circuit.Zero
	}

	for _, in := range g.Inputs() {
		if e.c.Node(in).Five == circuit.X {
			return in, circuit.FiveFromBinary(want), true
		}
	}
	return 0, circuit.X, false
}
