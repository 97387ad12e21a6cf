package podem

import "github.com/circuitkit/atpg/pkg/circuit"

// backtrace walks from the objective (n, v) toward a primary input:
// while n is driven by a gate, the target value flips across an
// inverting gate, then n moves to one of that gate's still-X inputs
// (input1 is preferred over input2 when both are X).
func backtrace(c *circuit.Circuit, n int, v circuit.FiveValue) (int, circuit.FiveValue) {
	for {
		drivers := c.DriverGates(n)
		if len(drivers) == 0 {
			return n, v
		}
		g := drivers[0]
		if g.Kind.InversionParity() == 1 {
			v = v.Not()
		}

		if c.Node(g.In1).Five == circuit.X {
			n = g.In1
			continue
		}
		if !g.Kind.IsSingleInput() && c.Node(g.In2).Five == circuit.X {
			n = g.In2
			continue
		}
		return n, v
	}
}
