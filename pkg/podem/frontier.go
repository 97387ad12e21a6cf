package podem

import "github.com/circuitkit/atpg/pkg/circuit"

// dFrontier returns the gates whose output is still X while at least
// one input already carries a composite (D or D̄) value — the set of
// gates capable of propagating the fault effect one step further.
func dFrontier(c *circuit.Circuit) []*circuit.Gate {
	var frontier []*circuit.Gate
	for _, g := range c.Gates() {
		if c.Node(g.Output).Five != circuit.X {
			continue
		}
		if gateHasCompositeInput(c, g) {
			frontier = append(frontier, g)
		}
	}
	return frontier
}

func gateHasCompositeInput(c *circuit.Circuit, g *circuit.Gate) bool {
	if c.Node(g.In1).Five.IsComposite() {
		return true
	}
	if !g.Kind.IsSingleInput() && c.Node(g.In2).Five.IsComposite() {
		return true
	}
	return false
}
