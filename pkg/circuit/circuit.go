package circuit

import (
	"fmt"
	"sort"
	"strings"
)

// Circuit is an immutable-after-construction graph: ordered primary
// inputs, ordered primary outputs, the gate collection, and the
// adjacency indices node→driven_gates and node→driver_gates. The
// Circuit exclusively owns its Nodes and Gates; gates and adjacency
// indices reference nodes by name, never by pointer, so no lifetime
// hazard exists between them.
type Circuit struct {
	Name string

	nodes   map[int]*Node
	gates   []*Gate
	Inputs  []int // declaration order; bit position in test vectors
	Outputs []int // declaration order; bit position in output vectors

	drivenBy  map[int][]*Gate // node -> gates this node feeds as an input
	drivenOut map[int][]*Gate // node -> gates that drive this node as output

	stemBranches map[int][]int // fan-out stem -> inserted branch node names
	nextName     int           // monotonic counter for fresh branch names
}

// New creates an empty, named circuit.
func New(name string) *Circuit {
	return &Circuit{
		Name:         name,
		nodes:        make(map[int]*Node),
		drivenBy:     make(map[int][]*Gate),
		drivenOut:    make(map[int][]*Gate),
		stemBranches: make(map[int][]int),
	}
}

// Node returns the node with the given name, or nil if absent.
func (c *Circuit) Node(name int) *Node {
	return c.nodes[name]
}

// Nodes returns every node in the circuit, in no particular order.
func (c *Circuit) Nodes() []*Node {
	out := make([]*Node, 0, len(c.nodes))
	for _, n := range c.nodes {
		out = append(out, n)
	}
	return out
}

// NodeNames returns every node name, sorted, for deterministic
// iteration in callers that need it (sweeps, dumps).
func (c *Circuit) NodeNames() []int {
	out := make([]int, 0, len(c.nodes))
	for name := range c.nodes {
		out = append(out, name)
	}
	sort.Ints(out)
	return out
}

// Gates returns every gate, in netlist insertion order.
func (c *Circuit) Gates() []*Gate {
	return c.gates
}

// EnsureNode returns the node with the given name, creating an
// Internal one if it doesn't exist yet. It also tracks the high-water
// mark used to allocate fresh fan-out branch names.
func (c *Circuit) EnsureNode(name int) *Node {
	if n, ok := c.nodes[name]; ok {
		return n
	}
	n := newNode(name, Internal)
	c.nodes[name] = n
	if name >= c.nextName {
		c.nextName = name + 1
	}
	return n
}

// AddInput declares name as a primary input, appending it to the
// ordered input list if not already present.
func (c *Circuit) AddInput(name int) {
	n := c.EnsureNode(name)
	n.Kind = PrimaryInput
	for _, existing := range c.Inputs {
		if existing == name {
			return
		}
	}
	c.Inputs = append(c.Inputs, name)
}

// AddOutput declares name as a primary output, appending it to the
// ordered output list if not already present.
func (c *Circuit) AddOutput(name int) {
	n := c.EnsureNode(name)
	if n.Kind == Internal {
		n.Kind = PrimaryOutput
	}
	for _, existing := range c.Outputs {
		if existing == name {
			return
		}
	}
	c.Outputs = append(c.Outputs, name)
}

// AddGate appends a gate to the circuit and wires the adjacency
// indices. Ports must already name nodes created via EnsureNode.
func (c *Circuit) AddGate(g *Gate) {
	c.gates = append(c.gates, g)
	for _, in := range g.Inputs() {
		c.drivenBy[in] = append(c.drivenBy[in], g)
	}
	c.drivenOut[g.Output] = append(c.drivenOut[g.Output], g)
}

// DrivenGates returns the gates that take node as an input, in
// insertion order.
func (c *Circuit) DrivenGates(node int) []*Gate {
	return c.drivenBy[node]
}

// DriverGates returns the gates that drive node as their output,
// typically a singleton for a well-formed combinational circuit.
func (c *Circuit) DriverGates(node int) []*Gate {
	return c.drivenOut[node]
}

// Branches returns the branch node names created by splitting the
// fan-out of stem, or nil if stem was never split or is not a stem.
func (c *Circuit) Branches(stem int) []int {
	return c.stemBranches[stem]
}

// IsStem reports whether node feeds more than one gate input.
func (c *Circuit) IsStem(node int) bool {
	return len(c.drivenBy[node]) > 1
}

// SplitFanout replaces every driven-gate-input occurrence of each
// fan-out stem with a distinct fresh branch node: a stem's direct
// connection to every gate it fed — including the first — is severed,
// and a matching count of fresh branches is created, one per migrated
// edge. Downstream gate topology is unchanged up to the renaming of
// inputs. Idempotent: nodes that are no longer stems (already split,
// or never were) are left alone.
func (c *Circuit) SplitFanout() {
	for _, stem := range c.NodeNames() {
		if !c.IsStem(stem) {
			continue
		}
		for len(c.drivenBy[stem]) > 0 {
			g := c.drivenBy[stem][0]
			c.drivenBy[stem] = c.drivenBy[stem][1:]

			branch := c.nextName
			c.nextName++
			c.nodes[branch] = newNode(branch, Internal)
			c.stemBranches[stem] = append(c.stemBranches[stem], branch)

			if g.In1 == stem {
				g.In1 = branch
			} else if g.In2 == stem {
				g.In2 = branch
			}
			c.drivenBy[branch] = append(c.drivenBy[branch], g)
		}
		delete(c.drivenBy, stem)
	}
}

// ResetBinary clears every node's two-valued simulation state.
func (c *Circuit) ResetBinary() {
	for _, n := range c.nodes {
		n.ResetBinary()
	}
}

// ResetFive clears every node's five-valued simulation state.
func (c *Circuit) ResetFive() {
	for _, n := range c.nodes {
		n.ResetFive()
	}
}

// String renders the netlist as INPUT/OUTPUT/gate lines, suitable for
// round-tripping through the netlist reader.
func (c *Circuit) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "INPUT")
	for _, n := range c.Inputs {
		fmt.Fprintf(&b, " %d", n)
	}
	b.WriteString(" -1\n")

	fmt.Fprintf(&b, "OUTPUT")
	for _, n := range c.Outputs {
		fmt.Fprintf(&b, " %d", n)
	}
	b.WriteString(" -1\n")

	for _, g := range c.gates {
		fmt.Fprintf(&b, "%s\n", g)
	}
	return b.String()
}
