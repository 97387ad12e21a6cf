package faultsim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/circuitkit/atpg/pkg/circuit"
)

// buildAND builds a bare two-input AND gate circuit so the per-gate
// algebra can be exercised directly by seeding input fault lists.
func buildAND(t *testing.T) *circuit.Circuit {
	t.Helper()
	c := circuit.New("and")
	c.AddInput(1)
	c.AddInput(2)
	c.AddOutput(3)
	c.AddGate(&circuit.Gate{Kind: circuit.AND, In1: 1, In2: 2, Output: 3})
	return c
}

func TestSimulateNonControllingUnion(t *testing.T) {
	// both inputs at 1 (non-controlling for AND); faults union.
	c := buildAND(t)
	c.Node(1).StuckAt0 = true
	c.Node(2).StuckAt0 = true

	detected, err := Simulate(c, "11", nil)
	require.NoError(t, err)
	require.True(t, detected.Has(circuit.FaultEntry{Node: 1, Value: circuit.Zero}))
	require.True(t, detected.Has(circuit.FaultEntry{Node: 2, Value: circuit.Zero}))
	require.Len(t, detected, 2)
}

func TestSimulateControllingDifference(t *testing.T) {
	// input1 at 0 (controlling), input2 at 1; output = L1 \ L2.
	c2 := buildAND(t)
	in1 := c2.Node(1)
	in2 := c2.Node(2)
	in1.Binary = circuit.Zero
	in2.Binary = circuit.One
	in1.Faults = circuit.NewFaultSet(
		circuit.FaultEntry{Node: 100, Value: circuit.Zero}, // (a,0)
		circuit.FaultEntry{Node: 101, Value: circuit.One},  // (c,1)
	)
	in2.Faults = circuit.NewFaultSet(circuit.FaultEntry{Node: 101, Value: circuit.One}) // (c,1)
	out := c2.Node(3)
	out.Binary = c2.Gates()[0].EvalBinary(in1.Binary, in2.Binary)
	merged := mergeFaults(c2.Gates()[0], in1, in2, out)
	require.Equal(t, circuit.NewFaultSet(circuit.FaultEntry{Node: 100, Value: circuit.Zero}), merged)
}

func TestSimulateXORSymmetricDifference(t *testing.T) {
	c := circuit.New("xor")
	c.AddInput(1)
	c.AddInput(2)
	c.AddOutput(3)
	c.AddGate(&circuit.Gate{Kind: circuit.XOR, In1: 1, In2: 2, Output: 3})

	in1 := c.Node(1)
	in2 := c.Node(2)
	in1.Binary = circuit.Zero
	in2.Binary = circuit.Zero
	in1.Faults = circuit.NewFaultSet(circuit.FaultEntry{Node: 100, Value: circuit.Zero}, circuit.FaultEntry{Node: 101, Value: circuit.One})
	in2.Faults = circuit.NewFaultSet(circuit.FaultEntry{Node: 101, Value: circuit.One}, circuit.FaultEntry{Node: 102, Value: circuit.Zero})
	out := c.Node(3)
	out.Binary = c.Gates()[0].EvalBinary(in1.Binary, in2.Binary)

	merged := mergeFaults(c.Gates()[0], in1, in2, out)
	want := circuit.NewFaultSet(circuit.FaultEntry{Node: 100, Value: circuit.Zero}, circuit.FaultEntry{Node: 102, Value: circuit.Zero})
	require.ElementsMatch(t, want.Slice(), merged.Slice())
}

func TestActivateEveryNode(t *testing.T) {
	c := buildAND(t)
	ActivateEveryNode(c)
	for _, n := range c.Nodes() {
		require.True(t, n.StuckAt0)
		require.True(t, n.StuckAt1)
	}
}
