package logicsim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/circuitkit/atpg/pkg/circuit"
)

func buildANDInvCircuit(t *testing.T) *circuit.Circuit {
	t.Helper()
	c := circuit.New("andinv")
	c.AddInput(1)
	c.AddInput(2)
	c.AddOutput(5)
	c.EnsureNode(3)
	c.AddGate(&circuit.Gate{Kind: circuit.AND, In1: 1, In2: 2, Output: 3})
	c.AddGate(&circuit.Gate{Kind: circuit.INV, In1: 3, Output: 5})
	return c
}

func TestSimulateANDInvAllVectors(t *testing.T) {
	cases := map[string]string{
		"11": "0",
		"10": "1",
		"01": "1",
		"00": "1",
	}
	for vec, want := range cases {
		c := buildANDInvCircuit(t)
		out, err := Simulate(c, vec, false, nil)
		require.NoError(t, err)
		require.Equal(t, want, out)
	}
}

func TestSimulateFanoutSplitPreservesSemantics(t *testing.T) {
	// one primary input fans out to two BUF gates feeding an AND.
	build := func() *circuit.Circuit {
		c := circuit.New("fanout")
		c.AddInput(1)
		c.AddOutput(4)
		c.EnsureNode(2)
		c.EnsureNode(3)
		c.AddGate(&circuit.Gate{Kind: circuit.BUF, In1: 1, Output: 2})
		c.AddGate(&circuit.Gate{Kind: circuit.BUF, In1: 1, Output: 3})
		c.AddGate(&circuit.Gate{Kind: circuit.AND, In1: 2, In2: 3, Output: 4})
		return c
	}

	unsplit := build()
	out, err := Simulate(unsplit, "1", false, nil)
	require.NoError(t, err)
	require.Equal(t, "1", out)

	split := build()
	split.SplitFanout()
	require.Len(t, split.Branches(1), 2)
	out, err = Simulate(split, "1", true, nil)
	require.NoError(t, err)
	require.Equal(t, "1", out)
}

func TestSimulateBadVectorLength(t *testing.T) {
	c := buildANDInvCircuit(t)
	_, err := Simulate(c, "1", false, nil)
	require.Error(t, err)
}
