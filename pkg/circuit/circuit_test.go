package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildANDInvCircuit(t *testing.T) *Circuit {
	t.Helper()
	c := New("andinv")
	c.AddInput(1)
	c.AddInput(2)
	c.AddOutput(5)
	c.EnsureNode(3)
	c.AddGate(&Gate{Kind: AND, In1: 1, In2: 2, Output: 3})
	c.AddGate(&Gate{Kind: INV, In1: 3, Output: 5})
	return c
}

func TestCircuitInputsOutputsDeclarationOrder(t *testing.T) {
	c := buildANDInvCircuit(t)
	assert.Equal(t, []int{1, 2}, c.Inputs)
	assert.Equal(t, []int{5}, c.Outputs)
}

func TestCircuitAdjacencyIndices(t *testing.T) {
	c := buildANDInvCircuit(t)
	require.Len(t, c.DrivenGates(1), 1)
	require.Len(t, c.DrivenGates(2), 1)
	require.Len(t, c.DriverGates(3), 1)
	assert.Equal(t, AND, c.DriverGates(3)[0].Kind)
}

func TestSplitFanoutSeparatesStemOccurrences(t *testing.T) {
	// one primary input fans out to two BUF gates feeding an AND.
	c := New("fanout")
	c.AddInput(1)
	c.AddOutput(4)
	c.EnsureNode(2)
	c.EnsureNode(3)
	c.AddGate(&Gate{Kind: BUF, In1: 1, Output: 2})
	c.AddGate(&Gate{Kind: BUF, In1: 1, Output: 3})
	c.AddGate(&Gate{Kind: AND, In1: 2, In2: 3, Output: 4})

	require.True(t, c.IsStem(1))

	c.SplitFanout()

	branches := c.Branches(1)
	require.Len(t, branches, 2)
	assert.False(t, c.IsStem(1))
	require.Empty(t, c.DrivenGates(1))

	for _, g := range c.Gates() {
		if g.Kind == BUF {
			assert.Contains(t, branches, g.In1)
		}
	}
}

func TestSplitFanoutIsIdempotent(t *testing.T) {
	c := New("fanout")
	c.AddInput(1)
	c.AddOutput(4)
	c.EnsureNode(2)
	c.EnsureNode(3)
	c.AddGate(&Gate{Kind: BUF, In1: 1, Output: 2})
	c.AddGate(&Gate{Kind: BUF, In1: 1, Output: 3})
	c.AddGate(&Gate{Kind: AND, In1: 2, In2: 3, Output: 4})

	c.SplitFanout()
	first := c.Branches(1)
	c.SplitFanout()
	assert.Equal(t, first, c.Branches(1))
}

func TestEnsureNodeTracksHighWaterMark(t *testing.T) {
	c := New("watermark")
	c.EnsureNode(10)
	n := c.EnsureNode(10)
	assert.Equal(t, 10, n.Name)

	c.AddInput(1)
	c.AddOutput(4)
	c.EnsureNode(2)
	c.EnsureNode(3)
	c.AddGate(&Gate{Kind: BUF, In1: 1, Output: 2})
	c.AddGate(&Gate{Kind: BUF, In1: 1, Output: 3})
	c.AddGate(&Gate{Kind: AND, In1: 2, In2: 3, Output: 4})
	c.SplitFanout()

	for _, b := range c.Branches(1) {
		assert.Greater(t, b, 10)
	}
}
