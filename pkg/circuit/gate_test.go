package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGateEvalBinary(t *testing.T) {
	cases := []struct {
		kind     GateKind
		a, b     BinaryValue
		expected BinaryValue
	}{
		{AND, One, One, One},
		{AND, One, Zero, Zero},
		{OR, Zero, Zero, Zero},
		{OR, One, Zero, One},
		{NAND, One, One, Zero},
		{NOR, Zero, Zero, One},
		{XOR, One, Zero, One},
		{XOR, One, One, Zero},
		{XNOR, One, One, One},
		{INV, One, Unassigned, Zero},
		{BUF, One, Unassigned, One},
	}
	for _, c := range cases {
		g := &Gate{Kind: c.kind}
		assert.Equal(t, c.expected, g.EvalBinary(c.a, c.b), "%s(%s,%s)", c.kind, c.a, c.b)
	}
}

func TestGateEvalFive(t *testing.T) {
	cases := []struct {
		kind     GateKind
		a, b     FiveValue
		expected FiveValue
	}{
		{AND, D, FOne, D},
		{AND, D, FZero, FZero},
		{AND, D, Dbar, FZero},
		{AND, D, X, X},
		{OR, D, FZero, D},
		{OR, D, FOne, FOne},
		{OR, D, Dbar, FOne},
		{NAND, FOne, FOne, FZero},
		{NOR, FZero, FZero, FOne},
		{INV, D, X, Dbar},
		{BUF, D, X, D},
	}
	for _, c := range cases {
		g := &Gate{Kind: c.kind}
		assert.Equal(t, c.expected, g.EvalFive(c.a, c.b), "%s(%s,%s)", c.kind, c.a, c.b)
	}
}

func TestControllingValue(t *testing.T) {
	v, ok := AND.ControllingValue()
	assert.True(t, ok)
	assert.Equal(t, Zero, v)

	v, ok = OR.ControllingValue()
	assert.True(t, ok)
	assert.Equal(t, One, v)

	_, ok = XOR.ControllingValue()
	assert.False(t, ok)
}

func TestInversionParity(t *testing.T) {
	assert.Equal(t, 1, NAND.InversionParity())
	assert.Equal(t, 1, NOR.InversionParity())
	assert.Equal(t, 1, INV.InversionParity())
	assert.Equal(t, 1, XNOR.InversionParity())
	assert.Equal(t, 0, AND.InversionParity())
	assert.Equal(t, 0, OR.InversionParity())
	assert.Equal(t, 0, BUF.InversionParity())
	assert.Equal(t, 0, XOR.InversionParity())
}
