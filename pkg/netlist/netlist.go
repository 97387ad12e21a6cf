// Package netlist is an external collaborator of the simulation core:
// it turns a line-oriented netlist file into a *circuit.Circuit and
// turns simulation results back into the text formats the command
// line surfaces print. None of it runs inside the engines themselves.
package netlist

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/circuitkit/atpg/internal/atgerr"
	"github.com/circuitkit/atpg/internal/xlog"
	"github.com/circuitkit/atpg/pkg/circuit"
)

var gateTokens = map[string]circuit.GateKind{
	"AND":  circuit.AND,
	"OR":   circuit.OR,
	"NAND": circuit.NAND,
	"NOR":  circuit.NOR,
	"XOR":  circuit.XOR,
	"XNOR": circuit.XNOR,
	"INV":  circuit.INV,
	"BUF":  circuit.BUF,
}

var spaceRun = regexp.MustCompile(`\s+`)

// Read parses a line-oriented netlist from r: INPUT/OUTPUT declaration
// lines terminated by a -1 sentinel, followed by gate lines. Tabs are
// stripped, runs of spaces collapsed, and the leading token matched
// case-insensitively. Unrecognized leading tokens are
// skipped with a warning; blank lines are skipped silently.
func Read(r io.Reader, name string, log *xlog.Logger) (*circuit.Circuit, error) {
	if log == nil {
		log = xlog.Discard()
	}
	c := circuit.New(name)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		tokens := tokenize(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		switch strings.ToUpper(tokens[0]) {
		case "INPUT":
			names, err := intListUntilSentinel(tokens[1:])
			if err != nil {
				return nil, errors.Wrapf(atgerr.ErrBadInput, "line %d: %v", lineNo, err)
			}
			for _, n := range names {
				c.AddInput(n)
			}
		case "OUTPUT":
			names, err := intListUntilSentinel(tokens[1:])
			if err != nil {
				return nil, errors.Wrapf(atgerr.ErrBadInput, "line %d: %v", lineNo, err)
			}
			for _, n := range names {
				c.AddOutput(n)
			}
		default:
			kind, ok := gateTokens[strings.ToUpper(tokens[0])]
			if !ok {
				log.Circuit("netlist line %d: unrecognized token %q, skipping", lineNo, tokens[0])
				continue
			}
			if err := addGateLine(c, kind, tokens[1:]); err != nil {
				return nil, errors.Wrapf(atgerr.ErrBadInput, "line %d: %v", lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading netlist")
	}
	return c, nil
}

func addGateLine(c *circuit.Circuit, kind circuit.GateKind, tokens []string) error {
	want := 3
	if kind.IsSingleInput() {
		want = 2
	}
	if len(tokens) != want {
		return fmt.Errorf("gate %s expects %d operands, got %d", kind, want, len(tokens))
	}
	nums := make([]int, len(tokens))
	for i, t := range tokens {
		n, err := strconv.Atoi(t)
		if err != nil {
			return fmt.Errorf("non-integer node name %q", t)
		}
		nums[i] = n
	}

	g := &circuit.Gate{Kind: kind}
	if kind.IsSingleInput() {
		g.In1 = nums[0]
		g.Output = nums[1]
		c.EnsureNode(g.In1)
		c.EnsureNode(g.Output)
	} else {
		g.In1, g.In2, g.Output = nums[0], nums[1], nums[2]
		c.EnsureNode(g.In1)
		c.EnsureNode(g.In2)
		c.EnsureNode(g.Output)
	}
	c.AddGate(g)
	return nil
}

// intListUntilSentinel reads integers until a -1 token (any token
// that parses to -1 terminates the list).
func intListUntilSentinel(tokens []string) ([]int, error) {
	var out []int
	for _, t := range tokens {
		n, err := strconv.Atoi(t)
		if err != nil {
			return nil, fmt.Errorf("non-integer node name %q", t)
		}
		if n == -1 {
			return out, nil
		}
		out = append(out, n)
	}
	return out, fmt.Errorf("declaration list missing -1 terminator")
}

func tokenize(line string) []string {
	line = strings.ReplaceAll(line, "\t", " ")
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	return spaceRun.Split(line, -1)
}

// FaultSpec is one line of a fault list: a node and a stuck-at
// polarity.
type FaultSpec struct {
	Node  int
	Value circuit.BinaryValue
}

// ReadFaultList parses an external fault-list file: one
// "<node> <stuck_value>" pair per line.
func ReadFaultList(r io.Reader) ([]FaultSpec, error) {
	var specs []FaultSpec
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		tokens := tokenize(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		if len(tokens) != 2 {
			return nil, errors.Wrapf(atgerr.ErrBadInput, "fault list line %d: expected \"<node> <value>\"", lineNo)
		}
		node, err := strconv.Atoi(tokens[0])
		if err != nil {
			return nil, errors.Wrapf(atgerr.ErrBadInput, "fault list line %d: non-integer node %q", lineNo, tokens[0])
		}
		var v circuit.BinaryValue
		switch tokens[1] {
		case "0":
			v = circuit.Zero
		case "1":
			v = circuit.One
		default:
			return nil, errors.Wrapf(atgerr.ErrBadInput, "fault list line %d: stuck value must be 0 or 1, got %q", lineNo, tokens[1])
		}
		specs = append(specs, FaultSpec{Node: node, Value: v})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading fault list")
	}
	return specs, nil
}

// WriteSplit renders a post-fan-out-split netlist: one "CONNECT <stem>
// <branch>…" line per split stem, followed by the gate list, matching
// the logic-simulator CLI's split_fanout=1 output.
func WriteSplit(w io.Writer, c *circuit.Circuit) error {
	for _, stem := range c.NodeNames() {
		branches := c.Branches(stem)
		if len(branches) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "CONNECT %d", stem); err != nil {
			return err
		}
		for _, b := range branches {
			if _, err := fmt.Fprintf(w, " %d", b); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	for _, g := range c.Gates() {
		if _, err := fmt.Fprintln(w, g); err != nil {
			return err
		}
	}
	return nil
}
