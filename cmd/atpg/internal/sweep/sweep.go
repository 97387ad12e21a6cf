// Package sweep holds the coverage-sweep and reference-netlist
// helpers for the command line: running the deductive simulator or
// PODEM across every netlist in a directory and summarizing results.
// This is reporting glue around the core engines, not part of them.
package sweep

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/circuitkit/atpg/internal/xlog"
	"github.com/circuitkit/atpg/pkg/circuit"
	"github.com/circuitkit/atpg/pkg/faultsim"
	"github.com/circuitkit/atpg/pkg/netlist"
	"github.com/circuitkit/atpg/pkg/podem"
)

// CoverageSweep runs the deductive simulator, with every stuck-at
// fault activated, over a batch of random test vectors for every
// netlist file found under dir, printing detected-fault counts.
func CoverageSweep(dir string, log *xlog.Logger) error {
	files, err := referenceNetlists(dir)
	if err != nil {
		return err
	}
	for _, path := range files {
		c, err := loadNetlist(path, log)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		total := len(c.NodeNames()) * 2

		detected := circuit.FaultSet{}
		for _, vec := range RandomVectors(len(c.Inputs), 32) {
			faultsim.ActivateEveryNode(c)
			found, err := faultsim.Simulate(c, vec, log)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			detected = circuit.Union(detected, found)
		}
		fmt.Printf("%s: %d/%d faults detected across %d vectors\n", filepath.Base(path), len(detected), total, 32)
	}
	return nil
}

// PodemSweep runs PODEM for both stuck-at polarities of every node in
// every reference netlist found under dir, reporting hit/miss counts.
func PodemSweep(dir string, log *xlog.Logger) error {
	files, err := referenceNetlists(dir)
	if err != nil {
		return err
	}
	for _, path := range files {
		hit, miss := 0, 0
		for _, polarity := range []circuit.BinaryValue{circuit.Zero, circuit.One} {
			c, err := loadNetlist(path, log)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			for _, name := range c.NodeNames() {
				fresh, err := loadNetlist(path, log)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				engine, err := podem.Prepare(fresh, name, polarity, log)
				if err != nil {
					continue
				}
				if engine.Generate().Found {
					hit++
				} else {
					miss++
				}
			}
		}
		fmt.Printf("%s: %d detected, %d undetectable\n", filepath.Base(path), hit, miss)
	}
	return nil
}

func referenceNetlists(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".net") {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	return out, nil
}

func loadNetlist(path string, log *xlog.Logger) (*circuit.Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return netlist.Read(f, filepath.Base(path), log)
}

// RandomVectors generates n random test vectors of the given bit
// width, '0'/'1' only.
func RandomVectors(width, n int) []string {
	out := make([]string, n)
	for i := range out {
		b := make([]byte, width)
		for j := range b {
			if rand.Intn(2) == 1 {
				b[j] = '1'
			} else {
				b[j] = '0'
			}
		}
		out[i] = string(b)
	}
	return out
}
