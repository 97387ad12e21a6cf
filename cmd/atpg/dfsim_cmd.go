package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/circuitkit/atpg/cmd/atpg/internal/sweep"
	"github.com/circuitkit/atpg/pkg/circuit"
	"github.com/circuitkit/atpg/pkg/faultsim"
	"github.com/circuitkit/atpg/pkg/netlist"
)

func newDfsimCmd() *cobra.Command {
	var (
		netlistPath string
		vector      string
		faultList   string
		everyNode   bool
		sweepDir    string
		sweepAll    bool
	)

	cmd := &cobra.Command{
		Use:   "dfsim",
		Short: "Run the deductive fault simulator for one test vector",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(os.Stderr)

			if sweepAll || sweepDir != "" {
				return sweep.CoverageSweep(sweepDir, log)
			}

			if netlistPath == "" || vector == "" {
				return fmt.Errorf("-f and -t are required unless -a/-d is given")
			}

			f, err := os.Open(netlistPath)
			if err != nil {
				return err
			}
			defer f.Close()

			c, err := netlist.Read(f, netlistPath, log)
			if err != nil {
				return err
			}

			switch {
			case everyNode:
				faultsim.ActivateEveryNode(c)
			case faultList != "":
				ff, err := os.Open(faultList)
				if err != nil {
					return err
				}
				defer ff.Close()
				specs, err := netlist.ReadFaultList(ff)
				if err != nil {
					return err
				}
				for _, spec := range specs {
					n := c.EnsureNode(spec.Node)
					if spec.Value == circuit.Zero {
						n.StuckAt0 = true
					} else {
						n.StuckAt1 = true
					}
				}
			}

			detected, err := faultsim.Simulate(c, vector, log)
			if err != nil {
				return err
			}
			for _, e := range detected.Slice() {
				fmt.Printf("%d stuck at %s\n", e.Node, e.Value)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&netlistPath, "file", "f", "", "netlist file")
	cmd.Flags().StringVarP(&vector, "test-vector", "t", "", "primary-input test vector")
	cmd.Flags().StringVarP(&faultList, "fault-list", "p", "", "external fault-list file")
	cmd.Flags().BoolVarP(&everyNode, "list-all", "l", false, "activate every stuck-at polarity on every node")
	cmd.Flags().StringVarP(&sweepDir, "dir", "d", "", "sweep a directory of reference netlists for coverage")
	cmd.Flags().BoolVarP(&sweepAll, "all", "a", false, "run the coverage sweep over the netlists in the -d directory")
	return cmd
}
