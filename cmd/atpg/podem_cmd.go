package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/circuitkit/atpg/cmd/atpg/internal/sweep"
	"github.com/circuitkit/atpg/pkg/circuit"
	"github.com/circuitkit/atpg/pkg/netlist"
	"github.com/circuitkit/atpg/pkg/podem"
)

func newPodemCmd() *cobra.Command {
	var (
		netlistPath string
		node        int
		value       int
		sweepDir    string
	)

	cmd := &cobra.Command{
		Use:   "podem",
		Short: "Generate a test vector for a single stuck-at fault via PODEM",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(os.Stderr)

			if sweepDir != "" {
				return sweep.PodemSweep(sweepDir, log)
			}

			if netlistPath == "" {
				return fmt.Errorf("-f is required unless -d is given")
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

			faultValue := circuit.Zero
			if value == 1 {
				faultValue = circuit.One
			}

			engine, err := podem.Prepare(c, node, faultValue, log)
			if err != nil {
				return err
			}
			result := engine.Generate()
			if !result.Found {
				fmt.Println(result.Message)
				return nil
			}
			fmt.Println(result.Vector)
			return nil
		},
	}

	cmd.Flags().StringVarP(&netlistPath, "file", "f", "", "netlist file")
	cmd.Flags().IntVarP(&node, "node", "n", 0, "fault-site node name")
	cmd.Flags().IntVarP(&value, "value", "v", 0, "stuck-at value (0 or 1)")
	cmd.Flags().StringVarP(&sweepDir, "dir", "d", "", "sweep both polarities of every node across reference netlists")
	return cmd
}
