package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/circuitkit/atpg/pkg/logicsim"
	"github.com/circuitkit/atpg/pkg/netlist"
)

func newLogicSimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logicsim <netlist> <test-vector> [split-fanout: 0|1]",
		Short: "Run the event-driven binary logic simulator on a test vector",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(os.Stderr)
			split := len(args) == 3 && args[2] == "1"

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			c, err := netlist.Read(f, args[0], log)
			if err != nil {
				return err
			}

			if split {
				c.SplitFanout()
			}

			out, err := logicsim.Simulate(c, args[1], split, log)
			if err != nil {
				return err
			}
			fmt.Println(out)

			if split {
				return netlist.WriteSplit(os.Stdout, c)
			}
			return nil
		},
	}
	return cmd
}
