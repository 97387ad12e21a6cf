// Command atpg parses flags, reads netlist and fault-list files, and
// prints results in the text formats the engines describe. None of
// the analysis lives here.
package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/circuitkit/atpg/internal/xlog"
)

var verbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "atpg",
		Short: "Combinational logic simulation and ATPG toolkit",
	}
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "emit a trace log to stderr")

	root.AddCommand(newLogicSimCmd())
	root.AddCommand(newDfsimCmd())
	root.AddCommand(newPodemCmd())
	return root
}

func newLogger(out io.Writer) *xlog.Logger {
	if !verbose {
		return xlog.Discard()
	}
	return xlog.NewConsole(out, zerolog.TraceLevel)
}
