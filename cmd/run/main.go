// Command run is the Universal Machine interpreter: it loads a stone
// file as array zero and executes it until halt.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rsantos/stonemachine/config"
	"github.com/rsantos/stonemachine/internal/diag"
	"github.com/rsantos/stonemachine/machine"
)

var (
	configPath string
	verbose    bool
	rawFlag    bool
	stats      bool
)

func main() {
	root := &cobra.Command{
		Use:           "run <stone-path>",
		Short:         "Run a stone on the Universal Machine",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  false,
		SilenceErrors: true,
		RunE:          runStone,
	}
	root.Flags().StringVar(&configPath, "config", "", "path to a stonemachine.toml configuration file")
	root.Flags().BoolVar(&verbose, "verbose", false, "print the full trap cause chain on failure")
	root.Flags().BoolVar(&rawFlag, "raw", false, "force raw tty mode for standard input")
	root.Flags().BoolVar(&stats, "stats", false, "print executed-instruction statistics on exit")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runStone(cmd *cobra.Command, args []string) error {
	stonePath := args[0]

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	src, err := os.Open(stonePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	words, err := machine.LoadStone(src)
	src.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	m := machine.New(words, os.Stdout, os.Stdin, cfg.Heap.InitialCapacity)

	raw := cfg.IO.RawStdin || rawFlag
	if raw {
		if err := m.IO.SetRaw(os.Stdin.Fd()); err != nil && verbose {
			fmt.Fprintf(os.Stderr, "warning: raw tty mode unavailable: %+v\n", err)
		}
		defer m.IO.Close()
	}

	runErr := m.Run()
	if stats {
		fmt.Fprintf(os.Stderr, "Executed %d instructions.\n", m.InstructionCount())
	}
	if runErr != nil {
		diag.RunFailure(os.Stderr, runErr, verbose)
		return runErr
	}
	return nil
}
