// Command carve is the Universal Machine assembler: it translates a
// scroll source file into a stone binary.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rsantos/stonemachine/config"
	"github.com/rsantos/stonemachine/internal/diag"
	"github.com/rsantos/stonemachine/machine"
	"github.com/rsantos/stonemachine/platter"
	"github.com/rsantos/stonemachine/scroll"
)

var (
	configPath string
	verbose    bool
)

func main() {
	root := &cobra.Command{
		Use:           "carve <scroll-path> <stone-path>",
		Short:         "Assemble a scroll into a stone",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  false,
		SilenceErrors: true,
		RunE:          runCarve,
	}
	root.Flags().StringVar(&configPath, "config", "", "path to a stonemachine.toml configuration file")
	root.Flags().BoolVar(&verbose, "verbose", false, "print every collected assembly error, not just the first")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCarve(cmd *cobra.Command, args []string) error {
	scrollPath, stonePath := args[0], args[1]

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	src, err := os.Open(scrollPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	defer src.Close()

	words, err := scroll.Assemble(src, cfg.Assembler.MaxErrors)
	if err != nil {
		diag.AssemblyFailure(os.Stderr, err, verbose)
		return err
	}

	if err := emit(stonePath, words); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

// emit writes words to stonePath, deleting the file if writing fails
// partway through so a broken scroll never leaves a corrupt stone
// behind.
func emit(stonePath string, words []platter.Word) error {
	dst, err := os.Create(stonePath)
	if err != nil {
		return err
	}

	if err := machine.WriteStone(dst, words); err != nil {
		dst.Close()
		os.Remove(stonePath)
		return err
	}
	return dst.Close()
}
