package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newContainsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "contains <element>...",
		Short: "Load elements from stdin, then report whether each trailing argument is probably a member",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContains(cmd, args)
		},
	}
}

func runContains(cmd *cobra.Command, probes []string) error {
	applyColorFlag(cmd)

	f, _, err := buildFilter(cmd)
	if err != nil {
		return err
	}

	elements, err := readStdinElements()
	if err != nil {
		return err
	}
	for _, e := range elements {
		f.Insert(e)
	}

	for _, probe := range probes {
		if f.Contains([]byte(probe)) {
			color.New(color.FgGreen).Printf("%-20s probably present\n", probe)
		} else {
			color.New(color.FgRed).Printf("%-20s absent\n", probe)
		}
	}
	fmt.Printf("loaded %d elements before probing\n", len(elements))

	return nil
}
