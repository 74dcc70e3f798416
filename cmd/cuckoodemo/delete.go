package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <element>...",
		Short: "Load elements from stdin, then delete each trailing argument and report success",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, args)
		},
	}
}

func runDelete(cmd *cobra.Command, targets []string) error {
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

	for _, target := range targets {
		if f.Delete([]byte(target)) {
			color.New(color.FgGreen).Printf("%-20s deleted\n", target)
		} else {
			color.New(color.FgRed).Printf("%-20s not found\n", target)
		}
	}
	fmt.Printf("loaded %d elements before deleting\n", len(elements))

	return nil
}
