package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errCompactRequiresDynamic = errors.New("compact only applies to a --dynamic chain")

func newCompactCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compact",
		Short: "Load elements from stdin into a --dynamic chain, then compact it and report the chain length before/after",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompact(cmd)
		},
	}
}

func runCompact(cmd *cobra.Command) error {
	applyColorFlag(cmd)

	dynamic, _ := cmd.Flags().GetBool("dynamic")
	if !dynamic {
		return errCompactRequiresDynamic
	}

	f, dcf, err := buildFilter(cmd)
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

	before := dcf.FilterCount()
	dcf.Compact()
	after := dcf.FilterCount()

	fmt.Printf("filters before: %d\n", before)
	fmt.Printf("filters after:  %d\n", after)

	return nil
}
