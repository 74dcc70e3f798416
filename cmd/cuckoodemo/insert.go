package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fukua95/cuckoo/cuckoofilter"
)

func newInsertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insert",
		Short: "Insert newline-delimited elements read from stdin and report how many were accepted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInsert(cmd)
		},
	}
	return cmd
}

func runInsert(cmd *cobra.Command) error {
	applyColorFlag(cmd)

	f, _, err := buildFilter(cmd)
	if err != nil {
		return err
	}

	elements, err := readStdinElements()
	if err != nil {
		return err
	}

	inserted, refused := 0, 0
	for _, e := range elements {
		if f.Insert(e) == cuckoofilter.Inserted {
			inserted++
		} else {
			refused++
		}
	}

	color.New(color.FgGreen).Printf("inserted: %d\n", inserted)
	if refused > 0 {
		color.New(color.FgYellow).Printf("refused:  %d\n", refused)
	}
	fmt.Printf("total read: %d\n", len(elements))

	return nil
}

func applyColorFlag(cmd *cobra.Command) {
	noColor, _ := cmd.Flags().GetBool("no-color")
	if noColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}
}
