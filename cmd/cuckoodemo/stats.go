package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fukua95/cuckoo/cuckoofilter"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Load elements from stdin and print occupancy statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd)
		},
	}
}

func runStats(cmd *cobra.Command) error {
	applyColorFlag(cmd)

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

	if dcf != nil {
		fmt.Printf("filters:       %d\n", dcf.FilterCount())
		fmt.Printf("elementCount:  %d\n", dcf.ElementCount())
		return nil
	}

	cf := f.(*cuckoofilter.CuckooFilter)
	fmt.Printf("buckets:       %d\n", cf.NumBuckets())
	fmt.Printf("tableCapacity: %d\n", cf.TableCapacity())
	fmt.Printf("elementCount:  %d\n", cf.ElementCount())
	fmt.Printf("availability:  %.4f\n", cf.Availability())
	fmt.Printf("full:          %t\n", cf.Full())

	return nil
}
