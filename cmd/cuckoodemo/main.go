// Command cuckoodemo is a small command-line harness around the
// cuckoofilter and dynamiccuckoofilter packages: insert, probe, and
// delete elements against a filter built from flags or a config file,
// and inspect its occupancy.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := newRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "cuckoodemo",
		Short: "Exercise a cuckoo filter or dynamic cuckoo filter from the command line",
		Long: `cuckoodemo builds a cuckoo filter (or, with --dynamic, a chain of them)
and runs insert/contains/delete/stats/compact operations against it.

Filter parameters come from flags by default, or from a YAML config
file passed with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file (overrides flag defaults)")
	cmd.PersistentFlags().Uint32("capacity", 1024, "per-filter table size (rounded down to a power of two)")
	cmd.PersistentFlags().Uint8("bucket-size", 4, "slots per bucket (4 or 2)")
	cmd.PersistentFlags().Uint8("fp-bits", 16, "fingerprint width in bits (4, 8, 12, 16, or 32)")
	cmd.PersistentFlags().String("hash", "murmur", "hash function: murmur, fnv, or xxhash")
	cmd.PersistentFlags().Bool("dynamic", false, "use a dynamic (growable) cuckoo filter chain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	cmd.AddCommand(newInsertCommand())
	cmd.AddCommand(newContainsCommand())
	cmd.AddCommand(newDeleteCommand())
	cmd.AddCommand(newStatsCommand())
	cmd.AddCommand(newCompactCommand())

	return cmd
}
