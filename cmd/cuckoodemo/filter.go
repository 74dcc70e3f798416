package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fukua95/cuckoo/cuckoofilter"
	"github.com/fukua95/cuckoo/dynamiccuckoofilter"
	"github.com/fukua95/cuckoo/oracle"
)

// demoFilter is the common surface cuckoofilter.CuckooFilter and
// dynamiccuckoofilter.DynamicCuckooFilter both satisfy; the demo
// commands operate through it so the --dynamic flag switches
// implementations without branching in every command.
type demoFilter interface {
	Insert(element []byte) cuckoofilter.InsertStatus
	Contains(element []byte) bool
	Delete(element []byte) bool
}

func hasherByName(name string) (oracle.Hasher, error) {
	switch name {
	case "", "murmur":
		return oracle.Murmur64{}, nil
	case "fnv":
		return oracle.FNV64{}, nil
	case "xxhash":
		return oracle.XXHash64{}, nil
	default:
		return nil, fmt.Errorf("unknown hash function %q (want murmur, fnv, or xxhash)", name)
	}
}

func resolveConfig(cmd *cobra.Command) (filterConfig, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath != "" {
		return loadConfigFile(cfgPath)
	}

	capacity, _ := cmd.Flags().GetUint32("capacity")
	bucketSize, _ := cmd.Flags().GetUint8("bucket-size")
	fpBits, _ := cmd.Flags().GetUint8("fp-bits")
	hash, _ := cmd.Flags().GetString("hash")
	dynamic, _ := cmd.Flags().GetBool("dynamic")

	return filterConfig{
		Capacity:   capacity,
		BucketSize: bucketSize,
		FPBits:     fpBits,
		Hash:       hash,
		Dynamic:    dynamic,
	}, nil
}

// buildFilter constructs either a single CuckooFilter or a
// DynamicCuckooFilter chain according to the resolved config, returning
// it through the demoFilter interface plus the dynamic chain itself
// (nil when not dynamic) for commands that need chain-specific stats.
func buildFilter(cmd *cobra.Command) (demoFilter, *dynamiccuckoofilter.DynamicCuckooFilter, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	hasher, err := hasherByName(cfg.Hash)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Dynamic {
		dcf, err := dynamiccuckoofilter.New(cfg.Capacity, cfg.BucketSize, cfg.FPBits, hasher)
		if err != nil {
			return nil, nil, fmt.Errorf("building dynamic cuckoo filter: %w", err)
		}
		return dcf, dcf, nil
	}

	cf, err := cuckoofilter.New(cfg.Capacity, cfg.BucketSize, cfg.FPBits, hasher)
	if err != nil {
		return nil, nil, fmt.Errorf("building cuckoo filter: %w", err)
	}
	return cf, nil, nil
}

// readStdinElements reads one element per line from stdin, skipping
// blank lines. Every subcommand uses it to bulk-load a filter before
// running its own operation.
func readStdinElements() ([][]byte, error) {
	scanner := bufio.NewScanner(os.Stdin)

	var elements [][]byte
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		elements = append(elements, []byte(line))
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return elements, nil
}
