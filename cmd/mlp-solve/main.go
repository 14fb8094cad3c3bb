// Command mlp-solve reads a Minimum Latency Problem instance from a file and
// prints the GRASP+ILS heuristic solution.
//
// Usage:
//
//	mlp-solve [-seed N] <instance-file>
//
// Stdout contract (spec.md §6), exactly three lines on success (1-based ids,
// the route closing back at the depot):
//
//	Best Cost: <float>
//	Best Route:
//	<v1> <v2> ... <vn> <v1>
//
// Exit code 0 on success. Exit code 1 on instance read/parse failure or a
// degenerate/invalid instance, with a diagnostic written to stderr.
//
// RNG seeding: wall-clock (time.Now().UnixNano()) by default, so repeated
// runs explore different restarts; -seed overrides this for reproducible
// debugging. Neither the default nor the override is part of the stdout
// contract.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rsilveira/mlp-ils/instance"
	"github.com/rsilveira/mlp-ils/mlp"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("mlp-solve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	seed := fs.Int64("seed", 0, "RNG seed override (default: wall-clock, non-reproducible)")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: mlp-solve [-seed N] <instance-file>")
		return 1
	}

	dist, err := instance.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "mlp-solve: %v\n", err)
		return 1
	}

	opts := mlp.DefaultOptions()
	opts.Seed = *seed
	if *seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	sol, err := mlp.SolveDistanceMatrix(dist, opts)
	if err != nil {
		fmt.Fprintf(stderr, "mlp-solve: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Best Cost: %v\n", sol.Cost)
	fmt.Fprintln(stdout, "Best Route:")
	for i, v := range sol.Route {
		if i > 0 {
			fmt.Fprint(stdout, " ")
		}
		fmt.Fprintf(stdout, "%d", v+1) // external ids are 1-based
	}
	fmt.Fprintln(stdout)
	return 0
}
