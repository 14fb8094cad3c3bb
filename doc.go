// Package mlpils is a GRASP+ILS heuristic solver for the Minimum Latency
// Problem: given a depot and a set of stops with pairwise travel times,
// find the visiting order that minimizes cumulative arrival time (latency),
// not total travel distance.
//
// The repository is organized as:
//
//	core/       — thread-safe in-memory Graph, Vertex, Edge primitives
//	matrix/     — dense/adjacency matrix representations and linear algebra
//	builder/    — deterministic graph constructors (complete, grid, cycle, ...)
//	instance/   — MLP instance loading (flat files, or from a core.Graph)
//	mlp/        — the subsequence-concatenation algebra, RVND local search,
//	              GRASP construction, and the multi-start ILS driver
//	cmd/        — the mlp-solve command-line tool
//
// Quick start:
//
//	dist, _ := instance.ReadFile("instance.txt")
//	sol, _ := mlp.SolveDistanceMatrix(dist, mlp.DefaultOptions())
//	fmt.Println(sol.Cost, sol.Route)
package mlpils
