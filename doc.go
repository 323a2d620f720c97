// Package partition is a toolkit for the number-partitioning problem: split a
// multiset of positive integers into two halves whose sums differ as little
// as possible.
//
// What is inside:
//
//	• Karmarkar–Karp differencing over an explicit max-heap
//	• Local search: repeated random, hill climbing, simulated annealing
//	• Two representations: direct signs and prepartitioned buckets
//	• Instance loading and seeded random generation
//	• An experiment sweep with concurrent trials and Prometheus metrics
//
// Subpackages:
//
//	kk/             - differencing solver and MaxHeap
//	solver/         - cost model, entropy source, representations, search driver
//	instance/       - text reader and random instances (functional options)
//	config/         - YAML configuration with validation
//	sweep/          - reference experiment runner
//	cmd/partition/  - command-line entry point
//
// Quick example:
//
//	w := []int64{8, 7, 6, 5}
//	r, _ := solver.Solve(w, solver.PrepartitionedSimulatedAnnealing, solver.DefaultOptions())
//
//	go get github.com/albertqi/partition
package partition
