// Package sweep runs the reference experiment: a series of random instances,
// each solved by the seven algorithms of solver.SweepOrder.
//
// Output is one residue per line, seven lines per trial, trials in order.
// Trials may run concurrently (config Sweep.Workers); every trial derives its
// own seeds from the sweep seed, so a fixed seed reproduces the output
// byte-for-byte whatever the worker count.
package sweep
