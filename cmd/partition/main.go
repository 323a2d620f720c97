// Command partition solves number-partitioning instances.
//
//	partition [flag] [algorithm] [input_file]
//
// flag 1 runs the experiment sweep and ignores the other arguments' meaning;
// any other flag reads the instance from input_file and prints the residue of
// the selected algorithm (0, 1, 2, 3, 11, 12, 13).
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
