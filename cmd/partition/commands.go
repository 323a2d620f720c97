package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/albertqi/partition/config"
	"github.com/albertqi/partition/instance"
	"github.com/albertqi/partition/internal/logging"
	"github.com/albertqi/partition/solver"
	"github.com/albertqi/partition/sweep"
)

// usageLine is printed on stdout for malformed positional arguments.
const usageLine = "Usage: ./partition [flag] [algorithm] [input_file]"

// sweepFlag selects the experiment sweep.
const sweepFlag = 1.0

var errUsage = errors.New("usage")

// cliOptions holds the persistent flags.
type cliOptions struct {
	configPath  string
	iterations  int
	seed        int64
	size        int
	trials      int
	workers     int
	logLevel    string
	noColor     bool
	metricsFile string
}

// run executes the CLI and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(positionalsLast(cmd.PersistentFlags(), args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stdout, usageLine)
			return 1
		}
		fmt.Fprintf(stderr, "partition: %v\n", err)
		return 1
	}

	return 0
}

// positionalsLast moves flags (with their values) ahead of the positional
// arguments and separates the two with "--", so a negative number such as -1
// is always read as a positional. Everything after an explicit "--" stays
// positional.
func positionalsLast(fs *pflag.FlagSet, args []string) []string {
	var flags, pos []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			pos = append(pos, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(a, "-") || a == "-" || isNumber(a) {
			pos = append(pos, a)
			continue
		}
		flags = append(flags, a)
		if takesValue(fs, a) && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}
	out := make([]string, 0, len(flags)+1+len(pos))
	out = append(out, flags...)
	out = append(out, "--")

	return append(out, pos...)
}

// takesValue reports whether the flag token a consumes the next argument.
func takesValue(fs *pflag.FlagSet, a string) bool {
	if strings.Contains(a, "=") {
		return false
	}
	var f *pflag.Flag
	switch name := strings.TrimLeft(a, "-"); {
	case strings.HasPrefix(a, "--"):
		f = fs.Lookup(name)
	case len(name) == 1:
		f = fs.ShorthandLookup(name)
	}

	return f != nil && f.NoOptDefVal == ""
}

func isNumber(a string) bool {
	_, err := strconv.ParseFloat(a, 64)
	return err == nil
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	o := &cliOptions{}
	cmd := &cobra.Command{
		Use:   "partition [flag] [algorithm] [input_file]",
		Short: "Number partitioning with differencing and local search",
		Long: `Reads an instance of positive integers and prints the residue found by
the selected algorithm:

   0  Karmarkar-Karp differencing
   1  repeated random        (direct)
   2  hill climbing          (direct)
   3  simulated annealing    (direct)
  11  repeated random        (prepartitioned)
  12  hill climbing          (prepartitioned)
  13  simulated annealing    (prepartitioned)

flag 1 runs the experiment sweep instead and prints seven residues per trial.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 3 {
				return errUsage
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.execute(cmd, args, stdout, stderr)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	f := cmd.PersistentFlags()
	f.StringVar(&o.configPath, "config", "", "YAML configuration file")
	f.IntVar(&o.iterations, "iterations", solver.DefaultIterations, "local-search iterations per run")
	f.Int64Var(&o.seed, "seed", 0, "random seed (0 draws fresh entropy)")
	f.IntVar(&o.size, "size", config.DefaultSize, "number of weights read from input_file")
	f.IntVar(&o.trials, "trials", config.DefaultTrials, "sweep trials")
	f.IntVar(&o.workers, "workers", config.DefaultWorkers, "concurrent sweep trials")
	f.StringVar(&o.logLevel, "log-level", config.DefaultLogLevel, "debug, info, warn or error")
	f.BoolVar(&o.noColor, "no-color", false, "disable coloured log output")
	f.StringVar(&o.metricsFile, "metrics-file", "", "write Prometheus metrics of the sweep to this file")

	return cmd
}

// loadConfig resolves the file (or defaults) and applies explicitly set flags.
func (o *cliOptions) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return config.Config{}, err
		}
	}

	f := cmd.Flags()
	if f.Changed("iterations") {
		cfg.Iterations = o.iterations
	}
	if f.Changed("seed") {
		cfg.Seed = o.seed
	}
	if f.Changed("size") {
		cfg.Size = o.size
		cfg.Sweep.Size = o.size
	}
	if f.Changed("trials") {
		cfg.Sweep.Trials = o.trials
	}
	if f.Changed("workers") {
		cfg.Sweep.Workers = o.workers
	}
	if f.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if f.Changed("no-color") {
		cfg.Log.NoColor = o.noColor
	}
	if f.Changed("metrics-file") {
		cfg.MetricsFile = o.metricsFile
	}

	return cfg, cfg.Validate()
}

func (o *cliOptions) execute(cmd *cobra.Command, args []string, stdout, stderr io.Writer) error {
	flag, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return errUsage
	}
	code, err := strconv.Atoi(args[1])
	if err != nil {
		return errUsage
	}

	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := logging.NewNamed(stderr, cfg.Log.Level, cfg.Log.NoColor)
	if err != nil {
		return err
	}

	if flag == sweepFlag {
		return runSweep(cmd.Context(), cfg, log, stdout)
	}

	algo, err := solver.ParseAlgorithm(code)
	if err != nil {
		return err
	}
	weights, err := instance.ReadFile(args[2], cfg.Size)
	if err != nil {
		return err
	}
	log.Debug("instance loaded", "path", args[2], "size", len(weights), "algorithm", algo.String())

	residue, err := solver.Solve(weights, algo, solver.Options{Iterations: cfg.Iterations, Seed: cfg.Seed})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, residue)

	return err
}

// runSweep runs the experiment sweep and optionally dumps its metrics.
func runSweep(ctx context.Context, cfg config.Config, log *slog.Logger, stdout io.Writer) error {
	reg := prometheus.NewRegistry()
	r, err := sweep.New(cfg, log, reg)
	if err != nil {
		return err
	}
	if err = r.Run(ctx, stdout); err != nil {
		return err
	}
	if cfg.MetricsFile == "" {
		return nil
	}
	if err = sweep.WriteMetrics(cfg.MetricsFile, reg); err != nil {
		return err
	}
	log.Info("metrics written", "path", cfg.MetricsFile)

	return nil
}
