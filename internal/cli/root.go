// Package cli wires the constellations command: it reads a star chart,
// clusters it and prints the number of constellations.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/constellations/constellation"
	"github.com/katalvlaran/constellations/internal/config"
	"github.com/katalvlaran/constellations/point"
)

// flags holds the command-line values for one command instance.
type flags struct {
	configPath string
	threshold  int64
	method     string
	verbose    bool
}

// NewRootCommand builds the constellations root command.
func NewRootCommand(version string) *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "constellations [file]",
		Short: "Count constellations in a 4-dimensional star chart",
		Long: `constellations reads one point per line ("x,y,z,t"), groups points that are
linked through chains of Manhattan distance <= threshold, and prints the
number of groups.

With no file, or when file is "-", the chart is read from standard input.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().Int64VarP(&f.threshold, "threshold", "t", constellation.DefaultThreshold, "linking distance (inclusive)")
	cmd.Flags().StringVarP(&f.method, "method", "m", constellation.MethodMerge,
		"clustering method: "+strings.Join(constellation.Methods, ", "))
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// Execute runs the root command against os.Args and returns the process exit code.
func Execute(version string) int {
	if err := NewRootCommand(version).Execute(); err != nil {
		return 1
	}

	return 0
}

func run(cmd *cobra.Command, args []string, f *flags) error {
	// 1. Resolve configuration: defaults < file < env < explicit flags.
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Threshold = f.threshold
	}
	if cmd.Flags().Changed("method") {
		cfg.Method = f.method
	}
	if f.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(cfg.Logging.Level, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// 2. Read and validate the chart before any clustering.
	name, r, closeFn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeFn()

	points, err := point.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	logger.Info("Star chart loaded",
		zap.String("input", name),
		zap.Int("points", len(points)),
		zap.Int64("threshold", cfg.Threshold),
		zap.String("method", cfg.Method))

	// 3. Cluster and report.
	opts := append(cfg.Options(), constellation.WithOnMerge(func(survivor, absorbed, remaining int) {
		logger.Debug("Merged groups",
			zap.Int("survivor", survivor),
			zap.Int("absorbed", absorbed),
			zap.Int("remaining", remaining))
	}))
	n, err := constellation.Count(points, opts...)
	if err != nil {
		return err
	}
	logger.Info("Clustering finished", zap.Int("constellations", n))

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "constellations: %d\n", n)

	return err
}

// openInput returns a display name and reader for args[0], or stdin.
func openInput(cmd *cobra.Command, args []string) (string, io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return "stdin", cmd.InOrStdin(), func() {}, nil
	}
	fh, err := os.Open(args[0])
	if err != nil {
		return "", nil, nil, fmt.Errorf("failed to open input: %w", err)
	}

	return args[0], fh, func() { _ = fh.Close() }, nil
}

// newLogger builds a JSON zap logger with the production encoder, writing
// to w at the given level.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(lvl),
	)

	return zap.New(core, zap.AddCaller()), nil
}
