// Command layersolver reads a single FOLD pattern, solves its layer
// order, and prints the resolved below(f1,f2) relation one pair per
// line.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/layerorder/foldio"
	"github.com/katalvlaran/layerorder/layersolver"
	"github.com/spf13/cobra"
)

// The CLI's exit code contract.
const (
	exitOK             = 0
	exitArgOrIOError   = 1
	exitUnsatisfiable  = 2
	exitGeometricError = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var bestEffort bool
	var tolerance float64

	cmd := &cobra.Command{
		Use:           "layersolver <path/to/pattern.fold>",
		Short:         "Resolve the stacking order of a folded crease pattern",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
	}
	cmd.Flags().BoolVar(&bestEffort, "best-effort", false, "skip degenerate face groups instead of aborting")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0, "override the coplanarity/geometric tolerance (default 1e-6)")

	exitCode := exitOK
	cmd.RunE = func(_ *cobra.Command, cmdArgs []string) error {
		code, err := solveFile(cmdArgs[0], bestEffort, tolerance)
		exitCode = code

		return err
	}
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "layersolver:", err)
		if exitCode == exitOK {
			exitCode = exitArgOrIOError
		}
	}

	return exitCode
}

func solveFile(path string, bestEffort bool, tolerance float64) (int, error) {
	doc, err := foldio.Read(path)
	if err != nil {
		return exitArgOrIOError, err
	}

	record, err := doc.ToRecord()
	if err != nil {
		return exitArgOrIOError, err
	}

	opts := []layersolver.Option{layersolver.WithBestEffort(bestEffort)}
	if tolerance > 0 {
		opts = append(opts, layersolver.WithTolerance(tolerance))
	}

	result, err := layersolver.Solve(record, opts...)
	if err != nil {
		return exitCodeFor(err), err
	}

	for _, f := range result.SkippedFaces() {
		slog.Warn("layersolver: skipped degenerate face", "face", f)
	}

	for _, p := range result.Pairs() {
		below, _ := result.Below(p.Lo, p.Hi)
		bit := 0
		if below {
			bit = 1
		}
		fmt.Printf("%d, %d: %d\n", p.Lo, p.Hi, bit)
	}

	return exitOK, nil
}

func exitCodeFor(err error) int {
	var lerr *layersolver.Error
	if !errors.As(err, &lerr) {
		return exitArgOrIOError
	}

	switch lerr.Kind {
	case layersolver.KindUnsatisfiable:
		return exitUnsatisfiable
	case layersolver.KindSchemaError, layersolver.KindInconsistencyError,
		layersolver.KindDegenerateGeometry:
		return exitGeometricError
	default:
		return exitArgOrIOError
	}
}
