// Command parmat multiplies two matrices given on the command line and
// prints the product in brace-nested form.
//
//	parmat multiply --a 2x3:1,2,3,4,5,6 --b 3x2:1,2,3,4,5,6
//	a * b = {{22 28}, {49 64}}
package main

import (
	"context"
	"fmt"
	"os"

	lg "github.com/Andrej220/go-utils/zlog"
	"github.com/spf13/cobra"

	pm "github.com/azargarov/parmat"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "parmat",
		Short:        "Parallel dense-matrix multiplication",
		SilenceUsage: true,
	}
	root.AddCommand(newMultiplyCmd())
	return root
}

type multiplyFlags struct {
	a, b      string
	elem      string
	config    string
	workers   int
	queueSize int
	pin       bool
}

func newMultiplyCmd() *cobra.Command {
	var f multiplyFlags
	cmd := &cobra.Command{
		Use:     "multiply",
		Short:   "Multiply two matrices on a worker pool",
		Example: "  parmat multiply --a 2x3:1,2,3,4,5,6 --b 3x2:1,2,3,4,5,6 --workers 4",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := loadOptions(cmd.Context(), f.config)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("workers") {
				opts.Workers = f.workers
			}
			if flags.Changed("queue-size") {
				opts.QueueSize = f.queueSize
			}
			if flags.Changed("pin") {
				opts.PinWorkers = f.pin
			}

			switch f.elem {
			case "int":
				return runMultiply(cmd, f.a, f.b, opts, parseInt)
			case "float":
				return runMultiply(cmd, f.a, f.b, opts, parseFloat)
			default:
				return fmt.Errorf("unknown element type %q (want int or float)", f.elem)
			}
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.a, "a", "", "left operand as ROWSxCOLS:v1,v2,... (row-major)")
	fl.StringVar(&f.b, "b", "", "right operand as ROWSxCOLS:v1,v2,... (row-major)")
	fl.StringVar(&f.elem, "type", "int", "element type: int or float")
	fl.StringVar(&f.config, "config", "", "YAML file with pool options")
	fl.IntVar(&f.workers, "workers", pm.DefaultWorkers, "number of worker goroutines")
	fl.IntVar(&f.queueSize, "queue-size", 0, "buffer of each worker queue (0 = default)")
	fl.BoolVar(&f.pin, "pin", false, "pin workers to CPUs (Linux only)")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")
	return cmd
}

func runMultiply[T pm.Number](cmd *cobra.Command, aText, bText string, opts pm.Options, parse func(string) (T, error)) error {
	a, err := parseMatrix(aText, parse)
	if err != nil {
		return fmt.Errorf("--a: %w", err)
	}
	b, err := parseMatrix(bText, parse)
	if err != nil {
		return fmt.Errorf("--b: %w", err)
	}

	c, err := pm.MultiplyContext(cmd.Context(), a, b, opts)
	if err != nil {
		lg.FromContext(cmd.Context()).Error("multiply failed", lg.Any("error", err))
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "a * b = %v\n", c)
	return nil
}
