package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cameronp98/frothy/frothy"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [file|expression]...",
	Short: "Run frothy programs",
	Long: `Run frothy programs supplied via the command line or files.

All programs share one environment and are evaluated in order.  Evaluation
stops at the first error, which is printed to stderr.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, err := loadConfig()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		srcs, err := runReadSources(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		configs, err := interpreterConfigs(c, os.Stdout, os.Stderr)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		in, err := frothy.New(configs...)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		err = runSources(in, srcs, runPrint || c.Print, os.Stdout)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	},
}

func runReadSources(args []string) ([]string, error) {
	srcs := make([]string, len(args))
	if runExpression {
		copy(srcs, args)
		return srcs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read program: %w", err)
		}
		srcs[i] = string(b)
	}
	return srcs, nil
}

// runSources evaluates each source with in, optionally printing the value of
// each top-level form on its own line.
func runSources(in *frothy.Interpreter, srcs []string, printValues bool, w io.Writer) error {
	for _, src := range srcs {
		vals, err := in.Evaluate(src)
		if err != nil {
			return err
		}
		if printValues {
			err := writeValues(w, vals)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func writeValues(w io.Writer, vals []frothy.Value) error {
	for _, v := range vals {
		_, err := fmt.Fprintln(w, v)
		if err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as frothy programs")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print the value of each top-level form to stdout")
}
