package cmd

import (
	"fmt"
	"os"

	"github.com/cameronp98/frothy/repl"
	"github.com/spf13/cobra"
)

var replPrompt string

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := loadConfig()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		configs, err := interpreterConfigs(c, os.Stdout, os.Stderr)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		repl.RunRepl(replPrompt, configs...)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replPrompt, "prompt", "frothy> ",
		"Prompt displayed before each line of input")
}
