package main

import (
	"io"

	"github.com/daniacca/genchem/internal/logging"
	"github.com/spf13/cobra"
)

// app carries what every subcommand shares.
type app struct {
	out      io.Writer
	errOut   io.Writer
	logLevel string
	logger   *logging.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:   "genchem",
		Short: "Generate artificial chemistries and their mass-conserving reactions",
		Long: `genchem draws random species systems (mass, free energy and optional
charge per species), enumerates every reaction up to a maximum order that
conserves mass (and charge), and prints the element and reaction tables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = logging.NewWithWriter(a.logLevel, a.errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newLoadCmd(a),
		newEnumerateCmd(a),
	)
	return rootCmd
}
