package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel string
	output   string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "ntcctl",
		Short:         "Unit conversion, Ohm's law and NTC thermistor tools",
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			logrus.SetOutput(cmd.ErrOrStderr())
			logrus.SetLevel(lvl)
			switch opts.output {
			case outputText, outputJSON, outputYAML:
			default:
				return fmt.Errorf("output format %q not recognized", opts.output)
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warning", "Log level (trace, debug, info, warning, error)")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputText, "Output format: text, json or yaml")

	cmd.AddCommand(
		newConvertCommand(opts),
		newOhmCommand(opts),
		newSMDCommand(opts),
		newCatalogCommand(opts),
		newCurveCommand(opts),
		newTempCommand(opts),
		newDividerCommand(opts),
		newBatchCommand(opts),
	)
	return cmd
}
