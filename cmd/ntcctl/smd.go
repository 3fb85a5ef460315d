package main

import (
	"github.com/spf13/cobra"

	"sensorkit-go/smd"
	"sensorkit-go/units"
)

func newSMDCommand(root *rootOptions) *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:     "smd <code>",
		Short:   "Decode an SMD resistor marking",
		Example: "  ntcctl smd 4702 --unit kΩ",
		Args:    cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := smd.Decode(args[0])
			if err != nil {
				return err
			}
			if r, err = r.As(units.ParseUnit(unit)); err != nil {
				return err
			}
			return printQuantity(cmd, root, r)
		},
	}
	cmd.Flags().StringVar(&unit, "unit", string(units.Ohm), "Result unit")
	return cmd
}
