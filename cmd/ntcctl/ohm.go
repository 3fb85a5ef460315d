package main

import (
	"github.com/spf13/cobra"

	"sensorkit-go/errcode"
	"sensorkit-go/ohm"
	"sensorkit-go/units"
)

type ohmOptions struct {
	r, i, v string
	unit    string
}

func newOhmCommand(root *rootOptions) *cobra.Command {
	opts := ohmOptions{}

	cmd := &cobra.Command{
		Use:   "ohm",
		Short: "Derive the missing one of resistance, current and voltage",
		Example: `  ntcctl ohm --r 3kΩ --i 5mA --unit V
  ntcctl ohm --v 15V --i 5mA`,
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := opts.knowns()
			if err != nil {
				return err
			}
			out, err := ohm.Solve(k, units.ParseUnit(opts.unit))
			if err != nil {
				return err
			}
			m, ok := out.(measure)
			if !ok {
				return errcode.New(errcode.Error, "ohm", "unexpected result type")
			}
			return printQuantity(cmd, root, m)
		},
	}
	cmd.Flags().StringVar(&opts.r, "r", "", "Resistance, e.g. 3kΩ")
	cmd.Flags().StringVar(&opts.i, "i", "", "Current, e.g. 5mA")
	cmd.Flags().StringVar(&opts.v, "v", "", "Voltage, e.g. 15V")
	cmd.Flags().StringVar(&opts.unit, "unit", "", "Result unit (default kΩ, mA or mV)")
	return cmd
}

func (o ohmOptions) knowns() (ohm.Knowns, error) {
	var k ohm.Knowns
	if o.r != "" {
		r, err := units.ParseResistance(o.r)
		if err != nil {
			return k, err
		}
		k.R = &r
	}
	if o.i != "" {
		i, err := units.ParseCurrent(o.i)
		if err != nil {
			return k, err
		}
		k.I = &i
	}
	if o.v != "" {
		v, err := units.ParseVoltage(o.v)
		if err != nil {
			return k, err
		}
		k.V = &v
	}
	return k, nil
}
