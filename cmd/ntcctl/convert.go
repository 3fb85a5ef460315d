package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sensorkit-go/errcode"
	"sensorkit-go/smd"
	"sensorkit-go/types"
	"sensorkit-go/units"
)

func newConvertCommand(root *rootOptions) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "convert <quantity> <unit>",
		Short: "Convert a quantity to another unit of the same family",
		Example: `  ntcctl convert 25C F
  ntcctl convert 4.7kohm Ω
  ntcctl convert 472 kΩ --from SMD`,
		Args: cobra.ExactArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			to := units.ParseUnit(args[1])
			value, fromUnit, err := convertInput(args[0], from)
			if err != nil {
				return err
			}
			logrus.WithField("from", fromUnit).WithField("to", to).Debug("converting")

			var out float64
			if smd.IsPseudoUnit(fromUnit) {
				out, err = smd.Convert(args[0], to)
			} else {
				f, ok := units.FamilyOf(fromUnit)
				if !ok {
					return errcode.New(errcode.UnsupportedUnit, "convert", "unknown unit "+strconv.Quote(string(fromUnit)))
				}
				out, err = units.Convert(f, value, fromUnit, to)
			}
			if err != nil {
				return err
			}
			family := units.FamilyResistance
			if f, ok := units.FamilyOf(to); ok {
				family = f
			}
			q := types.Quantity{Family: family.String(), Value: out, Unit: string(to)}
			return render(cmd, root, q, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s %s\n", strconv.FormatFloat(out, 'g', 6, 64), to)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Unit of <quantity> when it is a bare number or an SMD code (SMD, SMD3, SMD4)")
	return cmd
}

// convertInput splits the quantity argument, or takes it as a bare number
// (or SMD code) in from.
func convertInput(s, from string) (float64, units.Unit, error) {
	if from == "" {
		return units.Parse(s)
	}
	u := units.ParseUnit(from)
	if smd.IsPseudoUnit(u) {
		return 0, u, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, "", errcode.Wrap(errcode.InvalidParams, "convert", err)
	}
	return v, u, nil
}
