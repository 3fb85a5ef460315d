package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sensorkit-go/units"
)

func newTempCommand(root *rootOptions) *cobra.Command {
	var unit, modelFile string

	cmd := &cobra.Command{
		Use:   "temp [code] <resistance>",
		Short: "Temperature of a thermistor at the given resistance",
		Example: `  ntcctl temp 103 4.7kΩ --unit F
  ntcctl temp --model-file probe.yaml 33k`,
		Args: cobra.RangeArgs(1, 2),

		RunE: func(cmd *cobra.Command, args []string) error {
			code := ""
			switch {
			case len(args) == 2 && modelFile == "":
				code = args[0]
			case len(args) == 1 && modelFile != "":
			default:
				return fmt.Errorf("want <code> <resistance>, or --model-file and <resistance>")
			}
			r, err := units.ParseResistance(args[len(args)-1])
			if err != nil {
				return err
			}
			p, err := loadPart(code, modelFile)
			if err != nil {
				return err
			}
			t, err := p.model.Temperature(r, units.ParseUnit(unit))
			if err != nil {
				return err
			}
			return printQuantity(cmd, root, t)
		},
	}
	cmd.Flags().StringVar(&unit, "unit", string(units.Celsius), "Temperature unit (K, C or F)")
	cmd.Flags().StringVar(&modelFile, "model-file", "", "YAML or JSON thermistor description to use instead of a catalog code")
	return cmd
}
