package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"tinygo.org/x/drivers"

	"sensorkit-go/drivers/ntcdiv"
	"sensorkit-go/types"
	"sensorkit-go/units"
)

type dividerOptions struct {
	raw       uint16
	supply    string
	fixed     string
	highSide  bool
	modelFile string
}

// fixedADC replays one reading.
type fixedADC uint16

func (a fixedADC) Get() uint16 { return uint16(a) }

func newDividerCommand(root *rootOptions) *cobra.Command {
	opts := dividerOptions{}

	cmd := &cobra.Command{
		Use:     "divider [code]",
		Short:   "Temperature from a 16-bit ADC reading of a thermistor divider",
		Example: "  ntcctl divider 103 --raw 32768 --fixed 10k --supply 3.3V --high-side",
		Args:    cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			code := ""
			if len(args) == 1 {
				code = args[0]
			}
			p, err := loadPart(code, opts.modelFile)
			if err != nil {
				return err
			}
			supply, err := units.ParseVoltage(opts.supply)
			if err != nil {
				return fmt.Errorf("--supply: %w", err)
			}
			fixed, err := units.ParseResistance(opts.fixed)
			if err != nil {
				return fmt.Errorf("--fixed: %w", err)
			}
			d, err := ntcdiv.New(fixedADC(opts.raw), p.model, ntcdiv.Config{
				Supply:   supply,
				Fixed:    fixed,
				HighSide: opts.highSide,
			})
			if err != nil {
				return err
			}
			if err := d.Update(drivers.Temperature | drivers.Voltage); err != nil {
				return err
			}
			reading := types.DividerReading{
				Raw:    d.Last().Raw,
				NodeMV: d.Voltage(),
				MilliC: d.Temperature(),
				R:      quantityOf(d.Resistance()),
			}
			return render(cmd, root, reading, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "node %d mV, %s, %.3f°C\n", reading.NodeMV, formatQuantity(reading.R), float64(reading.MilliC)/1000)
				return err
			})
		},
	}
	cmd.Flags().Uint16Var(&opts.raw, "raw", 0, "ADC reading, 0..65535")
	cmd.Flags().StringVar(&opts.supply, "supply", "3.3V", "Divider supply voltage")
	cmd.Flags().StringVar(&opts.fixed, "fixed", "10k", "Series resistor")
	cmd.Flags().BoolVar(&opts.highSide, "high-side", false, "Series resistor sits between supply and the sense node")
	cmd.Flags().StringVar(&opts.modelFile, "model-file", "", "YAML or JSON thermistor description to use instead of a catalog code")
	return cmd
}
