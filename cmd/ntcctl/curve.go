package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sensorkit-go/types"
	"sensorkit-go/units"
)

type curveOptions struct {
	from, to  string
	steps     int
	unit      string
	modelFile string
}

func newCurveCommand(root *rootOptions) *cobra.Command {
	opts := curveOptions{}

	cmd := &cobra.Command{
		Use:   "curve [code...]",
		Short: "Tabulate resistance over a temperature range",
		Example: `  ntcctl curve 103 472 --from 25C --to 75C --steps 11 --unit Ω
  ntcctl curve --model-file probe.yaml -o json`,

		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := units.ParseTemperature(opts.from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			to, err := units.ParseTemperature(opts.to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			codes := args
			if opts.modelFile != "" {
				codes = []string{""}
			} else if len(codes) == 0 {
				return fmt.Errorf("need at least one catalog code or --model-file")
			}

			var curves []types.Curve
			for _, code := range codes {
				p, err := loadPart(code, opts.modelFile)
				if err != nil {
					return err
				}
				pts, err := p.model.Curve(from, to, opts.steps, units.ParseUnit(opts.unit))
				if err != nil {
					return err
				}
				logrus.WithField("part", p.model.Name()).Debugf("sampled %d points", len(pts))
				c := types.Curve{Part: p.model.Name()}
				for _, pt := range pts {
					c.Points = append(c.Points, types.CurvePoint{T: quantityOf(pt.T), R: quantityOf(pt.R)})
				}
				curves = append(curves, c)
			}
			return render(cmd, root, curves, func(w io.Writer) error {
				for _, c := range curves {
					fmt.Fprintf(w, "# %s\n", c.Part)
					for _, pt := range c.Points {
						fmt.Fprintf(w, "%s\t%s\n", formatQuantity(pt.T), formatQuantity(pt.R))
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&opts.from, "from", "25C", "First temperature")
	cmd.Flags().StringVar(&opts.to, "to", "75C", "Last temperature")
	cmd.Flags().IntVar(&opts.steps, "steps", 11, "Number of points, including both ends")
	cmd.Flags().StringVar(&opts.unit, "unit", string(units.Ohm), "Resistance unit")
	cmd.Flags().StringVar(&opts.modelFile, "model-file", "", "YAML or JSON thermistor description to use instead of catalog codes")
	return cmd
}
