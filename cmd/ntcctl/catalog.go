package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sensorkit-go/ntc/ttc05"
	"sensorkit-go/types"
)

func newCatalogCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the " + ttc05.Vendor + " " + ttc05.Series + " thermistor series",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			var infos []types.ThermistorInfo
			for _, code := range ttc05.Codes() {
				p, err := loadPart(code, "")
				if err != nil {
					return err
				}
				infos = append(infos, p.info())
			}
			return render(cmd, root, infos, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
				fmt.Fprintln(tw, "PART\tBETA\tR0\tR1")
				for _, in := range infos {
					fmt.Fprintf(tw, "%s\t%g\t%s\t%s\n", in.Part, in.Beta, formatQuantity(in.R0), formatQuantity(in.R1))
				}
				return tw.Flush()
			})
		},
	}
}

func formatQuantity(q types.Quantity) string {
	return fmt.Sprintf("%.6g %s", q.Value, q.Unit)
}
