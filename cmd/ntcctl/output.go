package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"

	"sensorkit-go/types"
	"sensorkit-go/units"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// render writes v to the command's stdout in the selected format; text
// renders the human form.
func render(cmd *cobra.Command, opts *rootOptions, v any, text func(w io.Writer) error) error {
	w := cmd.OutOrStdout()
	switch opts.output {
	case outputJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to create json: %v", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case outputYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to create yaml: %v", err)
		}
		_, err = w.Write(b)
		return err
	default:
		return text(w)
	}
}

// printQuantity is render for a single value whose text form is its String.
func printQuantity(cmd *cobra.Command, opts *rootOptions, m measure) error {
	return render(cmd, opts, quantityOf(m), func(w io.Writer) error {
		_, err := fmt.Fprintln(w, m)
		return err
	})
}

type measure interface {
	Family() units.Family
	Value() float64
	Unit() units.Unit
	String() string
}

func quantityOf(m measure) types.Quantity {
	return types.Quantity{Family: m.Family().String(), Value: m.Value(), Unit: string(m.Unit())}
}
