package main

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"
	"github.com/sirupsen/logrus"

	"sensorkit-go/ntc"
	"sensorkit-go/ntc/ttc05"
	"sensorkit-go/types"
	"sensorkit-go/units"
)

// part is a thermistor model together with the catalog vendor, if any.
type part struct {
	model  *ntc.Model
	vendor string
}

// loadPart builds the model from a catalog code, or from modelFile when set.
func loadPart(code, modelFile string) (part, error) {
	if modelFile != "" {
		m, err := readModelFile(modelFile)
		return part{model: m}, err
	}
	m, err := ttc05.New(code)
	if err != nil {
		return part{}, err
	}
	logrus.WithField("part", m.Name()).Debug("loaded catalog model")
	return part{model: m, vendor: ttc05.Vendor}, nil
}

func readModelFile(path string) (*ntc.Model, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c types.ThermistorConfig
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	m, err := modelFromConfig(c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logrus.WithField("file", path).WithField("part", m.Name()).Debug("loaded model file")
	return m, nil
}

func modelFromConfig(c types.ThermistorConfig) (*ntc.Model, error) {
	cfg := ntc.Config{Beta: c.Beta, Name: c.Name}
	var err error
	if cfg.R0, err = units.ParseResistance(c.R0); err != nil {
		return nil, fmt.Errorf("r0: %w", err)
	}
	if c.T0 != "" {
		if cfg.T0, err = units.ParseTemperature(c.T0); err != nil {
			return nil, fmt.Errorf("t0: %w", err)
		}
	}
	if c.T1 != "" {
		if cfg.T1, err = units.ParseTemperature(c.T1); err != nil {
			return nil, fmt.Errorf("t1: %w", err)
		}
	}
	return ntc.New(cfg)
}

func (p part) info() types.ThermistorInfo {
	m := p.model
	t0, _ := m.T0().As(units.Celsius)
	t1, _ := m.T1().As(units.Celsius)
	return types.ThermistorInfo{
		Part:   m.Name(),
		Vendor: p.vendor,
		Beta:   m.Beta(),
		R0:     quantityOf(m.R0()),
		T0:     quantityOf(t0),
		R1:     quantityOf(m.R1()),
		T1:     quantityOf(t1),
	}
}
