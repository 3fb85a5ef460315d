// Command ntcctl converts quantities, decodes SMD markings and evaluates
// NTC thermistor models from the command line.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("ntcctl failed")
		os.Exit(1)
	}
}
