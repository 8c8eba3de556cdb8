// Package main provides the uconv CLI application entry point.
// uconv converts quantities between units of length, weight and temperature.
package main

import (
	"errors"
	"fmt"
	"os"

	"uconv/internal/logger"
)

func main() {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(convertArgs(os.Args[1:]))

	err := rootCmd.Execute()
	_ = logger.Close()
	if err != nil {
		// conversion failures were already reported on stdout
		if !errors.Is(err, errConversionFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
