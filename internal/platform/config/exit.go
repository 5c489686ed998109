package config

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var errorLabel = color.New(color.FgRed, color.Bold)

// Exitf writes a formatted error message to stderr and exits with code 1.
// The "Error:" label is colored unless NO_COLOR is set or output is not a
// terminal.
func Exitf(format string, args ...any) {
	errorLabel.Fprint(os.Stderr, "Error: ")
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
