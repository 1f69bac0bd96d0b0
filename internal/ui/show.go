package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ShowGeneration displays a generated message/description pair
func ShowGeneration(message, description string, attempt int, output io.Writer) error {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)

	_, err := bold.Fprintf(output, "\n📝 Generated Commit (attempt %d):\n", attempt)
	if err != nil {
		return err
	}

	_, err = cyan.Fprintln(output, "─────────────────────────────")
	if err != nil {
		return err
	}

	_, err = green.Fprint(output, "Message:     ")
	if err != nil {
		return err
	}
	_, err = bold.Fprintln(output, message)
	if err != nil {
		return err
	}

	_, err = green.Fprint(output, "Description: ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, description)
	if err != nil {
		return err
	}

	_, err = cyan.Fprintln(output, "─────────────────────────────")
	return err
}
