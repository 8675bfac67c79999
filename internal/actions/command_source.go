// Package actions implements the behavior behind each CLI command.
package actions

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadCommandArg resolves a command-or-path-or-dash argument to command
// text: "-" reads standard input, an existing file path reads that file,
// anything else is the literal command.
func ReadCommandArg(arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read command from stdin: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	}

	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		data, err := os.ReadFile(arg)
		if err != nil {
			return "", fmt.Errorf("failed to read command from %s: %w", arg, err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	}

	return arg, nil
}
