package tui

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
)

// ConfirmFunc asks the operator a yes/no question. Implementations that
// cannot ask (no TTY) return the default answer.
type ConfirmFunc func(prompt string) (bool, error)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via PREPARATOR_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (PREPARATOR_NO_INTERACTIVE is set)")

// IsInteractive reports whether prompts can be shown to the operator
func IsInteractive() bool {
	if os.Getenv("PREPARATOR_NO_INTERACTIVE") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// Confirm prompts the operator with a yes/no question, defaulting to no.
// Without a TTY the default is returned without prompting; this keeps
// replays runnable from scripts and CI.
func Confirm(prompt string) (bool, error) {
	if !IsInteractive() {
		return false, nil
	}

	var answer bool
	err := survey.AskOne(&survey.Confirm{
		Message: prompt,
		Default: false,
	}, &answer)
	if err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return answer, nil
}

// FormatFileList renders a bulleted list of paths for display above a prompt
func FormatFileList(paths []string) string {
	out := ""
	for _, p := range paths {
		out += "  " + fileStyle.Render(p) + "\n"
	}
	return out
}
