// Package step encodes and decodes scripted steps embedded in commit messages.
//
// A scripted step is a commit whose content is the output of re-running a
// recorded shell command. The command travels inside the commit message,
// framed by a sentinel marker line and a fenced block:
//
//	<user message>
//	<blank line>
//	[preparator-script]
//	```
//	<command>
//	```
//
// The marker only counts when it is a whole line; a message that merely
// contains the marker text inside a longer line is a manual commit. This
// framing is a persisted protocol artifact: commits encoded by old versions
// must stay decodable, so it never changes shape.
package step

import (
	"fmt"
	"strings"

	preparatorerrors "github.com/huguesb/preparator/internal/errors"
)

// Marker is the sentinel line that flags a commit message as a scripted step
const Marker = "[preparator-script]"

// fence delimits the command block after the marker
const fence = "```"

// Step is the decoded view of a scripted commit's message
type Step struct {
	// Message is the human-readable part of the commit message
	Message string
	// Command is the recorded shell command, re-run verbatim on replay
	Command string
}

// Encode produces the commit message blob for a scripted step
func Encode(message, command string) string {
	return fmt.Sprintf("%s\n\n%s\n%s\n%s\n%s\n", message, Marker, fence, command, fence)
}

// Blob re-encodes the step into its commit message framing.
// Decode followed by Blob reproduces the original message byte for byte.
func (s *Step) Blob() string {
	return Encode(s.Message, s.Command)
}

// Decode parses a commit message blob into a Step.
// Returns ErrNotScripted when the marker line is absent.
func Decode(blob string) (*Step, error) {
	lines := strings.Split(blob, "\n")

	markerIdx := -1
	for i, line := range lines {
		if line == Marker {
			markerIdx = i
			break
		}
	}
	if markerIdx == -1 {
		return nil, preparatorerrors.ErrNotScripted
	}

	// User message is everything before the blank line separating it from
	// the marker.
	msgEnd := markerIdx
	if msgEnd > 0 && lines[msgEnd-1] == "" {
		msgEnd--
	}
	message := strings.Join(lines[:msgEnd], "\n")

	// Command is the content of the fenced block after the marker. The
	// closing fence is the last fence line in the blob, so a command may
	// itself contain fence lines (heredocs writing markdown, say) and
	// still round-trip.
	rest := lines[markerIdx+1:]
	openIdx := -1
	for i, line := range rest {
		if line == fence {
			openIdx = i
			break
		}
	}
	if openIdx == -1 {
		return &Step{Message: message}, nil
	}

	closeIdx := -1
	for i := len(rest) - 1; i > openIdx; i-- {
		if rest[i] == fence {
			closeIdx = i
			break
		}
	}
	command := rest[openIdx+1:]
	if closeIdx != -1 {
		command = rest[openIdx+1 : closeIdx]
	}

	return &Step{
		Message: message,
		Command: strings.Join(command, "\n"),
	}, nil
}

// IsScripted reports whether a commit message blob carries the marker as an
// exact line. Used to gate amend (manual only) and edit (scripted only).
func IsScripted(blob string) bool {
	for _, line := range strings.Split(blob, "\n") {
		if line == Marker {
			return true
		}
	}
	return false
}
