package wallet

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the user to confirm a wallet connection.
type Prompter interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// PromptFunc adapts a function to Prompter
type PromptFunc func(ctx context.Context, message string) (bool, error)

// Confirm calls f
func (f PromptFunc) Confirm(ctx context.Context, message string) (bool, error) {
	return f(ctx, message)
}

// StaticPrompter answers every prompt with accept. Used when the answer was
// already collected elsewhere, e.g. from an API request.
func StaticPrompter(accept bool) Prompter {
	return PromptFunc(func(context.Context, string) (bool, error) {
		return accept, nil
	})
}

// TerminalPrompter asks a y/N question on a reader/writer pair.
type TerminalPrompter struct {
	In  io.Reader
	Out io.Writer
}

// Confirm prints message and accepts "y" or "yes"
func (p TerminalPrompter) Confirm(ctx context.Context, message string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	fmt.Fprintf(p.Out, "%s [y/N]: ", message)

	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
