package vault

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

var (
	// Escape hatch for unit testing backends that call OS commands
	unitTestExecuteFunc func(string, string, ...string) (CommandResult, error)
)

type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// ExecuteOSCommand runs bin with stdin as its standard input. A non-zero exit
// is reported through ExitCode, err is only set when the command could not
// be run to completion.
func ExecuteOSCommand(ctx context.Context, stdin string, bin string, args ...string) (CommandResult, error) {
	if unitTestExecuteFunc != nil {
		return unitTestExecuteFunc(stdin, bin, args...)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	result := CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if ctx.Err() != nil {
		return result, ctx.Err()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	return result, err
}
