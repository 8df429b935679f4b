// Package executor runs external programs, either detached (fire and forget)
// or blocking until the child exits.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Result holds the outcome of a blocking run
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Options configures command execution behavior
type Options struct {
	// Output handling
	CaptureOutput     bool
	RedirectToConsole bool

	// Stdin is attached to the child when set
	Stdin io.Reader
}

// Option is a function that modifies Options
type Option func(*Options)

// DefaultOptions returns default execution options
func DefaultOptions() *Options {
	return &Options{
		CaptureOutput: true,
	}
}

// Command is a program plus its arguments
type Command struct {
	program string
	args    []string
}

// New creates a new Command
func New(program string, args ...string) *Command {
	return &Command{program: program, args: args}
}

// Shell creates a Command that runs script through bash -c
func Shell(script string) *Command {
	return New("bash", "-c", script)
}

// String returns the program and arguments joined by spaces
func (c *Command) String() string {
	s := c.program
	for _, a := range c.args {
		s += " " + a
	}
	return s
}

// Start launches the command and returns without waiting for it.
// The child is released so it outlives this process.
func (c *Command) Start(ctx context.Context, opts ...Option) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	options := mergeOptions(opts...)

	// not bound to ctx: the child must survive cancellation
	cmd := exec.Command(c.program, c.args...)
	setupCommand(cmd, options)
	if options.RedirectToConsole {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", c.program, err)
	}
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("releasing %s: %w", c.program, err)
	}
	return nil
}

// Run executes the command and blocks until it exits
func (c *Command) Run(ctx context.Context, opts ...Option) (*Result, error) {
	options := mergeOptions(opts...)

	cmd := exec.CommandContext(ctx, c.program, c.args...)
	setupCommand(cmd, options)

	var stdoutBuf, stderrBuf bytes.Buffer
	var stdout, stderr []io.Writer
	if options.CaptureOutput {
		stdout = append(stdout, &stdoutBuf)
		stderr = append(stderr, &stderrBuf)
	}
	if options.RedirectToConsole {
		stdout = append(stdout, os.Stdout)
		stderr = append(stderr, os.Stderr)
	}
	if len(stdout) > 0 {
		cmd.Stdout = io.MultiWriter(stdout...)
		cmd.Stderr = io.MultiWriter(stderr...)
	}

	err := cmd.Run()

	result := &Result{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.ExitCode = 0
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		result.ExitCode = -1
	}

	if err != nil {
		return result, fmt.Errorf("command execution failed: %w", err)
	}
	return result, nil
}

func setupCommand(cmd *exec.Cmd, options *Options) {
	if options.Stdin != nil {
		cmd.Stdin = options.Stdin
	}
}

func mergeOptions(opts ...Option) *Options {
	merged := DefaultOptions()
	for _, opt := range opts {
		opt(merged)
	}
	return merged
}

// Interactive attaches the console to the child. Used for installers that
// may ask for a password.
func Interactive() Option {
	return func(o *Options) {
		o.CaptureOutput = false
		o.RedirectToConsole = true
		o.Stdin = os.Stdin
	}
}
