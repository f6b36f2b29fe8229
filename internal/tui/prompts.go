package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"

	pusherrors "pushit.dev/pushit/internal/errors"
)

// Prompter asks the user a question and returns the raw answer.
// Cancellation is reported as an error wrapping errors.ErrUserInterrupted.
type Prompter interface {
	Ask(ctx context.Context, message string) (string, error)
}

// IsTTY returns true if we can use a TTY for interactive prompts
func IsTTY() bool {
	if !((isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))) {
		return false
	}
	// Also try to open /dev/tty to verify it's actually available
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// NewPrompter returns a survey prompter on a terminal and a line prompter
// reading from in otherwise. PUSHIT_NON_INTERACTIVE forces the line prompter.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	if os.Getenv("PUSHIT_NON_INTERACTIVE") == "" && IsTTY() {
		return &SurveyPrompter{}
	}
	return NewLinePrompter(in, out)
}

// SurveyPrompter prompts on the terminal with survey
type SurveyPrompter struct{}

// Ask shows an input prompt. Ctrl+C arrives as terminal.InterruptErr because
// survey puts the terminal in raw mode.
func (p *SurveyPrompter) Ask(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", pusherrors.ErrUserInterrupted, err)
	}

	var answer string
	prompt := &survey.Input{Message: message}
	err := survey.AskOne(prompt, &answer)
	switch {
	case errors.Is(err, terminal.InterruptErr):
		return "", pusherrors.ErrUserInterrupted
	case errors.Is(err, io.EOF):
		return "", fmt.Errorf("%w: input closed", pusherrors.ErrUserInterrupted)
	case err != nil:
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", pusherrors.ErrUserInterrupted, err)
	}
	return answer, nil
}

type lineResult struct {
	line string
	err  error
}

// LinePrompter reads answers line by line, for piped input and dumb terminals
type LinePrompter struct {
	in    io.Reader
	out   io.Writer
	lines chan lineResult
	start sync.Once
}

// NewLinePrompter creates a LinePrompter reading from in and writing prompts to out
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		in:    in,
		out:   out,
		lines: make(chan lineResult),
	}
}

// readLoop feeds lines to Ask so that a canceled Ask does not lose the reader.
// Lines have no length limit.
func (p *LinePrompter) readLoop() {
	reader := bufio.NewReader(p.in)
	for {
		line, err := reader.ReadString('\n')
		if line != "" || err == nil {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			p.lines <- lineResult{line: line}
		}
		if err != nil {
			p.lines <- lineResult{err: err}
			close(p.lines)
			return
		}
	}
}

// Ask prints message and waits for a line or for ctx to be canceled
func (p *LinePrompter) Ask(ctx context.Context, message string) (string, error) {
	p.start.Do(func() { go p.readLoop() })

	_, _ = fmt.Fprintf(p.out, "%s: ", message)

	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(p.out)
		return "", fmt.Errorf("%w: %w", pusherrors.ErrUserInterrupted, ctx.Err())
	case res, ok := <-p.lines:
		if !ok || errors.Is(res.err, io.EOF) {
			_, _ = fmt.Fprintln(p.out)
			return "", fmt.Errorf("%w: input closed", pusherrors.ErrUserInterrupted)
		}
		if res.err != nil {
			return "", fmt.Errorf("failed to read input: %w", res.err)
		}
		return res.line, nil
	}
}
