// Package console implements the interactive line protocol shared by the
// three tools: prompts, validated menus, status lines and the header banner.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Prompter reads operator input line by line and writes prompts and status
// lines. It is not safe for concurrent use.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	tty bool
}

// New creates a Prompter over arbitrary streams. Screen clearing is disabled.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// NewStdio creates a Prompter over the process stdin/stdout.
func NewStdio() *Prompter {
	p := New(os.Stdin, colorable.NewColorableStdout())
	p.tty = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	return p
}

// Out returns the writer prompts are written to.
func (p *Prompter) Out() io.Writer { return p.out }

// ReadLine reads one line without its line ending. A blocked read is abandoned
// when ctx is cancelled. io.EOF is returned only when no input remains.
func (p *Prompter) ReadLine(ctx context.Context) (string, error) {
	type result struct {
		line string
		err  error
	}

	ch := make(chan result, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		ch <- result{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if r.err != nil && (r.err != io.EOF || r.line == "") {
			return "", r.err
		}
		return strings.TrimRight(r.line, "\r\n"), nil
	}
}

// Ask prints prompt and returns the operator's answer.
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	return p.ReadLine(ctx)
}

// Confirm asks a yes/no question; only "y" in any case counts as yes.
func (p *Prompter) Confirm(ctx context.Context, prompt string) (bool, error) {
	answer, err := p.Ask(ctx, prompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}

// Println writes a plain line.
func (p *Prompter) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// Printf writes formatted text.
func (p *Prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

func (p *Prompter) Info(format string, a ...any) {
	fmt.Fprintln(p.out, color.BlueString("ℹ️ "+format, a...))
}

func (p *Prompter) Ok(format string, a ...any) {
	fmt.Fprintln(p.out, color.GreenString("✅ "+format, a...))
}

func (p *Prompter) Warn(format string, a ...any) {
	fmt.Fprintln(p.out, color.YellowString("⚠️ "+format, a...))
}

func (p *Prompter) Fail(format string, a ...any) {
	fmt.Fprintln(p.out, color.RedString("❌ "+format, a...))
}

// ClearScreen clears the terminal. It does nothing when stdout is not a TTY.
func (p *Prompter) ClearScreen() {
	if !p.tty {
		return
	}
	fmt.Fprint(p.out, "\033[H\033[2J")
}
