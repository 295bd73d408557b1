package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/kokistudios/memomind/internal/ui"
)

// Console is where the shell reads lines and writes results.
type Console interface {
	ReadLine(prompt string) (string, error)
	Write(text string)
	Confirm(prompt string, labels ui.ConfirmLabels) (bool, error)
}

// NewConsole returns a line-editing console when stdin and stdout are both
// terminals and a plain line reader otherwise.
func NewConsole(ctx context.Context) Console {
	in, out := int(os.Stdin.Fd()), int(os.Stdout.Fd())
	if term.IsTerminal(in) && term.IsTerminal(out) {
		return NewTerminal(in)
	}
	return NewPlain(ctx, os.Stdin, os.Stdout)
}

// Terminal edits lines with history through x/term. The terminal is in raw
// mode only while a line is being read.
type Terminal struct {
	fd int
	t  *term.Terminal
}

func NewTerminal(fd int) *Terminal {
	rw := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	return &Terminal{fd: fd, t: term.NewTerminal(rw, "")}
}

func (c *Terminal) ReadLine(prompt string) (string, error) {
	state, err := term.MakeRaw(c.fd)
	if err != nil {
		return "", fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer term.Restore(c.fd, state)

	if w, h, err := term.GetSize(c.fd); err == nil {
		_ = c.t.SetSize(w, h)
	}
	c.t.SetPrompt(ui.Prompt(prompt))
	return c.t.ReadLine()
}

func (c *Terminal) Write(text string) {
	fmt.Fprintln(os.Stdout, text)
}

func (c *Terminal) Confirm(prompt string, labels ui.ConfirmLabels) (bool, error) {
	return ui.Confirm(prompt, labels)
}

// Plain reads lines from any reader. Confirmation is a typed y/n answer.
type Plain struct {
	ctx   context.Context
	w     io.Writer
	lines chan string
	err   error
}

// NewPlain starts reading r in the background. ReadLine gives up when ctx is
// done.
func NewPlain(ctx context.Context, r io.Reader, w io.Writer) *Plain {
	c := &Plain{ctx: ctx, w: w, lines: make(chan string)}
	go func() {
		defer close(c.lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case c.lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		c.err = sc.Err()
	}()
	return c
}

func (c *Plain) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.w, prompt)
	select {
	case line, ok := <-c.lines:
		if !ok {
			fmt.Fprintln(c.w)
			if c.err != nil {
				return "", c.err
			}
			return "", io.EOF
		}
		return line, nil
	case <-c.ctx.Done():
		fmt.Fprintln(c.w)
		return "", c.ctx.Err()
	}
}

func (c *Plain) Write(text string) {
	fmt.Fprintln(c.w, text)
}

func (c *Plain) Confirm(prompt string, labels ui.ConfirmLabels) (bool, error) {
	answer, err := c.ReadLine(fmt.Sprintf("%s [%s/%s] ", prompt, labels.Yes, labels.No))
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "т", "так", strings.ToLower(labels.Yes):
		return true, nil
	}
	return false, nil
}
