// Package shell runs the interactive read-dispatch loop.
package shell

import (
	"context"
	"errors"
	"io"

	"github.com/kokistudios/memomind/internal/command"
	"github.com/kokistudios/memomind/internal/i18n"
	"github.com/kokistudios/memomind/internal/ui"
)

const prompt = ">>> "

// prompter lets command handlers ask follow-up questions on the console.
type prompter struct {
	c  Console
	tr *i18n.Translator
}

func (p prompter) Ask(q string) (string, error) {
	return p.c.ReadLine(q + " ")
}

func (p prompter) Confirm(q string) (bool, error) {
	return p.c.Confirm(q, ui.ConfirmLabels{
		Yes:  p.tr.T(i18n.ConfirmYes),
		No:   p.tr.T(i18n.ConfirmNo),
		Hint: p.tr.T(i18n.ConfirmHint),
	})
}

func (p prompter) Say(text string) { p.c.Write(text) }

// Run greets the user and dispatches lines until a quit command, end of
// input, or ctx is done. Leaving on end of input or cancellation saves both
// files first.
func Run(ctx context.Context, env *command.Env, c Console) error {
	env.IO = prompter{c, env.Tr}
	c.Write(command.Banner(env.Tr))

	for {
		if err := ctx.Err(); err != nil {
			return leave(env, c)
		}
		line, err := c.ReadLine(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return leave(env, c)
			}
			return err
		}
		if line == "" {
			continue
		}
		out, quit := command.Dispatch(env, line)
		if out != "" {
			c.Write(out)
		}
		if quit {
			ui.Logger.Debug("session ended by command")
			return nil
		}
	}
}

func leave(env *command.Env, c Console) error {
	ui.Logger.Debug("session interrupted, saving")
	if err := env.Store.SaveData(env.Book, env.Pad); err != nil {
		return err
	}
	c.Write(env.Tr.T(i18n.Goodbye))
	return nil
}

// Exec runs a single line, reading any follow-up answers from c, and saves.
func Exec(env *command.Env, c Console, line string) error {
	env.IO = prompter{c, env.Tr}
	out, _ := command.Dispatch(env, line)
	if out != "" {
		c.Write(out)
	}
	return env.Store.SaveData(env.Book, env.Pad)
}
