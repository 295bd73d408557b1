package command

import (
	"embed"
	"strings"

	"github.com/kokistudios/memomind/internal/apperr"
	"github.com/kokistudios/memomind/internal/i18n"
	"github.com/kokistudios/memomind/internal/ui"
)

//go:embed help/*.md
var helpFiles embed.FS

// switchLanguage changes the display language at once and stores it in the
// config file.
func switchLanguage(env *Env, args []string) (string, error) {
	answer := strings.Join(args, " ")
	if answer == "" {
		var err error
		if answer, err = env.IO.Ask(env.Tr.T(i18n.PromptLanguage)); err != nil {
			return "", err
		}
	}
	l, err := i18n.ParseLocale(answer)
	if err != nil {
		return "", apperr.Validation(i18n.LanguageInvalid, strings.TrimSpace(answer))
	}
	if err := env.Store.SetConfigValue("language", string(l)); err != nil {
		return "", err
	}
	env.Tr.SetLocale(l)
	ui.Logger.Debug("language switched", "locale", l)
	return env.Tr.T(i18n.LanguageSwitched), nil
}

func saveAll(env *Env, _ []string) (string, error) {
	if err := env.save(); err != nil {
		return "", err
	}
	return ui.Green(env.Tr.T(i18n.Saved)), nil
}

func help(env *Env, _ []string) (string, error) {
	return ui.RenderMarkdown(HelpText(env.Tr.Locale())), nil
}

// HelpText returns the markdown command reference for l.
func HelpText(l i18n.Locale) string {
	name := "help/en.md"
	if l == i18n.Ukrainian {
		name = "help/uk.md"
	}
	data, err := helpFiles.ReadFile(name)
	if err != nil {
		return ""
	}
	return string(data)
}

func exit(env *Env, _ []string) (string, error) {
	if err := env.save(); err != nil {
		return "", err
	}
	return env.Tr.T(i18n.Goodbye), nil
}
