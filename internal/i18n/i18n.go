package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Key identifies a user-facing message in the catalog.
type Key string

// Locale is the configured display language. The values match what config.yaml stores.
type Locale string

const (
	English   Locale = "eng"
	Ukrainian Locale = "ukr"
)

var supported = []language.Tag{language.English, language.Ukrainian}

var matcher = language.NewMatcher(supported)

// ParseLocale accepts the config spellings ("eng", "ukr") as well as BCP 47 tags
// such as "en-GB" or "uk-UA".
func ParseLocale(s string) (Locale, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "eng", "en", "english":
		return English, nil
	case "ukr", "uk", "ua", "ukrainian":
		return Ukrainian, nil
	}
	tag, err := language.Parse(v)
	if err != nil {
		return "", fmt.Errorf("unknown language %q (use eng or ukr)", s)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", fmt.Errorf("unsupported language %q (use eng or ukr)", s)
	}
	if supported[idx] == language.Ukrainian {
		return Ukrainian, nil
	}
	return English, nil
}

// Tag returns the BCP 47 tag for the locale.
func (l Locale) Tag() language.Tag {
	if l == Ukrainian {
		return language.Ukrainian
	}
	return language.English
}

// Translator renders catalog messages in one locale. The locale can be switched
// in place so every holder of the pointer follows a `lang` change.
type Translator struct {
	locale  Locale
	printer *message.Printer
}

// New returns a Translator for the given locale.
func New(l Locale) *Translator {
	t := &Translator{}
	t.SetLocale(l)
	return t
}

// SetLocale switches the display language.
func (t *Translator) SetLocale(l Locale) {
	if l != Ukrainian {
		l = English
	}
	t.locale = l
	t.printer = message.NewPrinter(l.Tag(), message.Catalog(messageCatalog))
}

func (t *Translator) Locale() Locale { return t.locale }

// T formats the message for key with args.
func (t *Translator) T(key Key, args ...any) string {
	return t.printer.Sprintf(string(key), args...)
}

// Has reports whether key is registered in the catalog.
func Has(key Key) bool {
	_, ok := messages[key]
	return ok
}

var messageCatalog = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, m := range messages {
		if err := b.SetString(language.English, string(key), m.en); err != nil {
			panic(fmt.Sprintf("i18n: %s: %v", key, err))
		}
		if err := b.SetString(language.Ukrainian, string(key), m.uk); err != nil {
			panic(fmt.Sprintf("i18n: %s: %v", key, err))
		}
	}
	return b
}
