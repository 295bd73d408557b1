package note

import (
	"strings"

	"github.com/kokistudios/memomind/internal/apperr"
	"github.com/kokistudios/memomind/internal/i18n"
)

const TagPrefix = "#"

// HashTag is a note label. Its text always starts with TagPrefix.
type HashTag struct{ text string }

// NewHashTag trims raw and adds the prefix when it is missing.
func NewHashTag(raw string) (HashTag, error) {
	raw = strings.TrimSpace(strings.Trim(raw, "`"))
	if IsTag(raw) {
		raw = strings.TrimPrefix(raw, TagPrefix)
	}
	if raw == "" || strings.ContainsAny(raw, " \t\n") {
		return HashTag{}, apperr.Validation(i18n.TagInvalid)
	}
	return HashTag{text: TagPrefix + raw}, nil
}

// decodeHashTag reads a stored tag. Files written before tags were validated
// may hold a bare prefix or tags with spaces; those are kept as they are.
// Empty entries are dropped.
func decodeHashTag(raw string) (HashTag, bool) {
	if t, err := NewHashTag(raw); err == nil {
		return t, true
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return HashTag{}, false
	}
	return HashTag{text: TagPrefix + strings.TrimPrefix(raw, TagPrefix)}, true
}

func (h HashTag) String() string { return h.text }
func (h HashTag) Equal(o HashTag) bool { return h.text == o.text }
func (h HashTag) Compare(o HashTag) int { return strings.Compare(h.text, o.text) }

// IsTag reports whether a command argument names a tag rather than note text.
func IsTag(s string) bool {
	return strings.HasPrefix(s, TagPrefix)
}

// SplitTags separates tag arguments from the remaining words, keeping order.
func SplitTags(args []string) (tags []HashTag, words []string, err error) {
	for _, a := range args {
		if !IsTag(a) {
			words = append(words, a)
			continue
		}
		t, err := NewHashTag(a)
		if err != nil {
			return nil, nil, err
		}
		tags = append(tags, t)
	}
	return tags, words, nil
}

// MatchesTagQuery reports whether any tag contains query, ignoring case and
// the leading prefix on either side.
func MatchesTagQuery(tags []HashTag, query string) bool {
	q := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(query), TagPrefix))
	for _, t := range tags {
		if strings.Contains(strings.ToLower(strings.TrimPrefix(t.text, TagPrefix)), q) {
			return true
		}
	}
	return false
}
