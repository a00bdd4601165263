package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkordes/travel-mate/backend/internal/domain"
)

// invalid builds an error wrapping domain.ErrValidation with a client-facing message.
func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{domain.ErrValidation}, args...)...)
}

// runeLen counts characters, not bytes: Korean nicknames are three bytes a rune.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// normalizeSet trims every entry, drops empty ones and removes duplicates
// while keeping first-seen order. The result is never nil.
func normalizeSet(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
