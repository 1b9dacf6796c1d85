package glob

import (
	"sort"
	"strings"
)

const (
	regexMeta = `\.+*?()|[]{}^$`
	classMeta = `\]^[`
)

// quote escapes r for use outside a character class.
func quote(r rune) string {
	if strings.ContainsRune(regexMeta, r) {
		return `\` + string(r)
	}
	return string(r)
}

func quoteAll(s string) string {
	var b strings.Builder
	for _, r := range s {
		b.WriteString(quote(r))
	}
	return b.String()
}

// quoteInClass escapes r for use inside a bracket expression.
func quoteInClass(r rune) string {
	if strings.ContainsRune(classMeta, r) {
		return `\` + string(r)
	}
	return string(r)
}

// unescapeLetter maps the letter after a backslash to the character it
// stands for.
func unescapeLetter(r rune) rune {
	switch r {
	case 'a':
		return '\a'
	case 'b':
		return '\b'
	case 'e':
		return '\x1b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case 'v':
		return '\v'
	default:
		return r
	}
}

// closeAlternate renders gathered alternatives as a sorted, deduplicated
// group.
func closeAlternate(gathered []string) string {
	items := make([]string, 0, len(gathered))
	for _, g := range gathered {
		items = append(items, quoteAll(g))
	}
	sort.Strings(items)
	items = dedupStrings(items)
	return "(" + strings.Join(items, "|") + ")"
}

func dedupStrings(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}
