package glob

import (
	"sort"
	"strings"
)

// classItem is a single character (lo == hi, isRange false) or an
// inclusive range.
type classItem struct {
	lo, hi  rune
	isRange bool
}

func char(r rune) classItem {
	return classItem{lo: r, hi: r}
}

func span(lo, hi rune) classItem {
	return classItem{lo: lo, hi: hi, isRange: true}
}

func (c classItem) covers(r rune) bool {
	return c.lo <= r && r <= c.hi
}

type classAccumulator struct {
	negated bool
	items   []classItem
}

func (a *classAccumulator) push(item classItem) {
	a.items = append(a.items, item)
}

func (a *classAccumulator) pop() (classItem, bool) {
	if len(a.items) == 0 {
		return classItem{}, false
	}
	last := a.items[len(a.items)-1]
	a.items = a.items[:len(a.items)-1]
	return last, true
}

// neverMatch is emitted for a class left with no members once `/` has been
// removed, e.g. `[/]`.
const neverMatch = "(?!)"

// close renders the accumulated class as a bracket expression.
func (a *classAccumulator) close() string {
	items := a.items
	if a.negated {
		items = includeSlash(items)
	} else {
		items = excludeSlash(items)
		if len(items) == 0 {
			return neverMatch
		}
	}

	var chars []rune
	var ranges []classItem
	dash := false
	for _, item := range items {
		switch {
		case item.isRange:
			ranges = append(ranges, item)
		case item.lo == '-':
			dash = true
		default:
			chars = append(chars, item.lo)
		}
	}

	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].lo != ranges[j].lo {
			return ranges[i].lo < ranges[j].lo
		}
		return ranges[i].hi < ranges[j].hi
	})

	var b strings.Builder
	b.WriteString("[")
	if a.negated {
		b.WriteString("^")
	}
	for i, r := range chars {
		if i > 0 && r == chars[i-1] {
			continue
		}
		b.WriteString(quoteInClass(r))
	}
	for i, rg := range ranges {
		if i > 0 && rg == ranges[i-1] {
			continue
		}
		b.WriteString(quoteRangeEnd(rg.lo))
		b.WriteString("-")
		b.WriteString(quoteRangeEnd(rg.hi))
	}
	if dash {
		b.WriteString("-")
	}
	b.WriteString("]")
	return b.String()
}

// quoteRangeEnd escapes a range endpoint. A bare '-' endpoint would join
// the range to the member written before it.
func quoteRangeEnd(r rune) string {
	if r == '-' {
		return `\-`
	}
	return quoteInClass(r)
}

// includeSlash makes sure a negated class excludes `/`.
func includeSlash(items []classItem) []classItem {
	for _, item := range items {
		if item.covers('/') {
			return items
		}
	}
	return append(items, char('/'))
}

// excludeSlash removes `/` from a non-negated class, splitting any range
// that spans it. '.' and '0' are the neighbours of '/'.
func excludeSlash(items []classItem) []classItem {
	out := make([]classItem, 0, len(items))
	for _, item := range items {
		switch {
		case !item.isRange:
			if item.lo != '/' {
				out = append(out, item)
			}
		case !item.covers('/'):
			out = append(out, item)
		case item.hi == '/':
			out = append(out, upTo(item.lo, '.'))
		case item.lo == '/':
			out = append(out, upTo('0', item.hi))
		default:
			out = append(out, upTo(item.lo, '.'), upTo('0', item.hi))
		}
	}
	return out
}

// upTo returns lo-hi, collapsing to a single character when they meet.
func upTo(lo, hi rune) classItem {
	if lo == hi {
		return char(lo)
	}
	return span(lo, hi)
}
