package glob

import (
	"strings"

	"github.com/kenchou/file-clean/pkg/errors"
)

// state is one position of the pattern parser. Each call to next consumes
// exactly one rune (ok is false at the end of the pattern) and returns the
// regex fragment to emit, if any, together with the following state.
type state interface {
	next(r rune, ok bool) (string, state, *errors.CleanError)
}

type (
	literalState        struct{}
	escapeState         struct{}
	classStartState     struct{}
	endState            struct{}
	classState          struct{ acc *classAccumulator }
	classEscapeState    struct{ acc *classAccumulator }
	classRangeDashState struct{ acc *classAccumulator }
	classRangeState     struct {
		acc   *classAccumulator
		start rune
	}
	alternateState struct {
		current  []rune
		gathered []string
	}
	alternateEscapeState struct {
		current  []rune
		gathered []string
	}
)

// Compile converts a glob pattern into anchored regex source.
func Compile(pattern string) (string, error) {
	var b strings.Builder
	b.WriteString("^")

	runes := []rune(pattern)
	var st state = literalState{}
	for i := 0; ; i++ {
		var r rune
		ok := i < len(runes)
		if ok {
			r = runes[i]
		}

		frag, next, err := st.next(r, ok)
		if err != nil {
			return "", err.WithDetail("pattern", pattern)
		}
		b.WriteString(frag)

		if _, done := next.(endState); done {
			return b.String(), nil
		}
		st = next
	}
}

func (literalState) next(r rune, ok bool) (string, state, *errors.CleanError) {
	if !ok {
		return "$", endState{}, nil
	}
	switch r {
	case '\\':
		return "", escapeState{}, nil
	case '[':
		return "", classStartState{}, nil
	case '{':
		return "", alternateState{}, nil
	case '?':
		return "[^/]", literalState{}, nil
	case '*':
		return "[^/]*", literalState{}, nil
	default:
		return quote(r), literalState{}, nil
	}
}

func (escapeState) next(r rune, ok bool) (string, state, *errors.CleanError) {
	if !ok {
		return "", nil, errors.New(errors.ErrBareEscape, "bare escape character at end of pattern")
	}
	return quote(unescapeLetter(r)), literalState{}, nil
}

func (endState) next(rune, bool) (string, state, *errors.CleanError) {
	return "", endState{}, nil
}

func (classStartState) next(r rune, ok bool) (string, state, *errors.CleanError) {
	if !ok {
		return "", nil, errUnclosedClass()
	}
	acc := &classAccumulator{}
	switch r {
	case '!':
		acc.negated = true
	case '\\':
		return "", classEscapeState{acc}, nil
	default:
		// `-` and `]` are literal members in first position.
		acc.push(char(r))
	}
	return "", classState{acc}, nil
}

func (s classState) next(r rune, ok bool) (string, state, *errors.CleanError) {
	if !ok {
		return "", nil, errUnclosedClass()
	}
	acc := s.acc
	switch r {
	case ']':
		if len(acc.items) == 0 {
			acc.push(char(']'))
			return "", s, nil
		}
		return acc.close(), literalState{}, nil
	case '-':
		last, found := acc.pop()
		switch {
		case !found:
			acc.push(char('-'))
			return "", s, nil
		case last.isRange:
			acc.push(last)
			return "", classRangeDashState{acc}, nil
		default:
			return "", classRangeState{acc: acc, start: last.lo}, nil
		}
	case '\\':
		return "", classEscapeState{acc}, nil
	default:
		acc.push(char(r))
		return "", s, nil
	}
}

func (s classEscapeState) next(r rune, ok bool) (string, state, *errors.CleanError) {
	if !ok {
		return "", nil, errUnclosedClass()
	}
	s.acc.push(char(unescapeLetter(r)))
	return "", classState(s), nil
}

func (s classRangeState) next(r rune, ok bool) (string, state, *errors.CleanError) {
	if !ok {
		return "", nil, errUnclosedClass()
	}
	acc := s.acc
	switch {
	case r == '\\':
		return "", nil, errors.Newf(errors.ErrNotImplemented,
			"escaped character as the end of a class range starting at %q", s.start).
			WithDetail("start", string(s.start))
	case r == ']':
		// A trailing dash is literal: `[a-]` holds `a` and `-`.
		acc.push(char(s.start))
		acc.push(char('-'))
		return acc.close(), literalState{}, nil
	case r < s.start:
		return "", nil, errors.Newf(errors.ErrReversedRange, "reversed range from %q to %q", s.start, r).
			WithDetail("start", string(s.start)).
			WithDetail("end", string(r))
	case r == s.start:
		acc.push(char(r))
	default:
		acc.push(span(s.start, r))
	}
	return "", classState{acc}, nil
}

func (s classRangeDashState) next(r rune, ok bool) (string, state, *errors.CleanError) {
	if !ok {
		return "", nil, errUnclosedClass()
	}
	if r == ']' {
		s.acc.push(char('-'))
		return s.acc.close(), literalState{}, nil
	}
	last, _ := s.acc.pop()
	return "", nil, errors.Newf(errors.ErrRangeAfterRange, "range following the %q-%q range", last.lo, last.hi).
		WithDetail("start", string(last.lo)).
		WithDetail("end", string(last.hi))
}

func (s alternateState) next(r rune, ok bool) (string, state, *errors.CleanError) {
	if !ok {
		return "", nil, errUnclosedAlternation()
	}
	switch r {
	case ',':
		return "", alternateState{gathered: append(s.gathered, string(s.current))}, nil
	case '}':
		if len(s.current) == 0 && len(s.gathered) == 0 {
			return `\{\}`, literalState{}, nil
		}
		return closeAlternate(append(s.gathered, string(s.current))), literalState{}, nil
	case '\\':
		return "", alternateEscapeState(s), nil
	case '[':
		return "", nil, errors.New(errors.ErrNotImplemented, "character class inside an alternation")
	default:
		return "", alternateState{current: append(s.current, r), gathered: s.gathered}, nil
	}
}

func (s alternateEscapeState) next(r rune, ok bool) (string, state, *errors.CleanError) {
	if !ok {
		return "", nil, errUnclosedAlternation()
	}
	return "", alternateState{current: append(s.current, unescapeLetter(r)), gathered: s.gathered}, nil
}

func errUnclosedClass() *errors.CleanError {
	return errors.New(errors.ErrUnclosedClass, "unclosed character class")
}

func errUnclosedAlternation() *errors.CleanError {
	return errors.New(errors.ErrUnclosedAlternation, "unclosed alternation")
}
