package patterns

import (
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/kenchou/file-clean/pkg/errors"
	"github.com/kenchou/file-clean/pkg/glob"
	"github.com/kenchou/file-clean/pkg/logging"
)

// RawPrefix marks a pattern as a raw regular expression
const RawPrefix = "/"

// MatchTimeout bounds a single match of a raw expression
const MatchTimeout = 2 * time.Second

// Matcher is one compiled pattern
type Matcher struct {
	// Source is the pattern as written in the configuration
	Source string

	// Expr is the regular expression the pattern compiled to
	Expr string

	re *regexp2.Regexp
}

// CompileMixed compiles a remove or cleanup entry: raw regex when it starts
// with RawPrefix, glob otherwise.
func CompileMixed(pattern string) (*Matcher, error) {
	pattern = strings.TrimSpace(pattern)
	if strings.HasPrefix(pattern, RawPrefix) {
		return compileExpr(pattern, strings.TrimPrefix(pattern, RawPrefix))
	}
	return CompileGlob(pattern)
}

// CompileGlob compiles pattern as a glob regardless of its first character.
func CompileGlob(pattern string) (*Matcher, error) {
	pattern = strings.TrimSpace(pattern)
	expr, err := glob.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return compileExpr(pattern, expr)
}

func compileExpr(source, expr string) (*Matcher, error) {
	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidRegex, "pattern %q compiles to an invalid expression", source).
			WithDetail("pattern", source).
			WithDetail("regex", expr)
	}
	re.MatchTimeout = MatchTimeout
	return &Matcher{Source: source, Expr: expr, re: re}, nil
}

// Match reports whether name matches. A match that times out counts as no
// match.
func (m *Matcher) Match(name string) bool {
	ok, err := m.re.MatchString(name)
	if err != nil {
		logger := logging.GetLogger("patterns")
		logger.Warn().Err(err).Str("pattern", m.Source).Str("name", name).Msg("Pattern match aborted")
		return false
	}
	return ok
}

// RemoveAll deletes every match of the pattern from name.
func (m *Matcher) RemoveAll(name string) string {
	out, err := m.re.Replace(name, "", -1, -1)
	if err != nil {
		logger := logging.GetLogger("patterns")
		logger.Warn().Err(err).Str("pattern", m.Source).Str("name", name).Msg("Pattern substitution aborted")
		return name
	}
	return out
}

func (m *Matcher) String() string {
	return m.Expr
}
