package patterns

import (
	"sort"
	"strings"

	"github.com/kenchou/file-clean/pkg/config"
	"github.com/kenchou/file-clean/pkg/logging"
)

// DeleteList is an ordered list of alternatives; the first match wins.
type DeleteList []*Matcher

// FirstMatch returns the first pattern matching name.
func (l DeleteList) FirstMatch(name string) (*Matcher, bool) {
	for _, m := range l {
		if m.Match(name) {
			return m, true
		}
	}
	return nil, false
}

// HashGate is a filename pattern bound to a set of candidate digests.
type HashGate struct {
	*Matcher
	Digests map[string]struct{}
}

// Has reports whether digest is one of the gate's candidates.
func (g HashGate) Has(digest string) bool {
	_, ok := g.Digests[strings.ToLower(digest)]
	return ok
}

// HashGateList is ordered by pattern source so results do not depend on map
// iteration order.
type HashGateList []HashGate

// DigestFunc returns the digest of the entry being classified, or false when
// it cannot be computed.
type DigestFunc func() (string, bool)

// Match returns the reason "expr:digest" for the first gate whose pattern
// matches name and whose candidates contain the entry's digest. digest is
// only called when some gate's pattern matches, and at most once.
func (l HashGateList) Match(name string, digest DigestFunc) (string, bool) {
	var (
		sum      string
		computed bool
		ok       bool
	)
	for _, g := range l {
		if !g.Match(name) {
			continue
		}
		if !computed {
			sum, ok = digest()
			computed = true
		}
		if !ok {
			return "", false
		}
		if g.Has(sum) {
			return g.Expr + ":" + sum, true
		}
	}
	return "", false
}

// SubstitutionList applies every pattern in sequence.
type SubstitutionList []*Matcher

// Apply strips all matches of each pattern from name, in order.
func (l SubstitutionList) Apply(name string) string {
	for _, m := range l {
		name = m.RemoveAll(name)
	}
	return name
}

// Set is the immutable pattern set for one run.
type Set struct {
	Delete    DeleteList
	HashGates HashGateList
	Cleanup   SubstitutionList
}

// Empty reports whether the set holds no patterns at all.
func (s *Set) Empty() bool {
	return len(s.Delete) == 0 && len(s.HashGates) == 0 && len(s.Cleanup) == 0
}

// FromConfig compiles the configured patterns. Any malformed pattern fails
// the whole set.
func FromConfig(p config.Patterns) (*Set, error) {
	logger := logging.GetLogger("patterns")
	set := &Set{}

	for _, src := range p.Remove {
		if strings.TrimSpace(src) == "" {
			continue
		}
		m, err := CompileMixed(src)
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("pattern", src).Str("regex", m.Expr).Msg("Compiled remove pattern")
		set.Delete = append(set.Delete, m)
	}

	keys := make([]string, 0, len(p.RemoveHash))
	for k := range p.RemoveHash {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, src := range keys {
		m, err := CompileGlob(src)
		if err != nil {
			return nil, err
		}
		digests := make(map[string]struct{}, len(p.RemoveHash[src]))
		for _, d := range p.RemoveHash[src] {
			if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
				digests[d] = struct{}{}
			}
		}
		logger.Debug().Str("pattern", src).Str("regex", m.Expr).Int("digests", len(digests)).Msg("Compiled remove_hash pattern")
		set.HashGates = append(set.HashGates, HashGate{Matcher: m, Digests: digests})
	}

	for _, src := range p.Cleanup {
		if strings.TrimSpace(src) == "" {
			continue
		}
		m, err := CompileMixed(src)
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("pattern", src).Str("regex", m.Expr).Msg("Compiled cleanup pattern")
		set.Cleanup = append(set.Cleanup, m)
	}

	return set, nil
}
