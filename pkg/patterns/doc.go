// Package patterns builds the immutable pattern set a cleaning run
// classifies entries against.
//
// The set holds three collections with different combinators:
//
//   - DeleteList: ordered alternatives, the first matching pattern wins
//   - HashGateList: filename patterns bound to candidate content digests;
//     a file matches only when both its name and its digest match
//   - SubstitutionList: sequential substitutions, every pattern removes all
//     of its matches from the name in turn
//
// Entries of the remove and cleanup lists that start with `/` are raw
// regular expressions (the slash is stripped); everything else goes through
// the glob compiler. Keys of remove_hash are always globs.
//
// Patterns run on github.com/dlclark/regexp2, so raw expressions may use
// lookaround and backreferences.
package patterns
