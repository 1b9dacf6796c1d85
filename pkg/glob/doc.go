// Package glob translates shell glob patterns into anchored regular
// expression source for a host regex engine.
//
// # Pattern Features
//
//   - any character except `?`, `*`, `[`, `\` and `{` matches itself
//   - `?` matches one character other than `/`
//   - `*` matches any run of characters that contains no `/`
//   - `\x` matches x literally; `\a \b \e \f \n \r \t \v` are the usual
//     control characters
//   - `[...]` is a character class with ranges (`a-z`), negation when the
//     first character is `!`, backslash escapes, and a literal `]` or `-`
//     when it comes first (`[]]`, `[-a]`)
//   - `{a,bb,c}` is a one-level alternation of literal runs; `{}` matches the
//     two characters `{}`
//
// # Slash Safety
//
// Wildcards and classes never match `/`. Non-negated classes have any
// member covering `/` split around it (`[.-9]` becomes `[.0-9]`); negated
// classes get `/` added to their excluded set.
//
// # Output
//
// The compiled expression is wrapped in `^...$`. Class members are sorted
// and deduplicated, with a literal dash hoisted to the end, so equivalent
// patterns compile to identical text:
//
//	glob.Compile("linux-[0-9]*-{generic,aws}")
//	// ^linux-[0-9][^/]*-(aws|generic)$
//
// Compile is a pure function; it performs no I/O and keeps no state
// between calls.
package glob
