// Package config loads the cleaning patterns and run options.
//
// Configuration is layered with koanf, later layers winning:
//
//  1. embedded defaults (embedded/defaults.yaml)
//  2. the patterns file, YAML or TOML by extension
//  3. FILECLEAN_* environment variables (FILECLEAN_OPTIONS_WORKERS=8)
//  4. explicit overrides, typically command-line flags that were set
//
// When no file is given, Discover searches the target directory and its
// ancestors, then $XDG_CONFIG_HOME/file-clean, then the home directory for
// one of the DefaultFileNames.
//
// The remove and cleanup lists accept either a sequence or a multi-line
// string; a string is split into trimmed, non-empty lines.
package config
