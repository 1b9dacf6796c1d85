package fileclean

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Delete junk files and tidy names in a directory tree"
	MsgGlobShort       = "Show the regular expression a glob compiles to"
	MsgGenConfigShort  = "Generate a starter patterns file"
	MsgGenConfigLong   = "Output a commented starter patterns file to stdout, or write it with --output."
	MsgConfigShort     = "Show the effective configuration"
	MsgConfigLong      = "Print the configuration a run on the target directory would use, after merging defaults, the patterns file, FILECLEAN_* environment variables and flags."
	MsgVersionShort    = "Print version information"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"

	MsgGenConfigExample = `  fileclean genconfig                          # Output YAML to stdout
  fileclean genconfig --format toml            # Output TOML
  fileclean genconfig -o .cleanup-patterns.yml # Write a file`

	// Status messages
	MsgScanning       = "Scanning..."
	MsgScanningCount  = "Scanning... %d entries"
	MsgFileWritten    = "Wrote %s\n"
	MsgGlobLineFormat = "%s\t%s\n"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrClean      = "failed to clean %s: %w"
	MsgErrGenConfig  = "failed to generate config: %w"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Patterns file to use instead of searching for one"
	MsgFlagPrune      = "Apply the plan (without it only a preview is shown)"
	MsgFlagDryRun     = "Preview changes without executing them, even with --prune"
	MsgFlagWorkers    = "Number of concurrent classification workers (0 = number of CPUs)"
	MsgFlagFormat     = "Output format: auto, term, text, json, yaml, xml"
	MsgFlagDelete     = "Delete entries matching remove patterns"
	MsgFlagNoDelete   = "Do not delete entries matching remove patterns"
	MsgFlagHash       = "Delete files whose digest is listed in remove_hash"
	MsgFlagNoHash     = "Do not compute file digests"
	MsgFlagRename     = "Apply cleanup substitutions to names"
	MsgFlagNoRename   = "Do not rename anything"
	MsgFlagPruneEmpty = "Remove directories left empty"
	MsgFlagKeepEmpty  = "Keep empty directories"
	MsgFlagSkipTmp    = "Leave .tmp directories and their contents alone"
	MsgFlagNoSkipTmp  = "Clean inside .tmp directories too"
	MsgFlagGenFormat  = "Patterns file format: yaml or toml"
	MsgFlagGenOutput  = "Write to this file instead of stdout"
	MsgFlagGenForce   = "Overwrite the output file if it exists"
	MsgFlagConfigPath = "Also print the patterns file path"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/glob-long.txt
	msgGlobLongRaw string
	MsgGlobLong    = strings.TrimSpace(msgGlobLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
