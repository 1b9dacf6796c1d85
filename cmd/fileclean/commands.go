package fileclean

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/kenchou/file-clean/internal/version"
	"github.com/kenchou/file-clean/pkg/cobrax/topics"
	"github.com/kenchou/file-clean/pkg/commands"
	"github.com/kenchou/file-clean/pkg/config"
	"github.com/kenchou/file-clean/pkg/glob"
	"github.com/kenchou/file-clean/pkg/logging"
	"github.com/kenchou/file-clean/pkg/types"
	"github.com/kenchou/file-clean/pkg/ui"
	"github.com/kenchou/file-clean/pkg/ui/converter"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// toggle is a pair of flags that switch one boolean option on or off
type toggle struct {
	on, onShort   string
	off, offShort string
	key           string
	onHelp        string
	offHelp       string
}

var toggles = []toggle{
	{"delete", "d", "no-delete", "D", "options.delete", MsgFlagDelete, MsgFlagNoDelete},
	{"hash", "x", "no-hash", "X", "options.hash", MsgFlagHash, MsgFlagNoHash},
	{"rename", "r", "no-rename", "R", "options.rename", MsgFlagRename, MsgFlagNoRename},
	{"remove-empty-dirs", "e", "keep-empty-dirs", "E", "options.remove_empty_dirs", MsgFlagPruneEmpty, MsgFlagKeepEmpty},
	{"skip-tmp", "t", "no-skip-tmp", "T", "options.skip_tmp", MsgFlagSkipTmp, MsgFlagNoSkipTmp},
}

type rootFlags struct {
	verbosity  int
	configFile string
	prune      bool
	dryRun     bool
	workers    int
	format     string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:     "fileclean [path]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, args, flags)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", MsgFlagConfig)

	// Clean flags
	rootCmd.Flags().BoolVar(&flags.prune, "prune", false, MsgFlagPrune)
	rootCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.Flags().IntVar(&flags.workers, "workers", 0, MsgFlagWorkers)
	rootCmd.Flags().StringVar(&flags.format, "format", "auto", MsgFlagFormat)
	for _, t := range toggles {
		rootCmd.Flags().BoolP(t.on, t.onShort, false, t.onHelp)
		rootCmd.Flags().BoolP(t.off, t.offShort, false, t.offHelp)
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newGlobCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newConfigCmd(flags))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Help topics
	source, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		err = topics.InitializeWithOptions(rootCmd, source, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// overrides collects the option toggles given on the command line. Flags
// that were not set leave the configured value alone; an "off" flag wins
// over its "on" twin.
func overrides(cmd *cobra.Command, flags *rootFlags) map[string]interface{} {
	out := make(map[string]interface{})
	for _, t := range toggles {
		if cmd.Flags().Changed(t.on) {
			out[t.key] = true
		}
		if cmd.Flags().Changed(t.off) {
			out[t.key] = false
		}
	}
	if cmd.Flags().Changed("workers") {
		out["options.workers"] = flags.workers
	}
	return out
}

func runClean(cmd *cobra.Command, args []string, flags *rootFlags) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}

	format, err := ui.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	cfg, err := config.Load(config.LoadOptions{
		File:      flags.configFile,
		Target:    target,
		Overrides: overrides(cmd, flags),
	})
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}

	dryRun := !flags.prune || flags.dryRun
	logger := logging.WithFields(map[string]interface{}{
		"target":  target,
		"dry_run": dryRun,
	})
	logger.Info().Str("config", cfg.Path).Msg("Cleaning directory")

	spinner := startProgress(cmd.ErrOrStderr())
	result, cleanErr := commands.Clean(cmd.Context(), commands.CleanOptions{
		Target:  target,
		Config:  cfg,
		DryRun:  dryRun,
		OnEntry: spinner.entry,
	})
	spinner.stop()
	if result == nil {
		return fmt.Errorf(MsgErrClean, target, cleanErr)
	}

	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := renderer.RenderResult(converter.ConvertToDisplay(result)); err != nil {
		return err
	}
	return cleanErr
}

// progress shows a spinner while the tree is walked, when stderr is a terminal
type progress struct {
	spinner *pterm.SpinnerPrinter
	count   int
}

func startProgress(w io.Writer) *progress {
	p := &progress{}
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return p
	}
	spinner, err := pterm.DefaultSpinner.WithWriter(w).WithRemoveWhenDone(true).Start(MsgScanning)
	if err == nil {
		p.spinner = spinner
	}
	return p
}

func (p *progress) entry(types.Entry) {
	p.count++
	if p.spinner != nil && p.count%100 == 0 {
		p.spinner.UpdateText(fmt.Sprintf(MsgScanningCount, p.count))
	}
}

func (p *progress) stop() {
	if p.spinner != nil {
		_ = p.spinner.Stop()
	}
}

func newGlobCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "glob <pattern>...",
		Short:   MsgGlobShort,
		Long:    MsgGlobLong,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, pattern := range args {
				re, err := glob.Compile(pattern)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgGlobLineFormat, pattern, re)
			}
			return nil
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	var (
		format string
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.GenConfig(commands.GenConfigOptions{
				Format: format,
				Output: output,
				Force:  force,
			})
			if err != nil {
				return fmt.Errorf(MsgErrGenConfig, err)
			}

			if len(result.FilesWritten) == 0 {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), result.ConfigContent)
				return nil
			}
			for _, path := range result.FilesWritten {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgFileWritten, path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", MsgFlagGenFormat)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagGenOutput)
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagGenForce)

	return cmd
}

func newConfigCmd(flags *rootFlags) *cobra.Command {
	var showPath bool

	cmd := &cobra.Command{
		Use:     "config [path]",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "."
			if len(args) == 1 {
				target = args[0]
			}

			cfg, err := config.Load(config.LoadOptions{File: flags.configFile, Target: target})
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			out, err := config.Marshal(cfg)
			if err != nil {
				return err
			}

			if showPath {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", cfg.Path)
			}
			_, _ = cmd.OutOrStdout().Write(out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showPath, "path", false, MsgFlagConfigPath)

	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Run != nil {
				helpCmd.Run(helpCmd, []string{"topics"})
				return nil
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
