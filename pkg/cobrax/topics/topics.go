// Package topics adds documentation topics to a cobra help command. Topics
// are files read from an fs.FS, usually an embed.FS compiled into the
// binary, and shown with "<app> help <topic>". A topic named
// "option-<flag>" is also found as "--<flag>".
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"slices"
	"sort"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
)

const optionPrefix = "option-"

// Topic is one help file
type Topic struct {
	Name     string
	FilePath string
	Content  string
}

// Options configures a TopicManager
type Options struct {
	// Extensions selects topic files. Defaults to .txt and .md.
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// TopicManager holds the topics found in one fs.FS
type TopicManager struct {
	source     fs.FS
	extensions []string
	renderer   Renderer
	topics     map[string]*Topic
}

// New returns a manager with default options
func New(source fs.FS) *TopicManager {
	return NewWithOptions(source, Options{})
}

// NewWithOptions returns a manager for source. Topics are read by scanTopics.
func NewWithOptions(source fs.FS, opts Options) *TopicManager {
	if len(opts.Extensions) == 0 {
		opts.Extensions = []string{".txt", ".md"}
	}
	if opts.Renderer == nil {
		opts.Renderer = &PlainRenderer{}
	}
	return &TopicManager{
		source:     source,
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
		topics:     map[string]*Topic{},
	}
}

// scanTopics reads every file with a selected extension, at any depth.
// Topic names are base names without extension.
func (tm *TopicManager) scanTopics() error {
	if tm.source == nil {
		return nil
	}
	return fs.WalkDir(tm.source, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ext := path.Ext(p)
		if !slices.Contains(tm.extensions, ext) {
			return nil
		}
		data, err := fs.ReadFile(tm.source, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), ext)
		tm.topics[name] = &Topic{Name: name, FilePath: p, Content: string(data)}
		return nil
	})
}

// GetTopic looks name up as given, then as an option topic. Leading
// dashes are ignored.
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	for _, key := range []string{name, optionPrefix + name} {
		if topic, ok := tm.topics[key]; ok {
			return topic, true
		}
	}
	return nil, false
}

// ListTopics returns the sorted topic names
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats a topic with the configured renderer
func (tm *TopicManager) Render(topic *Topic) string {
	return tm.renderer.Render(topic.Content, path.Ext(topic.FilePath))
}

var indexTemplate = template.Must(template.New("index").Parse(`Available help topics:
{{- if .General}}

General topics:
{{- range .General}}
  {{.}}
{{- end}}
{{- end}}
{{- if .Options}}

Option topics:
{{- range .Options}}
  --{{.}}
{{- end}}
{{- end}}

Use '{{.App}} help <topic>' to read about a specific topic.
`))

// printIndex lists general topics, then option topics as flags
func (tm *TopicManager) printIndex(w io.Writer, app string) error {
	names := tm.ListTopics()
	if len(names) == 0 {
		_, err := fmt.Fprintln(w, "No help topics available.")
		return err
	}

	data := struct {
		App              string
		General, Options []string
	}{App: app}
	for _, name := range names {
		if flag, ok := strings.CutPrefix(name, optionPrefix); ok {
			data.Options = append(data.Options, flag)
		} else {
			data.General = append(data.General, name)
		}
	}
	return indexTemplate.Execute(w, data)
}

// Initialize installs a topic aware help command with default options
func Initialize(rootCmd *cobra.Command, source fs.FS) error {
	return InitializeWithOptions(rootCmd, source, Options{})
}

// InitializeWithOptions replaces rootCmd's help command. "help topics"
// lists topics, "help <topic>" renders one and anything else falls back to
// cobra's command help.
func InitializeWithOptions(rootCmd *cobra.Command, source fs.FS, opts Options) error {
	tm := NewWithOptions(source, opts)
	if err := tm.scanTopics(); err != nil {
		return fmt.Errorf("failed to scan topics: %w", err)
	}

	defaultHelp := rootCmd.HelpFunc()
	app := rootCmd.Name()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: fmt.Sprintf("Help provides help for any command or topic.\n"+
			"Type %[1]s help [command or topic] for details, or %[1]s help topics\n"+
			"for the list of topics.", app),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			names := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					names = append(names, c.Name())
				}
			}
			return append(names, tm.ListTopics()...), cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			switch {
			case len(args) == 0:
				defaultHelp(rootCmd, nil)
			case args[0] == "topics":
				_ = tm.printIndex(out, app)
			default:
				if topic, ok := tm.GetTopic(args[0]); ok {
					_, _ = io.WriteString(out, tm.Render(topic))
					return
				}
				if target, _, err := rootCmd.Find(args); err == nil && target != rootCmd {
					defaultHelp(target, nil)
					return
				}
				defaultHelp(rootCmd, args)
			}
		},
	}

	for _, c := range rootCmd.Commands() {
		if c.Name() == "help" {
			rootCmd.RemoveCommand(c)
		}
	}
	rootCmd.AddCommand(helpCmd)
	rootCmd.SetHelpCommand(helpCmd)
	return nil
}
