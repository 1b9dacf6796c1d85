package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/kenchou/file-clean/pkg/errors"
	"github.com/kenchou/file-clean/pkg/logging"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides
const EnvPrefix = "FILECLEAN_"

// LoadOptions selects the layers Load merges
type LoadOptions struct {
	// File is an explicit patterns file. When empty, Discover(Target) is used.
	File string

	// Target is the directory being cleaned
	Target string

	// Overrides are applied last, keyed by dotted path ("options.delete")
	Overrides map[string]interface{}
}

// Load merges defaults, the patterns file, the environment and overrides.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")

	path := opts.File
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigNotFound, "cannot read patterns file %s", path).
				WithDetail("path", path)
		}
	} else {
		found, err := Discover(opts.Target)
		if err != nil {
			return nil, err
		}
		path = found
	}

	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(embedded(defaultConfig), yaml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Patterns file
	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load patterns from %s", path).
			WithDetail("path", path)
	}
	logger.Debug().Str("path", path).Msg("Loaded patterns file")

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 4. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Int("remove", len(cfg.Remove)).
		Int("remove_hash", len(cfg.RemoveHash)).
		Int("cleanup", len(cfg.Cleanup)).
		Msg("Configuration ready")
	return cfg, nil
}

// Defaults returns the embedded defaults with no patterns.
func Defaults() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(embedded(defaultConfig), yaml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}
	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToByteSizeHookFunc(),
				multilineToSliceHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}
	return &cfg, nil
}

func parserFor(path string) koanf.Parser {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Parser()
	}
	return yaml.Parser()
}

// envKey maps FILECLEAN_OPTIONS_REMOVE_EMPTY_DIRS to options.remove_empty_dirs.
// Only the section separator becomes a dot; option names keep underscores.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "options_"); ok {
		return "options." + rest
	}
	return key
}

// multilineToSliceHookFunc splits a string into trimmed, non-empty lines
// when the target is a string slice.
func multilineToSliceHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Slice || t.Elem().Kind() != reflect.String {
			return data, nil
		}
		return splitLines(data.(string)), nil
	}
}

func splitLines(s string) []string {
	lines := []string{}
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func stringToByteSizeHookFunc() mapstructure.DecodeHookFunc {
	sizeType := reflect.TypeOf(ByteSize(0))
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != sizeType || f.Kind() != reflect.String {
			return data, nil
		}
		return ParseByteSize(data.(string))
	}
}
