package config

import (
	"bytes"

	"github.com/kenchou/file-clean/pkg/errors"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
	"github.com/pelletier/go-toml/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Starter returns the starter configuration as a value
func Starter() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(embedded(starterConfig), yaml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load starter config")
	}
	return unmarshal(k)
}

// GenerateConfigContent renders the starter configuration. YAML keeps the
// commented template; TOML is encoded from the decoded value.
func GenerateConfigContent(format string) ([]byte, error) {
	switch format {
	case "", "yaml", "yml":
		return []byte(StarterContent()), nil
	case "toml":
		cfg, err := Starter()
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		buf.WriteString("# file-clean patterns\n#\n# Entries starting with \"/\" are regular expressions, everything else is a\n# shell glob matched against the file name only.\n\n")
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode TOML")
		}
		return buf.Bytes(), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported config format %q", format)
	}
}

// Marshal renders cfg as YAML, as it would be read back by Load
func Marshal(cfg *Config) ([]byte, error) {
	out, err := yamlv3.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode YAML")
	}
	return out, nil
}
