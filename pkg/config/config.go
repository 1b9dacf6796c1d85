package config

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/kenchou/file-clean/pkg/errors"
	"github.com/kenchou/file-clean/pkg/internal/hashutil"
)

// Patterns is the pattern section of a patterns file
type Patterns struct {
	Remove     []string            `koanf:"remove" yaml:"remove" toml:"remove"`
	RemoveHash map[string][]string `koanf:"remove_hash" yaml:"remove_hash" toml:"remove_hash"`
	Cleanup    []string            `koanf:"cleanup" yaml:"cleanup" toml:"cleanup"`
}

// Options toggles pipeline features
type Options struct {
	Delete          bool     `koanf:"delete" yaml:"delete" toml:"delete"`
	Hash            bool     `koanf:"hash" yaml:"hash" toml:"hash"`
	Rename          bool     `koanf:"rename" yaml:"rename" toml:"rename"`
	RemoveEmptyDirs bool     `koanf:"remove_empty_dirs" yaml:"remove_empty_dirs" toml:"remove_empty_dirs"`
	SkipTmp         bool     `koanf:"skip_tmp" yaml:"skip_tmp" toml:"skip_tmp"`
	HashAlgorithm   string   `koanf:"hash_algorithm" yaml:"hash_algorithm" toml:"hash_algorithm"`
	MaxHashSize     ByteSize `koanf:"max_hash_size" yaml:"max_hash_size" toml:"max_hash_size"`
	Workers         int      `koanf:"workers" yaml:"workers" toml:"workers"`
}

// Config is the fully merged configuration
type Config struct {
	Patterns `koanf:",squash" yaml:",inline"`
	Options  Options `koanf:"options" yaml:"options" toml:"options"`

	// Path is the patterns file the configuration was loaded from
	Path string `koanf:"-" yaml:"-" toml:"-"`
}

// ByteSize is a size in bytes written in human form ("512 MiB") in files
type ByteSize int64

// ParseByteSize accepts humanized sizes ("10MB", "512 MiB") and plain numbers
func ParseByteSize(s string) (ByteSize, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrConfigParse, "invalid size %q", s)
	}
	return ByteSize(n), nil
}

func (b ByteSize) String() string {
	if b <= 0 {
		return "0"
	}
	return humanize.IBytes(uint64(b))
}

// MarshalText writes the humanized form
func (b ByteSize) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText parses the humanized form
func (b *ByteSize) UnmarshalText(text []byte) error {
	v, err := ParseByteSize(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Validate checks option values that decoding cannot
func (c *Config) Validate() error {
	if _, err := hashutil.ParseAlgorithm(c.Options.HashAlgorithm); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid options.hash_algorithm").
			WithDetail("value", c.Options.HashAlgorithm)
	}
	if c.Options.Workers < 0 {
		return errors.Newf(errors.ErrConfigValid, "options.workers must not be negative, got %d", c.Options.Workers)
	}
	if c.Options.MaxHashSize < 0 {
		return errors.Newf(errors.ErrConfigValid, "options.max_hash_size must not be negative, got %d", c.Options.MaxHashSize)
	}
	return nil
}
