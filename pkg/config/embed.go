package config

import (
	_ "embed"
	"errors"
)

var (
	//go:embed embedded/defaults.yaml
	defaultConfig []byte

	//go:embed embedded/starter.yaml
	starterConfig []byte
)

// StarterContent returns the commented starter patterns file
func StarterContent() string {
	return string(starterConfig)
}

// embedded feeds compiled-in YAML to koanf. It only supports ReadBytes, so
// it must be loaded with a parser.
type embedded []byte

func (e embedded) ReadBytes() ([]byte, error) { return e, nil }

func (e embedded) Read() (map[string]interface{}, error) {
	return nil, errors.New("embedded config needs a parser")
}
