/*
File   : minipylang/config/config.go
Package: config

Package config loads the REPL's optional YAML configuration file,
grounded on the teacher's package-var configuration style
(main/main.go: PROMPT, BANNER as hardcoded package vars) but promoted
to a small decoded struct, the way a complete interpreter CLI in this
lineage would externalize those same knobs once a config file is
worth having. gopkg.in/yaml.v3 is already pulled in transitively by
testify; this package is what makes it a direct dependency.
*/
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file MiniPyLang looks for, first in the
// current directory and then in the user's home directory.
const FileName = ".minipyrc.yaml"

// Config holds the REPL's user-customizable presentation settings.
type Config struct {
	Prompt     string `yaml:"prompt"`
	ColorsOn   bool   `yaml:"colors"`
	ShowBanner bool   `yaml:"banner"`
}

// Default returns MiniPyLang's built-in configuration, used when no
// config file is found or it fails to parse.
func Default() Config {
	return Config{
		Prompt:     "minipy >>> ",
		ColorsOn:   true,
		ShowBanner: true,
	}
}

// Load returns the default config overridden field-by-field by
// whatever .minipyrc.yaml is found in the current directory or, failing
// that, the user's home directory. A missing file is not an error; a
// malformed one is reported but falls back to the default.
func Load() (Config, error) {
	cfg := Default()

	path, ok := locate()
	if !ok {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, nil
	}

	var overrides struct {
		Prompt     *string `yaml:"prompt"`
		ColorsOn   *bool   `yaml:"colors"`
		ShowBanner *bool   `yaml:"banner"`
	}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return cfg, err
	}

	if overrides.Prompt != nil {
		cfg.Prompt = *overrides.Prompt
	}
	if overrides.ColorsOn != nil {
		cfg.ColorsOn = *overrides.ColorsOn
	}
	if overrides.ShowBanner != nil {
		cfg.ShowBanner = *overrides.ShowBanner
	}
	return cfg, nil
}

func locate() (string, bool) {
	if _, err := os.Stat(FileName); err == nil {
		return FileName, true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	path := filepath.Join(home, FileName)
	if _, err := os.Stat(path); err == nil {
		return path, true
	}
	return "", false
}
