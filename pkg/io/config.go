package io

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/barchart/pkg/chart"
	"github.com/matzehuels/barchart/pkg/errors"
)

// LoadConfig reads a TOML chart config. A missing file yields the zero
// config, leaving every option to its default. Unknown keys are rejected.
//
//	width = 800
//	height = 600
//	bar_color = "steelblue"
//	use_guidelines = true
func LoadConfig(path string) (chart.Config, error) {
	var cfg chart.Config
	if err := errors.ValidatePath(path); err != nil {
		return cfg, err
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return chart.Config{}, nil
		}
		return chart.Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return chart.Config{}, errors.Config("%s: unknown option(s): %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// SaveConfig writes cfg as TOML to path, creating parent directories.
// Unset options are omitted.
func SaveConfig(path string, cfg chart.Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("encode: %w", err)
	}
	return f.Close()
}
