package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type config struct {
	File      string `yaml:"file"`
	Sheet     string `yaml:"sheet"`
	Column    string `yaml:"column"`
	Start     string `yaml:"start"`
	End       string `yaml:"end"`
	SkipBlank bool   `yaml:"skip_blank"`
}

func defaultConfig() *config {
	return &config{
		File:   "data/etunimitilasto-2022-08-04-dvv.xlsx",
		Sheet:  "Miehet ens",
		Column: "Etunimi",
		Start:  "<s>",
		End:    "<e>",
	}
}

// loadConfig reads an optional yaml file over the defaults, then applies
// CHARVOCAB_* environment overrides.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *config) {
	if v := os.Getenv("CHARVOCAB_FILE"); v != "" {
		cfg.File = v
	}
	if v := os.Getenv("CHARVOCAB_SHEET"); v != "" {
		cfg.Sheet = v
	}
	if v := os.Getenv("CHARVOCAB_COLUMN"); v != "" {
		cfg.Column = v
	}
	if v := os.Getenv("CHARVOCAB_SKIP_BLANK"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.SkipBlank = b
		}
	}
}
