package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Die    int    `env:"ROLLTABLE_TEST_DIE" envDefault:"20"`
	Output string `env:"ROLLTABLE_TEST_OUTPUT" envDefault:"text"`
}

type prefixedTestConfig struct {
	Die int `env:"DIE" envDefault:"20"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Die != 20 || cfg.Output != "text" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("ROLLTABLE_TEST_OUTPUT", "yaml")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Output != "yaml" {
		t.Fatalf("expected yaml output, got %q", cfg.Output)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("ROLLTABLE_TEST_DIE", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvWithPrefix(t *testing.T) {
	var cfg prefixedTestConfig
	t.Setenv("ROLLTABLE_PREFIX_TEST_DIE", "12")

	if err := ParseEnvWithPrefix(&cfg, "ROLLTABLE_PREFIX_TEST_"); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Die != 12 {
		t.Fatalf("expected die 12, got %d", cfg.Die)
	}
}
