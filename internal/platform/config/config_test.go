package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Order  string `env:"EXPOGO_TEST_ORDER" envDefault:"NESW"`
	Verify bool   `env:"EXPOGO_TEST_VERIFY" envDefault:"true"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Order != "NESW" {
		t.Fatalf("expected default order NESW, got %q", cfg.Order)
	}
	if !cfg.Verify {
		t.Fatal("expected verify to default to true")
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("EXPOGO_TEST_ORDER", "WSEN")
	t.Setenv("EXPOGO_TEST_VERIFY", "false")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Order != "WSEN" || cfg.Verify {
		t.Fatalf("expected env overrides, got %+v", cfg)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("EXPOGO_TEST_VERIFY", "not-a-bool")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvFromIgnoresProcessEnv(t *testing.T) {
	t.Setenv("EXPOGO_TEST_ORDER", "WSEN")

	var cfg envTestConfig
	if err := ParseEnvFrom(&cfg, map[string]string{"EXPOGO_TEST_VERIFY": "false"}); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Order != "NESW" {
		t.Fatalf("expected default order from empty environ, got %q", cfg.Order)
	}
	if cfg.Verify {
		t.Fatal("expected verify from environ map to be false")
	}
}

func TestParseEnvFromNilEnvironReadsProcessEnv(t *testing.T) {
	t.Setenv("EXPOGO_TEST_ORDER", "ENWS")

	var cfg envTestConfig
	if err := ParseEnvFrom(&cfg, nil); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Order != "ENWS" {
		t.Fatalf("expected process env order, got %q", cfg.Order)
	}
}

func TestParseEnvFromEmptyEnvironUsesDefaults(t *testing.T) {
	t.Setenv("EXPOGO_TEST_ORDER", "ENWS")

	var cfg envTestConfig
	if err := ParseEnvFrom(&cfg, map[string]string{}); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Order != "NESW" || !cfg.Verify {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}
