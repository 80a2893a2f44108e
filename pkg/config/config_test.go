package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kaleido-lang/kaleidoc/pkg/lexer"
	"github.com/kaleido-lang/kaleidoc/pkg/parser"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ops.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.MaxNestingDepth != parser.DefaultMaxDepth {
		t.Errorf("expected depth %d, got %d", parser.DefaultMaxDepth, cfg.MaxNestingDepth)
	}

	table, err := cfg.Table()
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	if len(table) != 5 {
		t.Errorf("expected 5 operators, got %d", len(table))
	}
	if table[lexer.TokenStar] != 40 {
		t.Errorf("expected * to bind at 40, got %d", table[lexer.TokenStar])
	}
	if table[lexer.TokenMinus] != 20 {
		t.Errorf("expected - to bind at 20, got %d", table[lexer.TokenMinus])
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
operators:
  "+": 10
  "*": 30
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.MaxNestingDepth != parser.DefaultMaxDepth {
		t.Errorf("expected default depth, got %d", cfg.MaxNestingDepth)
	}

	table, err := cfg.Table()
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	if len(table) != 2 {
		t.Errorf("expected 2 operators, got %d", len(table))
	}
	if table[lexer.TokenPlus] != 10 {
		t.Errorf("expected + to bind at 10, got %d", table[lexer.TokenPlus])
	}
}

func TestLoadMaxNestingDepth(t *testing.T) {
	path := writeConfig(t, `max_nesting_depth: 64`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxNestingDepth != 64 {
		t.Errorf("expected depth 64, got %d", cfg.MaxNestingDepth)
	}
	if len(cfg.Operators) != 5 {
		t.Errorf("expected default operators, got %v", cfg.Operators)
	}
}

func TestLoadRejectsNegativePrecedence(t *testing.T) {
	path := writeConfig(t, `
operators:
  "+": -1
`)

	if _, err := Load(path); err == nil {
		t.Error("expected error for negative precedence")
	}
}

func TestLoadRejectsUnknownOperator(t *testing.T) {
	path := writeConfig(t, `
operators:
  "**": 60
`)

	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown operator symbol")
	}
}

func TestValidateRejectsNonPositiveDepth(t *testing.T) {
	for _, depth := range []int{0, -5} {
		cfg := Default()
		cfg.MaxNestingDepth = depth
		if err := Validate(cfg); err == nil {
			t.Errorf("expected error for depth %d", depth)
		}
	}
}

func TestLoadRejectsNegativeDepth(t *testing.T) {
	path := writeConfig(t, `max_nesting_depth: -1`)

	if _, err := Load(path); err == nil {
		t.Error("expected error for negative depth")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, `operators: [not, a, map]`)

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}
