package config

import (
	"bytes"
	"errors"
	"flag"
	"testing"
	"time"

	apperrors "github.com/agbru/bignum/internal/errors"
)

var testOps = []string{"add", "mul", "modpow", "sqrt", "gcd"}

func parse(t *testing.T, args ...string) (AppConfig, error) {
	t.Helper()
	var buf bytes.Buffer
	return ParseConfig("bigcalc", args, &buf, testOps)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parse(t, "add", "1", "2")
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Op != "add" {
		t.Errorf("Op = %q, want add", cfg.Op)
	}
	if len(cfg.Operands) != 2 || cfg.Operands[0] != "1" || cfg.Operands[1] != "2" {
		t.Errorf("Operands = %v", cfg.Operands)
	}
	if cfg.InBase != DefaultBase || cfg.OutBase != DefaultBase {
		t.Errorf("bases = %d/%d, want %d/%d", cfg.InBase, cfg.OutBase, DefaultBase, DefaultBase)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %s, want %s", cfg.Timeout, DefaultTimeout)
	}
	if cfg.Quiet || cfg.Verbose || cfg.Debug {
		t.Error("boolean flags should default to false")
	}
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := parse(t, "-in-base", "16", "-out-base", "2", "-timeout", "30s", "-q", "mul", "ff", "10")
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.InBase != 16 || cfg.OutBase != 2 {
		t.Errorf("bases = %d/%d, want 16/2", cfg.InBase, cfg.OutBase)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %s, want 30s", cfg.Timeout)
	}
	if !cfg.Quiet {
		t.Error("Quiet should be set")
	}
}

func TestParseConfigBaseShorthand(t *testing.T) {
	cfg, err := parse(t, "-base", "16", "add", "ff", "1")
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.InBase != 16 || cfg.OutBase != 16 {
		t.Errorf("bases = %d/%d, want 16/16", cfg.InBase, cfg.OutBase)
	}

	// an explicit -out-base wins over the shorthand
	cfg, err = parse(t, "-base", "16", "-out-base", "10", "add", "ff", "1")
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.InBase != 16 || cfg.OutBase != 10 {
		t.Errorf("bases = %d/%d, want 16/10", cfg.InBase, cfg.OutBase)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing operation", nil},
		{"unknown operation", []string{"frobnicate", "1"}},
		{"in-base too small", []string{"-in-base", "1", "add", "1", "2"}},
		{"out-base too large", []string{"-out-base", "37", "add", "1", "2"}},
		{"non-positive timeout", []string{"-timeout", "0s", "add", "1", "2"}},
		{"negative jobs", []string{"-jobs", "-2", "add", "1", "2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			var cfgErr apperrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("expected ConfigError, got %v", err)
			}
		})
	}
}

func TestParseConfigHelp(t *testing.T) {
	var buf bytes.Buffer
	_, err := ParseConfig("bigcalc", []string{"-h"}, &buf, testOps)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
	for _, want := range []string{"Usage:", "Operations:", "add", "modpow"} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("usage output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"OUT_BASE", "16")
	t.Setenv(EnvPrefix+"TIMEOUT", "90s")
	t.Setenv(EnvPrefix+"QUIET", "yes")

	cfg, err := parse(t, "add", "1", "2")
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.OutBase != 16 {
		t.Errorf("OutBase = %d, want 16 from env", cfg.OutBase)
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("Timeout = %s, want 90s from env", cfg.Timeout)
	}
	if !cfg.Quiet {
		t.Error("Quiet should be set from env")
	}
}

func TestFlagsBeatEnv(t *testing.T) {
	t.Setenv(EnvPrefix+"OUT_BASE", "16")
	t.Setenv(EnvPrefix+"QUIET", "yes")

	cfg, err := parse(t, "-out-base", "8", "-quiet=false", "add", "1", "2")
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.OutBase != 8 {
		t.Errorf("OutBase = %d, want 8 (flag beats env)", cfg.OutBase)
	}
	if cfg.Quiet {
		t.Error("explicit -quiet=false must beat the env override")
	}
}

func TestInvalidEnvValuesIgnored(t *testing.T) {
	t.Setenv(EnvPrefix+"OUT_BASE", "not-a-number")
	t.Setenv(EnvPrefix+"TIMEOUT", "soon")
	t.Setenv(EnvPrefix+"VERBOSE", "maybe")

	cfg, err := parse(t, "add", "1", "2")
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.OutBase != DefaultBase {
		t.Errorf("OutBase = %d, want default %d", cfg.OutBase, DefaultBase)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %s, want default %s", cfg.Timeout, DefaultTimeout)
	}
	if cfg.Verbose {
		t.Error("unrecognized boolean env value must keep the default")
	}
}
