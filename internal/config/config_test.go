package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sir_venger/textsplit/internal/models"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CONFIG_PATH", filepath.Join(dir, "config.yaml"))
	t.Setenv("ENV_FILE", filepath.Join(dir, ".env"))
	for _, k := range []string{"LISTEN_ADDR", "MAX_UPLOAD_BYTES", "SPLIT_UNIT", "SPLIT_TTL", "GC_INTERVAL", "REJECT_BINARY", "SIZE_DECIMALS"} {
		t.Setenv(k, "")
	}
	return dir
}

func TestLoad_DefaultsWithoutFiles(t *testing.T) {
	isolate(t)

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.ListenAddr != DefaultListenAddr || c.Unit != models.UnitRune || c.SplitTTL != DefaultSplitTTL {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if !c.BinaryRejected() || c.Decimals() != DefaultSizeDecimals {
		t.Fatalf("unexpected defaults: reject=%v decimals=%d", c.BinaryRejected(), c.Decimals())
	}
}

func TestLoad_YAMLThenEnvOverride(t *testing.T) {
	dir := isolate(t)
	yml := "listen_addr: \":9000\"\nunit: byte\nsplit_ttl: 5m\nreject_binary: false\nsize_decimals: 1\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LISTEN_ADDR", ":7000")

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.ListenAddr != ":7000" {
		t.Fatalf("env must override yaml, got %q", c.ListenAddr)
	}
	if c.Unit != models.UnitByte || c.SplitTTL != 5*time.Minute {
		t.Fatalf("yaml not applied: %+v", c)
	}
	if c.BinaryRejected() || c.Decimals() != 1 {
		t.Fatalf("yaml pointers not applied: reject=%v decimals=%d", c.BinaryRejected(), c.Decimals())
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	os.Unsetenv("SPLIT_UNIT")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SPLIT_UNIT=grapheme\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("SPLIT_UNIT") })

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Unit != models.UnitGrapheme {
		t.Fatalf("unit = %q, want grapheme", c.Unit)
	}
}

func TestLoad_InvalidUnit(t *testing.T) {
	isolate(t)
	t.Setenv("SPLIT_UNIT", "word")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown unit")
	}
}

func TestLoad_SplitTTL(t *testing.T) {
	isolate(t)
	t.Setenv("SPLIT_TTL", "-1m")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative split_ttl")
	}

	t.Setenv("SPLIT_TTL", "0s")
	c, err := Load()
	if err != nil {
		t.Fatalf("zero split_ttl disables expiry and must load: %v", err)
	}
	if c.SplitTTL != 0 {
		t.Fatalf("split_ttl = %s, want 0", c.SplitTTL)
	}
}
