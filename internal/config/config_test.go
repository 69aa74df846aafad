package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"quizbank/internal/testutil"
)

func writeConfig(t *testing.T, root, content string) string {
	t.Helper()
	return testutil.WriteFile(t, root, filepath.Join(ConfigDirName, ConfigFileName), content)
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.Catalog != DefaultCatalogFile {
		t.Fatalf("expected default catalog, got %q", cfg.Catalog)
	}
	if cfg.Batch != "functional" {
		t.Fatalf("expected functional batch, got %q", cfg.Batch)
	}
	if err := Validate(&cfg); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
}

func TestLoadNormalizesValues(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "version: 1\ncatalog: \"  data/bank.yaml \"\nbatch: examples\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Catalog != "data/bank.yaml" {
		t.Fatalf("expected trimmed catalog, got %q", cfg.Catalog)
	}
	if cfg.Batch != "examples" {
		t.Fatalf("expected examples batch, got %q", cfg.Batch)
	}
	if cfg.LockTimeout != DefaultLockTimeout {
		t.Fatalf("expected default lock timeout, got %q", cfg.LockTimeout)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("version: 1\ncatalogue: typo.yaml\n"))
	if err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestParseRejectsMultipleDocuments(t *testing.T) {
	_, err := Parse([]byte("version: 1\n---\nversion: 1\n"))
	if err == nil || !strings.Contains(err.Error(), "multiple YAML documents") {
		t.Fatalf("expected multiple documents error, got %v", err)
	}
}

func TestValidateCollectsIssues(t *testing.T) {
	cfg := Config{Version: 2, Catalog: "x.yaml", Batch: "missing", LockTimeout: "-1s"}
	err := Validate(&cfg)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields := map[string]bool{}
	for _, issue := range validationErr.Issues {
		fields[issue.Field] = true
	}
	for _, field := range []string{"version", "batch", "lock_timeout"} {
		if !fields[field] {
			t.Fatalf("expected issue for %s, got %+v", field, validationErr.Issues)
		}
	}
}

func TestFindConfigPathSearchesParents(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "version: 1\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}
	got, err := FindConfigPath(nested)
	if err != nil {
		t.Fatalf("find config: %v", err)
	}
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if RootFromConfigPath(got) != root {
		t.Fatalf("expected root %q, got %q", root, RootFromConfigPath(got))
	}
}

func TestFindConfigPathNotFound(t *testing.T) {
	_, err := FindConfigPath(t.TempDir())
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestFindConfigPathRejectsDirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(ConfigPath(root), 0o755); err != nil {
		t.Fatalf("mkdir config path: %v", err)
	}
	_, err := FindConfigPath(root)
	if err == nil || errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("expected directory error, got %v", err)
	}
	if !strings.Contains(err.Error(), "is a directory") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRootFromExplicitConfigPath(t *testing.T) {
	path := filepath.Join("work", "quizbank.yml")
	if got := RootFromConfigPath(path); got != "work" {
		t.Fatalf("expected root %q, got %q", "work", got)
	}
}

func TestResolveWithoutConfigUsesWorkDir(t *testing.T) {
	workDir := t.TempDir()
	settings, err := Resolve(workDir, Overrides{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if settings.ConfigPath != "" {
		t.Fatalf("expected no config path, got %q", settings.ConfigPath)
	}
	if settings.CatalogPath != filepath.Join(workDir, DefaultCatalogFile) {
		t.Fatalf("unexpected catalog path %q", settings.CatalogPath)
	}
	if settings.Batch != "functional" {
		t.Fatalf("expected functional batch, got %q", settings.Batch)
	}
	if settings.LockTimeout != 5*time.Second {
		t.Fatalf("expected 5s lock timeout, got %s", settings.LockTimeout)
	}
}

func TestResolveUsesConfigRelativeToRoot(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "version: 1\ncatalog: data/bank.yaml\nbatch: examples\nlock_timeout: 250ms\n")
	workDir := filepath.Join(root, "sub")
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	settings, err := Resolve(workDir, Overrides{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if settings.CatalogPath != filepath.Join(root, "data", "bank.yaml") {
		t.Fatalf("unexpected catalog path %q", settings.CatalogPath)
	}
	if settings.Batch != "examples" {
		t.Fatalf("expected examples batch, got %q", settings.Batch)
	}
	if settings.LockTimeout != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %s", settings.LockTimeout)
	}
}

func TestResolveOverridesWin(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "version: 1\ncatalog: data/bank.yaml\n")
	settings, err := Resolve(root, Overrides{Catalog: "other.yaml", Batch: "examples"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if settings.CatalogPath != filepath.Join(root, "other.yaml") {
		t.Fatalf("unexpected catalog path %q", settings.CatalogPath)
	}
	if settings.Batch != "examples" {
		t.Fatalf("expected override batch, got %q", settings.Batch)
	}
}

func TestResolveExplicitConfigErrors(t *testing.T) {
	_, err := Resolve(t.TempDir(), Overrides{ConfigPath: "missing.yml"})
	if err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestScaffoldWritesLoadableConfig(t *testing.T) {
	path := ConfigPath(t.TempDir())
	if err := Scaffold(path); err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("load scaffolded config: %v", err)
	}
	if err := Scaffold(path); err == nil {
		t.Fatalf("expected scaffold to refuse overwrite")
	}
}
