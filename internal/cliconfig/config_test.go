package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	// Test loading with no config file (should use defaults)
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error loading defaults, got %v", err)
	}

	if cfg == nil {
		t.Fatal("expected config to be non-nil")
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Server.Port)
	}

	if cfg.Server.Host != "localhost" {
		t.Errorf("expected default host 'localhost', got %s", cfg.Server.Host)
	}

	if cfg.Store.Driver != "sqlite" {
		t.Errorf("expected default store driver 'sqlite', got %s", cfg.Store.Driver)
	}

	if cfg.Cache.Driver != "memory" {
		t.Errorf("expected default cache driver 'memory', got %s", cfg.Cache.Driver)
	}
}

func TestLoadWithConfigFile(t *testing.T) {
	// Create temporary directory with config file
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	configContent := `
project_name: my-project
server:
  port: 8080
  host: 0.0.0.0
store:
  driver: postgres
  dsn: postgresql://localhost/structedit
cache:
  driver: redis
  addr: localhost:6379
presets:
  strip-docs:
    scope:
      language: python
      query: docstrings
    actions:
      - deletion
`
	os.WriteFile(".structedit.yml", []byte(configContent), 0644)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error loading config, got %v", err)
	}

	if cfg.ProjectName != "my-project" {
		t.Errorf("expected project name 'my-project', got %s", cfg.ProjectName)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected host '0.0.0.0', got %s", cfg.Server.Host)
	}

	if cfg.Store.Driver != "postgres" {
		t.Errorf("expected store driver 'postgres', got %s", cfg.Store.Driver)
	}

	if cfg.Store.DSN != "postgresql://localhost/structedit" {
		t.Errorf("expected store DSN, got %s", cfg.Store.DSN)
	}

	preset, ok := cfg.Presets["strip-docs"]
	if !ok {
		t.Fatal("expected preset 'strip-docs' to be loaded")
	}
	if preset.Scope.Language != "python" {
		t.Errorf("expected preset language 'python', got %s", preset.Scope.Language)
	}
	if len(preset.Actions) != 1 || preset.Actions[0] != "deletion" {
		t.Errorf("expected preset actions [deletion], got %v", preset.Actions)
	}
}

func TestGetStoreDSN(t *testing.T) {
	os.Setenv("STRUCTEDIT_STORE_DSN", "postgresql://env/structedit")
	defer os.Unsetenv("STRUCTEDIT_STORE_DSN")

	dsn := GetStoreDSN()
	if dsn != "postgresql://env/structedit" {
		t.Errorf("expected DSN from environment, got %s", dsn)
	}
}

func TestGetStoreDSNFromConfig(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	os.Unsetenv("STRUCTEDIT_STORE_DSN")

	configContent := `
store:
  dsn: sqlite:///tmp/presets.db
`
	os.WriteFile(".structedit.yml", []byte(configContent), 0644)

	dsn := GetStoreDSN()
	if dsn != "sqlite:///tmp/presets.db" {
		t.Errorf("expected DSN from config, got %s", dsn)
	}
}

func TestInProject(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	if InProject() {
		t.Error("expected InProject to return false in non-project directory")
	}

	os.WriteFile(".structedit.yml", []byte(""), 0644)

	if !InProject() {
		t.Error("expected InProject to return true in project directory")
	}
}

func TestGetProjectRoot(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd)

	os.WriteFile(filepath.Join(tmpDir, ".structedit.yml"), []byte(""), 0644)

	subDir := filepath.Join(tmpDir, "src", "deep", "nested")
	os.MkdirAll(subDir, 0755)
	os.Chdir(subDir)

	root, err := GetProjectRoot()
	if err != nil {
		t.Fatalf("expected to find project root, got error: %v", err)
	}

	// On macOS, /tmp is symlinked to /private/tmp, so resolve both paths
	resolvedRoot, _ := filepath.EvalSymlinks(root)
	resolvedTmpDir, _ := filepath.EvalSymlinks(tmpDir)

	if resolvedRoot != resolvedTmpDir {
		t.Errorf("expected project root to be %s, got %s", resolvedTmpDir, resolvedRoot)
	}
}

func TestGetProjectRootNotInProject(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	_, err := GetProjectRoot()
	if err == nil {
		t.Error("expected error when not in a project, got nil")
	}
}
