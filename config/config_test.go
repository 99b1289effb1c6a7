package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Records.TextRecordMaxBytes != 30 {
		t.Errorf("Expected TextRecordMaxBytes=30, got %d", cfg.Records.TextRecordMaxBytes)
	}
	if cfg.Records.StrictLength {
		t.Error("Expected StrictLength=false")
	}

	if cfg.Listing.LocationWidth != 10 {
		t.Errorf("Expected LocationWidth=10, got %d", cfg.Listing.LocationWidth)
	}
	if cfg.Listing.LabelWidth != 8 {
		t.Errorf("Expected LabelWidth=8, got %d", cfg.Listing.LabelWidth)
	}
	if !cfg.Listing.Enabled {
		t.Error("Expected Listing.Enabled=true")
	}

	if cfg.Assemble.Mode != "sicxe" {
		t.Errorf("Expected Mode=sicxe, got %s", cfg.Assemble.Mode)
	}
	if cfg.Assemble.Verbose {
		t.Error("Expected Verbose=false")
	}

	if !cfg.Browse.ColorOutput {
		t.Error("Expected Browse.ColorOutput=true")
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()

	if path == "" {
		t.Error("GetConfigPath returned empty string")
	}

	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected path to end with config.toml, got %s", path)
	}

	switch runtime.GOOS {
	case "windows":
		if !filepath.IsAbs(path) && path != "config.toml" {
			t.Errorf("Expected absolute path on Windows, got %s", path)
		}

	case "darwin", "linux":
		dir := filepath.Dir(path)
		if filepath.Base(dir) != "sicxe-asm" && path != "config.toml" {
			t.Errorf("Expected path in sicxe-asm directory or fallback, got %s", path)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	cfg := DefaultConfig()
	cfg.Records.TextRecordMaxBytes = 20
	cfg.Records.StrictLength = true
	cfg.Listing.LabelWidth = 12
	cfg.Assemble.Verbose = true
	cfg.Assemble.Mode = "sic"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.Records.TextRecordMaxBytes != 20 {
		t.Errorf("Expected TextRecordMaxBytes=20, got %d", loaded.Records.TextRecordMaxBytes)
	}
	if !loaded.Records.StrictLength {
		t.Error("Expected StrictLength=true")
	}
	if loaded.Listing.LabelWidth != 12 {
		t.Errorf("Expected LabelWidth=12, got %d", loaded.Listing.LabelWidth)
	}
	if !loaded.Assemble.Verbose {
		t.Error("Expected Verbose=true")
	}
	if loaded.Assemble.Mode != "sic" {
		t.Errorf("Expected Mode=sic, got %s", loaded.Assemble.Mode)
	}
}

func TestLoadNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom should not error on non-existent file: %v", err)
	}

	if cfg.Records.TextRecordMaxBytes != 30 {
		t.Error("Expected default config when file doesn't exist")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[records]
text_record_max_bytes = "not a number"
`
	if err := os.WriteFile(configPath, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	_, err := LoadFrom(configPath)
	if err == nil {
		t.Error("Expected error when loading invalid TOML")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()

	configPath := filepath.Join(tempDir, "subdir1", "subdir2", "config.toml")

	cfg := DefaultConfig()
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	dir := filepath.Dir(configPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("Parent directories were not created")
	}
}
