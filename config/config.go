package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config represents the assembler configuration
type Config struct {
	// Records settings govern object-program record emission.
	Records struct {
		TextRecordMaxBytes int  `toml:"text_record_max_bytes"`
		StrictLength       bool `toml:"strict_length"`
	} `toml:"records"`

	// Listing settings govern the .lst file layout.
	Listing struct {
		LocationWidth int  `toml:"location_width"`
		LabelWidth    int  `toml:"label_width"`
		MnemonicWidth int  `toml:"mnemonic_width"`
		OperandWidth  int  `toml:"operand_width"`
		Enabled       bool `toml:"enabled"`
	} `toml:"listing"`

	// Assemble settings govern pass behavior.
	Assemble struct {
		Verbose bool   `toml:"verbose"`
		Mode    string `toml:"mode"` // "sic" or "sicxe"
	} `toml:"assemble"`

	// Browse settings govern the -browse TUI.
	Browse struct {
		ColorOutput bool `toml:"color_output"`
	} `toml:"browse"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Records defaults — permissive text-record packing, matching
	// records.py:gen_text_sicxe rather than the stricter 60-char ceiling.
	cfg.Records.TextRecordMaxBytes = 30
	cfg.Records.StrictLength = false

	// Listing defaults
	cfg.Listing.LocationWidth = 10
	cfg.Listing.LabelWidth = 8
	cfg.Listing.MnemonicWidth = 8
	cfg.Listing.OperandWidth = 16
	cfg.Listing.Enabled = true

	// Assemble defaults
	cfg.Assemble.Verbose = false
	cfg.Assemble.Mode = "sicxe"

	// Browse defaults
	cfg.Browse.ColorOutput = true

	return cfg
}

// GetConfigPath returns the platform-specific config file path
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\sicxe-asm\config.toml
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "sicxe-asm")

	case "darwin", "linux":
		// macOS/Linux: ~/.config/sicxe-asm/config.toml
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to current directory
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "sicxe-asm")

	default:
		// Unknown platform: use current directory
		return "config.toml"
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0750); err != nil {
		// If we can't create the directory, fall back to current directory
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	// If file doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read and parse config file
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create file
	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	// Encode to TOML
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
