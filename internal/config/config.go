package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/juparave/lastoff/internal/editor"
	"github.com/juparave/lastoff/internal/scanner"
	"github.com/juparave/lastoff/internal/util"
)

// Config holds all application configuration
type Config struct {
	RootPath    string       `yaml:"root_path"`
	Scan        ScanConfig   `yaml:"scan"`
	Editor      EditorConfig `yaml:"editor"`
	Verbose     bool         `yaml:"-"` // Set via CLI only
	Interactive bool         `yaml:"-"` // Set via CLI only
}

// ScanConfig holds traversal settings
type ScanConfig struct {
	MaxDepth    int    `yaml:"max_depth"`
	OnFileError string `yaml:"on_file_error"` // skip, collect, abort
}

// EditorConfig holds process settings for opening editors
type EditorConfig struct {
	Terminal       string   `yaml:"terminal"`
	InstallCommand []string `yaml:"install_command"` // package name is appended
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	cwd, _ := os.Getwd()
	return &Config{
		RootPath: cwd,
		Scan: ScanConfig{
			MaxDepth:    scanner.DefaultMaxDepth,
			OnFileError: string(scanner.PolicySkip),
		},
		Editor: EditorConfig{
			Terminal:       editor.DefaultTerminal,
			InstallCommand: append([]string{}, editor.DefaultInstallCommand...),
		},
		Interactive: true,
	}
}

// DefaultPath returns ~/.config/lastoff/config.yaml
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "lastoff", "config.yaml"), nil
}

// Load reads configuration from file and merges with defaults
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Determine config file path
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil // Use defaults if can't find home
		}
		path = p
	}

	path = util.ExpandPath(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if file doesn't exist
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.RootPath = util.ExpandPath(cfg.RootPath)

	return cfg, nil
}

// Validate checks if the configuration is valid. The root path is not
// checked here; an unreadable root is reported by the scan.
func (c *Config) Validate() error {
	if c.RootPath == "" {
		return fmt.Errorf("root_path is required")
	}

	if c.Scan.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative: %d", c.Scan.MaxDepth)
	}

	if _, err := scanner.ParsePolicy(c.Scan.OnFileError); err != nil {
		return err
	}

	if c.Editor.Terminal == "" {
		return fmt.Errorf("terminal is required")
	}

	if len(c.Editor.InstallCommand) == 0 {
		return fmt.Errorf("install_command is required")
	}

	return nil
}

// Policy returns the parsed file error policy
func (c *Config) Policy() scanner.FileErrorPolicy {
	p, err := scanner.ParsePolicy(c.Scan.OnFileError)
	if err != nil {
		return scanner.PolicySkip
	}
	return p
}
