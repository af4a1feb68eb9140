package filecleaner

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-ini/ini"
)

// Config represents the file-cleaner configuration
type Config struct {
	configPath string
	ini        *ini.File
}

// KeyConfig represents grouping key configuration
type KeyConfig struct {
	Width int // Grouping key width in bytes (1, 2, 4 or 8)
}

// OutputConfig represents report output configuration
type OutputConfig struct {
	Format string // Default report format: human, json, fdupes
}

// VerboseConfig represents verbosity configuration
type VerboseConfig struct {
	Level int    // Default verbose level (0=quiet, 1=basic, 2=detailed, 3=trace)
	Debug string // Default debug flags (comma-separated)
}

// AllConfig represents all configuration options
type AllConfig struct {
	Key     *KeyConfig
	Output  *OutputConfig
	Verbose *VerboseConfig
}

// LoadConfig loads configuration from path. When path is empty or the file
// does not exist, an in-memory default configuration is returned; nothing
// is written to disk until Save is called explicitly.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		configPath: path,
	}

	if path == "" {
		cfg.ini = ini.Empty()
		if err := cfg.setDefaults(); err != nil {
			return nil, fmt.Errorf("failed to set default config: %w", err)
		}
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg.ini = ini.Empty()
		if err := cfg.setDefaults(); err != nil {
			return nil, fmt.Errorf("failed to set default config: %w", err)
		}
		return cfg, nil
	}

	iniFile, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	cfg.ini = iniFile

	return cfg, nil
}

// setDefaults sets default configuration values
func (c *Config) setDefaults() error {
	keySection, err := c.ini.NewSection("key")
	if err != nil {
		return fmt.Errorf("failed to create key section: %w", err)
	}
	if _, err = keySection.NewKey("width", fmt.Sprintf("%d", DefaultKeyWidth)); err != nil {
		return fmt.Errorf("failed to set default key width: %w", err)
	}

	outputSection, err := c.ini.NewSection("output")
	if err != nil {
		return fmt.Errorf("failed to create output section: %w", err)
	}
	if _, err = outputSection.NewKey("format", "human"); err != nil {
		return fmt.Errorf("failed to set default output format: %w", err)
	}

	verboseSection, err := c.ini.NewSection("verbose")
	if err != nil {
		return fmt.Errorf("failed to create verbose section: %w", err)
	}
	if _, err = verboseSection.NewKey("level", "0"); err != nil {
		return fmt.Errorf("failed to set default verbose level: %w", err)
	}
	if _, err = verboseSection.NewKey("debug", ""); err != nil {
		return fmt.Errorf("failed to set default debug flags: %w", err)
	}

	return nil
}

// GetKeyConfig returns the grouping key configuration
func (c *Config) GetKeyConfig() *KeyConfig {
	keyConfig := &KeyConfig{
		Width: DefaultKeyWidth, // fallback default
	}

	if c.ini.HasSection("key") {
		section := c.ini.Section("key")
		if section.HasKey("width") {
			if width, err := section.Key("width").Int(); err == nil {
				keyConfig.Width = width
			}
		}
	}

	return keyConfig
}

// GetOutputConfig returns the output configuration
func (c *Config) GetOutputConfig() *OutputConfig {
	outputConfig := &OutputConfig{
		Format: "human", // fallback default
	}

	if c.ini.HasSection("output") {
		section := c.ini.Section("output")
		if section.HasKey("format") {
			outputConfig.Format = section.Key("format").String()
		}
	}

	return outputConfig
}

// GetVerboseConfig returns the verbose configuration
func (c *Config) GetVerboseConfig() *VerboseConfig {
	verboseConfig := &VerboseConfig{
		Level: 0,  // fallback default
		Debug: "", // fallback default
	}

	if c.ini.HasSection("verbose") {
		section := c.ini.Section("verbose")
		if section.HasKey("level") {
			if level, err := section.Key("level").Int(); err == nil {
				verboseConfig.Level = level
			}
		}
		if section.HasKey("debug") {
			verboseConfig.Debug = section.Key("debug").String()
		}
	}

	return verboseConfig
}

// GetAllConfig returns all configuration options
func (c *Config) GetAllConfig() *AllConfig {
	return &AllConfig{
		Key:     c.GetKeyConfig(),
		Output:  c.GetOutputConfig(),
		Verbose: c.GetVerboseConfig(),
	}
}

// SetKeyWidth sets the grouping key width
func (c *Config) SetKeyWidth(width int) error {
	section := c.ini.Section("key")
	section.Key("width").SetValue(fmt.Sprintf("%d", width))
	return c.Save()
}

// SetOutputFormat sets the default report format
func (c *Config) SetOutputFormat(format string) error {
	section := c.ini.Section("output")
	section.Key("format").SetValue(format)
	return c.Save()
}

// SetVerboseLevel sets the default verbose level
func (c *Config) SetVerboseLevel(level int) error {
	section := c.ini.Section("verbose")
	section.Key("level").SetValue(fmt.Sprintf("%d", level))
	return c.Save()
}

// Save saves the configuration to disk
func (c *Config) Save() error {
	if c.configPath == "" {
		return fmt.Errorf("no config path set")
	}
	return c.ini.SaveTo(c.configPath)
}

// ApplyOverrides applies command-line overrides to the configuration.
// Accepts strings like "width:8", "format:json", "level:2", "debug:scan".
func (c *Config) ApplyOverrides(overrides []string) error {
	for _, override := range overrides {
		parts := strings.SplitN(override, ":", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid override format '%s', expected 'key:value'", override)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "width":
			// key.width override
			section := c.ini.Section("key")
			section.Key("width").SetValue(value)
		case "format":
			// output.format override
			section := c.ini.Section("output")
			section.Key("format").SetValue(value)
		case "level":
			// verbose.level override
			section := c.ini.Section("verbose")
			section.Key("level").SetValue(value)
		case "debug":
			// verbose.debug override
			section := c.ini.Section("verbose")
			section.Key("debug").SetValue(value)
		default:
			return fmt.Errorf("unsupported override key '%s' (supported: width, format, level, debug)", key)
		}
	}

	return nil
}

// ValidateOutputFormat validates that a report format is supported
func ValidateOutputFormat(format string) error {
	switch strings.ToLower(format) {
	case "human", "json", "fdupes":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s (supported: human, json, fdupes)", format)
	}
}

// ValidateVerboseLevel validates that a verbose level is valid
func ValidateVerboseLevel(level int) error {
	if level < 0 || level > 3 {
		return fmt.Errorf("invalid verbose level: %d (supported: 0-3)", level)
	}
	return nil
}

// ValidateDebugFlags validates debug flags (lenient - allows any comma-separated values)
func ValidateDebugFlags(debug string) error {
	return nil
}
