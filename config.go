package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Window size constants
const (
	defaultWidth  = 800
	defaultHeight = 600
	minWidth      = 400
	minHeight     = 300
)

// Text constants
const (
	defaultFontSize = 16.0
	minFontSize     = 8.0
	maxFontSize     = 96.0
)

// GoToPage parity policy names as written in the config file
const (
	parityIncrementName = "increment"
	parityDecrementName = "decrement"
)

// ConfigLoadResult contains the result of loading configuration
type ConfigLoadResult struct {
	Config   Config
	HasError bool
	Warnings []string
	Status   string // "OK", "Default", "Warning", "Error"
}

// Config is read once at startup and never written back
type Config struct {
	WindowWidth   int                 `json:"window_width"`
	WindowHeight  int                 `json:"window_height"`
	FontPath      string              `json:"font_path"`
	FontSize      float64             `json:"font_size"`
	SortMethod    int                 `json:"sort_method"`
	ImagesOnly    bool                `json:"images_only"`
	GoToParity    string              `json:"goto_parity"`
	Debug         bool                `json:"debug"`
	Keybindings   map[string][]string `json:"keybindings"`
	Mousebindings map[string][]string `json:"mousebindings"`
}

// ParityPolicy returns the configured GoToPage tie-break
func (c Config) ParityPolicy() ParityPolicy {
	if c.GoToParity == parityDecrementName {
		return ParityDecrement
	}
	return ParityIncrement
}

// BookOptions returns the archive options selected by the config
func (c Config) BookOptions() BookOptions {
	return BookOptions{SortMethod: c.SortMethod, ImagesOnly: c.ImagesOnly}
}

func getConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "cbzview.json"
	}
	return filepath.Join(homeDir, ".cbzview.json")
}

func defaultConfig() Config {
	return Config{
		WindowWidth:   defaultWidth,
		WindowHeight:  defaultHeight,
		FontPath:      "",              // Embedded Go font
		FontSize:      defaultFontSize, // Status bar and help text
		SortMethod:    SortSimple,      // Byte-wise entry order
		ImagesOnly:    false,           // Every entry is a page
		GoToParity:    parityIncrementName,
		Debug:         false,
		Keybindings:   GetDefaultKeybindings(),
		Mousebindings: GetDefaultMousebindings(),
	}
}

func loadConfig() ConfigLoadResult {
	return loadConfigFromPath(getConfigPath())
}

func loadConfigFromPath(configPath string) ConfigLoadResult {
	config := defaultConfig()

	result := ConfigLoadResult{
		Config:   config,
		HasError: false,
		Warnings: []string{},
		Status:   "OK",
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Config file not found is not an error - use defaults
		result.Status = "Default"
		return result
	}

	if err := json.Unmarshal(data, &config); err != nil {
		log.Printf("Warning: Invalid config file %s, using defaults: %v", configPath, err)
		result.HasError = true
		result.Status = "Error"
		result.Warnings = append(result.Warnings, fmt.Sprintf("Invalid config file: %v", err))
		return result
	}

	// Validate minimum size
	if config.WindowWidth < minWidth {
		config.WindowWidth = defaultWidth
	}
	if config.WindowHeight < minHeight {
		config.WindowHeight = defaultHeight
	}

	// Validate font size
	if config.FontSize < minFontSize || config.FontSize > maxFontSize {
		config.FontSize = defaultFontSize
	}

	// Validate sort method
	if !isValidSortMethod(config.SortMethod) {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Unknown sort method %d", config.SortMethod))
		config.SortMethod = SortSimple
	}

	// Validate parity policy
	config.GoToParity = strings.ToLower(strings.TrimSpace(config.GoToParity))
	if config.GoToParity != parityIncrementName && config.GoToParity != parityDecrementName {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Unknown goto_parity %q", config.GoToParity))
		config.GoToParity = parityIncrementName
	}

	// Fill in missing bindings with defaults
	config.Keybindings = mergeBindings(config.Keybindings, GetDefaultKeybindings())
	config.Mousebindings = mergeBindings(config.Mousebindings, GetDefaultMousebindings())

	if err := validateKeybindings(config.Keybindings); err != nil {
		log.Printf("Warning: Invalid keybindings detected, using defaults: %v", err)
		config.Keybindings = GetDefaultKeybindings()
		result.Warnings = append(result.Warnings, fmt.Sprintf("Keybinding errors: %v", err))
	}
	if err := validateMousebindings(config.Mousebindings); err != nil {
		log.Printf("Warning: Invalid mouse bindings detected, using defaults: %v", err)
		config.Mousebindings = GetDefaultMousebindings()
		result.Warnings = append(result.Warnings, fmt.Sprintf("Mouse binding errors: %v", err))
	}

	if len(result.Warnings) > 0 {
		result.Status = "Warning"
	}
	result.Config = config
	return result
}

// mergeBindings fills actions missing from configured with their defaults
func mergeBindings(configured, defaults map[string][]string) map[string][]string {
	if configured == nil {
		return defaults
	}
	for action, inputs := range defaults {
		if _, exists := configured[action]; !exists {
			configured[action] = inputs
		}
	}
	return configured
}
