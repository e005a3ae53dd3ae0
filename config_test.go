package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return configPath
}

func TestLoadConfigMissingFile(t *testing.T) {
	result := loadConfigFromPath(filepath.Join(t.TempDir(), "missing.json"))

	if result.Status != "Default" || result.HasError {
		t.Errorf("Expected Default status, got %s (error %v)", result.Status, result.HasError)
	}
	if !reflect.DeepEqual(result.Config, defaultConfig()) {
		t.Errorf("Expected default config, got %+v", result.Config)
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	result := loadConfigFromPath(writeConfig(t, `{"window_width": `))

	if result.Status != "Error" || !result.HasError {
		t.Errorf("Expected Error status, got %s", result.Status)
	}
	if len(result.Warnings) != 1 {
		t.Errorf("Expected one warning, got %v", result.Warnings)
	}
	if !reflect.DeepEqual(result.Config, defaultConfig()) {
		t.Errorf("Expected default config, got %+v", result.Config)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name           string
		configJSON     string
		expectedWidth  int
		expectedHeight int
		expectedFont   float64
		expectedSort   int
		expectedParity ParityPolicy
		expectedStatus string
	}{
		{
			name: "Valid config",
			configJSON: `{
				"window_width": 1000,
				"window_height": 800,
				"font_size": 20,
				"sort_method": 1,
				"goto_parity": "decrement"
			}`,
			expectedWidth:  1000,
			expectedHeight: 800,
			expectedFont:   20,
			expectedSort:   SortNatural,
			expectedParity: ParityDecrement,
			expectedStatus: "OK",
		},
		{
			name:           "Width too small",
			configJSON:     `{"window_width": 200, "window_height": 600}`,
			expectedWidth:  defaultWidth,
			expectedHeight: 600,
			expectedFont:   defaultFontSize,
			expectedSort:   SortSimple,
			expectedParity: ParityIncrement,
			expectedStatus: "OK",
		},
		{
			name:           "Height too small",
			configJSON:     `{"window_width": 900, "window_height": 100}`,
			expectedWidth:  900,
			expectedHeight: defaultHeight,
			expectedFont:   defaultFontSize,
			expectedSort:   SortSimple,
			expectedParity: ParityIncrement,
			expectedStatus: "OK",
		},
		{
			name:           "Font size out of range",
			configJSON:     `{"font_size": 500}`,
			expectedWidth:  defaultWidth,
			expectedHeight: defaultHeight,
			expectedFont:   defaultFontSize,
			expectedSort:   SortSimple,
			expectedParity: ParityIncrement,
			expectedStatus: "OK",
		},
		{
			name:           "Unknown sort method",
			configJSON:     `{"sort_method": 999}`,
			expectedWidth:  defaultWidth,
			expectedHeight: defaultHeight,
			expectedFont:   defaultFontSize,
			expectedSort:   SortSimple,
			expectedParity: ParityIncrement,
			expectedStatus: "Warning",
		},
		{
			name:           "Unknown parity",
			configJSON:     `{"goto_parity": "nearest"}`,
			expectedWidth:  defaultWidth,
			expectedHeight: defaultHeight,
			expectedFont:   defaultFontSize,
			expectedSort:   SortSimple,
			expectedParity: ParityIncrement,
			expectedStatus: "Warning",
		},
		{
			name:           "Parity is case insensitive",
			configJSON:     `{"goto_parity": " Decrement "}`,
			expectedWidth:  defaultWidth,
			expectedHeight: defaultHeight,
			expectedFont:   defaultFontSize,
			expectedSort:   SortSimple,
			expectedParity: ParityDecrement,
			expectedStatus: "OK",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := loadConfigFromPath(writeConfig(t, tt.configJSON))
			config := result.Config

			if config.WindowWidth != tt.expectedWidth {
				t.Errorf("Expected width %d, got %d", tt.expectedWidth, config.WindowWidth)
			}
			if config.WindowHeight != tt.expectedHeight {
				t.Errorf("Expected height %d, got %d", tt.expectedHeight, config.WindowHeight)
			}
			if config.FontSize != tt.expectedFont {
				t.Errorf("Expected font size %v, got %v", tt.expectedFont, config.FontSize)
			}
			if config.SortMethod != tt.expectedSort {
				t.Errorf("Expected sort method %d, got %d", tt.expectedSort, config.SortMethod)
			}
			if config.ParityPolicy() != tt.expectedParity {
				t.Errorf("Expected parity %d, got %d", tt.expectedParity, config.ParityPolicy())
			}
			if result.Status != tt.expectedStatus {
				t.Errorf("Expected status %s, got %s (%v)", tt.expectedStatus, result.Status, result.Warnings)
			}
		})
	}
}

func TestConfigBookOptions(t *testing.T) {
	result := loadConfigFromPath(writeConfig(t, `{"sort_method": 2, "images_only": true}`))
	opts := result.Config.BookOptions()

	if opts.SortMethod != SortEntryOrder || !opts.ImagesOnly {
		t.Errorf("Unexpected book options %+v", opts)
	}
}

func TestConfigPartialKeybindings(t *testing.T) {
	result := loadConfigFromPath(writeConfig(t, `{"keybindings": {"next": ["KeyN"]}}`))
	config := result.Config

	if !reflect.DeepEqual(config.Keybindings["next"], []string{"KeyN"}) {
		t.Errorf("Expected configured next binding, got %v", config.Keybindings["next"])
	}
	if !reflect.DeepEqual(config.Keybindings["exit"], []string{"Escape"}) {
		t.Errorf("Expected default exit binding, got %v", config.Keybindings["exit"])
	}
	if !reflect.DeepEqual(config.Mousebindings, GetDefaultMousebindings()) {
		t.Errorf("Expected default mouse bindings, got %v", config.Mousebindings)
	}
	if _, err := NewBindings(config.Keybindings, config.Mousebindings); err != nil {
		t.Errorf("Merged bindings rejected: %v", err)
	}
}

func TestConfigInvalidKeybindingsFallBack(t *testing.T) {
	tests := []struct {
		name       string
		configJSON string
	}{
		{"Conflict with default", `{"keybindings": {"next": ["Escape"]}}`},
		{"Unknown key", `{"keybindings": {"help": ["KeyUnknown"]}}`},
		{"Unknown action", `{"keybindings": {"rotate_left": ["KeyL"]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := loadConfigFromPath(writeConfig(t, tt.configJSON))

			if result.Status != "Warning" {
				t.Errorf("Expected Warning status, got %s", result.Status)
			}
			if !reflect.DeepEqual(result.Config.Keybindings, GetDefaultKeybindings()) {
				t.Errorf("Expected default keybindings, got %v", result.Config.Keybindings)
			}
		})
	}
}

func TestConfigInvalidMousebindingsFallBack(t *testing.T) {
	result := loadConfigFromPath(writeConfig(t, `{"mousebindings": {"next": ["DoubleLeftClick"]}}`))

	if result.Status != "Warning" {
		t.Errorf("Expected Warning status, got %s", result.Status)
	}
	if !reflect.DeepEqual(result.Config.Mousebindings, GetDefaultMousebindings()) {
		t.Errorf("Expected default mouse bindings, got %v", result.Config.Mousebindings)
	}
}

func TestConfigDebugAndFont(t *testing.T) {
	result := loadConfigFromPath(writeConfig(t, `{"debug": true, "font_path": "/fonts/a.ttf"}`))

	if !result.Config.Debug {
		t.Error("Expected debug enabled")
	}
	if result.Config.FontPath != "/fonts/a.ttf" {
		t.Errorf("Unexpected font path %s", result.Config.FontPath)
	}
}
