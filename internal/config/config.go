package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Dir overrides the configuration directory when non-empty.
var Dir string

type Settings struct {
	// MaxDistance is the largest cloud distance still accepted as a match.
	MaxDistance float32 `json:"max_distance"`
	// MinPoints is the shortest raw stroke worth recognising.
	MinPoints int `json:"min_points"`
	// Samples is how many strokes learn expects per command.
	Samples int `json:"samples"`
	// MinSpacing drops samples closer than this to the previous one.
	MinSpacing float32 `json:"min_spacing"`
}

func DefaultSettings() *Settings {
	return &Settings{
		MaxDistance: 3.0,
		MinPoints:   5,
		Samples:     3,
		MinSpacing:  2,
	}
}

func GetDir() (string, error) {
	configDir := Dir
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "cannot locate home directory")
		}
		configDir = filepath.Join(homeDir, ".config", "cloudstroke")
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", errors.Wrapf(err, "cannot create config directory %s", configDir)
	}
	return configDir, nil
}

func GetPath() (string, error) {
	configDir, err := GetDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "gestures.json"), nil
}

func GetSettingsPath() (string, error) {
	configDir, err := GetDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "settings.json"), nil
}

func LoadSettings(logger *zap.SugaredLogger) (*Settings, error) {
	settingsPath, err := GetSettingsPath()
	if err != nil {
		return nil, err
	}

	defaultSettings := DefaultSettings()

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Infow("creating default settings file", "path", settingsPath)
			if err := createDefaultSettings(settingsPath, defaultSettings); err != nil {
				logger.Warnw("failed to create default settings file", "error", err)
			}
			return defaultSettings, nil
		}
		return nil, errors.Wrapf(err, "cannot read %s", settingsPath)
	}

	// Check for unrecognised keys
	var rawSettings map[string]interface{}
	if err := json.Unmarshal(data, &rawSettings); err != nil {
		logger.Warnw("invalid settings file, using defaults", "error", err)
		return defaultSettings, nil
	}

	knownKeys := getKnownKeys(Settings{})
	for key := range rawSettings {
		if !knownKeys[key] {
			logger.Warnw("unrecognised setting key in settings file", "key", key)
		}
	}

	// Keys missing from the file keep their defaults.
	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		logger.Warnw("invalid settings file, using defaults", "error", err)
		return defaultSettings, nil
	}

	if err := settings.sanitize(defaultSettings); err != nil {
		logger.Warnw("invalid settings replaced with defaults", "error", err)
	}

	return settings, nil
}

// sanitize resets every out-of-range value to its default and reports each one.
func (s *Settings) sanitize(defaults *Settings) error {
	var errs error
	if !(s.MaxDistance > 0) {
		errs = multierr.Append(errs, errors.Errorf("max_distance %.2f must be positive", s.MaxDistance))
		s.MaxDistance = defaults.MaxDistance
	}
	if s.MinPoints < 2 {
		errs = multierr.Append(errs, errors.Errorf("min_points %d must be at least 2", s.MinPoints))
		s.MinPoints = defaults.MinPoints
	}
	if s.Samples < 1 || s.Samples > 10 {
		errs = multierr.Append(errs, errors.Errorf("samples %d must be between 1 and 10", s.Samples))
		s.Samples = defaults.Samples
	}
	if !(s.MinSpacing >= 0) {
		errs = multierr.Append(errs, errors.Errorf("min_spacing %.2f must not be negative", s.MinSpacing))
		s.MinSpacing = defaults.MinSpacing
	}
	return errs
}

func createDefaultSettings(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func getKnownKeys(v interface{}) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if jsonTag := field.Tag.Get("json"); jsonTag != "" {
			// Handle json tags like "field,omitempty"
			tagName := strings.Split(jsonTag, ",")[0]
			if tagName != "-" {
				keys[tagName] = true
			}
		}
	}
	return keys
}
