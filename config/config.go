// Package config persists the hosting preferences: how fast to clock the
// chip and where its output goes. The chip contract itself (bit layout,
// note table) is not configurable.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Clock rate bounds. The reference verification protocol clocks the chip
// at 100 kHz; the default here is slower so the melody plays at a
// listenable tempo.
const (
	DefaultClockHz = 1000
	MaxClockHz     = 1_000_000
)

// MIDIConfig defines the MIDI output destination
type MIDIConfig struct {
	PortName string `json:"portName,omitempty"`
	Channel  uint8  `json:"channel"` // 0-15
}

// AudioConfig stores audio output preferences
type AudioConfig struct {
	Enabled       bool `json:"enabled"`
	WAVSampleRate int  `json:"wavSampleRate,omitempty"`
}

// Config is the main configuration structure
type Config struct {
	ClockHz       int         `json:"clockHz"`
	PowerOnEnable bool        `json:"powerOnEnable"`
	PowerOnLoop   bool        `json:"powerOnLoop"`
	MIDI          MIDIConfig  `json:"midi,omitempty"`
	Audio         AudioConfig `json:"audio"`
	Palette       string      `json:"palette,omitempty"` // optional GPL palette file
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		ClockHz:     DefaultClockHz,
		PowerOnLoop: true,
		Audio: AudioConfig{
			Enabled:       true,
			WAVSampleRate: 44100,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-melody"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a config from an explicit path, applying defaults for a
// missing file and clamping the clock rate into range.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.ClockHz < 1 {
		cfg.ClockHz = DefaultClockHz
	}
	if cfg.ClockHz > MaxClockHz {
		cfg.ClockHz = MaxClockHz
	}
	if cfg.MIDI.Channel > 15 {
		cfg.MIDI.Channel = 0
	}
	if cfg.Audio.WAVSampleRate < 1 {
		cfg.Audio.WAVSampleRate = 44100
	}

	return &cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return c.SaveFile(filepath.Join(dir, "config.json"))
}

// SaveFile writes the config to an explicit path
func (c *Config) SaveFile(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
