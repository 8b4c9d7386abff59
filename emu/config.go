package emu

import (
	"os"
	"path/filepath"
	"slices"
	"sync"

	"spcplay/emu/log"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"
)

type Config struct {
	Audio     AudioConfig     `toml:"audio"`
	Emulation EmulationConfig `toml:"emulation"`
}

type AudioConfig struct {
	Backend      string `toml:"backend"`
	SampleRate   int    `toml:"sample_rate"`
	BufferSize   int    `toml:"buffer_size"` // in stereo frames
	DisableAudio bool   `toml:"disable_audio"`
}

type EmulationConfig struct {
	// Play time of songs without length in their tag.
	DefaultSeconds int `toml:"default_seconds"`

	// Keep playing when the song uses an unemulated DSP feature.
	AllowUnsupported bool `toml:"allow_unsupported"`
}

const (
	BackendSDL = "sdl"
	BackendOto = "oto"
)

var backends = []string{BackendSDL, BackendOto}

const (
	MinSampleRate = 8000
	MaxSampleRate = 96000
)

func DefaultConfig() Config {
	return Config{
		Audio: AudioConfig{
			Backend:    BackendSDL,
			SampleRate: 48000,
			BufferSize: 2048,
		},
		Emulation: EmulationConfig{
			DefaultSeconds: 180,
		},
	}
}

// Check replaces invalid values with their defaults.
func (cfg *Config) Check() {
	def := DefaultConfig()

	acfg := &cfg.Audio
	if !slices.Contains(backends, acfg.Backend) {
		log.ModEmu.Warnf("Invalid audio backend %q, fallback to %q", acfg.Backend, def.Audio.Backend)
		acfg.Backend = def.Audio.Backend
	}
	if acfg.SampleRate < MinSampleRate || acfg.SampleRate > MaxSampleRate {
		log.ModEmu.Warnf("Invalid sample rate %d, fallback to %d", acfg.SampleRate, def.Audio.SampleRate)
		acfg.SampleRate = def.Audio.SampleRate
	}
	if acfg.BufferSize <= 0 {
		acfg.BufferSize = def.Audio.BufferSize
	}
	if cfg.Emulation.DefaultSeconds <= 0 {
		cfg.Emulation.DefaultSeconds = def.Emulation.DefaultSeconds
	}
}

var ConfigDir = sync.OnceValue(func() string {
	dir := configdir.LocalConfig("spcplay")
	if err := configdir.MakePath(dir); err != nil {
		log.ModEmu.Fatalf("failed to create directory %s: %v", dir, err)
	}
	return dir
})

const cfgFilename = "config.toml"

// LoadConfigOrDefault loads the configuration from the spcplay config
// directory, or provides the default one.
func LoadConfigOrDefault() Config {
	cfg, err := LoadConfig(filepath.Join(ConfigDir(), cfgFilename))
	if err != nil {
		if !os.IsNotExist(err) {
			log.ModEmu.WarnZ("failed to load config, using defaults").Error("err", err).End()
		}
		return DefaultConfig()
	}
	return cfg
}

// LoadConfig loads the configuration file at path. Missing keys keep their
// default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), err
	}
	cfg.Check()
	return cfg, nil
}

// SaveConfig into spcplay config directory.
func SaveConfig(cfg Config) error {
	return saveConfig(filepath.Join(ConfigDir(), cfgFilename), cfg)
}

func saveConfig(path string, cfg Config) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, buf, 0644)
}
