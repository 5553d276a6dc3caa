package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/shuffler/internal/library"
)

const appName = "shuffler"

const defaultMinRun = time.Second

type Config struct {
	MusicDir     string   `koanf:"music_dir"`     // scanned when no playlist file is set (default: ~/Music)
	PlaylistFile string   `koanf:"playlist_file"` // line-delimited list of files, overrides the scan
	Extensions   []string `koanf:"extensions"`    // enabled formats (default: mp3, flac, wav, ogg)
	Exclude      []string `koanf:"exclude"`       // globs relative to music_dir

	Shuffle *bool         `koanf:"shuffle"` // shuffle before each pass (default: true)
	Repeat  *bool         `koanf:"repeat"`  // start a new pass at the end (default: true)
	MinRun  time.Duration `koanf:"min_run"` // plays shorter than this are logged as warnings (default: 1s)
	Volume  *float64      `koanf:"volume"`  // 0.0-1.0 (default: 1.0)

	Log LogConfig `koanf:"log"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	File  string `koanf:"file"`  // log file path (default: $XDG_STATE_HOME/shuffler/shuffler.log)
	Level string `koanf:"level"` // zerolog level name (default: "info")
}

// Load reads the config files in priority order. If path is not empty it
// is the only file read and it must exist.
func Load(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, err
		}
		return loadFrom([]string{path})
	}
	return loadFrom(getConfigPaths())
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Last existing file wins
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.MusicDir = expandPath(cfg.MusicDir)
	cfg.PlaylistFile = expandPath(cfg.PlaylistFile)
	cfg.Log.File = expandPath(cfg.Log.File)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/shuffler/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetMusicDir returns the directory to scan, defaulting to ~/Music.
func (c *Config) GetMusicDir() string {
	if c.MusicDir != "" {
		return c.MusicDir
	}
	return expandPath("~/Music")
}

// GetExtensions returns the enabled formats with defaults applied.
func (c *Config) GetExtensions() []string {
	if len(c.Extensions) == 0 {
		return library.DefaultExtensions
	}
	return c.Extensions
}

// ShuffleEnabled returns true unless shuffle is explicitly disabled.
func (c *Config) ShuffleEnabled() bool {
	return c.Shuffle == nil || *c.Shuffle
}

// RepeatEnabled returns true unless repeat is explicitly disabled.
func (c *Config) RepeatEnabled() bool {
	return c.Repeat == nil || *c.Repeat
}

// GetMinRun returns the minimum expected play time with defaults applied.
func (c *Config) GetMinRun() time.Duration {
	if c.MinRun <= 0 {
		return defaultMinRun
	}
	return c.MinRun
}

// GetVolume returns the playback volume clamped to 0.0-1.0, defaulting to 1.0.
func (c *Config) GetVolume() float64 {
	if c.Volume == nil {
		return 1
	}
	return min(max(*c.Volume, 0), 1)
}

// GetLogLevel returns the configured log level name, defaulting to "info".
func (c *Config) GetLogLevel() string {
	if c.Log.Level == "" {
		return "info"
	}
	return c.Log.Level
}

// LogPath returns the log file path, creating the default state directory
// when no file is configured.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}
