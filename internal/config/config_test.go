//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/shuffler/internal/library"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/music",
			expected: filepath.Join(home, "music"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/music/library/albums",
			expected: filepath.Join(home, "music", "library", "albums"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/local/music",
			expected: "/usr/local/music",
		},
		{
			name:     "relative path unchanged",
			input:    "music/albums",
			expected: "music/albums",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
		{
			name:     "tilde with slash",
			input:    "~/",
			expected: filepath.Join(home, ""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	// Should have at least one path
	if len(paths) == 0 {
		t.Error("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml
	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	// If we have home dir, first path should be ~/.config/shuffler/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "shuffler", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

func boolPtr(b bool) *bool { return &b }

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}
	cfg := Config{}

	assert.Equal(t, filepath.Join(home, "Music"), cfg.GetMusicDir())
	assert.Equal(t, library.DefaultExtensions, cfg.GetExtensions())
	assert.True(t, cfg.ShuffleEnabled())
	assert.True(t, cfg.RepeatEnabled())
	assert.Equal(t, time.Second, cfg.GetMinRun())
	assert.Equal(t, "info", cfg.GetLogLevel())
	assert.InDelta(t, 1.0, cfg.GetVolume(), 1e-9)
}

func TestShuffleRepeatEnabled(t *testing.T) {
	tests := []struct {
		name  string
		value *bool
		want  bool
	}{
		{"unset defaults to true", nil, true},
		{"explicit true", boolPtr(true), true},
		{"explicit false", boolPtr(false), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Shuffle: tt.value, Repeat: tt.value}
			assert.Equal(t, tt.want, cfg.ShuffleEnabled())
			assert.Equal(t, tt.want, cfg.RepeatEnabled())
		})
	}
}

func TestGetMinRun(t *testing.T) {
	tests := []struct {
		name  string
		value time.Duration
		want  time.Duration
	}{
		{"zero uses default", 0, time.Second},
		{"negative uses default", -time.Second, time.Second},
		{"custom value kept", 30 * time.Second, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{MinRun: tt.value}
			assert.Equal(t, tt.want, cfg.GetMinRun())
		})
	}
}

func TestGetVolume(t *testing.T) {
	vol := func(v float64) *float64 { return &v }
	tests := []struct {
		name  string
		value *float64
		want  float64
	}{
		{"unset defaults to full", nil, 1},
		{"half", vol(0.5), 0.5},
		{"muted", vol(0), 0},
		{"clamped high", vol(4), 1},
		{"clamped low", vol(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Volume: tt.value}
			assert.InDelta(t, tt.want, cfg.GetVolume(), 1e-9)
		})
	}
}

func TestLogPath_Configured(t *testing.T) {
	cfg := Config{Log: LogConfig{File: "/var/log/shuffler.log"}}

	path, err := cfg.LogPath()

	require.NoError(t, err)
	assert.Equal(t, "/var/log/shuffler.log", path)
}

func TestLoad_EmptyConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.toml", "")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Empty(t, cfg.MusicDir)
	assert.Empty(t, cfg.Extensions)
	assert.Nil(t, cfg.Shuffle)
	assert.Nil(t, cfg.Repeat)
}

func TestLoad_BasicConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.toml", `
music_dir = "/srv/music"
playlist_file = "/srv/lists/party.txt"
extensions = ["mp3", "FLAC"]
exclude = ["Podcasts", "**.demo.mp3"]
shuffle = false
repeat = false
min_run = "5s"
volume = 0.6

[log]
file = "/tmp/shuffler.log"
level = "debug"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/srv/music", cfg.GetMusicDir())
	assert.Equal(t, "/srv/lists/party.txt", cfg.PlaylistFile)
	assert.Equal(t, []string{"mp3", "FLAC"}, cfg.GetExtensions())
	assert.Equal(t, []string{"Podcasts", "**.demo.mp3"}, cfg.Exclude)
	assert.False(t, cfg.ShuffleEnabled())
	assert.False(t, cfg.RepeatEnabled())
	assert.Equal(t, 5*time.Second, cfg.GetMinRun())
	assert.InDelta(t, 0.6, cfg.GetVolume(), 1e-9)
	assert.Equal(t, "/tmp/shuffler.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.GetLogLevel())
}

func TestLoad_PathExpansion(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}
	path := writeConfig(t, t.TempDir(), "config.toml", `
music_dir = "~/Music/lossless"
playlist_file = "~/lists/all.txt"

[log]
file = "~/shuffler.log"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Music", "lossless"), cfg.MusicDir)
	assert.Equal(t, filepath.Join(home, "lists", "all.txt"), cfg.PlaylistFile)
	assert.Equal(t, filepath.Join(home, "shuffler.log"), cfg.Log.File)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))

	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_InvalidToml(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.toml", "invalid = [[[")

	_, err := Load(path)

	require.Error(t, err)
}

func TestLoadFrom_LaterFilesWin(t *testing.T) {
	dir := t.TempDir()
	global := writeConfig(t, dir, "global.toml", `
music_dir = "/global/music"
min_run = "10s"
`)
	local := writeConfig(t, dir, "local.toml", `
music_dir = "/local/music"
`)

	cfg, err := loadFrom([]string{global, filepath.Join(dir, "absent.toml"), local})

	require.NoError(t, err)
	assert.Equal(t, "/local/music", cfg.MusicDir)
	assert.Equal(t, 10*time.Second, cfg.GetMinRun())
}
