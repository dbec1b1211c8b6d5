package engineconfig

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// EngineConfigPath is the path to the host config file, relative to the process working directory.
const EngineConfigPath = "config/engine.yaml"

// EnginePrefs holds host preferences: logging, where presets live, batch and image limits, and
// the viewer overlays. Generation parameters are not stored here; they come from presets.
type EnginePrefs struct {
	LogPath       string `yaml:"log_path"`
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
	PresetDir     string `yaml:"preset_dir"`
	DefaultPreset string `yaml:"default_preset"`
	DownloadDir   string `yaml:"download_dir"`
	Workers       int    `yaml:"workers"`
	MaxImageSize  int    `yaml:"max_image_size"`
	ShowFPS       bool   `yaml:"show_fps"`
	ShowStats     bool   `yaml:"show_stats"`
	GridVisible   bool   `yaml:"grid_visible"`
}

// Default returns default preferences (overlays off, grid on).
func Default() EnginePrefs {
	return EnginePrefs{
		LogPath:       "logs/lampforge.txt",
		LogLevel:      "info",
		LogFormat:     "json",
		PresetDir:     "presets",
		DefaultPreset: "ribbed_drum",
		DownloadDir:   "downloads",
		Workers:       4,
		MaxImageSize:  512,
		ShowFPS:       false,
		ShowStats:     false,
		GridVisible:   true,
	}
}

// Load reads preferences from config/engine.yaml.
func Load() (EnginePrefs, error) {
	return LoadFrom(EngineConfigPath)
}

// LoadFrom reads preferences from path. Keys missing from the file keep their defaults. If the
// file is missing or invalid, returns Default() and does not create a file.
func LoadFrom(path string) (EnginePrefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to config/engine.yaml, creating the config directory if needed.
func Save(p EnginePrefs) error {
	return SaveTo(EngineConfigPath, p)
}

// SaveTo writes preferences to path, creating its directory if needed.
func SaveTo(path string, p EnginePrefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides p with LAMPFORGE_* environment variables. Unparseable numbers are ignored.
func ApplyEnv(p EnginePrefs) EnginePrefs {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		if v, ok := os.LookupEnv(key); ok {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				*dst = n
			}
		}
	}
	str("LAMPFORGE_LOG_PATH", &p.LogPath)
	str("LAMPFORGE_LOG_LEVEL", &p.LogLevel)
	str("LAMPFORGE_LOG_FORMAT", &p.LogFormat)
	str("LAMPFORGE_PRESET_DIR", &p.PresetDir)
	str("LAMPFORGE_PRESET", &p.DefaultPreset)
	str("LAMPFORGE_DOWNLOAD_DIR", &p.DownloadDir)
	num("LAMPFORGE_WORKERS", &p.Workers)
	num("LAMPFORGE_MAX_IMAGE_SIZE", &p.MaxImageSize)
	return p
}
