package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultJSONFileName   = "tasks.json"
	DefaultSQLiteFileName = "tasks.db"
	DefaultDiskvDirName   = "tasks"

	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendDiskv  = "diskv"
	BackendMemory = "memory"
)

type Storage struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
}

type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type UI struct {
	SelectTodayOnStart bool `toml:"select_today_on_start"`
	RenderMarkdown     bool `toml:"render_markdown"`
}

type Config struct {
	Storage Storage `toml:"storage"`
	Log     Log     `toml:"log"`
	UI      UI      `toml:"ui"`
}

func Default() Config {
	return Config{
		Storage: Storage{
			Backend: BackendJSON,
		},
		Log: Log{
			Level: "info",
		},
		UI: UI{
			SelectTodayOnStart: true,
			RenderMarkdown:     true,
		},
	}
}

func ResolvePath() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return DefaultConfigFileName
	}
	return filepath.Join(base, "taskcal", DefaultConfigFileName)
}

func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = BackendJSON
	}
	return cfg, nil
}

func Write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func FromEnv(base Config) Config {
	cfg := base
	if v, ok := getEnvString("TASKCAL_STORAGE_BACKEND"); ok {
		cfg.Storage.Backend = strings.ToLower(v)
	}
	if v, ok := getEnvString("TASKCAL_STORAGE_PATH"); ok {
		cfg.Storage.Path = v
	}
	if v, ok := getEnvString("TASKCAL_LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := getEnvString("TASKCAL_LOG_FILE"); ok {
		cfg.Log.File = v
	}
	if v, ok := getEnvBool("TASKCAL_SELECT_TODAY"); ok {
		cfg.UI.SelectTodayOnStart = v
	}
	if v, ok := getEnvBool("TASKCAL_RENDER_MARKDOWN"); ok {
		cfg.UI.RenderMarkdown = v
	}
	return cfg
}

func DefaultPath(backend string) string {
	switch backend {
	case BackendJSON:
		return filepath.Join(dataDir(), DefaultJSONFileName)
	case BackendSQLite:
		return filepath.Join(dataDir(), DefaultSQLiteFileName)
	case BackendDiskv:
		return filepath.Join(dataDir(), DefaultDiskvDirName)
	default:
		return ""
	}
}

// WithDefaultPath fills an empty storage path for the final backend. Call it
// after every layer has had its say about the backend.
func (c Config) WithDefaultPath() Config {
	if strings.TrimSpace(c.Storage.Path) == "" {
		c.Storage.Path = DefaultPath(c.Storage.Backend)
	}
	return c
}

func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite, BackendDiskv:
		if strings.TrimSpace(c.Storage.Path) == "" {
			return fmt.Errorf("config: storage path is required for backend %q", c.Storage.Backend)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}

func dataDir() string {
	if v := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); v != "" {
		return filepath.Join(v, "taskcal")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share", "taskcal")
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	return raw, raw != ""
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
