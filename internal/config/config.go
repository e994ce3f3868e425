package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read when LANGMAP_CONFIG is unset and the file exists.
const DefaultFile = "langmap.yaml"

// Config holds all application configuration
type Config struct {
	GeometryPath   string  `yaml:"geometry_path"`
	TopologyObject string  `yaml:"topology_object"`
	DataDir        string  `yaml:"data_dir"`
	Mode           string  `yaml:"mode"`
	WheelStep      float64 `yaml:"wheel_step"`
	PanStep        int     `yaml:"pan_step"`
	LogFile        string  `yaml:"log_file"`
	LogLevel       string  `yaml:"log_level"`
	LogFormat      string  `yaml:"log_format"`
}

func Default() Config {
	return Config{
		GeometryPath:   "countries-110m.json",
		TopologyObject: "countries",
		Mode:           "highlight",
		WheelStep:      100,
		PanStep:        4,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Load builds the configuration from defaults, the YAML file, and the
// environment. A .env file, if present, feeds the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	path := os.Getenv("LANGMAP_CONFIG")
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if err := cfg.readFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if cfg.WheelStep <= 0 {
		return nil, fmt.Errorf("config: wheel_step must be positive, got %v", cfg.WheelStep)
	}
	if cfg.PanStep <= 0 {
		return nil, fmt.Errorf("config: pan_step must be positive, got %d", cfg.PanStep)
	}
	return &cfg, nil
}

func (c *Config) readFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.GeometryPath = getEnv("LANGMAP_GEOMETRY", c.GeometryPath)
	c.TopologyObject = getEnv("LANGMAP_TOPOLOGY_OBJECT", c.TopologyObject)
	c.DataDir = getEnv("LANGMAP_DATA_DIR", c.DataDir)
	c.Mode = getEnv("LANGMAP_MODE", c.Mode)
	c.LogFile = getEnv("LANGMAP_LOG_FILE", c.LogFile)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)

	var err error
	if c.WheelStep, err = getEnvAsFloat("LANGMAP_WHEEL_STEP", c.WheelStep); err != nil {
		return err
	}
	if c.PanStep, err = getEnvAsInt("LANGMAP_PAN_STEP", c.PanStep); err != nil {
		return err
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return f, nil
}
