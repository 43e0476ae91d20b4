package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port int `yaml:"port"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// SupabaseConfig holds everything needed to reach the managed backend.
// The service role key bypasses row level security and is preferred for
// admin reads; the anon key is the fallback.
type SupabaseConfig struct {
	URL            string `yaml:"url"`
	ServiceRoleKey string `yaml:"service_role_key"`
	AnonKey        string `yaml:"anon_key"`
	StorageBucket  string `yaml:"storage_bucket"`
}

// Key returns the key the REST client should authenticate with.
func (c SupabaseConfig) Key() string {
	if c.ServiceRoleKey != "" {
		return c.ServiceRoleKey
	}
	return c.AnonKey
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type TracingConfig struct {
	Enabled          bool    `yaml:"enabled"`
	OTLPGrpcEndpoint string  `yaml:"otlp_grpc_endpoint"`
	Insecure         bool    `yaml:"insecure"`
	SampleRate       float64 `yaml:"sample_rate"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type ObservabilityConfig struct {
	ServiceName     string        `yaml:"service_name"`
	Environment     string        `yaml:"environment"`
	RequestIDHeader string        `yaml:"request_id_header"`
	Tracing         TracingConfig `yaml:"tracing"`
	Metrics         MetricsConfig `yaml:"metrics"`
}

type Config struct {
	Server        ServerConfig        `yaml:"server"`
	CORS          CORSConfig          `yaml:"cors"`
	Supabase      SupabaseConfig      `yaml:"supabase"`
	Logging       LoggingConfig       `yaml:"logging"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// Load reads the YAML config file and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// No file is fine as long as the environment carries the essentials.
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnv(cfg)

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Supabase.URL == "" {
		return nil, fmt.Errorf("supabase url is required (SUPABASE_URL or config file)")
	}
	if cfg.Supabase.Key() == "" {
		return nil, fmt.Errorf("supabase key is required (SUPABASE_SERVICE_ROLE_KEY or SUPABASE_KEY)")
	}
	if cfg.Supabase.StorageBucket == "" {
		cfg.Supabase.StorageBucket = "places_images"
	}
	return cfg, nil
}

// MustLoad is Load that panics, for use in main.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SUPABASE_URL"); v != "" {
		cfg.Supabase.URL = v
	}
	if v := os.Getenv("SUPABASE_SERVICE_ROLE_KEY"); v != "" {
		cfg.Supabase.ServiceRoleKey = v
	}
	if v := os.Getenv("SUPABASE_KEY"); v != "" {
		cfg.Supabase.AnonKey = v
	}
	if v := os.Getenv("SUPABASE_BUCKET_NAME"); v != "" {
		cfg.Supabase.StorageBucket = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
