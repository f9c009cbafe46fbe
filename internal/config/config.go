// Package config resolves the capture-suite configuration: where traffic
// dumps live, tick timing, the metadata database, and the monitored service
// list. The value is built once at startup and passed to whichever component
// needs it; nothing here mutates after construction.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTrafficDir = "/traffic"
	DefaultTickLength = 2 * time.Minute
	DefaultStartDate  = "2018-06-27T13:00+02:00"
	DefaultMongoHost  = "localhost:27017"
)

// Environment variables consulted by FromEnv.
const (
	EnvTrafficDir = "TULIP_TRAFFIC_DIR"
	EnvTickLength = "TICK_LENGTH"
	EnvStartDate  = "TICK_START"
	EnvMongoHost  = "TULIP_MONGO"
)

// Service is one monitored endpoint.
type Service struct {
	IP   string `yaml:"ip"`
	Port int    `yaml:"port"`
	Name string `yaml:"name"`
}

type Config struct {
	TrafficDir string        `yaml:"traffic_dir"`
	TickLength time.Duration `yaml:"tick_length"`
	StartDate  string        `yaml:"start_date"`
	MongoHost  string        `yaml:"mongo_host"`
	Services   []Service     `yaml:"services"`
}

func Default() *Config {
	return &Config{
		TrafficDir: DefaultTrafficDir,
		TickLength: DefaultTickLength,
		StartDate:  DefaultStartDate,
		MongoHost:  DefaultMongoHost,
		Services: []Service{
			{IP: "127.0.0.1", Port: 3333, Name: "test"},
		},
	}
}

// FromEnv applies environment overrides to cfg and returns it. Values are
// taken as-is; a tick length that does not parse as milliseconds keeps the
// default.
func FromEnv(cfg *Config) *Config {
	if v := os.Getenv(EnvTrafficDir); v != "" {
		cfg.TrafficDir = v
	}
	if v := os.Getenv(EnvTickLength); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.TickLength = time.Duration(ms) * time.Millisecond
		}
	}
	if v := os.Getenv(EnvStartDate); v != "" {
		cfg.StartDate = v
	}
	if v := os.Getenv(EnvMongoHost); v != "" {
		cfg.MongoHost = v
	}
	return cfg
}

// Resolve builds the effective configuration: defaults, then an optional
// yaml file, then environment overrides.
func Resolve(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	return FromEnv(cfg), nil
}

// MongoURI assembles the connection string for the metadata database.
func (c *Config) MongoURI() string {
	return fmt.Sprintf("mongodb://%s/", c.MongoHost)
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
