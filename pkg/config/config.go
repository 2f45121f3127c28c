package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Football FootballConfig `yaml:"football" json:"football" jsonschema:"description=Football data api configuration"`
	News     NewsConfig     `yaml:"news" json:"news" jsonschema:"description=News feed configuration"`
	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Refresh schedule configuration"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for RSS feed links"`
}

// FootballConfig holds football-data api settings
type FootballConfig struct {
	BaseURL       string        `yaml:"base_url" json:"base_url" jsonschema:"default=https://api.football-data.org/v4/,description=Football data api base URL"`
	APIKey        string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	TeamID        int           `yaml:"team_id" json:"team_id" jsonschema:"default=66,minimum=1,description=Club team id"`
	CompetitionID int           `yaml:"competition_id" json:"competition_id" jsonschema:"default=2021,minimum=1,description=League competition id"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Request timeout"`
	Retries       int           `yaml:"retries" json:"retries" jsonschema:"default=3,minimum=1,description=Attempts for transport errors and server failures"`
}

// NewsConfig holds news feed settings
type NewsConfig struct {
	URLs      []string      `yaml:"urls" json:"urls" jsonschema:"description=Feed URLs in order of preference"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Mozilla/5.0,description=User agent for feed requests"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Feed request timeout"`
	Title     string        `yaml:"title" json:"title" jsonschema:"default=Manchester United News,description=Title of the generated RSS feed"`
}

// ScheduleConfig holds refresh settings
type ScheduleConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval" json:"refresh_interval" jsonschema:"default=15m,description=Interval between full refreshes"`
}

// default feed urls, the first one is preferred
var defaultNewsURLs = []string{
	"https://www.theguardian.com/football/manchester-united/rss",
	"https://feeds.bbci.co.uk/sport/football/teams/manchester-united/rss.xml",
}

// Load reads configuration from a YAML file. Empty path means compiled-in defaults only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		// expand environment variables
		expanded := os.ExpandEnv(string(data))

		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// schema validation is supplementary, don't fail on it
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	// server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = "http://localhost:8080"
	}

	// football api
	if cfg.Football.BaseURL == "" {
		cfg.Football.BaseURL = "https://api.football-data.org/v4/"
	}
	if cfg.Football.TeamID == 0 {
		cfg.Football.TeamID = 66
	}
	if cfg.Football.CompetitionID == 0 {
		cfg.Football.CompetitionID = 2021
	}
	if cfg.Football.Timeout == 0 {
		cfg.Football.Timeout = 15 * time.Second
	}
	if cfg.Football.Retries == 0 {
		cfg.Football.Retries = 3
	}

	// news
	if len(cfg.News.URLs) == 0 {
		cfg.News.URLs = append([]string{}, defaultNewsURLs...)
	}
	if cfg.News.UserAgent == "" {
		cfg.News.UserAgent = "Mozilla/5.0"
	}
	if cfg.News.Timeout == 0 {
		cfg.News.Timeout = 15 * time.Second
	}
	if cfg.News.Title == "" {
		cfg.News.Title = "Manchester United News"
	}

	// schedule
	if cfg.Schedule.RefreshInterval == 0 {
		cfg.Schedule.RefreshInterval = 15 * time.Minute
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if _, err := url.ParseRequestURI(cfg.Football.BaseURL); err != nil {
		return fmt.Errorf("football.base_url is invalid: %w", err)
	}
	if cfg.Football.TeamID < 0 || cfg.Football.CompetitionID < 0 {
		return fmt.Errorf("football team and competition ids must be positive")
	}
	if cfg.Football.Retries < 0 {
		return fmt.Errorf("football.retries must be positive")
	}

	for i, u := range cfg.News.URLs {
		if _, err := url.ParseRequestURI(u); err != nil {
			return fmt.Errorf("news.urls[%d] is invalid: %w", i, err)
		}
	}

	if cfg.Schedule.RefreshInterval < time.Second {
		return fmt.Errorf("schedule refresh interval must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetFeedConfig returns base url and title of the generated news feed
func (c *Config) GetFeedConfig() (baseURL, title string) {
	return c.Server.BaseURL, c.News.Title
}
