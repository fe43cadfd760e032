package config

import (
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"IssueCreator/internal/schedule"
)

const (
	defaultTimezone = "UTC"
	configPathEnv   = "ISSUE_CREATOR_CONFIG"
	buttondownKey   = "BUTTONDOWN_API_KEY"
	draftEmailEnv   = "DRAFT_RECIPIENT_EMAIL"
	draftSubIDEnv   = "DRAFT_SUBSCRIBER_ID"
	databaseDSNEnv  = "DATABASE_DSN"
	airtableKeyEnv  = "AIRTABLE_API_KEY"
	airtableBaseEnv = "AIRTABLE_BASE_ID"
	logLevelEnv     = "LOG_LEVEL"
	httpAddrEnv     = "HTTP_ADDR"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Newsletter NewsletterConfig `yaml:"newsletter"`
	Schedule   ScheduleConfig   `yaml:"schedule"`
	Email      EmailConfig      `yaml:"email"`
	Sources    SourcesConfig    `yaml:"sources"`
	Database   DatabaseConfig   `yaml:"database"`
	Server     ServerConfig     `yaml:"server"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
}

// LoggingConfig selects the slog level and handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// NewsletterConfig describes the publication itself.
type NewsletterConfig struct {
	SeriesName   string `yaml:"seriesName"`
	TemplatePath string `yaml:"templatePath"`
}

// ScheduleConfig is the weekly send slot. Weekday and hour are UTC.
type ScheduleConfig struct {
	Weekday  string         `yaml:"weekday"`
	Hour     int            `yaml:"hour"`
	Timezone string         `yaml:"timezone"`
	location *time.Location `yaml:"-"`
}

// Location resolves the timezone used to stamp scheduler triggers.
func (s ScheduleConfig) Location() *time.Location {
	if s.location != nil {
		return s.location
	}
	loc, _ := time.LoadLocation(defaultTimezone)
	return loc
}

// Slot converts the section into a schedule.Slot, falling back to the
// default slot for unknown weekdays or out of range hours.
func (s ScheduleConfig) Slot() schedule.Slot {
	wd, ok := parseWeekday(s.Weekday)
	if !ok || s.Hour < 0 || s.Hour > 23 {
		return schedule.DefaultSlot
	}
	return schedule.Slot{Weekday: wd, Hour: s.Hour}
}

// EmailConfig defines how to contact the email service.
type EmailConfig struct {
	Provider        string        `yaml:"provider"`
	BaseURL         string        `yaml:"baseUrl"`
	APIKey          string        `yaml:"apiKey"`
	Mode            string        `yaml:"mode"`
	TestRecipients  []string      `yaml:"testRecipients"`
	TestSubscribers []string      `yaml:"testSubscribers"`
	Timeout         time.Duration `yaml:"timeout"`
}

// SourcesConfig groups the upstream content endpoints.
type SourcesConfig struct {
	QuotesBaseURL string         `yaml:"quotesBaseUrl"`
	BooksBaseURL  string         `yaml:"booksBaseUrl"`
	LinksURL      string         `yaml:"linksUrl"`
	ArchiveURL    string         `yaml:"archiveUrl"`
	Airtable      AirtableConfig `yaml:"airtable"`
}

// AirtableConfig locates the sponsors table.
type AirtableConfig struct {
	BaseURL string `yaml:"baseUrl"`
	BaseID  string `yaml:"baseId"`
	APIKey  string `yaml:"apiKey"`
	Table   string `yaml:"table"`
}

// DatabaseConfig describes the optional Postgres run log.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// ServerConfig configures the HTTP trigger.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// SchedulerConfig toggles the in-process weekly trigger and sets when it
// fires. The trigger slot is independent of the send slot.
type SchedulerConfig struct {
	Enabled bool   `yaml:"enabled"`
	Weekday string `yaml:"weekday"`
	Hour    int    `yaml:"hour"`
}

// TriggerSlot returns the weekly trigger time, Friday 10:00 UTC unless set.
func (s SchedulerConfig) TriggerSlot() schedule.Slot {
	wd, ok := parseWeekday(s.Weekday)
	if !ok || s.Hour < 0 || s.Hour > 23 {
		return schedule.Slot{Weekday: time.Friday, Hour: 10}
	}
	return schedule.Slot{Weekday: wd, Hour: s.Hour}
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.bindTimezone()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(buttondownKey); v != "" {
		c.Email.APIKey = v
	}

	if v := os.Getenv(draftEmailEnv); v != "" {
		c.Email.TestRecipients = splitList(v)
	}

	if v := os.Getenv(draftSubIDEnv); v != "" {
		c.Email.TestSubscribers = splitList(v)
	}

	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}

	if v := os.Getenv(airtableKeyEnv); v != "" {
		c.Sources.Airtable.APIKey = v
	}

	if v := os.Getenv(airtableBaseEnv); v != "" {
		c.Sources.Airtable.BaseID = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(httpAddrEnv); v != "" {
		c.Server.Addr = v
	}
}

func (c *Config) bindTimezone() {
	tz := c.Schedule.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("config: unknown timezone %s, reverting to %s", tz, defaultTimezone)
		loc, _ = time.LoadLocation(defaultTimezone)
	}
	c.Schedule.location = loc
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.Newsletter.SeriesName != "" {
		base.Newsletter.SeriesName = override.Newsletter.SeriesName
	}
	if override.Newsletter.TemplatePath != "" {
		base.Newsletter.TemplatePath = override.Newsletter.TemplatePath
	}

	// weekday and hour travel together so that hour 0 can be configured
	if override.Schedule.Weekday != "" {
		base.Schedule.Weekday = override.Schedule.Weekday
		base.Schedule.Hour = override.Schedule.Hour
	}
	if override.Schedule.Timezone != "" {
		base.Schedule.Timezone = override.Schedule.Timezone
	}

	if override.Email.Provider != "" {
		base.Email.Provider = override.Email.Provider
	}
	if override.Email.BaseURL != "" {
		base.Email.BaseURL = override.Email.BaseURL
	}
	if override.Email.APIKey != "" {
		base.Email.APIKey = override.Email.APIKey
	}
	if override.Email.Mode != "" {
		base.Email.Mode = override.Email.Mode
	}
	if len(override.Email.TestRecipients) > 0 {
		base.Email.TestRecipients = override.Email.TestRecipients
	}
	if len(override.Email.TestSubscribers) > 0 {
		base.Email.TestSubscribers = override.Email.TestSubscribers
	}
	if override.Email.Timeout > 0 {
		base.Email.Timeout = override.Email.Timeout
	}

	if override.Sources.QuotesBaseURL != "" {
		base.Sources.QuotesBaseURL = override.Sources.QuotesBaseURL
	}
	if override.Sources.BooksBaseURL != "" {
		base.Sources.BooksBaseURL = override.Sources.BooksBaseURL
	}
	if override.Sources.LinksURL != "" {
		base.Sources.LinksURL = override.Sources.LinksURL
	}
	if override.Sources.ArchiveURL != "" {
		base.Sources.ArchiveURL = override.Sources.ArchiveURL
	}
	if override.Sources.Airtable.BaseURL != "" {
		base.Sources.Airtable.BaseURL = override.Sources.Airtable.BaseURL
	}
	if override.Sources.Airtable.BaseID != "" {
		base.Sources.Airtable.BaseID = override.Sources.Airtable.BaseID
	}
	if override.Sources.Airtable.APIKey != "" {
		base.Sources.Airtable.APIKey = override.Sources.Airtable.APIKey
	}
	if override.Sources.Airtable.Table != "" {
		base.Sources.Airtable.Table = override.Sources.Airtable.Table
	}

	if override.Database.DSN != "" {
		base.Database = override.Database
	}

	if override.Server.Addr != "" {
		base.Server = override.Server
	}

	if override.Scheduler.Enabled {
		base.Scheduler.Enabled = true
	}
	if override.Scheduler.Weekday != "" {
		base.Scheduler.Weekday = override.Scheduler.Weekday
		base.Scheduler.Hour = override.Scheduler.Hour
	}

	return base
}

func defaultConfig() Config {
	tz, _ := time.LoadLocation(defaultTimezone)
	return Config{
		Logging:    LoggingConfig{Level: "info", Format: "text"},
		Newsletter: NewsletterConfig{SeriesName: "Full Stack Bulletin"},
		Schedule:   ScheduleConfig{Weekday: "monday", Hour: 17, Timezone: defaultTimezone, location: tz},
		Email: EmailConfig{
			Provider: "buttondown",
			BaseURL:  "https://api.buttondown.com/v1",
			Mode:     "scheduled",
			Timeout:  20 * time.Second,
		},
		Sources: SourcesConfig{
			QuotesBaseURL: "https://fullStackbulletin.github.io/tech-quotes",
			BooksBaseURL:  "https://fullStackbulletin.github.io/fullstack-books",
			ArchiveURL:    "https://us15.campaign-archive.com/home/?u=b015626aa6028495fe77c75ea&id=55ace33899",
			Airtable: AirtableConfig{
				BaseURL: "https://api.airtable.com/v0",
				Table:   "Sponsors",
			},
		},
		Server:    ServerConfig{Addr: ":8080"},
		Scheduler: SchedulerConfig{Weekday: "friday", Hour: 10},
	}
}

func parseWeekday(value string) (time.Weekday, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == value {
			return d, true
		}
	}
	return 0, false
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
