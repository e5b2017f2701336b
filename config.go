package main

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	LogLevel string         `toml:"log_level"`
	Calendar CalendarConfig `toml:"calendar"`
	Google   GoogleConfig   `toml:"google"`
	CalDAV   CalDAVConfig   `toml:"caldav"`
	Twilio   TwilioConfig   `toml:"twilio"`
	Web      WebConfig      `toml:"web"`
}

type CalendarConfig struct {
	Provider     string `toml:"provider"`
	CalendarID   string `toml:"calendar_id"`
	Lookahead    string `toml:"lookahead"`
	PollInterval string `toml:"poll_interval"`
	Dedup        string `toml:"dedup"`
	PersistState bool   `toml:"persist_state"`

	lookahead time.Duration
	pollEvery time.Duration
}

type GoogleConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	Account      string `toml:"account"`
}

type CalDAVConfig struct {
	ServerURL string `toml:"server_url"`
	Username  string `toml:"username"`
	Password  string `toml:"password"`
}

type TwilioConfig struct {
	AccountSID  string `toml:"account_sid"`
	AuthToken   string `toml:"auth_token"`
	FromNumber  string `toml:"from_number"`
	OwnerNumber string `toml:"owner_number"`
}

type WebConfig struct {
	Listen  string `toml:"listen"`
	BaseURL string `toml:"base_url"`
}

// Dedup policies. "id" keys purely on the calendar event id, so edits to an
// already-scheduled event never produce a second call. "content" mixes the
// extracted phone number and start time into the key, so a changed number or
// a moved meeting schedules a fresh call.
const (
	dedupModeID      = "id"
	dedupModeContent = "content"
)

var configDir string

func readConfig(filename string) (*Config, error) {
	// Try first current dir, then `$HOME/.config/gcalldial/`
	data, err := os.ReadFile(filename)
	if err != nil {
		data, err = os.ReadFile(os.Getenv("HOME") + "/.config/gcalldial/" + filename)
		if err != nil {
			return nil, err
		}
		configDir = os.Getenv("HOME") + "/.config/gcalldial/"
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := config.finalize(); err != nil {
		return nil, err
	}

	return &config, nil
}

// finalize applies environment overrides for the telephony secrets (the
// same variable names Twilio's own examples use), fills defaults, and
// parses the duration fields.
func (c *Config) finalize() error {
	if v := os.Getenv("TWILIO_ACCOUNT_SID"); v != "" {
		c.Twilio.AccountSID = v
	}
	if v := os.Getenv("TWILIO_AUTH_TOKEN"); v != "" {
		c.Twilio.AuthToken = v
	}
	if v := os.Getenv("TWILIO_PHONE_NUMBER"); v != "" {
		c.Twilio.FromNumber = v
	}
	if v := os.Getenv("MY_PHONE_NUMBER"); v != "" {
		c.Twilio.OwnerNumber = v
	}
	if v := os.Getenv("APP_URL"); v != "" {
		c.Web.BaseURL = v
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Calendar.Provider == "" {
		c.Calendar.Provider = "google"
	}
	if c.Calendar.CalendarID == "" {
		c.Calendar.CalendarID = "primary"
	}
	if c.Calendar.Dedup == "" {
		c.Calendar.Dedup = dedupModeID
	}
	if c.Calendar.Dedup != dedupModeID && c.Calendar.Dedup != dedupModeContent {
		return fmt.Errorf("calendar.dedup: must be %q or %q, got %q", dedupModeID, dedupModeContent, c.Calendar.Dedup)
	}
	if c.Google.Account == "" {
		c.Google.Account = "default"
	}
	if c.Web.Listen == "" {
		c.Web.Listen = ":5000"
	}

	var err error
	c.Calendar.lookahead, err = parseDurationOrDefault("calendar.lookahead", c.Calendar.Lookahead, time.Hour)
	if err != nil {
		return err
	}
	c.Calendar.pollEvery, err = parseDurationOrDefault("calendar.poll_interval", c.Calendar.PollInterval, 5*time.Minute)
	if err != nil {
		return err
	}

	return nil
}

func parseDurationOrDefault(path, raw string, def time.Duration) (time.Duration, error) {
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", path, raw, err)
	}
	if d <= 0 {
		return def, nil
	}
	return d, nil
}
