package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".gcalldial.toml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestReadConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, `
[google]
client_id = "cid"
client_secret = "secret"
`)

	config, err := readConfig(path)
	if err != nil {
		t.Fatalf("readConfig: %v", err)
	}

	if config.Calendar.Provider != "google" {
		t.Fatalf("expected default provider google, got %q", config.Calendar.Provider)
	}
	if config.Calendar.CalendarID != "primary" {
		t.Fatalf("expected default calendar primary, got %q", config.Calendar.CalendarID)
	}
	if config.Calendar.Dedup != dedupModeID {
		t.Fatalf("expected default dedup %q, got %q", dedupModeID, config.Calendar.Dedup)
	}
	if config.Calendar.lookahead != time.Hour {
		t.Fatalf("expected default lookahead 1h, got %v", config.Calendar.lookahead)
	}
	if config.Calendar.pollEvery != 5*time.Minute {
		t.Fatalf("expected default poll interval 5m, got %v", config.Calendar.pollEvery)
	}
	if config.Web.Listen != ":5000" {
		t.Fatalf("expected default listen :5000, got %q", config.Web.Listen)
	}
}

func TestReadConfigParsesDurations(t *testing.T) {
	path := writeConfigFile(t, `
[calendar]
lookahead = "2h"
poll_interval = "90s"
dedup = "content"
persist_state = true
`)

	config, err := readConfig(path)
	if err != nil {
		t.Fatalf("readConfig: %v", err)
	}

	if config.Calendar.lookahead != 2*time.Hour {
		t.Fatalf("expected 2h lookahead, got %v", config.Calendar.lookahead)
	}
	if config.Calendar.pollEvery != 90*time.Second {
		t.Fatalf("expected 90s poll interval, got %v", config.Calendar.pollEvery)
	}
	if config.Calendar.Dedup != dedupModeContent {
		t.Fatalf("expected content dedup, got %q", config.Calendar.Dedup)
	}
	if !config.Calendar.PersistState {
		t.Fatal("expected persist_state to be set")
	}
}

func TestReadConfigRejectsBadValues(t *testing.T) {
	t.Run("bad duration", func(t *testing.T) {
		path := writeConfigFile(t, `
[calendar]
poll_interval = "five minutes"
`)
		if _, err := readConfig(path); err == nil {
			t.Fatal("expected error for unparseable duration")
		}
	})

	t.Run("bad dedup mode", func(t *testing.T) {
		path := writeConfigFile(t, `
[calendar]
dedup = "fuzzy"
`)
		if _, err := readConfig(path); err == nil {
			t.Fatal("expected error for unknown dedup mode")
		}
	})
}

func TestReadConfigEnvOverrides(t *testing.T) {
	t.Setenv("TWILIO_ACCOUNT_SID", "ACenv")
	t.Setenv("TWILIO_AUTH_TOKEN", "tokenenv")
	t.Setenv("TWILIO_PHONE_NUMBER", "+15550002222")
	t.Setenv("MY_PHONE_NUMBER", "+15550001111")
	t.Setenv("APP_URL", "https://dial.example.net")

	path := writeConfigFile(t, `
[twilio]
account_sid = "ACfile"
owner_number = "+15559999999"
`)

	config, err := readConfig(path)
	if err != nil {
		t.Fatalf("readConfig: %v", err)
	}

	if config.Twilio.AccountSID != "ACenv" {
		t.Fatalf("env should override file, got %q", config.Twilio.AccountSID)
	}
	if config.Twilio.AuthToken != "tokenenv" {
		t.Fatalf("expected env auth token, got %q", config.Twilio.AuthToken)
	}
	if config.Twilio.FromNumber != "+15550002222" {
		t.Fatalf("expected env from number, got %q", config.Twilio.FromNumber)
	}
	if config.Twilio.OwnerNumber != "+15550001111" {
		t.Fatalf("expected env owner number, got %q", config.Twilio.OwnerNumber)
	}
	if config.Web.BaseURL != "https://dial.example.net" {
		t.Fatalf("expected env base url, got %q", config.Web.BaseURL)
	}
}
