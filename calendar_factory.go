package main

import (
	"context"
	"database/sql"
	"fmt"
)

// CalendarFactory builds the configured calendar provider. Only one
// calendar is watched per process; the provider type comes from the
// calendar section of the config.
type CalendarFactory struct {
	config *Config
	db     *sql.DB
	ctx    context.Context
}

func NewCalendarFactory(ctx context.Context, config *Config, db *sql.DB) *CalendarFactory {
	return &CalendarFactory{
		config: config,
		db:     db,
		ctx:    ctx,
	}
}

func (cf *CalendarFactory) CreateCalendarProvider() (CalendarProvider, error) {
	switch cf.config.Calendar.Provider {
	case "google":
		client, err := getClient(cf.ctx, oauthConfig, cf.db, cf.config.Google.Account)
		if err != nil {
			return nil, err
		}
		return NewGoogleCalendarProvider(cf.ctx, client)

	case "caldav":
		if cf.config.CalDAV.ServerURL == "" {
			return nil, fmt.Errorf("caldav provider selected but caldav.server_url is not set")
		}
		return NewCalDAVProvider(cf.ctx, cf.config.CalDAV.ServerURL, cf.config.CalDAV.Username, cf.config.CalDAV.Password)

	default:
		return nil, fmt.Errorf("unsupported provider type: %s", cf.config.Calendar.Provider)
	}
}

// ValidateCalendarAccess checks if the provided calendar ID is accessible
func (cf *CalendarFactory) ValidateCalendarAccess(provider CalendarProvider, calendarID string) error {
	return provider.GetCalendar(calendarID)
}
