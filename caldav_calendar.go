package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-webdav"
	"github.com/emersion/go-webdav/caldav"
)

type CalDAVProvider struct {
	client    *caldav.Client
	ctx       context.Context
	serverURL string
}

func NewCalDAVProvider(ctx context.Context, serverURL, username, password string) (*CalDAVProvider, error) {
	baseURL, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("invalid CalDAV server URL: %w", err)
	}

	// Create HTTP client with authentication if needed
	var httpClient webdav.HTTPClient = http.DefaultClient
	if username != "" && password != "" {
		httpClient = webdav.HTTPClientWithBasicAuth(httpClient, username, password)
	}

	c, err := caldav.NewClient(httpClient, baseURL.String())
	if err != nil {
		return nil, fmt.Errorf("failed to create CalDAV client: %w", err)
	}

	// Test connection
	_, err = c.FindCalendars(ctx, "") // Empty path means server root
	if err != nil {
		return nil, classifyCalDAVError("failed to connect to CalDAV server", err)
	}

	return &CalDAVProvider{
		client:    c,
		ctx:       ctx,
		serverURL: serverURL,
	}, nil
}

func (c *CalDAVProvider) GetCalendar(calendarID string) error {
	calURL, err := url.Parse(calendarID)
	if err != nil {
		return fmt.Errorf("invalid calendar URL: %w", err)
	}

	// Extract the calendar home set from the URL (usually the parent path)
	homeSetPath := "/"
	if calURL.Path != "" {
		parts := strings.Split(strings.TrimRight(calURL.Path, "/"), "/")
		if len(parts) > 1 {
			homeSetPath = "/" + strings.Join(parts[:len(parts)-1], "/")
		}
	}

	calendars, err := c.client.FindCalendars(c.ctx, homeSetPath)
	if err != nil {
		return classifyCalDAVError("failed to find calendars", err)
	}

	for _, cal := range calendars {
		if cal.Path == calURL.Path {
			return nil
		}
	}

	return fmt.Errorf("calendar not found at path: %s", calURL.Path)
}

func (c *CalDAVProvider) ListEvents(calendarID string, timeMin, timeMax time.Time) ([]*Event, error) {
	calURL, err := url.Parse(calendarID)
	if err != nil {
		return nil, fmt.Errorf("invalid calendar URL: %w", err)
	}

	// Setup a CalendarQuery to filter events by time range
	query := &caldav.CalendarQuery{
		CompFilter: caldav.CompFilter{
			Name: "VCALENDAR",
			Comps: []caldav.CompFilter{{
				Name:  "VEVENT",
				Start: timeMin,
				End:   timeMax,
			}},
		},
	}

	objects, err := c.client.QueryCalendar(c.ctx, calURL.Path, query)
	if err != nil {
		return nil, classifyCalDAVError("failed to list events", err)
	}

	var result []*Event
	for _, obj := range objects {
		calendar := obj.Data

		for _, comp := range calendar.Component.Children {
			if comp.Name != "VEVENT" {
				continue
			}

			status := strings.ToLower(getTextProp(comp.Props, "STATUS"))
			if status == "" {
				status = "confirmed"
			}

			ev := &Event{
				ID:          getTextProp(comp.Props, "UID"),
				Summary:     getTextProp(comp.Props, "SUMMARY"),
				Description: getTextProp(comp.Props, "DESCRIPTION"),
				Status:      status,
			}

			// A DATE-valued DTSTART is an all-day event; leave Start zero
			// so the scheduling pipeline skips it.
			if start := comp.Props.Get("DTSTART"); start != nil && start.ValueType() != ical.ValueDate {
				ev.Start, _ = comp.Props.DateTime("DTSTART", time.UTC)
				ev.End, _ = comp.Props.DateTime("DTEND", time.UTC)
			} else {
				ev.AllDay = true
			}

			result = append(result, ev)
		}
	}

	return result, nil
}

// Helper function to get text property safely
func getTextProp(props ical.Props, name string) string {
	prop := props.Get(name)
	if prop == nil {
		return ""
	}
	return prop.Value
}

// CalDAV servers report auth failures as plain HTTP errors; go-webdav wraps
// them as strings, so classification falls back to matching the status text.
func classifyCalDAVError(op string, err error) error {
	msg := err.Error()
	if strings.Contains(msg, "401") || strings.Contains(msg, "403") || strings.Contains(msg, "Unauthorized") {
		return &CredentialError{Err: fmt.Errorf("%s: %w", op, err)}
	}
	return &TransportError{Err: fmt.Errorf("%s: %w", op, err)}
}
