package main

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// callDialer places leg 1 of the bridge: an outbound call to the owner that
// fetches its voice instructions from the webhook URL once answered.
type callDialer interface {
	PlaceCall(ctx context.Context, meetingPhone, eventName string) error
}

type twilioDialer struct {
	log         zerolog.Logger
	client      *twilio.RestClient
	ownerNumber string
	fromNumber  string
	baseURL     string
}

func newTwilioDialer(log zerolog.Logger, cfg TwilioConfig, baseURL string) *twilioDialer {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &twilioDialer{
		log:         log,
		client:      client,
		ownerNumber: cfg.OwnerNumber,
		fromNumber:  cfg.FromNumber,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

// webhookURL carries everything the bridge responder needs; there is no
// server-side session to look up.
func (d *twilioDialer) webhookURL(meetingPhone, eventName string) string {
	q := url.Values{}
	q.Set("meeting_phone", meetingPhone)
	q.Set("event_name", eventName)
	return d.baseURL + "/twilio-webhook?" + q.Encode()
}

func (d *twilioDialer) PlaceCall(ctx context.Context, meetingPhone, eventName string) error {
	params := &twilioapi.CreateCallParams{}
	params.SetTo(d.ownerNumber)
	params.SetFrom(d.fromNumber)
	params.SetUrl(d.webhookURL(meetingPhone, eventName))

	call, err := d.client.Api.CreateCall(params)
	if err != nil {
		return fmt.Errorf("creating call for %q: %w", eventName, err)
	}

	sid := ""
	if call.Sid != nil {
		sid = *call.Sid
	}
	d.log.Info().
		Str("call_sid", sid).
		Str("meeting_phone", meetingPhone).
		Str("event", eventName).
		Msg("outbound call initiated")

	return nil
}
