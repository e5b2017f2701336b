package main

// CredentialError means the calendar or telephony side rejected or is
// missing credentials. The poll loop logs it and keeps running; the listing
// page shows it to the user.
type CredentialError struct {
	Err error
}

func (e *CredentialError) Error() string { return "credential error: " + e.Err.Error() }
func (e *CredentialError) Unwrap() error { return e.Err }

// TransportError covers network and API failures talking to the calendar
// source. The current poll cycle aborts; the next one proceeds normally.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "transport error: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }
