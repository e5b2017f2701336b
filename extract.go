package main

import "regexp"

// North-American dial-in numbers as people paste them into meeting
// descriptions: optional +1, optional parenthesized area code, spaces or
// hyphens between the groups. Deliberately permissive about separators.
var phonePattern = regexp.MustCompile(`\+?1?\s*-?\(?\d{3}\)?\s*-?\s*\d{3}\s*-?\s*\d{4}`)

// extractPhoneNumber returns the first phone number found in text,
// verbatim and unformatted, or "" if there is none. If a description
// contains several numbers only the first one is used.
func extractPhoneNumber(text string) string {
	if text == "" {
		return ""
	}
	return phonePattern.FindString(text)
}
