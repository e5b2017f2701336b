package main

import (
	"fmt"
	"log"
)

// runAuth walks the interactive OAuth2 flow once and stores the resulting
// token, so the daemon can read the calendar unattended afterwards.
func runAuth(config *Config) {
	db, err := openDB(".gcalldial.db")
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	defer db.Close()

	if err := dbInit(db); err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	fmt.Printf("🔑 Authorizing account %s for read-only calendar access...\n", config.Google.Account)

	token, err := getTokenFromWeb(oauthConfig)
	if err != nil {
		log.Fatalf("Error obtaining token: %v", err)
	}

	if err := saveToken(db, config.Google.Account, token); err != nil {
		log.Fatalf("Error saving token: %v", err)
	}

	fmt.Printf("✅ Token stored for account %s\n", config.Google.Account)
}
