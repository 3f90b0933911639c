// Command gcal-auth authorizes Google Calendar access once and stores the
// OAuth token the API reads from google_calendar.token_path.
//
// Usage:
//
//	go run ./scripts/gcal-auth --credentials google-credentials.json --token token.json
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"

	"life-balance-planner/pkg/gcalendar"
)

func main() {
	credsPath := pflag.String("credentials", "google-credentials.json", "OAuth desktop app credentials file")
	tokenPath := pflag.String("token", "token.json", "where to write the token")
	pflag.Parse()

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", *credsPath, err)
	}

	flow, err := gcalendar.NewAuthFlow(data)
	if err != nil {
		log.Fatalf("%v\nMake sure %q is an OAuth Desktop App credentials file.", err, *credsPath)
	}

	fmt.Println("Step 1: open this URL and sign in with the Google account that owns the calendar:")
	fmt.Println()
	fmt.Println(flow.URL())
	fmt.Println()
	fmt.Print("Step 2: paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := flow.Exchange(context.Background(), code)
	if err != nil {
		log.Fatal(err)
	}
	if err := gcalendar.SaveToken(*tokenPath, tok); err != nil {
		log.Fatal(err)
	}

	fmt.Println()
	fmt.Printf("Token saved to %s. Restart the API to enable calendar export.\n", *tokenPath)
}
