//go:build ignore
// +build ignore

// seed-demo seeds 6 months of realistic financial data for a demo user so the
// analytics views have something to show.
//
// Usage (against a local server started with ENV=local):
//   go run scripts/seed-demo.go
//
// Set API_URL and DEMO_USER to target a different server or user. The local
// server's dev middleware honors the X-Debug-Impersonate-User header, so no
// Firebase setup is needed.
package main

import (
	"bytes"
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"
)

const defaultAPIURL = "http://localhost:8111"

type transactionPayload struct {
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Date        string  `json:"date"`
	IsRecurring bool    `json:"isRecurring"`
}

type templatePayload struct {
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Frequency   string  `json:"frequency"`
	StartDate   string  `json:"startDate"`
}

func main() {
	rng := rand.New(rand.NewSource(42)) // deterministic for reproducibility

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	demoUser := os.Getenv("DEMO_USER")
	if demoUser == "" {
		demoUser = "local-dev-user"
	}

	log.Printf("Seeding 6 months of data for %s at %s", demoUser, apiURL)

	start := time.Now().AddDate(0, -6, 0)
	count := 0

	// Monthly salary on the 1st.
	for m := 0; m < 6; m++ {
		payday := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, m+1, 0)
		post(apiURL, demoUser, "/v1/transactions", transactionPayload{
			Type:        "INCOME",
			Category:    "Salary",
			Description: "Monthly salary",
			Amount:      5200,
			Date:        payday.Format("2006-01-02"),
		})
		count++
	}

	// Day-to-day spending with month-to-month jitter.
	categories := []struct {
		name string
		base float64
		per  int
	}{
		{"Food", 28, 14},
		{"Transport", 12, 8},
		{"Entertainment", 35, 4},
		{"Shopping", 60, 3},
		{"Health", 45, 2},
	}
	for m := 0; m < 6; m++ {
		monthStart := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, m+1, 0)
		for _, cat := range categories {
			for i := 0; i < cat.per; i++ {
				day := rng.Intn(28) + 1
				amount := cat.base * (0.7 + rng.Float64()*0.6)
				post(apiURL, demoUser, "/v1/transactions", transactionPayload{
					Type:     "EXPENSE",
					Category: cat.name,
					Amount:   float64(int(amount*100)) / 100,
					Date:     time.Date(monthStart.Year(), monthStart.Month(), day, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
				})
				count++
			}
		}
	}

	// A couple of EUR transactions so the multi-currency split shows up.
	for m := 0; m < 3; m++ {
		monthStart := time.Date(start.Year(), start.Month(), 10, 0, 0, 0, 0, time.UTC).AddDate(0, m+3, 0)
		post(apiURL, demoUser, "/v1/transactions", transactionPayload{
			Type:        "EXPENSE",
			Category:    "Travel",
			Description: "Trip expenses",
			Amount:      float64(80 + rng.Intn(120)),
			Currency:    "EUR",
			Date:        monthStart.Format("2006-01-02"),
		})
		count++
	}

	// Recurring bills, then materialize everything that is already due.
	bills := []templatePayload{
		{Type: "EXPENSE", Category: "Rent", Description: "Apartment rent", Amount: 1800, Frequency: "MONTHLY", StartDate: start.Format("2006-01-02")},
		{Type: "EXPENSE", Category: "Utilities", Description: "Electricity and water", Amount: 140, Frequency: "MONTHLY", StartDate: start.Format("2006-01-02")},
		{Type: "EXPENSE", Category: "Subscriptions", Description: "Streaming bundle", Amount: 35, Frequency: "MONTHLY", StartDate: start.Format("2006-01-02")},
	}
	for _, bill := range bills {
		post(apiURL, demoUser, "/v1/recurring", bill)
	}
	post(apiURL, demoUser, "/v1/recurring/process", struct{}{})

	log.Printf("Seeded %d transactions plus %d recurring bills", count, len(bills))
}

func post(apiURL, userID, path string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Fatalf("Failed to marshal payload: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, apiURL+path, bytes.NewReader(body))
	if err != nil {
		log.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Debug-Impersonate-User", userID)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("Request to %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Fatalf("Request to %s returned %s", path, resp.Status)
	}
}
