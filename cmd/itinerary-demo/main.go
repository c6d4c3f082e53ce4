// README: CLI demo; generates one itinerary and prints the JSON result.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"tripgen/internal/ai"
	"tripgen/internal/itinerary"
)

func main() {
	destination := flag.String("destination", "Tokyo", "trip destination")
	travelers := flag.Int("travelers", 2, "number of travelers")
	start := flag.String("start", "2024-05-01", "start date")
	end := flag.String("end", "2024-05-05", "end date")
	preferences := flag.String("preferences", "food and museums", "traveler preferences")
	budget := flag.String("budget", "", "trip budget")
	flag.Parse()

	_ = godotenv.Load()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY environment variable not set")
	}
	provider, err := ai.NewOpenAIProvider(apiKey)
	if err != nil {
		log.Fatalf("ai init: %v", err)
	}

	svc := itinerary.NewService(provider)
	res := svc.Generate(context.Background(), itinerary.Request{
		Destination: *destination,
		Travelers:   *travelers,
		StartDate:   *start,
		EndDate:     *end,
		Preferences: *preferences,
		Budget:      *budget,
	})

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		log.Fatalf("marshal result: %v", err)
	}
	fmt.Println(string(out))
	if res.Source != "" {
		fmt.Fprintf(os.Stderr, "result source: %s\n", res.Source)
	}
}
