// Command benchmark measures vendor API latency through the etscore client.
// It requires ETSCORE_BASE_URL (and usually ETSCORE_AUTH_TOKEN) to point at
// a reachable environment.
//
// Usage:
//
//	go run ./cmd/benchmark -city Kayseri -hotel 300XXX -n 5
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/kaanyildiz/etscore-mcp-server/internal/etscore"
)

func main() {
	city := flag.String("city", "Kayseri", "City to resolve via autocomplete")
	hotel := flag.String("hotel", "", "Hotel code for detail benchmarks (skipped when empty)")
	iterations := flag.Int("n", 3, "Iterations per endpoint")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	config, err := etscore.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	client := etscore.NewClient(config, etscore.WithLogger(logger))
	ctx := context.Background()

	fmt.Println("ETS Score MCP Server - Latency Measurements")
	fmt.Println("===========================================")
	fmt.Println()

	benchAutocomplete(ctx, client, *city, *iterations)
	if *hotel != "" {
		benchHotelDetail(ctx, client, *hotel, *iterations)
	}
}

func benchAutocomplete(ctx context.Context, client *etscore.Client, city string, n int) {
	fmt.Printf("1. Location resolution for %q (%d runs):\n", city, n)

	var total time.Duration
	for i := 0; i < n; i++ {
		start := time.Now()
		id, ok := client.ResolveLocationID(ctx, city)
		elapsed := time.Since(start)
		total += elapsed
		if !ok {
			fmt.Printf("   Run %d: unresolved (%v)\n", i+1, elapsed)
			continue
		}
		fmt.Printf("   Run %d: location %d in %v\n", i+1, id, elapsed)
	}
	fmt.Printf("   Average: %v\n\n", total/time.Duration(n))
}

func benchHotelDetail(ctx context.Context, client *etscore.Client, hotelCode string, n int) {
	fmt.Printf("2. Hotel detail for %q (%d runs):\n", hotelCode, n)

	var total time.Duration
	for i := 0; i < n; i++ {
		start := time.Now()
		body, err := client.HotelDetail(ctx, hotelCode)
		elapsed := time.Since(start)
		total += elapsed
		if err != nil {
			fmt.Printf("   Run %d: error %v (%v)\n", i+1, err, elapsed)
			continue
		}
		fmt.Printf("   Run %d: %d bytes in %v\n", i+1, len(body), elapsed)
	}
	fmt.Printf("   Average: %v\n\n", total/time.Duration(n))
}
