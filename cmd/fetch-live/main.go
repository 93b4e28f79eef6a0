package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Vodeneev/livescores/internal/live"
	"github.com/Vodeneev/livescores/internal/pkg/config"
	"github.com/Vodeneev/livescores/internal/source"

	// Register all supported sources via init().
	_ "github.com/Vodeneev/livescores/internal/source/all"
)

// One-shot diagnostic: fetch live matches from a source, format them and
// print the display records as JSON.
func main() {
	configPath := flag.String("config", "configs/production.yaml", "Path to config file")
	sourceName := flag.String("source", "", "Source to fetch from (empty = source.enabled from config)")
	timeout := flag.Duration("timeout", 60*time.Second, "Fetch timeout")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	name := *sourceName
	if name == "" {
		name = cfg.Source.Enabled
	}
	if name == "" {
		name = "sample"
	}

	src, err := source.Create(name, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	raw, err := src.GetLiveMatches(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch live matches: %v\n", err)
		os.Exit(1)
	}

	matches := live.FormatMatches(raw, time.Now())

	out, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to marshal matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(out))
	fmt.Fprintf(os.Stderr, "Fetched %d live matches from %s\n", len(matches), src.GetName())
}
