package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
)

var (
	serverURL  = flag.String("server", "http://localhost:8080", "Management API base URL")
	batteryIDs = flag.String("batteries", "1", "Comma-separated battery IDs to report for")
	interval   = flag.Duration("interval", 30*time.Second, "Telemetry interval")
	cycleBase  = flag.Int("cycles", 120, "Starting cycle count")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	var logger *zap.Logger
	var err error
	if *verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ids, err := parseBatteryIDs(*batteryIDs)
	if err != nil {
		logger.Fatal("Invalid battery IDs", zap.Error(err))
	}

	config := &SimulatorConfig{
		ServerURL:  *serverURL,
		BatteryIDs: ids,
		Interval:   *interval,
		CycleBase:  *cycleBase,
	}

	simulator := NewSimulator(config, logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nShutting down simulator...")
		simulator.Stop()
		os.Exit(0)
	}()

	fmt.Printf("BMS telemetry simulator started\n")
	fmt.Printf("  Server: %s\n", *serverURL)
	fmt.Printf("  Batteries: %v\n", ids)
	fmt.Printf("  Interval: %s\n", *interval)
	fmt.Println("\nPress Ctrl+C to stop")

	simulator.Run()
}

func parseBatteryIDs(raw string) ([]uint, error) {
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("battery id %q: %w", part, err)
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}
