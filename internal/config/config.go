package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds every tunable of the app.
type Config struct {
	Scanner  ScannerConfig
	Provider ProviderConfig
	Waiter   WaiterConfig
	Kitchen  KitchenConfig
}

type ScannerConfig struct {
	FPS int
}

type ProviderConfig struct {
	RestaurantDelayMS int
	TableDelayMS      int
}

type WaiterConfig struct {
	TickMS       int
	CeilingTicks int
}

type KitchenConfig struct {
	ConfirmMS int
	PrepareMS int
	ReadyMS   int
	DeliverMS int
	PollMS    int
}

func Default() *Config {
	return &Config{
		Scanner:  ScannerConfig{FPS: 10},
		Provider: ProviderConfig{RestaurantDelayMS: 500, TableDelayMS: 300},
		Waiter:   WaiterConfig{TickMS: 1000, CeilingTicks: 300},
		Kitchen: KitchenConfig{
			ConfirmMS: 2000, PrepareMS: 3000, ReadyMS: 5000, DeliverMS: 4000, PollMS: 250,
		},
	}
}

// Load reads a two-level sectioned YAML file without external
// packages. Unknown sections and keys are skipped; absent keys keep
// their defaults, and a missing file yields the defaults wholesale.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't open the configuration file: %w", err)
	}
	defer file.Close()

	cfg := Default()
	scanner := bufio.NewScanner(file)

	var section string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasSuffix(line, ":") {
			section = strings.TrimSuffix(line, ":")
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)

		switch section {
		case "scanner":
			if key == "fps" {
				cfg.Scanner.FPS = atoi(value, cfg.Scanner.FPS)
			}
		case "provider":
			switch key {
			case "restaurant_delay_ms":
				cfg.Provider.RestaurantDelayMS = atoi(value, cfg.Provider.RestaurantDelayMS)
			case "table_delay_ms":
				cfg.Provider.TableDelayMS = atoi(value, cfg.Provider.TableDelayMS)
			}
		case "waiter":
			switch key {
			case "tick_ms":
				cfg.Waiter.TickMS = atoi(value, cfg.Waiter.TickMS)
			case "ceiling_ticks":
				cfg.Waiter.CeilingTicks = atoi(value, cfg.Waiter.CeilingTicks)
			}
		case "kitchen":
			switch key {
			case "confirm_ms":
				cfg.Kitchen.ConfirmMS = atoi(value, cfg.Kitchen.ConfirmMS)
			case "prepare_ms":
				cfg.Kitchen.PrepareMS = atoi(value, cfg.Kitchen.PrepareMS)
			case "ready_ms":
				cfg.Kitchen.ReadyMS = atoi(value, cfg.Kitchen.ReadyMS)
			case "deliver_ms":
				cfg.Kitchen.DeliverMS = atoi(value, cfg.Kitchen.DeliverMS)
			case "poll_ms":
				cfg.Kitchen.PollMS = atoi(value, cfg.Kitchen.PollMS)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	return cfg, nil
}

func atoi(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
