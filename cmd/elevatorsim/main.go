package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"elevatorsim/internal/building"
	"elevatorsim/internal/config"
	"elevatorsim/internal/elevator"
	"elevatorsim/internal/logger"
	"elevatorsim/internal/manager"
	"elevatorsim/internal/scheduling"
	"elevatorsim/internal/simevent"
)

var Logger = logger.GetLoggerConfigured(zerolog.InfoLevel)

func processCmdArgs() (string, string, string, int, int, int, int) {
	help := flag.Bool("help", false, "Show Help Window")
	configPath := flag.String("config", "", "Path to a yaml simulation config. Defaults to built-in settings")
	strategy := flag.String("strategy", "", "Override the scheduling strategy (shortest_path, least_busy, energy_efficient)")
	name := flag.String("name", "", "Set the building name. Defaults to a random name")
	floors := flag.Int("floors", 10, "Number of floors above ground")
	basements := flag.Int("basements", 0, "Number of basement floors")
	elevators := flag.Int("elevators", 2, "Number of elevators to provision")
	ticks := flag.Int("ticks", 20, "Number of simulation ticks to run")

	flag.Parse()

	if *help {
		fmt.Println("Usage: ./elevatorsim [OPTIONS]")
		fmt.Println("Elevator dispatch simulator")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *elevators < 1 {
		fmt.Println("At least one elevator is required")
		os.Exit(1)
	}
	if *ticks < 1 {
		fmt.Println("Tick count must be positive")
		os.Exit(1)
	}

	return *configPath, *strategy, *name, *floors, *basements, *elevators, *ticks
}

func main() {
	configPath, strategyName, name, floors, basements, elevators, ticks := processCmdArgs()

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			Logger.Fatal().Msgf("Loading config: %v", err)
		}
		cfg = loaded
	}
	if strategyName != "" {
		cfg.Strategy = strategyName
	}

	strategy, err := scheduling.New(cfg.Strategy, cfg.ReversalPenalty, cfg.LoadFactor)
	if err != nil {
		Logger.Fatal().Msgf("Selecting strategy: %v", err)
	}

	b, err := building.New(name, floors, basements)
	if err != nil {
		Logger.Fatal().Msgf("Creating building: %v", err)
	}
	Logger.Info().Msgf("Simulating %v with strategy %q", b, strategy.Name())

	m := manager.New(b, strategy, manager.WithStarvationThreshold(cfg.StarvationTicks))
	for i := 0; i < elevators; i++ {
		if _, err := m.AddElevator(0, cfg.DefaultCapacity); err != nil {
			Logger.Fatal().Msgf("Adding elevator: %v", err)
		}
	}

	seedDemoTraffic(m, b)

	events := m.StepSimulation(ticks)
	for _, event := range events {
		logEvent(event)
	}

	status := m.GetStatus()
	Logger.Info().Msgf("Simulation finished at tick %d with %d events", status.Tick, len(events))
	for _, car := range status.Elevators {
		Logger.Info().Msgf("Elevator: %v", car.String())
	}
	for _, req := range status.Requests {
		Logger.Info().Msgf("Request: %v", req.String())
	}
}

// seedDemoTraffic submits a small deterministic batch of hall calls spread
// over the floor range.
func seedDemoTraffic(m *manager.Manager, b *building.Building) {
	mid := (b.MinFloor() + b.MaxFloor()) / 2
	calls := []struct {
		floor int
		dir   elevator.Direction
	}{
		{b.MinFloor(), elevator.Up},
		{mid, elevator.Up},
		{mid, elevator.Down},
		{b.MaxFloor(), elevator.Down},
	}
	for _, call := range calls {
		if _, err := m.CreateExternalRequest(call.floor, call.dir); err != nil {
			Logger.Error().Msgf("Submitting hall call: %v", err)
		}
	}
}

func logEvent(event simevent.Event) {
	switch e := event.Value.(type) {
	case simevent.Arrived:
		Logger.Info().Msgf("Tick %d: elevator %d arrived at floor %d", e.Tick, e.Elevator, e.Floor)
	case simevent.PickedUp:
		Logger.Info().Msgf("Tick %d: elevator %d picked up request %d at floor %d", e.Tick, e.Elevator, e.Request, e.Floor)
	case simevent.DroppedOff:
		Logger.Info().Msgf("Tick %d: elevator %d dropped off request %d at floor %d", e.Tick, e.Elevator, e.Request, e.Floor)
	default:
		Logger.Warn().Msgf("Unknown event %v", event.Type())
	}
}
