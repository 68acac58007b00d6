package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	cfg "github.com/automoto/collide/config"
	"github.com/automoto/collide/server/core"
	"github.com/automoto/collide/shared/protocol"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file (empty = defaults)")
	port := flag.Uint("port", 0, "Server port (0 = from config)")
	tickRate := flag.Int("tickrate", 0, "Server tick rate (0 = from config)")
	level := flag.String("level", "", "Level to run (empty = from config, then first by name)")
	levelsDir := flag.String("levels", "", "Levels directory (empty = from config)")
	record := flag.String("record", "", "Store a recording of the session under this name")
	verbose := flag.Bool("verbose", false, "Log collision hits and body state")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *port != 0 {
		cfg.Server.Port = int(*port)
	}
	if *tickRate > 0 {
		cfg.Server.TickRate = *tickRate
	}
	if *level != "" {
		cfg.Level.Start = *level
	}
	if *levelsDir != "" {
		cfg.Level.Dir = *levelsDir
	}
	if *record != "" {
		cfg.Server.Record = *record
	}
	if *verbose {
		cfg.Collision.Verbose = true
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	levels, err := core.LoadLevels(cfg.Level.Dir)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	server, err := core.NewServer(levels, core.OptionsFromConfig())
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting collide server %q on port %d (tick rate: %d/s, levels: %v)",
		cfg.Server.Name, cfg.Server.Port, cfg.Server.TickRate, levels.Names())
	if err := server.Start(uint(cfg.Server.Port)); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
