// Command replay runs a recorded session through the resolver again and
// prints where every body ended up.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	cfg "github.com/automoto/collide/config"
	"github.com/automoto/collide/server/core"
	"github.com/automoto/collide/shared/replay"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file (empty = defaults)")
	file := flag.String("file", "", "Read the recording from this file")
	name := flag.String("name", "", "Read the recording from the data store under this name")
	levelsDir := flag.String("levels", "", "Levels directory (empty = from config)")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *levelsDir != "" {
		cfg.Level.Dir = *levelsDir
	}

	rec, err := load(*file, *name)
	if err != nil {
		log.Fatalf("Failed to load recording: %v", err)
	}

	levels, err := core.LoadLevels(cfg.Level.Dir)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	l, err := levels.Get(rec.Level)
	if err != nil {
		log.Fatalf("Failed to find level: %v", err)
	}

	bodies, err := core.Replay(l, rec)
	if err != nil {
		log.Fatalf("Replay failed: %v", err)
	}

	fmt.Printf("%s: %d ticks at %d/s, %d actors\n", rec.Level, rec.Ticks, rec.TickRate, len(rec.Actors))
	for _, b := range bodies {
		fmt.Println(b)
	}
}

func load(file, name string) (*replay.Recording, error) {
	switch {
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return replay.Decode(f)
	case name != "":
		store, err := replay.OpenStore(cfg.Server.AppName)
		if err != nil {
			return nil, err
		}
		return store.Load(name)
	default:
		return nil, fmt.Errorf("one of -file or -name is required")
	}
}
