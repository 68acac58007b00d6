package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CollisionConfig contains the tuning of the collision resolver
type CollisionConfig struct {
	MaxIterations  int   `yaml:"max_iterations"`  // Slide iterations per actor per tick
	MaxPortalHops  int   `yaml:"max_portal_hops"` // Sector changes per pass
	PortalReach    int32 `yaml:"portal_reach"`    // Extra reach when searching neighbouring sectors
	IgnoreEthereal bool  `yaml:"ignore_ethereal"`
	Verbose        bool  `yaml:"verbose"` // Log every pass that hits something
}

// ActorConfig contains the default body of spawned actors
type ActorConfig struct {
	Radius   int32 `yaml:"radius"`
	Height   int32 `yaml:"height"`
	MaxSpeed int32 `yaml:"max_speed"` // World units per second

	PartyRadius int32 `yaml:"party_radius"`
	PartyHeight int32 `yaml:"party_height"`
}

// LevelConfig contains level loading and spatial index settings
type LevelConfig struct {
	Dir      string `yaml:"dir"`
	Start    string `yaml:"start"`
	CellSize int32  `yaml:"cell_size"` // Outdoor grid and broad phase cell size
}

// ServerConfig contains the dedicated server settings
type ServerConfig struct {
	Name       string `yaml:"name"`
	Port       int    `yaml:"port"`
	TickRate   int    `yaml:"tick_rate"`
	MaxPlayers int    `yaml:"max_players"`
	HotReload  bool   `yaml:"hot_reload"`
	Record     string `yaml:"record"`   // Name to store a recording of the session under
	AppName    string `yaml:"app_name"` // Data store namespace for recordings
}

type Config struct {
	Collision CollisionConfig `yaml:"collision"`
	Actor     ActorConfig     `yaml:"actor"`
	Level     LevelConfig     `yaml:"level"`
	Server    ServerConfig    `yaml:"server"`
}

var C *Config
var Collision CollisionConfig
var Actor ActorConfig
var Level LevelConfig
var Server ServerConfig

func init() {
	Collision = CollisionConfig{
		MaxIterations:  100,
		MaxPortalHops:  8,
		PortalReach:    16,
		IgnoreEthereal: true,
	}

	Actor = ActorConfig{
		Radius:   16,
		Height:   64,
		MaxSpeed: 256,

		PartyRadius: 20,
		PartyHeight: 96,
	}

	Level = LevelConfig{
		Dir:      "levels",
		Start:    "",
		CellSize: 512,
	}

	Server = ServerConfig{
		Name:       "collide",
		Port:       7373,
		TickRate:   60,
		MaxPlayers: 8,
		AppName:    "collide",
	}

	C = &Config{Collision: Collision, Actor: Actor, Level: Level, Server: Server}
}

// Load overlays the YAML file at path onto the current settings. Keys that
// are missing from the file keep their current value.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return Apply(data)
}

// Apply overlays YAML data onto the current settings.
func Apply(data []byte) error {
	next := Config{Collision: Collision, Actor: Actor, Level: Level, Server: Server}
	if err := yaml.Unmarshal(data, &next); err != nil {
		return fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := next.Validate(); err != nil {
		return err
	}

	Collision = next.Collision
	Actor = next.Actor
	Level = next.Level
	Server = next.Server
	C = &next
	return nil
}

func (c *Config) Validate() error {
	if c.Collision.MaxIterations <= 0 {
		return fmt.Errorf("config: collision.max_iterations must be positive, got %d", c.Collision.MaxIterations)
	}
	if c.Server.TickRate <= 0 {
		return fmt.Errorf("config: server.tick_rate must be positive, got %d", c.Server.TickRate)
	}
	if c.Level.CellSize <= 0 {
		return fmt.Errorf("config: level.cell_size must be positive, got %d", c.Level.CellSize)
	}
	if c.Actor.Radius <= 0 || c.Actor.Height < c.Actor.Radius {
		return fmt.Errorf("config: actor radius %d / height %d are invalid", c.Actor.Radius, c.Actor.Height)
	}
	return nil
}
