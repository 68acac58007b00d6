package core

import (
	"fmt"
	"log"
	"sync"

	cfg "github.com/automoto/collide/config"
	"github.com/automoto/collide/shared/messages"
	"github.com/automoto/collide/shared/netcomponents"
	"github.com/automoto/collide/shared/replay"
	"github.com/automoto/collide/systems"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// Options configures a Server.
type Options struct {
	Name       string
	Level      string // empty picks the first level by name
	TickRate   int
	MaxPlayers int
	HotReload  bool
	Record     string // recording name in the data store, empty to disable
	AppName    string // data store namespace
}

// OptionsFromConfig builds Options from the loaded configuration.
func OptionsFromConfig() Options {
	return Options{
		Name:       cfg.Server.Name,
		Level:      cfg.Level.Start,
		TickRate:   cfg.Server.TickRate,
		MaxPlayers: cfg.Server.MaxPlayers,
		HotReload:  cfg.Server.HotReload,
		Record:     cfg.Server.Record,
		AppName:    cfg.Server.AppName,
	}
}

// Server runs one level for the connected clients. Router callbacks, the
// game loop and the level watcher all go through mu.
type Server struct {
	mu   sync.Mutex
	opts Options

	levels    *Levels
	sim       *Simulation
	loop      *GameLoop
	transport *transports.WsServerTransport
	watcher   *Watcher

	// Track which network client owns which actor
	clients map[*router.NetworkClient]int32
	joins   int
	pending []replay.Intent

	recorder *replay.Recorder
	store    *replay.Store
}

// NewServer creates a new game server
func NewServer(levels *Levels, opts Options) (*Server, error) {
	if opts.TickRate <= 0 {
		return nil, fmt.Errorf("tick rate must be positive, got %d", opts.TickRate)
	}
	level, err := levels.Get(opts.Level)
	if err != nil {
		return nil, err
	}

	world := donburi.NewWorld()

	// Set up the world for esync
	srvsync.UseEsync(world)

	s := &Server{
		opts:    opts,
		levels:  levels,
		sim:     NewSimulationInWorld(world, level, opts.TickRate),
		clients: make(map[*router.NetworkClient]int32),
	}
	s.loop = NewGameLoop(s, opts.TickRate)

	if opts.Record != "" {
		store, err := replay.OpenStore(opts.AppName)
		if err != nil {
			return nil, err
		}
		s.store = store
		s.recorder = replay.NewRecorder(level.Name, opts.TickRate)
	}

	s.setupRouterCallbacks()

	log.Printf("[server] level %s (%s): %d sectors, %d models, %d decorations",
		level.Name, level.Kind, len(level.Sectors), len(level.Models), len(level.Decorations))
	return s, nil
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	if s.opts.HotReload {
		w, err := NewWatcher(s.levels.Dir())
		if err != nil {
			return fmt.Errorf("watch levels: %w", err)
		}
		s.watcher = w
		go s.watchLevels()
	}

	// Start game loop
	go s.loop.Run()

	// Create and start WebSocket transport
	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
	if s.watcher != nil {
		_ = s.watcher.Close()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveRecording()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("[server] client connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.onJoin(client, req)
	})

	router.On(func(client *router.NetworkClient, intent messages.MoveIntent) {
		s.onMoveIntent(client, intent)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

func (s *Server) onJoin(client *router.NetworkClient, req messages.JoinRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, joined := s.clients[client]; joined {
		return
	}
	if len(s.clients) >= s.opts.MaxPlayers {
		s.send(client, messages.JoinRejected{Reason: "server full"})
		return
	}

	spawnIndex := s.joins
	entry, id, err := s.sim.SpawnPlayer(client.Id(), spawnIndex,
		netcomponents.NetPosition,
		netcomponents.NetVelocity,
		netcomponents.NetBodyState,
	)
	if err != nil {
		log.Printf("[server] spawn for %s failed: %v", client.Id(), err)
		s.send(client, messages.JoinRejected{Reason: "no spawn point"})
		return
	}
	s.joins++
	systems.UpdateNetState(s.sim.ECS())

	// Mark entity for network sync with interpolation for position
	entity := entry.Entity()
	if err := srvsync.NetworkSync(s.sim.World(), &entity,
		srvsync.WithInterp(netcomponents.NetPosition, netcomponents.NetVelocity),
		netcomponents.NetBodyState,
	); err != nil {
		log.Printf("[server] failed to set up network sync for %s: %v", client.Id(), err)
		s.sim.RemoveActor(id)
		return
	}

	s.clients[client] = id
	if s.recorder != nil {
		s.recorder.AddActor(id, spawnIndex, s.sim.Tick())
	}

	level := s.sim.LevelData()
	s.send(client, messages.JoinAccepted{
		Actor:      id,
		ServerName: s.opts.Name,
		Level:      level.Level.Name,
		TickRate:   level.TickRate,
	})
	log.Printf("[server] %q joined as actor %d (client %s)", req.PlayerName, id, client.Id())
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("[server] client %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("[server] client %s disconnected", client.Id())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, exists := s.clients[client]
	if !exists {
		return
	}
	delete(s.clients, client)
	s.sim.RemoveActor(id)
	if s.recorder != nil {
		s.recorder.RemoveActor(id, s.sim.Tick())
	}
}

// onMoveIntent queues the intent for the next tick. A later intent from the
// same client within one tick replaces the earlier one.
func (s *Server) onMoveIntent(client *router.NetworkClient, msg messages.MoveIntent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, exists := s.clients[client]
	if !exists {
		return
	}
	in := replay.Intent{Actor: id, Sequence: msg.Sequence, X: msg.X, Y: msg.Y, Z: msg.Z}
	for i := range s.pending {
		if s.pending[i].Actor == id {
			s.pending[i] = in
			return
		}
	}
	s.pending = append(s.pending, in)
}

// Tick applies the queued intents and steps the simulation once.
func (s *Server) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tick := s.sim.Tick()
	intents := s.pending
	s.pending = nil

	s.sim.Apply(intents)
	if s.recorder != nil {
		s.recorder.Record(tick, intents)
	}
	s.sim.Step()

	if cfg.Collision.Verbose && tick%uint64(s.opts.TickRate) == 0 {
		systems.LogBodies(s.sim.ECS())
	}
}

func (s *Server) watchLevels() {
	events, errs := s.watcher.Events, s.watcher.Errors
	for events != nil || errs != nil {
		select {
		case path, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			s.reloadLevel(path)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			log.Printf("[server] level watcher: %v", err)
		}
	}
}

func (s *Server) reloadLevel(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.levels.Reload(path)
	if err != nil {
		log.Printf("[server] reload %s: %v", path, err)
		return
	}
	if l.Name != s.sim.LevelData().Level.Name {
		log.Printf("[server] level %s changed on disk (not running)", l.Name)
		return
	}

	// bodies stay where they are, so a recording could not reproduce them
	s.saveRecording()
	s.recorder = nil

	s.sim.SwapLevel(l)
	log.Printf("[server] reloaded level %s", l.Name)
}

func (s *Server) saveRecording() {
	if s.recorder == nil || s.store == nil {
		return
	}
	rec := s.recorder.Recording()
	if err := s.store.Save(s.opts.Record, rec); err != nil {
		log.Printf("[server] %v", err)
		return
	}
	log.Printf("[server] saved recording %q (%d ticks, %d frames)", s.opts.Record, rec.Ticks, len(rec.Frames))
}

func (s *Server) send(client *router.NetworkClient, msg any) {
	if err := client.SendMessage(msg); err != nil {
		log.Printf("[server] send to %s: %v", client.Id(), err)
	}
}

// PlayerCount returns the number of joined players
func (s *Server) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}
