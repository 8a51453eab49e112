package core

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/kamatayan/assets"
	"github.com/automoto/kamatayan/components"
	cfg "github.com/automoto/kamatayan/config"
	"github.com/automoto/kamatayan/scenes"
	"github.com/automoto/kamatayan/shared/messages"
	"github.com/automoto/kamatayan/systems"
	"github.com/automoto/kamatayan/tags"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const pauseReasonNoPlayer = "waiting for a player"

// Options configures a Server.
type Options struct {
	Name     string
	TickRate int
	Level    *assets.Level
	Seed     int64
}

// Server runs one hunt and streams it to connected clients. The world is
// only touched on the loop goroutine; router callbacks queue commands.
type Server struct {
	ecs       *ecs.ECS
	world     donburi.World
	loop      *GameLoop
	transport *transports.WsServerTransport
	name      string
	level     string
	tuning    *cfg.Watcher

	// Loop goroutine only
	roster  *roster
	clients map[string]*router.NetworkClient

	commands []func()
	mu       sync.Mutex
}

// NewServer creates a new game server
func NewServer(opts Options) *Server {
	huntECS := scenes.NewHuntECS(opts.Level, opts.Seed)

	s := &Server{
		ecs:     huntECS,
		world:   huntECS.World,
		name:    opts.Name,
		level:   opts.Level.Name,
		roster:  newRoster(cfg.Server.MaxSpectators),
		clients: make(map[string]*router.NetworkClient),
	}
	s.loop = NewGameLoop(s, opts.TickRate)

	// Set up the world for esync
	srvsync.UseEsync(s.world)
	s.syncNetState()

	// Nobody drives the player yet
	systems.SetPaused(s.ecs, true, pauseReasonNoPlayer)
	systems.HuntEvents.Subscribe(s.world, s.onHuntEvent)

	// Register router callbacks
	s.setupRouterCallbacks()

	return s
}

// WatchTuning reloads tuning from path whenever the file changes. Reloads
// are applied between ticks.
func (s *Server) WatchTuning(path string) error {
	w, err := cfg.NewWatcher(path)
	if err != nil {
		return err
	}
	s.tuning = w
	return nil
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	// Start game loop
	go s.loop.Run()

	// Create and start WebSocket transport
	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
	if s.tuning != nil {
		_ = s.tuning.Close()
	}
}

func (s *Server) setupRouterCallbacks() {
	// Handle new connections
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("Client connected: %s", client.Id())
	})

	// Handle disconnections
	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.enqueue(func() { s.onDisconnect(client, err) })
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.enqueue(func() { s.onJoin(client, req) })
	})

	// Handle player input messages
	router.On(func(client *router.NetworkClient, input messages.PlayerInput) {
		s.enqueue(func() { s.onPlayerInput(client, input) })
	})

	// Handle errors
	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("Client error: %v", err)
	})
}

func (s *Server) enqueue(cmd func()) {
	s.mu.Lock()
	s.commands = append(s.commands, cmd)
	s.mu.Unlock()
}

// ProcessCommands runs everything the router queued since the last tick.
func (s *Server) ProcessCommands() {
	s.mu.Lock()
	cmds := s.commands
	s.commands = nil
	s.mu.Unlock()

	for _, cmd := range cmds {
		cmd()
	}
}

// Step advances the hunt by dt seconds. A run that ended is replaced by a
// fresh one so the server keeps going.
func (s *Server) Step(dt float64) {
	s.reloadTuning()

	systems.Advance(s.world, dt)
	s.ecs.Update()

	if systems.IsSessionFinished(s.ecs) {
		systems.StartNewRun(s.ecs)
	}
	s.syncNetState()
}

func (s *Server) reloadTuning() {
	if s.tuning != nil {
		s.tuning.Poll()
	}
}

func (s *Server) onJoin(client *router.NetworkClient, req messages.JoinRequest) {
	controller, err := s.roster.join(client.Id(), req.Spectate)
	if err != nil {
		log.Printf("Rejected %s (%s): %v", client.Id(), req.PlayerName, err)
		s.send(client, messages.JoinRejected{Reason: err.Error()})
		return
	}
	s.clients[client.Id()] = client
	s.send(client, s.joinAccepted(controller))

	if controller {
		systems.SetPaused(s.ecs, false, "")
		log.Printf("%s (%s) controls the player, %d connected", req.PlayerName, client.Id(), s.roster.size())
	} else {
		log.Printf("%s (%s) is spectating, %d connected", req.PlayerName, client.Id(), s.roster.size())
	}
}

func (s *Server) joinAccepted(controller bool) messages.JoinAccepted {
	accepted := messages.JoinAccepted{
		Controller: controller,
		ServerName: s.name,
		TickRate:   s.loop.tickRate,
		Level:      s.level,
	}
	if player, ok := tags.Player.First(s.world); ok {
		if nid := esync.GetNetworkId(player); nid != nil {
			accepted.NetworkID = *nid
		}
	}
	return accepted
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("Client %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("Client %s disconnected", client.Id())
	}

	delete(s.clients, client.Id())
	wasController, promoted := s.roster.leave(client.Id())
	log.Printf("%d connected", s.roster.size())
	if !wasController {
		return
	}

	systems.ApplyPlayerInput(s.world, components.PlayerInputData{})
	if next, ok := s.clients[promoted]; ok {
		s.send(next, s.joinAccepted(true))
		log.Printf("%s takes over the player", promoted)
		return
	}
	systems.SetPaused(s.ecs, true, pauseReasonNoPlayer)
	log.Println("Player left, hunt paused")
}

func (s *Server) onPlayerInput(client *router.NetworkClient, input messages.PlayerInput) {
	if !s.roster.isController(client.Id()) {
		return
	}
	systems.ApplyPlayerInput(s.world, components.PlayerInputData{
		MoveX:    input.MoveX,
		MoveZ:    input.MoveZ,
		Sprint:   input.Sprint,
		Crouch:   input.Crouch,
		Sequence: input.Sequence,
	})
}

func (s *Server) onHuntEvent(w donburi.World, ev systems.HuntEvent) {
	s.broadcastEvent(huntEventMessage(w, ev, time.Now()))
}

func huntEventMessage(w donburi.World, ev systems.HuntEvent, now time.Time) messages.HuntEvent {
	msg := messages.HuntEvent{
		Kind:      ev.Kind,
		EnemyID:   uint(ev.EnemyNetID),
		Lives:     ev.Lives,
		Timestamp: now.UnixMilli(),
	}
	if entry, ok := components.Session.First(w); ok {
		msg.Elapsed = components.Session.Get(entry).Elapsed
	}
	return msg
}

func (s *Server) broadcastEvent(msg any) {
	for _, client := range s.clients {
		s.send(client, msg)
	}
}

func (s *Server) send(client *router.NetworkClient, msg any) {
	if err := client.SendMessage(msg); err != nil {
		log.Printf("Send to %s failed: %v", client.Id(), err)
	}
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}
