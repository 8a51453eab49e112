package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/kamatayan/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

var errNotConnected = errors.New("not connected")

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedGame
	StateError
)

// Client joins a hunt server, sends input and collects what the server
// streams back. Router callbacks run on necs goroutines, so shared fields
// are guarded by mu.
type Client struct {
	mu         sync.RWMutex
	state      ClientState
	lastError  error
	conn       *websocket.Conn
	controller bool

	snapshotCh chan esync.WorldSnapshot // Latest wins
	eventCh    chan messages.HuntEvent
}

func NewClient() *Client {
	return &Client{
		snapshotCh: make(chan esync.WorldSnapshot, 1),
		eventCh:    make(chan messages.HuntEvent, 16),
	}
}

// Connect dials the server in the background and asks to join once the
// socket is up.
func (c *Client) Connect(address, version, playerName string, spectate bool) {
	c.setState(StateConnecting)

	router.OnConnect(func(server *router.NetworkClient) {
		log.Println("[client] connected to server")
		c.setState(StateConnected)
		err := server.SendMessage(messages.JoinRequest{
			Version:    version,
			PlayerName: playerName,
			Spectate:   spectate,
		})
		if err != nil {
			c.setError(fmt.Errorf("join request: %w", err))
		}
	})

	// Sent again when a departing controller hands the player over
	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		log.Printf("[client] joined %s (%s at %d ticks/s), controller=%t",
			msg.ServerName, msg.Level, msg.TickRate, msg.Controller)
		c.mu.Lock()
		c.controller = msg.Controller
		c.state = StateJoinedGame
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, snapshot esync.WorldSnapshot) {
		select {
		case <-c.snapshotCh:
		default:
		}
		c.snapshotCh <- snapshot
	})

	router.On(func(_ *router.NetworkClient, evt messages.HuntEvent) {
		select {
		case c.eventCh <- evt:
		default:
			log.Printf("[client] dropped %s event", evt.Kind)
		}
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] disconnected: %v", err)
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}
	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// Controller reports whether this client drives the player.
func (c *Client) Controller() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.controller
}

// LatestSnapshot returns the most recent snapshot not yet taken, or nil.
func (c *Client) LatestSnapshot() *esync.WorldSnapshot {
	select {
	case snap := <-c.snapshotCh:
		return &snap
	default:
		return nil
	}
}

// DrainHuntEvents returns the events received since the last call.
func (c *Client) DrainHuntEvents() []messages.HuntEvent {
	var out []messages.HuntEvent
	for {
		select {
		case ev := <-c.eventCh:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()
	if conn == nil {
		return errNotConnected
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}
	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) setState(s ClientState) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

func (c *Client) setError(err error) {
	log.Printf("[client] %v", err)
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}
