// Package network is a headless client for the collide server: it joins,
// sends move intents and keeps the latest world snapshot.
package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/collide/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

var ErrNotConnected = errors.New("network: not connected")

// Session is what the server told us when it accepted the join.
type Session struct {
	Actor    int32
	Server   string
	Level    string
	TickRate int
}

// Client drives one actor on a server. Router callbacks run on necs
// goroutines, so everything they touch goes through mu.
type Client struct {
	mu       sync.Mutex
	conn     *websocket.Conn
	session  Session
	err      error
	sequence uint32

	joined    chan struct{}
	joinOnce  sync.Once
	snapshots chan esync.WorldSnapshot // holds only the newest
}

func NewClient() *Client {
	return &Client{
		joined:    make(chan struct{}),
		snapshots: make(chan esync.WorldSnapshot, 1),
	}
}

// Connect dials address in the background and asks to join once the socket
// is up. Use WaitJoined to learn the outcome.
func (c *Client) Connect(address, version, playerName string) {
	router.OnConnect(func(_ *router.NetworkClient) {
		err := c.SendMessage(messages.JoinRequest{Version: version, PlayerName: playerName})
		if err != nil {
			c.fail(fmt.Errorf("network: join request: %w", err))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		c.mu.Lock()
		c.session = Session{Actor: msg.Actor, Server: msg.ServerName, Level: msg.Level, TickRate: msg.TickRate}
		c.mu.Unlock()
		log.Printf("[client] joined %s on %s as actor %d", msg.Level, msg.ServerName, msg.Actor)
		c.joinOnce.Do(func() { close(c.joined) })
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		c.fail(fmt.Errorf("network: join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, snapshot esync.WorldSnapshot) {
		select {
		case <-c.snapshots:
		default:
		}
		c.snapshots <- snapshot
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] disconnected: %v", err)
		c.mu.Lock()
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
			c.fail(fmt.Errorf("network: dial %s: %w", address, err))
		}
	}()
}

// WaitJoined blocks until the server accepts the join, the join fails or
// ctx ends.
func (c *Client) WaitJoined(ctx context.Context) (Session, error) {
	select {
	case <-c.joined:
		c.mu.Lock()
		defer c.mu.Unlock()
		return c.session, c.err
	case <-ctx.Done():
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.err != nil {
			return Session{}, c.err
		}
		return Session{}, ctx.Err()
	}
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}
	router.ResetRouter()
}

// LatestSnapshot returns the newest world snapshot since the last call, or
// nil.
func (c *Client) LatestSnapshot() *esync.WorldSnapshot {
	select {
	case snap := <-c.snapshots:
		return &snap
	default:
		return nil
	}
}

// SendIntent asks the server to move the actor at the given velocity, in
// world units per second, and returns the sequence number used.
func (c *Client) SendIntent(x, y, z int32) (uint32, error) {
	c.mu.Lock()
	c.sequence++
	seq := c.sequence
	c.mu.Unlock()

	return seq, c.SendMessage(messages.MoveIntent{Sequence: seq, X: x, Y: y, Z: z})
}

func (c *Client) SendMessage(msg any) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return ErrNotConnected
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("network: serialize: %w", err)
	}
	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

// fail records the first error and releases WaitJoined.
func (c *Client) fail(err error) {
	log.Printf("[client] %v", err)
	c.mu.Lock()
	if c.err == nil {
		c.err = err
	}
	c.mu.Unlock()
	c.joinOnce.Do(func() { close(c.joined) })
}
