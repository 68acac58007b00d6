package core

import (
	"log"
	"time"

	"github.com/leap-fish/necs/esync/srvsync"
)

// Ticker is stepped once per tick by a GameLoop.
type Ticker interface {
	Tick()
}

type GameLoop struct {
	target   Ticker
	tickRate int
	stopChan chan struct{}
	sync     func() error
}

func NewGameLoop(target Ticker, tickRate int) *GameLoop {
	return &GameLoop{
		target:   target,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
		sync:     srvsync.DoSync,
	}
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[loop] started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("[loop] stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

func (g *GameLoop) tick() {
	g.target.Tick()

	if g.sync == nil {
		return
	}
	if err := g.sync(); err != nil {
		log.Printf("[loop] sync error: %v", err)
	}
}
