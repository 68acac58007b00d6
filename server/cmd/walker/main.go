// Command walker joins a server as a headless player and walks in a fixed
// direction, turning a quarter circle at a fixed interval.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/automoto/collide/network"
	"github.com/automoto/collide/shared/protocol"
)

var directions = [][3]int32{{1, 0, 0}, {0, 1, 0}, {-1, 0, 0}, {0, -1, 0}}

func main() {
	addr := flag.String("addr", "localhost:7373", "Server address")
	name := flag.String("name", "walker", "Player name")
	speed := flag.Int("speed", 256, "Walking speed in world units per second")
	turn := flag.Duration("turn", 2*time.Second, "Time to walk before turning")
	duration := flag.Duration("duration", 30*time.Second, "How long to stay connected")
	flag.Parse()

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	client := network.NewClient()
	client.Connect(*addr, "", *name)
	defer client.Disconnect()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	session, err := client.WaitJoined(ctx)
	cancel()
	if err != nil {
		log.Fatalf("Failed to join: %v", err)
	}
	log.Printf("[walker] joined %s as actor %d", session.Level, session.Actor)

	rate := session.TickRate
	if rate <= 0 {
		rate = 20
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	deadline := time.After(*duration)
	turnAt := time.Now().Add(*turn)
	dir := 0
	snapshots := 0
	for {
		select {
		case <-deadline:
			log.Printf("[walker] done, %d snapshots received", snapshots)
			return
		case now := <-ticker.C:
			if now.After(turnAt) {
				dir = (dir + 1) % len(directions)
				turnAt = now.Add(*turn)
			}
			d := directions[dir]
			s := int32(*speed)
			if _, err := client.SendIntent(d[0]*s, d[1]*s, d[2]*s); err != nil {
				log.Fatalf("Failed to send intent: %v", err)
			}
			if client.LatestSnapshot() != nil {
				snapshots++
			}
		}
	}
}
