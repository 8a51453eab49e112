// Command probe joins a hunt server, walks the player around and logs what
// the server streams back.
package main

import (
	"flag"
	"log"
	"math"
	"time"

	"github.com/automoto/kamatayan/network"
	"github.com/automoto/kamatayan/shared/messages"
	"github.com/automoto/kamatayan/shared/protocol"
)

func main() {
	addr := flag.String("addr", "localhost:7373", "Server address (host:port)")
	duration := flag.Duration("duration", 30*time.Second, "How long to stay connected")
	spectate := flag.Bool("spectate", false, "Watch without controlling the player")
	name := flag.String("name", "probe", "Player name")
	flag.Parse()

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	client := network.NewClient()
	client.Connect(*addr, "", *name, *spectate)
	defer client.Disconnect()

	deadline := time.After(*duration)
	input := time.NewTicker(50 * time.Millisecond)
	defer input.Stop()
	report := time.NewTicker(time.Second)
	defer report.Stop()

	var seq uint32
	start := time.Now()

	for {
		select {
		case <-deadline:
			log.Println("[probe] done")
			return

		case <-input.C:
			switch client.State() {
			case network.StateError:
				log.Fatalf("[probe] %v", client.LastError())
			case network.StateJoinedGame:
			default:
				continue
			}
			for _, ev := range client.DrainHuntEvents() {
				log.Printf("[probe] event %s enemy=%d lives=%d t=%.1fs", ev.Kind, ev.EnemyID, ev.Lives, ev.Elapsed)
			}
			if !client.Controller() {
				continue
			}

			// Walk a slow circle
			seq++
			angle := time.Since(start).Seconds() * 0.5
			if err := client.SendMessage(messages.PlayerInput{
				Sequence:  seq,
				MoveX:     math.Cos(angle),
				MoveZ:     math.Sin(angle),
				Timestamp: time.Now().UnixMilli(),
			}); err != nil {
				log.Printf("[probe] send input: %v", err)
			}

		case <-report.C:
			if snap := client.LatestSnapshot(); snap != nil {
				log.Printf("[probe] %s", network.Summarize(*snap))
			}
		}
	}
}
