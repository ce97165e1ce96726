// Command simulate runs a full computer-vs-computer game in the
// terminal and dumps the final state as JSON. Handy for eyeballing the
// rules engine and the move heuristic without a client.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Amazingmercy/boardoverse-backend/internal/game"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "dice seed")
	verbose := flag.Bool("v", false, "print every move")
	flag.Parse()

	g := game.NewGame(true, *seed)
	g.ID = "simulation"
	for i := range g.Seats {
		g.Seats[i].IsBot = true
		g.Seats[i].Name = fmt.Sprintf("CPU-%d", i)
		g.Seats[i].PlayerID = fmt.Sprintf("bot-%d", i)
	}

	turns := 0
	for !g.GameOver {
		moves := g.PlayAITurn()
		turns++
		if *verbose {
			for _, mv := range moves {
				fmt.Printf("turn %4d seat %d: %s +%d", turns, mv.Seat, mv.TokenID, mv.Face)
				if mv.Captured != "" {
					fmt.Printf(" captures %s", mv.Captured)
				}
				fmt.Println()
			}
		}
		if turns > 100000 {
			fmt.Fprintln(os.Stderr, "simulation did not terminate")
			os.Exit(1)
		}
	}

	fmt.Printf("finished after %d turns, winners %v\n", turns, g.Winners)
	js, _ := json.MarshalIndent(g, "", "  ")
	fmt.Println(string(js))
}
