// Command softring opens a window on the soft ring falling through the
// default obstacle course. Drag with the left mouse button to push it.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"softring/config"
	"softring/sim"
)

func main() {
	config.InitConfig()
	cfg, st, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	debug := flag.Bool("debug", st.Debug, "always draw links, nodes and bisectors")
	tps := flag.Int("tps", st.TickHz, "simulation frames per second")
	seed := flag.Uint64("seed", cfg.Seed, "link shuffle seed")
	flag.Parse()
	cfg.Seed = *seed
	if *tps <= 0 {
		*tps = ebiten.DefaultTPS
	}

	obstacles, err := sim.DefaultObstacles(st.WorldWidth, st.WorldHeight)
	if err != nil {
		log.Fatal(err)
	}
	s, err := sim.New(cfg, obstacles...)
	if err != nil {
		log.Fatal(err)
	}

	w := int(st.WorldWidth * overviewScale)
	h := int(st.WorldHeight * overviewScale)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("softring")
	ebiten.SetTPS(*tps)

	log.Printf("softring: %d nodes, %d obstacles, %d TPS", cfg.Nodes, len(obstacles), *tps)
	if err := ebiten.RunGame(NewGame(s, w, h, *tps, *debug)); err != nil {
		log.Fatal(err)
	}
}
