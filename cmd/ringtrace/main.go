// Command ringtrace runs the soft ring without a window and reports how its
// area and height evolve. With -json every frame is written to stdout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"softring/config"
	"softring/runner"
	"softring/sim"
)

const defaultFrames = 600

func main() {
	config.InitConfig()
	cfg, st, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if st.Frames <= 0 {
		st.Frames = defaultFrames
	}

	frames := flag.Int("frames", st.Frames, "frames to simulate")
	hz := flag.Int("hz", 0, "frames per second, 0 runs as fast as possible")
	raw := flag.Bool("json", false, "write world and frame messages to stdout as JSON lines")
	bisectors := flag.Bool("bisectors", st.Debug, "include bisectors in frames")
	flag.Parse()

	obstacles, err := sim.DefaultObstacles(st.WorldWidth, st.WorldHeight)
	if err != nil {
		log.Fatal(err)
	}
	s, err := sim.New(cfg, obstacles...)
	if err != nil {
		log.Fatal(err)
	}

	clock := runner.NewFreeRunning()
	if *hz > 0 {
		clock = runner.NewTicker(*hz)
	}
	r := runner.New(s, clock, runner.WorldOf(s, st.WorldWidth, st.WorldHeight))
	r.BroadcastEvery = 1
	r.Bisectors = *bisectors

	rec := &recorder{}
	if *raw {
		rec.raw = os.Stdout
	}
	r.Inbox <- runner.Subscribe{Conn: rec}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("ringtrace: %d frames, %d nodes", *frames, cfg.Nodes)
	if err := r.Run(ctx, *frames); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}

	out := os.Stdout
	if *raw {
		out = os.Stderr
	}
	fmt.Fprintln(out, rec.report(cfg.TargetArea))
}
