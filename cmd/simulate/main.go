package main

import (
	"flag"
	"log"

	"github.com/milk9111/tilechase/common"
	"github.com/milk9111/tilechase/prefabs"
	"github.com/milk9111/tilechase/sim"
)

func main() {
	configName := flag.String("config", "game.yaml", "game spec in prefabs/")
	levelName := flag.String("level", "", "level map in levels/, overrides the game spec")
	frames := flag.Int("frames", 1200, "frames to simulate")
	verbose := flag.Bool("v", false, "log every frame's update time")
	profileMode := flag.String("profile", "", "write a cpu, mem or allocs profile")
	flag.Parse()

	stop, err := common.StartProfile(*profileMode, ".")
	if err != nil {
		log.Fatal(err)
	}
	defer stop()

	spec, err := prefabs.LoadGameSpec(*configName)
	if err != nil {
		log.Fatal(err)
	}
	level := spec.Level
	if *levelName != "" {
		level = *levelName
	}

	clock := &common.ManualClock{}
	s, err := sim.New(spec.Config, level, clock, nil)
	if err != nil {
		log.Fatal(err)
	}
	s.Timer.Verbose = *verbose

	for i := 0; i < *frames; i++ {
		s.Step()
		clock.Advance(spec.Config.FrameDelay())
		if st := s.Stats(); !st.PlayerAlive && s.Level.Player.Valid() {
			log.Printf("simulate: player died at frame %d", st.Frame)
			break
		}
	}

	log.Printf("simulate: %s", s.Stats())
	log.Printf("simulate: %d frames, avg update %v, simulated %v", s.Timer.Frames(), s.Timer.Average(), clock.Now())
}
