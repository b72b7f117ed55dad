package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilechase/common"
	"github.com/milk9111/tilechase/prefabs"
)

func main() {
	configName := flag.String("config", "game.yaml", "game spec in prefabs/ (config and default level)")
	levelName := flag.String("level", "", "level map in levels/, overrides the game spec")
	debug := flag.Bool("debug", false, "draw grid and pursuer paths")
	watch := flag.Bool("watch", false, "reload when prefabs, scripts or levels change on disk")
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

	game, err := NewGame(spec.Config, level, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if *watch {
		var dirs []string
		for _, d := range []string{"prefabs", "prefabs/scripts", "levels"} {
			if _, err := os.Stat(d); err == nil {
				dirs = append(dirs, d)
			}
		}
		if err := game.Watch(dirs...); err != nil {
			log.Printf("watch: %v", err)
		}
	}

	ebiten.SetWindowSize(spec.Config.ScreenWidth, spec.Config.ScreenHeight)
	ebiten.SetWindowTitle("tilechase")
	ebiten.SetTPS(spec.Config.TargetFPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Printf("game: %v", err)
	}
}
