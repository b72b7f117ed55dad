package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/tilechase/common"
	"github.com/milk9111/tilechase/ecs/render"
	"github.com/milk9111/tilechase/prefabs"
	"github.com/milk9111/tilechase/sim"
)

type Game struct {
	sim      *sim.Sim
	renderer *render.Renderer
	watcher  *prefabs.Watcher
}

func NewGame(cfg common.Config, levelName string, debug bool) (*Game, error) {
	s, err := sim.New(cfg, levelName, common.NewSystemClock(), keyboardInput{})
	if err != nil {
		return nil, err
	}
	r := render.NewRenderer(cfg)
	r.Debug = debug
	return &Game{sim: s, renderer: r}, nil
}

// Watch reloads the level when files under dirs change.
func (g *Game) Watch(dirs ...string) error {
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		return err
	}
	g.watcher = w
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("watch: close: %v", err)
		}
	}
}

func (g *Game) Update() error {
	g.drainChanges()

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.renderer.Debug = !g.renderer.Debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.sim.Reload(); err != nil {
			log.Printf("game: %v", err)
		}
	}

	g.sim.Step()
	return nil
}

func (g *Game) drainChanges() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case ch, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if err := g.sim.Apply(ch); err != nil {
				log.Printf("game: %v", err)
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.sim.World, screen)

	st := g.sim.Stats()
	avg := float64(g.sim.Timer.Average().Microseconds()) / 1000
	g.renderer.DrawStatus(screen, render.StatusLine(st.Frame, ebiten.ActualFPS(), avg, st.PlayerHP))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sim.Config.ScreenWidth, g.sim.Config.ScreenHeight
}
