// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-tower-defense-hud/internal/config"
	"go-tower-defense-hud/internal/defs"
	"go-tower-defense-hud/internal/state"
	"go-tower-defense-hud/internal/storage"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	startFromGame = false // true — начинать с игры, false — с меню
	enablePprof   = false
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if enablePprof {
		go func() {
			log.Println(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	turrets, err := defs.LoadTurretDefinitions(config.TurretDefsPath)
	if err != nil {
		log.Fatal(err)
	}
	level, err := defs.LoadLevelDefinition(config.LevelPath, turrets)
	if err != nil {
		log.Fatal(err)
	}
	store, err := storage.OpenProgressStore(config.AppName)
	if err != nil {
		log.Printf("WARNING: %v (progress will not be saved)", err)
	}

	res := &state.Resources{Turrets: turrets, Level: level, Store: store}
	sm := state.NewStateMachine() // Создаём машину состояний
	defer sm.Close()
	if startFromGame {
		sm.SetState(state.NewGameState(sm, res))
	} else {
		sm.SetState(state.NewMenuState(sm, res))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tower Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
