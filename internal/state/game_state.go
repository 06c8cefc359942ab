// internal/state/game_state.go
package state

import (
	"log"

	"go-tower-defense-hud/internal/component"
	"go-tower-defense-hud/internal/config"
	"go-tower-defense-hud/internal/controller"
	"go-tower-defense-hud/internal/defs"
	"go-tower-defense-hud/internal/event"
	"go-tower-defense-hud/internal/system"
	"go-tower-defense-hud/internal/ui"
	"go-tower-defense-hud/internal/ui/hud"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const debugHelp = "K: kill enemy  B: build cheapest  H: damage base  W: next wave  F: finish level"

// GameState владеет сессией уровня. Шина, контроллер HUD и подписки живут
// от Enter до Exit.
type GameState struct {
	sm  *StateMachine
	res *Resources

	bus        *event.Bus
	data       *component.GamePersistentData
	view       *ui.GameUIView
	hud        *hud.HUD
	controller *controller.GameUIController
	waves      *system.WaveSystem
	base       *system.BaseSystem
	build      *system.BuildSystem

	levelSub  event.Handle
	levelDone bool
}

func NewGameState(sm *StateMachine, res *Resources) *GameState {
	return &GameState{sm: sm, res: res}
}

// Enter собирает сессию уровня и подключает контроллер HUD.
func (g *GameState) Enter() {
	level := g.res.Level
	turrets := defs.NewTurretsCollection(g.res.Turrets)

	g.bus = event.NewBus()
	g.data = &component.GamePersistentData{
		CurrScore: level.InitialScore,
		Turrets:   turrets,
	}
	g.view = ui.NewGameUIView(level.BaseHealth, level.SlotTurretIDs(g.res.Turrets)...)
	for _, slot := range g.view.TurretUIEntityViewArray {
		if t := turrets.Get(slot.TurretEntityID); t != nil {
			slot.Label = t.Name
		}
	}
	g.hud = hud.NewHUD(level.Waves)

	ctrl, err := controller.NewGameUIController(g.bus, g.view, g.data)
	if err != nil {
		log.Printf("ERROR: failed to attach HUD controller: %v", err)
		return
	}
	g.controller = ctrl

	g.waves = system.NewWaveSystem(g.bus, level.Waves, config.DebugWaveInterval)
	g.base = system.NewBaseSystem(g.bus, level.BaseHealth)
	g.build = system.NewBuildSystem(g.bus, g.view, turrets)
	g.levelSub = g.bus.OnLevelFinished.Subscribe(func(struct{}) { g.levelDone = true })
	g.levelDone = false
}

func (g *GameState) Update(deltaTime float64) {
	if g.controller == nil {
		return
	}

	g.handleInput()
	if g.base.IsDestroyed() {
		g.waves.Finish()
	}
	g.waves.Update(deltaTime)

	if g.levelDone {
		g.finishLevel()
	}
}

func (g *GameState) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyK):
		g.bus.NotifyOnEnemyDestroyed(config.DebugEnemyReward)
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		g.build.BuildCheapest()
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.base.Damage(config.DebugBaseDamage)
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		g.waves.NextWave()
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.waves.Finish()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if slot := g.hud.Panel.SlotAt(x, y, len(g.view.TurretUIEntityViewArray)); slot >= 0 {
			g.build.TryBuild(slot)
		}
	}
}

func (g *GameState) finishLevel() {
	score := g.data.CurrScore
	won := !g.base.IsDestroyed()
	if err := g.res.Store.RecordLevelFinished(score); err != nil {
		log.Printf("WARNING: %v", err)
	}
	g.sm.SetState(NewResultState(g.sm, g.res, g, score, won))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	if g.view == nil {
		return
	}
	g.hud.Draw(screen, g.view)
	ebitenutil.DebugPrintAt(screen, debugHelp, config.HUDMargin, config.ScreenHeight-config.TurretSlotHeight-config.HUDMargin-config.HUDLineHeight-8)
}

// Exit освобождает подписки; последний кадр остаётся доступен для Draw.
func (g *GameState) Exit() {
	if g.controller != nil {
		g.controller.Close()
	}
	if g.bus != nil {
		g.bus.OnLevelFinished.Unsubscribe(g.levelSub)
	}
}
