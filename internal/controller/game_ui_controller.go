// internal/controller/game_ui_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"

	"go-tower-defense-hud/internal/component"
	"go-tower-defense-hud/internal/event"
	"go-tower-defense-hud/internal/ui"
)

// ErrInvalidArgument возвращается конструктором при отсутствующих зависимостях.
var ErrInvalidArgument = errors.New("invalid argument")

// GameUIController связывает шину событий и данные сессии с моделью HUD.
// Подписки берутся в конструкторе и освобождаются в Close; владелец
// обязан вызвать Close на любом пути выхода.
type GameUIController struct {
	bus  *event.Bus
	view *ui.GameUIView
	data *component.GamePersistentData

	healthSub event.Handle
	enemySub  event.Handle
	waveSub   event.Handle
	turretSub event.Handle
	closed    bool
}

// NewGameUIController проверяет зависимости, подписывается на шину
// и сразу синхронизирует HUD с текущими данными.
func NewGameUIController(bus *event.Bus, view *ui.GameUIView, data *component.GamePersistentData) (*GameUIController, error) {
	if bus == nil {
		return nil, fmt.Errorf("%w: bus is nil", ErrInvalidArgument)
	}
	if view == nil {
		return nil, fmt.Errorf("%w: view is nil", ErrInvalidArgument)
	}
	if data == nil {
		return nil, fmt.Errorf("%w: data is nil", ErrInvalidArgument)
	}

	c := &GameUIController{
		bus:  bus,
		view: view,
		data: data,
	}
	c.healthSub = bus.OnBaseHealthChanged.Subscribe(c.onHealthChanged)
	c.enemySub = bus.OnEnemyDestroyed.Subscribe(c.onEnemyDestroyed)
	c.waveSub = bus.OnNewWaveIsComing.Subscribe(c.onNewWaveIsComing)
	c.turretSub = bus.OnNewTurretWasCreated.Subscribe(c.onNewTurretWasCreated)

	c.updateAvailableTurrets()
	c.view.ScoreValue = c.data.CurrScore

	log.Printf("GameUIController attached: %d turret slots, score %d", len(view.TurretUIEntityViewArray), data.CurrScore)
	return c, nil
}

// Close снимает все подписки. Повторный вызов ничего не делает.
func (c *GameUIController) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	c.bus.OnBaseHealthChanged.Unsubscribe(c.healthSub)
	c.bus.OnEnemyDestroyed.Unsubscribe(c.enemySub)
	c.bus.OnNewWaveIsComing.Unsubscribe(c.waveSub)
	c.bus.OnNewTurretWasCreated.Unsubscribe(c.turretSub)

	log.Println("GameUIController detached")
	return nil
}

func (c *GameUIController) onHealthChanged(value float32) {
	c.view.HealthValue = value
}

func (c *GameUIController) onEnemyDestroyed(reward uint32) {
	c.data.AddScore(reward)
	c.view.ScoreValue = c.data.CurrScore
	c.updateAvailableTurrets()
}

func (c *GameUIController) onNewWaveIsComing(waveIndex int) {
	c.view.WavesProgress = waveIndex
}

func (c *GameUIController) onNewTurretWasCreated(price uint32) {
	c.data.SpendScore(price)
	c.view.ScoreValue = c.data.CurrScore
	c.updateAvailableTurrets()
}

// updateAvailableTurrets пересчитывает флаг доступности каждого слота:
// турель должна существовать и стоить не больше текущего счёта.
func (c *GameUIController) updateAvailableTurrets() {
	score := c.data.CurrScore
	for _, slot := range c.view.TurretUIEntityViewArray {
		turret := c.data.Turrets.Get(slot.TurretEntityID)
		slot.IsEnabled = turret != nil && score >= turret.Price()
	}
}
