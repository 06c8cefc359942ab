package controller

import (
	"errors"
	"testing"

	"go-tower-defense-hud/internal/component"
	"go-tower-defense-hud/internal/event"
	"go-tower-defense-hud/internal/ui"
)

func newTurret(id string, price uint32) *component.Turret {
	return &component.Turret{DefID: id, Gun: component.GunComponent{Configs: component.GunConfig{Price: price}}}
}

// newFixture builds turrets priced 50, 120, 300 and one slot per turret
// plus a slot pointing at a missing turret.
func newFixture(t *testing.T, score uint32) (*event.Bus, *ui.GameUIView, *component.GamePersistentData, *GameUIController) {
	t.Helper()
	bus := event.NewBus()
	data := &component.GamePersistentData{
		CurrScore: score,
		Turrets: component.NewTurretsCollection(
			newTurret("TURRET_GUN", 50),
			newTurret("TURRET_CANNON", 120),
			newTurret("TURRET_LASER", 300),
		),
	}
	view := ui.NewGameUIView(20, 0, 1, 2, 7)

	c, err := NewGameUIController(bus, view, data)
	if err != nil {
		t.Fatalf("NewGameUIController: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return bus, view, data, c
}

func assertSlots(t *testing.T, view *ui.GameUIView, data *component.GamePersistentData) {
	t.Helper()
	for i, slot := range view.TurretUIEntityViewArray {
		turret := data.Turrets.Get(slot.TurretEntityID)
		want := turret != nil && data.CurrScore >= turret.Price()
		if slot.IsEnabled != want {
			t.Errorf("slot %d (turret %d) at score %d: IsEnabled got %v, want %v",
				i, slot.TurretEntityID, data.CurrScore, slot.IsEnabled, want)
		}
	}
}

func TestNewGameUIControllerInvalidArguments(t *testing.T) {
	bus := event.NewBus()
	view := ui.NewGameUIView(10, 0)
	data := &component.GamePersistentData{Turrets: component.NewTurretsCollection()}

	tests := []struct {
		name string
		bus  *event.Bus
		view *ui.GameUIView
		data *component.GamePersistentData
	}{
		{"nil bus", nil, view, data},
		{"nil view", bus, nil, data},
		{"nil data", bus, view, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewGameUIController(tt.bus, tt.view, tt.data)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("error: got %v, want ErrInvalidArgument", err)
			}
			if c != nil {
				t.Error("controller returned alongside error")
			}
		})
	}

	if n := bus.OnBaseHealthChanged.Len() + bus.OnEnemyDestroyed.Len() +
		bus.OnNewWaveIsComing.Len() + bus.OnNewTurretWasCreated.Len(); n != 0 {
		t.Errorf("failed construction left %d subscriptions", n)
	}
}

func TestNewGameUIControllerSynchronizesView(t *testing.T) {
	bus, view, data, _ := newFixture(t, 130)

	if view.ScoreValue != 130 {
		t.Errorf("ScoreValue: got %d, want 130", view.ScoreValue)
	}
	assertSlots(t, view, data)
	if !view.TurretUIEntityViewArray[0].IsEnabled || !view.TurretUIEntityViewArray[1].IsEnabled {
		t.Error("affordable slots not enabled at construction")
	}
	if view.TurretUIEntityViewArray[3].IsEnabled {
		t.Error("slot with missing turret enabled")
	}

	for name, n := range map[event.EventType]int{
		event.BaseHealthChanged:   bus.OnBaseHealthChanged.Len(),
		event.EnemyDestroyed:      bus.OnEnemyDestroyed.Len(),
		event.NewWaveIsComing:     bus.OnNewWaveIsComing.Len(),
		event.NewTurretWasCreated: bus.OnNewTurretWasCreated.Len(),
	} {
		if n != 1 {
			t.Errorf("%s subscriptions: got %d, want 1", name, n)
		}
	}
}

func TestHealthAndWaveForwarded(t *testing.T) {
	bus, view, _, _ := newFixture(t, 0)

	bus.NotifyOnBaseHealthChanged(13.5)
	if view.HealthValue != 13.5 {
		t.Errorf("HealthValue: got %v, want 13.5", view.HealthValue)
	}
	bus.NotifyOnBaseHealthChanged(-2)
	if view.HealthValue != -2 {
		t.Errorf("HealthValue is not forwarded verbatim: got %v", view.HealthValue)
	}

	bus.NotifyOnNewWaveIsComing(4)
	if view.WavesProgress != 4 {
		t.Errorf("WavesProgress: got %d, want 4", view.WavesProgress)
	}
}

func TestEnemyDestroyedAccumulatesScore(t *testing.T) {
	bus, view, data, _ := newFixture(t, 10)

	var sum uint32 = 10
	for _, r := range []uint32{5, 0, 40, 1, 200} {
		bus.NotifyOnEnemyDestroyed(r)
		sum += r
		if data.CurrScore != sum {
			t.Fatalf("CurrScore: got %d, want %d", data.CurrScore, sum)
		}
		if view.ScoreValue != sum {
			t.Fatalf("ScoreValue: got %d, want %d", view.ScoreValue, sum)
		}
		assertSlots(t, view, data)
	}
}

func TestTurretCreatedSpendsScore(t *testing.T) {
	bus, view, data, _ := newFixture(t, 400)

	steps := []struct {
		price uint32
		want  uint32
	}{
		{120, 280},
		{50, 230},
		{300, 0},
		{10, 0},
	}
	for _, s := range steps {
		bus.NotifyOnNewTurretWasCreated(s.price)
		if data.CurrScore != s.want {
			t.Fatalf("after price %d: CurrScore got %d, want %d", s.price, data.CurrScore, s.want)
		}
		if view.ScoreValue != s.want {
			t.Fatalf("after price %d: ScoreValue got %d, want %d", s.price, view.ScoreValue, s.want)
		}
		assertSlots(t, view, data)
	}
}

func TestSlotBecomesAffordable(t *testing.T) {
	bus := event.NewBus()
	data := &component.GamePersistentData{
		CurrScore: 100,
		Turrets:   component.NewTurretsCollection(newTurret("TURRET_CANNON", 120)),
	}
	view := ui.NewGameUIView(20, 0)
	c, err := NewGameUIController(bus, view, data)
	if err != nil {
		t.Fatalf("NewGameUIController: %v", err)
	}
	defer c.Close()

	if view.TurretUIEntityViewArray[0].IsEnabled {
		t.Fatal("slot 0 enabled at score 100 for price 120")
	}

	bus.NotifyOnEnemyDestroyed(30)
	if data.CurrScore != 130 {
		t.Fatalf("CurrScore: got %d, want 130", data.CurrScore)
	}
	if !view.TurretUIEntityViewArray[0].IsEnabled {
		t.Error("slot 0 disabled at score 130 for price 120")
	}
}

func TestTurretCreatedClampsAtZero(t *testing.T) {
	bus, view, data, _ := newFixture(t, 50)

	bus.NotifyOnNewTurretWasCreated(80)
	if data.CurrScore != 0 || view.ScoreValue != 0 {
		t.Errorf("score: got data %d / view %d, want 0", data.CurrScore, view.ScoreValue)
	}
	if len(view.EnabledSlots()) != 0 {
		t.Errorf("slots enabled at zero score: %v", view.EnabledSlots())
	}
}

func TestCloseStopsUpdates(t *testing.T) {
	bus, view, data, c := newFixture(t, 100)

	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	bus.NotifyOnBaseHealthChanged(1)
	bus.NotifyOnEnemyDestroyed(500)
	bus.NotifyOnNewWaveIsComing(9)
	bus.NotifyOnNewTurretWasCreated(100)

	if view.HealthValue != 20 {
		t.Errorf("HealthValue changed after Close: %v", view.HealthValue)
	}
	if view.ScoreValue != 100 || data.CurrScore != 100 {
		t.Errorf("score changed after Close: view %d, data %d", view.ScoreValue, data.CurrScore)
	}
	if view.WavesProgress != 0 {
		t.Errorf("WavesProgress changed after Close: %d", view.WavesProgress)
	}
}

func TestCloseKeepsOtherSubscribers(t *testing.T) {
	bus, _, _, c := newFixture(t, 0)
	var rewards uint32
	bus.OnEnemyDestroyed.Subscribe(func(r uint32) { rewards += r })

	c.Close()
	bus.NotifyOnEnemyDestroyed(3)

	if rewards != 3 {
		t.Errorf("other subscriber got %d, want 3", rewards)
	}
	if bus.OnEnemyDestroyed.Len() != 1 {
		t.Errorf("EnemyDestroyed subscriptions: got %d, want 1", bus.OnEnemyDestroyed.Len())
	}
}

func TestTwoControllersShareBus(t *testing.T) {
	bus := event.NewBus()
	turrets := component.NewTurretsCollection(newTurret("TURRET_GUN", 50))
	dataA := &component.GamePersistentData{CurrScore: 0, Turrets: turrets}
	dataB := &component.GamePersistentData{CurrScore: 100, Turrets: turrets}
	viewA, viewB := ui.NewGameUIView(5, 0), ui.NewGameUIView(5, 0)

	a, err := NewGameUIController(bus, viewA, dataA)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()
	b, err := NewGameUIController(bus, viewB, dataB)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	bus.NotifyOnEnemyDestroyed(50)
	if viewA.ScoreValue != 50 || viewB.ScoreValue != 150 {
		t.Errorf("scores: got %d and %d, want 50 and 150", viewA.ScoreValue, viewB.ScoreValue)
	}
	if !viewA.TurretUIEntityViewArray[0].IsEnabled || !viewB.TurretUIEntityViewArray[0].IsEnabled {
		t.Error("slot not enabled on both views")
	}
}
