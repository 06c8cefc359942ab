// internal/component/game_state.go
package component

// TurretsCollection хранит турели, индексируемые целым ID
type TurretsCollection struct {
	turrets []*Turret
}

// NewTurretsCollection создаёт коллекцию; ID турели равен её позиции.
func NewTurretsCollection(turrets ...*Turret) *TurretsCollection {
	c := &TurretsCollection{}
	for _, t := range turrets {
		c.Add(t)
	}
	return c
}

// Add добавляет турель и возвращает её ID
func (c *TurretsCollection) Add(t *Turret) int {
	c.turrets = append(c.turrets, t)
	return len(c.turrets) - 1
}

// Get возвращает турель по ID или nil, если такой нет.
// ID вне диапазона не паникует.
func (c *TurretsCollection) Get(id int) *Turret {
	if c == nil || id < 0 || id >= len(c.turrets) {
		return nil
	}
	return c.turrets[id]
}

// IndexOf возвращает ID турели с заданным DefID
func (c *TurretsCollection) IndexOf(defID string) (int, bool) {
	if c == nil {
		return 0, false
	}
	for i, t := range c.turrets {
		if t != nil && t.DefID == defID {
			return i, true
		}
	}
	return 0, false
}

func (c *TurretsCollection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.turrets)
}

// GamePersistentData живёт всю игровую сессию
type GamePersistentData struct {
	CurrScore uint32
	Turrets   *TurretsCollection
}

// AddScore начисляет очки
func (d *GamePersistentData) AddScore(reward uint32) {
	d.CurrScore += reward
}

// SpendScore списывает очки, не опускаясь ниже нуля
func (d *GamePersistentData) SpendScore(price uint32) {
	if price >= d.CurrScore {
		d.CurrScore = 0
		return
	}
	d.CurrScore -= price
}
