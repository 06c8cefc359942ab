// internal/ui/view.go
package ui

// TurretUIEntityView описывает слот турели на панели постройки
type TurretUIEntityView struct {
	TurretEntityID int    // ID турели в TurretsCollection
	Label          string // Подпись слота, обычно имя турели
	IsEnabled      bool   // Хватает ли очков на постройку
}

// GameUIView хранит модель игрового HUD. Контроллер только пишет в неё,
// hud.HUD только читает при отрисовке.
type GameUIView struct {
	HealthValue             float32
	MaxHealth               float32
	ScoreValue              uint32
	WavesProgress           int
	TurretUIEntityViewArray []*TurretUIEntityView
}

// NewGameUIView создаёт модель с фиксированным набором слотов,
// по одному на каждый переданный ID турели.
func NewGameUIView(maxHealth float32, turretIDs ...int) *GameUIView {
	slots := make([]*TurretUIEntityView, len(turretIDs))
	for i, id := range turretIDs {
		slots[i] = &TurretUIEntityView{TurretEntityID: id}
	}
	return &GameUIView{
		HealthValue:             maxHealth,
		MaxHealth:               maxHealth,
		TurretUIEntityViewArray: slots,
	}
}

// EnabledSlots возвращает индексы доступных для покупки слотов
func (v *GameUIView) EnabledSlots() []int {
	var enabled []int
	for i, slot := range v.TurretUIEntityViewArray {
		if slot.IsEnabled {
			enabled = append(enabled, i)
		}
	}
	return enabled
}
