// internal/component/turret.go
package component

// GunConfig содержит статические параметры орудия турели
type GunConfig struct {
	Price    uint32
	Damage   int
	FireRate float64 // Выстрелов в секунду
	Range    int
}

// GunComponent описывает орудие турели
type GunComponent struct {
	Configs GunConfig
}

// Turret описывает турель, доступную для постройки.
type Turret struct {
	DefID string // ID из turrets.yaml
	Name  string
	Gun   GunComponent
}

// Price возвращает цену постройки турели.
func (t *Turret) Price() uint32 {
	return t.Gun.Configs.Price
}
