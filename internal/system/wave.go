// internal/system/wave.go
package system

import (
	"log"

	"go-tower-defense-hud/internal/event"
)

// WaveSystem отсчитывает волны уровня и объявляет их через шину.
// После последней волны объявляет конец уровня.
type WaveSystem struct {
	bus        *event.Bus
	interval   float64
	totalWaves int
	current    int
	timer      float64
	finished   bool
}

func NewWaveSystem(bus *event.Bus, totalWaves int, interval float64) *WaveSystem {
	return &WaveSystem{
		bus:        bus,
		interval:   interval,
		totalWaves: totalWaves,
	}
}

// Update продвигает таймер; при истечении интервала начинается следующая волна.
func (s *WaveSystem) Update(deltaTime float64) {
	if s.finished {
		return
	}
	s.timer += deltaTime
	if s.timer >= s.interval {
		s.NextWave()
	}
}

// NextWave немедленно начинает следующую волну.
func (s *WaveSystem) NextWave() {
	if s.finished {
		return
	}
	s.timer = 0
	if s.current >= s.totalWaves {
		s.Finish()
		return
	}
	s.current++
	s.bus.NotifyOnNewWaveIsComing(s.current)
}

// Finish завершает уровень. Повторные вызовы игнорируются.
func (s *WaveSystem) Finish() {
	if s.finished {
		return
	}
	s.finished = true
	log.Printf("Level finished after wave %d/%d", s.current, s.totalWaves)
	s.bus.NotifyOnLevelFinished()
}

func (s *WaveSystem) Current() int {
	return s.current
}

func (s *WaveSystem) IsFinished() bool {
	return s.finished
}
