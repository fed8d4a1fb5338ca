package game

import (
	"time"
)

// Spinner то, чем управляет кнопка
type Spinner interface {
	StartSpin() bool
	RequestStop() bool
}

// SpinControl - кнопка спина: доступна или идёт спин.
// Пока идёт спин, нажатие просит остановку. Через maxSpin кадрового времени
// остановка запрашивается сама
type SpinControl struct {
	target    Spinner
	maxSpinMS float64

	available bool
	armed     bool
	elapsed   float64
}

func NewSpinControl(target Spinner, maxSpin time.Duration) *SpinControl {
	return &SpinControl{
		target:    target,
		maxSpinMS: float64(maxSpin) / float64(time.Millisecond),
		available: true,
	}
}

func (c *SpinControl) Available() bool {
	return c.available
}

// Activate нажатие. true - если начался новый спин
func (c *SpinControl) Activate() bool {
	if !c.available {
		c.target.RequestStop()
		return false
	}

	if !c.target.StartSpin() {
		return false
	}

	c.available = false
	c.armed = true
	c.elapsed = 0
	return true
}

// Release возвращает доступность, когда барабан остановился
func (c *SpinControl) Release() {
	c.available = true
	c.armed = false
}

// Frame отсчитывает страховочный таймер
func (c *SpinControl) Frame(deltaMS float64) {
	if !c.armed {
		return
	}

	c.elapsed += deltaMS
	if c.elapsed >= c.maxSpinMS {
		c.armed = false
		c.target.RequestStop()
	}
}
