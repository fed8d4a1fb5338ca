package reel

import (
	"errors"
	"math"

	"slot_reel/internal/clock"
)

var ErrBusy = errors.New("reel is spinning")

type State int

const (
	Idle State = iota
	Accelerating
	Scrolling
	Decelerating
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Accelerating:
		return "accelerating"
	case Scrolling:
		return "scrolling"
	case Decelerating:
		return "decelerating"
	default:
		return "unknown"
	}
}

// Params параметры движения барабана
type Params struct {
	VisibleCount int     // Видимых символов
	SlotHeight   float64 // Высота слота в условных единицах
	SpinSpeed    float64 // Символов в секунду на постоянной скорости
	AccelerateMS float64 // Длительность разгона
	DecelerateMS float64 // Длительность торможения
	MinFrameMS   float64 // Нижняя граница дельты кадра
	BlurFactor   float64 // Прирост размытия на единицу смещения
	Bounce       float64 // Коэффициент back-кривой
}

func DefaultParams() Params {
	return Params{
		VisibleCount: 4,
		SlotHeight:   100,
		SpinSpeed:    8,
		AccelerateMS: 3000,
		DecelerateMS: 10000,
		MinFrameMS:   50,
		BlurFactor:   0.1,
		Bounce:       1.1,
	}
}

// Snapshot состояние контроллера для рендера и тестов
type Snapshot struct {
	State      State
	Progress   float64
	StopTarget float64
	Blur       float64
	Travelled  float64 // Суммарный путь с момента создания
}

// Controller - машина состояний барабана: разгон, прокрутка, торможение до цели.
// Все переходы происходят внутри Update, который вызывается тикером кадров
type Controller struct {
	params Params
	strip  *Strip
	sched  clock.Scheduler

	handle     clock.Handle
	registered bool

	state      State
	spinning   bool
	progress   float64
	stopTarget float64
	blur       float64
	blurAtStop float64
	travelled  float64

	onResult func(result []int)
}

func NewController(sched clock.Scheduler, params Params) *Controller {
	return &Controller{
		params: params,
		strip:  NewStrip(params.VisibleCount, params.SlotHeight),
		sched:  sched,
	}
}

// SetSequence заменяет ленту, допустимо только в покое
func (c *Controller) SetSequence(seq Sequence) error {
	if c.state != Idle {
		return ErrBusy
	}
	return c.strip.SetSequence(seq)
}

// Spin запускает вращение. false - если уже крутится или лента не задана
func (c *Controller) Spin(onResult func(result []int)) bool {
	if c.state != Idle || !c.strip.Ready() {
		return false
	}

	c.state = Accelerating
	c.spinning = false
	c.progress = 0
	c.stopTarget = 0
	c.onResult = onResult
	c.handle = c.sched.Add(c.Update)
	c.registered = true

	return true
}

// Stop - запрос остановки, а не остановка.
// Срабатывает только на постоянной скорости, иначе false ("уже тормозим")
func (c *Controller) Stop() bool {
	if c.state == Scrolling && c.spinning {
		c.spinning = false
		return true
	}
	return false
}

// Update один кадр анимации
func (c *Controller) Update(deltaMS float64) {
	d := math.Max(deltaMS, c.params.MinFrameMS)

	switch c.state {
	case Accelerating:
		c.accelerate(d)
	case Scrolling:
		c.scroll(d)
	case Decelerating:
		c.decelerate(d)
	}
}

func (c *Controller) accelerate(d float64) {
	c.progress = math.Min(c.progress+d/c.params.AccelerateMS, 1)
	step := backIn(c.progress, c.params.Bounce) * c.speed() * d

	c.move(step)
	c.setBlur(c.blur + step*c.params.BlurFactor)

	if c.progress >= 1 {
		c.state = Scrolling
		c.spinning = true
	}
}

func (c *Controller) scroll(d float64) {
	c.move(c.speed() * d)

	if !c.spinning {
		// Путь, за который уйдут наверх все видимые сейчас слоты
		c.stopTarget = c.strip.Threshold() - c.strip.MinY()
		c.progress = 0
		c.blurAtStop = c.blur
		c.state = Decelerating
	}
}

func (c *Controller) decelerate(d float64) {
	next := math.Min(c.progress+d/c.params.DecelerateMS, 1)
	step := (backOut(next, c.params.Bounce) - backOut(c.progress, c.params.Bounce)) * c.stopTarget
	c.progress = next

	c.move(step)
	c.setBlur(math.Min(c.blurAtStop*(1-backOut(next, c.params.Bounce)), c.blurAtStop))

	if next >= 1 {
		c.finish()
	}
}

func (c *Controller) finish() {
	c.strip.Snap()
	c.setBlur(0)

	if c.registered {
		c.sched.Remove(c.handle)
		c.registered = false
	}
	c.state = Idle

	cb := c.onResult
	c.onResult = nil
	if cb != nil {
		cb(c.strip.VisibleSymbols())
	}
}

func (c *Controller) move(step float64) {
	c.strip.Move(step)
	c.travelled += step
}

func (c *Controller) setBlur(blur float64) {
	c.blur = math.Max(0, blur)
	c.strip.SetBlur(c.blur)
}

// speed единиц за миллисекунду
func (c *Controller) speed() float64 {
	return c.params.SlotHeight * c.params.SpinSpeed / 1000
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Strip() *Strip { return c.strip }

func (c *Controller) VisibleSymbols() []int { return c.strip.VisibleSymbols() }

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		State:      c.state,
		Progress:   c.progress,
		StopTarget: c.stopTarget,
		Blur:       c.blur,
		Travelled:  c.travelled,
	}
}
