package clock

import (
	"time"
)

// FrameFunc вызывается раз в кадр с дельтой в миллисекундах
type FrameFunc func(deltaMS float64)

type Handle uint64

// Scheduler регистрация покадровых колбэков
type Scheduler interface {
	Add(fn FrameFunc) Handle
	Remove(h Handle)
}

// Ticker - общие часы кадров. Не потокобезопасен: все вызовы идут из одного цикла
type Ticker struct {
	src     TimeSource
	last    time.Time
	started bool

	next  Handle
	order []Handle
	funcs map[Handle]FrameFunc
}

func NewTicker(src TimeSource) *Ticker {
	return &Ticker{
		src:   src,
		funcs: make(map[Handle]FrameFunc),
	}
}

// Add регистрирует колбэк, вызовы идут в порядке регистрации
func (t *Ticker) Add(fn FrameFunc) Handle {
	t.next++
	h := t.next
	t.funcs[h] = fn
	t.order = append(t.order, h)
	return h
}

// Remove снимает колбэк, безопасно вызывать изнутри колбэка
func (t *Ticker) Remove(h Handle) {
	if _, ok := t.funcs[h]; !ok {
		return
	}
	delete(t.funcs, h)
	for i, o := range t.order {
		if o == h {
			t.order = append(t.order[:i:i], t.order[i+1:]...)
			break
		}
	}
}

// Len число зарегистрированных колбэков
func (t *Ticker) Len() int {
	return len(t.funcs)
}

// Tick берёт время из источника и прогоняет кадр.
// Первый тик только запоминает время. Возвращает дельту в мс
func (t *Ticker) Tick() float64 {
	now := t.src.Now()
	if !t.started {
		t.started = true
		t.last = now
		return 0
	}

	delta := now.Sub(t.last)
	t.last = now
	if delta < 0 {
		delta = 0
	}

	deltaMS := float64(delta) / float64(time.Millisecond)
	t.run(deltaMS)
	return deltaMS
}

// Step прогоняет кадр с заданной дельтой, минуя источник времени
func (t *Ticker) Step(delta time.Duration) {
	t.run(float64(delta) / float64(time.Millisecond))
}

func (t *Ticker) run(deltaMS float64) {
	handles := make([]Handle, len(t.order))
	copy(handles, t.order)

	for _, h := range handles {
		fn, ok := t.funcs[h]
		if !ok {
			continue
		}
		fn(deltaMS)
	}
}
