package sound

import (
	"sync"
	"time"

	"slot_reel/internal/config"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const (
	spinFreq = 440
	stopFreq = 330
	// Частота выигрыша, если у символа не задан свой тон
	defaultWinFreq = 880

	cueDuration = 80 * time.Millisecond
	winDuration = 300 * time.Millisecond
)

// Player звуковые сигналы игры. Вызывается из цикла кадров, не должен блокировать
type Player interface {
	SpinStarted()
	ReelStopped()
	Win(symbol int)
	Close()
}

// Nop - игра без звука
type Nop struct{}

func (Nop) SpinStarted() {}
func (Nop) ReelStopped() {}
func (Nop) Win(int)      {}
func (Nop) Close()       {}

// Beep синусоидальные сигналы через динамик
type Beep struct {
	mu     sync.Mutex
	closed bool
	tones  map[int]float64
}

// NewBeep открывает динамик. Ошибка не фатальна: вызывающий переходит на Nop
func NewBeep(symbols []config.SymbolAsset) (*Beep, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}

	return &Beep{tones: winTones(symbols)}, nil
}

func winTones(symbols []config.SymbolAsset) map[int]float64 {
	tones := make(map[int]float64, len(symbols))
	for _, s := range symbols {
		if s.Tone > 0 {
			tones[s.ID] = float64(s.Tone)
		}
	}
	return tones
}

func (b *Beep) SpinStarted() { b.play(spinFreq, cueDuration) }
func (b *Beep) ReelStopped() { b.play(stopFreq, cueDuration) }

func (b *Beep) Win(symbol int) {
	freq, ok := b.tones[symbol]
	if !ok {
		freq = defaultWinFreq
	}
	b.play(freq, winDuration)
}

func (b *Beep) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	speaker.Close()
}

func (b *Beep) play(freq float64, d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}
