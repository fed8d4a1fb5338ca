package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// GameConfig правила игры на стороне сервера
type GameConfig interface {
	BetCost() int
	StartingBalance() int
	VisibleSymbols() int
	SequenceName() string
	Sequence() []int
}

// ReelConfig параметры клиента: движение барабана и ассеты символов
type ReelConfig interface {
	VisibleSymbols() int
	SlotHeight() float64
	SpinSpeed() float64
	AccelerateMS() float64
	DecelerateMS() float64
	MinFrameMS() float64
	BlurFactor() float64
	Bounce() float64
	MaxSpin() time.Duration
	BetCost() int
	Symbols() []SymbolAsset
}

// SymbolAsset как рисовать символ в терминале
type SymbolAsset struct {
	ID    int    `yaml:"id"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
	Tone  int    `yaml:"tone"` // Частота сигнала при выигрыше, Гц
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

// BackendConfig адрес сервера для клиента
type BackendConfig interface {
	URL() string
	Timeout() time.Duration
	Token() string
}

type LogConfig interface {
	Level() string
	Dir() string
}
