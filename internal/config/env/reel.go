package env

import (
	"errors"
	"fmt"
	"os"
	"time"

	"slot_reel/internal/config"

	"gopkg.in/yaml.v3"
)

const reelConfigPathEnvName = "REEL_CONFIG_PATH"

type reelFile struct {
	Reel    reelSection          `yaml:"reel"`
	Symbols []config.SymbolAsset `yaml:"symbols"`
}

type reelSection struct {
	VisibleSymbols int     `yaml:"visible_symbols"`
	SlotHeight     float64 `yaml:"slot_height"`
	SpinSpeed      float64 `yaml:"spin_speed"`
	AccelerateMS   float64 `yaml:"accelerate_ms"`
	DecelerateMS   float64 `yaml:"decelerate_ms"`
	MinFrameMS     float64 `yaml:"min_frame_ms"`
	BlurFactor     float64 `yaml:"blur_factor"`
	Bounce         float64 `yaml:"bounce"`
	MaxSpinMS      int     `yaml:"max_spin_ms"`
	BetCost        int     `yaml:"bet_cost"`
}

// Значения из исходной игры, если в файле их нет
var defaultReel = reelSection{
	VisibleSymbols: 4,
	SlotHeight:     100,
	SpinSpeed:      8,
	AccelerateMS:   3000,
	DecelerateMS:   10000,
	MinFrameMS:     50,
	BlurFactor:     0.1,
	Bounce:         1.1,
	MaxSpinMS:      5000,
	BetCost:        10,
}

type reelConfig struct {
	section reelSection
	symbols []config.SymbolAsset
}

// ReelConfigPath путь к yaml клиента, по умолчанию reel.yaml
func ReelConfigPath() string {
	if p := os.Getenv(reelConfigPathEnvName); p != "" {
		return p
	}
	return "reel.yaml"
}

func NewReelConfigFromYAML(path string) (config.ReelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reel config: %w", err)
	}
	return ParseReelConfig(data)
}

// ParseReelConfig разбирает конфиг клиента, незаданные поля берутся по умолчанию
func ParseReelConfig(data []byte) (config.ReelConfig, error) {
	f := reelFile{Reel: defaultReel}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse reel config: %w", err)
	}

	r := f.Reel
	switch {
	case r.VisibleSymbols <= 0:
		return nil, errors.New("visible_symbols must be positive")
	case r.SlotHeight <= 0:
		return nil, errors.New("slot_height must be positive")
	case r.SpinSpeed <= 0:
		return nil, errors.New("spin_speed must be positive")
	case r.AccelerateMS <= 0 || r.DecelerateMS <= 0:
		return nil, errors.New("phase durations must be positive")
	case r.MinFrameMS < 0:
		return nil, errors.New("min_frame_ms must not be negative")
	case r.MaxSpinMS <= 0:
		return nil, errors.New("max_spin_ms must be positive")
	case r.BetCost <= 0:
		return nil, errors.New("bet_cost must be positive")
	}

	seen := make(map[int]bool, len(f.Symbols))
	for _, s := range f.Symbols {
		if s.ID < 0 {
			return nil, fmt.Errorf("symbol id %d is negative", s.ID)
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("symbol %d declared twice", s.ID)
		}
		seen[s.ID] = true
	}

	return &reelConfig{section: r, symbols: f.Symbols}, nil
}

func (c *reelConfig) VisibleSymbols() int   { return c.section.VisibleSymbols }
func (c *reelConfig) SlotHeight() float64   { return c.section.SlotHeight }
func (c *reelConfig) SpinSpeed() float64    { return c.section.SpinSpeed }
func (c *reelConfig) AccelerateMS() float64 { return c.section.AccelerateMS }
func (c *reelConfig) DecelerateMS() float64 { return c.section.DecelerateMS }
func (c *reelConfig) MinFrameMS() float64   { return c.section.MinFrameMS }
func (c *reelConfig) BlurFactor() float64   { return c.section.BlurFactor }
func (c *reelConfig) Bounce() float64       { return c.section.Bounce }
func (c *reelConfig) BetCost() int          { return c.section.BetCost }

func (c *reelConfig) MaxSpin() time.Duration {
	return time.Duration(c.section.MaxSpinMS) * time.Millisecond
}

func (c *reelConfig) Symbols() []config.SymbolAsset {
	cp := make([]config.SymbolAsset, len(c.symbols))
	copy(cp, c.symbols)
	return cp
}
