package env

import (
	"errors"
	"fmt"
	"os"

	"slot_reel/internal/config"

	"gopkg.in/yaml.v3"
)

const gameConfigPathEnvName = "GAME_CONFIG_PATH"

type gameFile struct {
	Game gameSection `yaml:"game"`
}

type gameSection struct {
	BetCost         int    `yaml:"bet_cost"`
	StartingBalance int    `yaml:"starting_balance"`
	VisibleSymbols  int    `yaml:"visible_symbols"`
	SequenceName    string `yaml:"sequence_name"`
	Sequence        []int  `yaml:"sequence"`
}

type gameConfig struct {
	section gameSection
}

// GameConfigPath путь к yaml из окружения, по умолчанию config.yaml
func GameConfigPath() string {
	if p := os.Getenv(gameConfigPathEnvName); p != "" {
		return p
	}
	return "config.yaml"
}

// NewGameConfigFromYAML читает секцию game из yaml-файла
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig разбирает и проверяет секцию game
func ParseGameConfig(data []byte) (config.GameConfig, error) {
	var f gameFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	g := f.Game
	if g.SequenceName == "" {
		g.SequenceName = "default"
	}
	if g.BetCost <= 0 {
		return nil, errors.New("bet_cost must be positive")
	}
	if g.StartingBalance < 0 {
		return nil, errors.New("starting_balance must not be negative")
	}
	if g.VisibleSymbols <= 0 {
		return nil, errors.New("visible_symbols must be positive")
	}
	if len(g.Sequence) == 0 {
		return nil, errors.New("sequence is empty")
	}
	for i, id := range g.Sequence {
		if id < 0 {
			return nil, fmt.Errorf("sequence[%d] is negative", i)
		}
	}

	return &gameConfig{section: g}, nil
}

func (c *gameConfig) BetCost() int         { return c.section.BetCost }
func (c *gameConfig) StartingBalance() int { return c.section.StartingBalance }
func (c *gameConfig) VisibleSymbols() int  { return c.section.VisibleSymbols }
func (c *gameConfig) SequenceName() string { return c.section.SequenceName }

func (c *gameConfig) Sequence() []int {
	cp := make([]int, len(c.section.Sequence))
	copy(cp, c.section.Sequence)
	return cp
}
