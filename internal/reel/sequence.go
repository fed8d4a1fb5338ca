package reel

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySequence  = errors.New("sequence is empty")
	ErrNegativeSymbol = errors.New("symbol id must be non-negative")
)

// Sequence - полная лента барабана. Индексация по кругу
type Sequence struct {
	ids []int
}

// NewSequence проверяет и копирует список символов
func NewSequence(ids []int) (Sequence, error) {
	if len(ids) == 0 {
		return Sequence{}, ErrEmptySequence
	}

	cp := make([]int, len(ids))
	for i, id := range ids {
		if id < 0 {
			return Sequence{}, fmt.Errorf("position %d: %w", i, ErrNegativeSymbol)
		}
		cp[i] = id
	}

	return Sequence{ids: cp}, nil
}

// Len длина ленты
func (s Sequence) Len() int {
	return len(s.ids)
}

// At символ по индексу с переходом через край (в т.ч. для отрицательных индексов)
func (s Sequence) At(i int) int {
	return s.ids[s.Wrap(i)]
}

// Wrap приводит индекс к диапазону [0, Len)
func (s Sequence) Wrap(i int) int {
	n := len(s.ids)
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// IDs копия символов
func (s Sequence) IDs() []int {
	cp := make([]int, len(s.ids))
	copy(cp, s.ids)
	return cp
}
