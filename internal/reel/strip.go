package reel

import (
	"math"
)

// Slot - одна отрисовываемая позиция барабана.
// Y - нижняя граница символа, слот с Y=0 находится над видимой областью (запасной)
type Slot struct {
	Y      float64
	Symbol int
	Blur   float64
}

// Strip - видимые слоты (visible + 1 запасной) и курсор по ленте
type Strip struct {
	visible int
	height  float64

	seq   Sequence
	slots []Slot
	next  int
}

// NewStrip создаёт пустую полосу, слоты появятся после SetSequence
func NewStrip(visible int, slotHeight float64) *Strip {
	return &Strip{
		visible: visible,
		height:  slotHeight,
	}
}

// SetSequence - заменяет ленту и пересобирает слоты.
// Короче окна - допустимо, символы просто повторятся
func (s *Strip) SetSequence(seq Sequence) error {
	if seq.Len() == 0 {
		return ErrEmptySequence
	}

	s.seq = seq
	s.slots = make([]Slot, s.visible+1)
	for i := range s.slots {
		s.slots[i] = Slot{
			Y:      float64(i) * s.height,
			Symbol: seq.At(i),
		}
	}
	s.next = seq.Wrap(s.visible + 2)

	return nil
}

// VisibleSymbols символы на экране сверху вниз, считаются только по курсору
func (s *Strip) VisibleSymbols() []int {
	if s.seq.Len() == 0 {
		return nil
	}

	result := make([]int, 0, s.visible)
	for i := 1; i <= s.visible; i++ {
		result = append(result, s.seq.At(s.next-i))
	}
	return result
}

// Slots копия геометрии для рендера
func (s *Strip) Slots() []Slot {
	cp := make([]Slot, len(s.slots))
	copy(cp, s.slots)
	return cp
}

func (s *Strip) Cursor() int         { return s.next }
func (s *Strip) Sequence() Sequence  { return s.seq }
func (s *Strip) VisibleCount() int   { return s.visible }
func (s *Strip) SlotHeight() float64 { return s.height }
func (s *Strip) Threshold() float64  { return s.height * float64(len(s.slots)) }
func (s *Strip) Ready() bool         { return len(s.slots) > 0 }

// Move сдвигает все слоты вниз на step и возвращает число переработанных слотов.
// Шаг режется на куски не больше половины слота, чтобы за кусок границу пересекал максимум один слот
func (s *Strip) Move(step float64) int {
	if !s.Ready() {
		return 0
	}

	// Отрицательный шаг бывает только в начале разгона (back-ease), переработки нет
	if step <= 0 {
		for i := range s.slots {
			s.slots[i].Y += step
		}
		return 0
	}

	chunk := s.height / 2
	recycled := 0
	for step > 0 {
		d := math.Min(step, chunk)
		step -= d
		recycled += s.advance(d)
	}
	return recycled
}

func (s *Strip) advance(d float64) int {
	threshold := s.Threshold()
	eps := threshold * 1e-9
	recycled := 0

	for i := range s.slots {
		s.slots[i].Y += d
		if s.slots[i].Y >= threshold-eps {
			s.slots[i].Y -= threshold
			if s.slots[i].Y < 0 {
				s.slots[i].Y = 0
			}
			s.slots[i].Symbol = s.deal()
			recycled++
		}
	}
	return recycled
}

// deal двигает курсор и возвращает символ для слота, ушедшего наверх
func (s *Strip) deal() int {
	s.next = s.seq.Wrap(s.next + 1)
	return s.seq.At(s.next)
}

// MinY минимальное смещение среди слотов
func (s *Strip) MinY() float64 {
	lowest := math.Inf(1)
	for _, sl := range s.slots {
		if sl.Y < lowest {
			lowest = sl.Y
		}
	}
	return lowest
}

// SetBlur одинаковое размытие для всех слотов
func (s *Strip) SetBlur(blur float64) {
	for i := range s.slots {
		s.slots[i].Blur = blur
	}
}

// Snap выравнивает слоты по сетке после остановки (накопленная погрешность float)
func (s *Strip) Snap() {
	threshold := s.Threshold()
	for i := range s.slots {
		y := math.Round(s.slots[i].Y/s.height) * s.height
		s.slots[i].Y = y
		if y >= threshold {
			s.slots[i].Y = y - threshold
			s.slots[i].Symbol = s.deal()
		}
	}
}
