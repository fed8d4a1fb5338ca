package clock

import (
	"sync"
	"time"
)

// TimeSource источник времени для тикера кадров
type TimeSource interface {
	Now() time.Time
}

// RealTimeSource системное время с монотонной составляющей
type RealTimeSource struct{}

func NewRealTimeSource() *RealTimeSource {
	return &RealTimeSource{}
}

func (RealTimeSource) Now() time.Time {
	return time.Now()
}

// MockTimeSource управляемое время для тестов
type MockTimeSource struct {
	mu          sync.RWMutex
	currentTime time.Time
}

func NewMockTimeSource(start time.Time) *MockTimeSource {
	return &MockTimeSource{currentTime: start}
}

func (m *MockTimeSource) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance сдвигает текущее время на d
func (m *MockTimeSource) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
