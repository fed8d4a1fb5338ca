package game

import (
	"sync"
)

// Mailbox переносит результаты сетевых вызовов в поток кадров.
// Вызов идёт в своей горутине, а возвращённое им замыкание применяется в Drain,
// поэтому состояние игры меняет только цикл кадров
type Mailbox struct {
	mu    sync.Mutex
	queue []func()
	wg    sync.WaitGroup
}

func NewMailbox() *Mailbox {
	return &Mailbox{}
}

// Go запускает call в горутине, результат (если не nil) попадает в очередь
func (m *Mailbox) Go(call func() func()) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		if apply := call(); apply != nil {
			m.Post(apply)
		}
	}()
}

func (m *Mailbox) Post(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, fn)
}

// Drain применяет накопленное в порядке поступления, возвращает сколько применено.
// То, что добавится во время Drain, ждёт следующего вызова
func (m *Mailbox) Drain() int {
	m.mu.Lock()
	queue := m.queue
	m.queue = nil
	m.mu.Unlock()

	for _, fn := range queue {
		fn()
	}
	return len(queue)
}

// Wait ждёт завершения всех запущенных вызовов
func (m *Mailbox) Wait() {
	m.wg.Wait()
}

// Flush ждёт вызовы и применяет результаты, пока очередь не опустеет
func (m *Mailbox) Flush() {
	for {
		m.Wait()
		if m.Drain() == 0 {
			return
		}
	}
}
