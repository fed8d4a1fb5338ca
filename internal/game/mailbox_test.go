package game

import (
	"testing"
)

func TestMailboxAppliesInLoop(t *testing.T) {
	m := NewMailbox()
	var got []int

	m.Go(func() func() {
		return func() { got = append(got, 1) }
	})
	m.Go(func() func() { return nil })

	m.Wait()
	if len(got) != 0 {
		t.Fatal("Results must wait for Drain")
	}
	if n := m.Drain(); n != 1 || len(got) != 1 {
		t.Errorf("Expected one applied result, got n=%d %v", n, got)
	}
}

func TestMailboxFlushFollowsChains(t *testing.T) {
	m := NewMailbox()
	var got []string

	m.Go(func() func() {
		return func() {
			got = append(got, "first")
			m.Go(func() func() {
				return func() { got = append(got, "second") }
			})
		}
	})

	m.Flush()
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("Unexpected order %v", got)
	}
}
