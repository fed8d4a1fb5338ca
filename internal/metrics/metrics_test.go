package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPrometheusHandler(t *testing.T) {
	p := NewPrometheus()
	p.SpinConfirmed(10)
	p.SpinConfirmed(10)
	p.SpinRejected("balance")
	p.WinReported(30)
	p.GuestCreated()

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	text := string(body)
	for _, want := range []string{
		"slot_reel_spins_total 2",
		"slot_reel_bet_amount_total 20",
		`slot_reel_spins_rejected_total{reason="balance"} 1`,
		"slot_reel_win_amount_total 30",
		"slot_reel_guests_total 1",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in metrics output", want)
		}
	}
}
