package req

import (
	"io"
	"strings"
	"testing"
)

type payload struct {
	SpinID string `json:"spin_id"`
	Amount int    `json:"amount"`
}

func TestDecode(t *testing.T) {
	got, err := Decode[payload](io.NopCloser(strings.NewReader(`{"spin_id":"abc","amount":30}`)))
	if err != nil {
		t.Fatal(err)
	}
	if got.SpinID != "abc" || got.Amount != 30 {
		t.Errorf("Unexpected payload %+v", got)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	cases := []string{``, `{`, `{"amount":"x"}`, `{"bet":10}`}
	for _, c := range cases {
		if _, err := Decode[payload](io.NopCloser(strings.NewReader(c))); err == nil {
			t.Errorf("Expected error for %q", c)
		}
	}
}
