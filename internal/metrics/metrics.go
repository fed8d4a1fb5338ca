package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const labelReason = "reason"

// Recorder события игры для метрик
type Recorder interface {
	SpinConfirmed(bet int)
	SpinRejected(reason string)
	WinReported(amount int)
	GuestCreated()
}

// Nop ничего не записывает
type Nop struct{}

func (Nop) SpinConfirmed(int)   {}
func (Nop) SpinRejected(string) {}
func (Nop) WinReported(int)     {}
func (Nop) GuestCreated()       {}

// Prometheus счётчики в собственном реестре
type Prometheus struct {
	reg *prometheus.Registry

	spins    prometheus.Counter
	rejected *prometheus.CounterVec
	betTotal prometheus.Counter
	wins     prometheus.Counter
	winTotal prometheus.Counter
	guests   prometheus.Counter
}

func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Prometheus{
		reg:      reg,
		spins:    f.NewCounter(prometheus.CounterOpts{Name: "slot_reel_spins_total", Help: "Подтверждённые спины"}),
		rejected: f.NewCounterVec(prometheus.CounterOpts{Name: "slot_reel_spins_rejected_total", Help: "Отклонённые спины"}, []string{labelReason}),
		betTotal: f.NewCounter(prometheus.CounterOpts{Name: "slot_reel_bet_amount_total", Help: "Сумма списанных ставок"}),
		wins:     f.NewCounter(prometheus.CounterOpts{Name: "slot_reel_wins_total", Help: "Зачтённые выигрыши"}),
		winTotal: f.NewCounter(prometheus.CounterOpts{Name: "slot_reel_win_amount_total", Help: "Сумма выплат"}),
		guests:   f.NewCounter(prometheus.CounterOpts{Name: "slot_reel_guests_total", Help: "Созданные гостевые игроки"}),
	}
}

func (p *Prometheus) SpinConfirmed(bet int) {
	p.spins.Inc()
	p.betTotal.Add(float64(bet))
}

func (p *Prometheus) SpinRejected(reason string) {
	p.rejected.With(prometheus.Labels{labelReason: reason}).Inc()
}

func (p *Prometheus) WinReported(amount int) {
	p.wins.Inc()
	p.winTotal.Add(float64(amount))
}

func (p *Prometheus) GuestCreated() {
	p.guests.Inc()
}

// Handler отдаёт метрики для /metrics
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.reg, promhttp.HandlerOpts{})
}

// Registry для тестов
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.reg
}
