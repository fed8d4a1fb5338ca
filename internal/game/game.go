package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"slot_reel/internal/backend"
	"slot_reel/internal/clock"
	"slot_reel/internal/outcome"
	"slot_reel/internal/reel"
	"slot_reel/internal/sound"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrNotEnoughBalance = errors.New("not enough balance")

// Backend сервер игры с точки зрения клиента
type Backend interface {
	Token() string
	Guest(ctx context.Context) (backend.Session, error)
	FetchSequence(ctx context.Context) ([]int, error)
	FetchBalance(ctx context.Context) (int, error)
	ConfirmSpin(ctx context.Context) (backend.Confirmation, error)
	ReportWin(ctx context.Context, spinID string, amount int) (backend.WinAck, error)
}

type Params struct {
	Bet     int
	MaxSpin time.Duration
}

type Deps struct {
	Backend   Backend
	Reel      *reel.Controller
	Scheduler clock.Scheduler
	Sound     sound.Player
	Log       *zap.Logger
}

// spinState всё, что относится к текущему спину
type spinState struct {
	number     uint64 // Локальный номер, ответы по старым номерам отбрасываются
	id         string // ID спина на сервере, пусто до подтверждения
	preBalance int
	win        int
	voided     bool
	stopQueued bool // Остановка запрошена во время разгона
}

// Game - клиентская игра. Все методы вызываются из одного цикла кадров
type Game struct {
	backend Backend
	reel    *reel.Controller
	sched   clock.Scheduler
	sound   sound.Player
	log     *zap.Logger
	params  Params

	ctx     context.Context
	cancel  context.CancelFunc
	mailbox *Mailbox
	control *SpinControl
	handle  clock.Handle

	balance    int
	lastWin    int
	highlights []int
	message    string

	spin spinState
}

func NewGame(deps Deps, params Params) *Game {
	ctx, cancel := context.WithCancel(context.Background())

	g := &Game{
		backend: deps.Backend,
		reel:    deps.Reel,
		sched:   deps.Scheduler,
		sound:   deps.Sound,
		log:     deps.Log,
		params:  params,
		ctx:     ctx,
		cancel:  cancel,
		mailbox: NewMailbox(),
	}
	if g.sound == nil {
		g.sound = sound.Nop{}
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}
	g.control = NewSpinControl(g, params.MaxSpin)
	// Регистрируемся раньше барабана: ответы сервера применяются до движения в том же кадре
	g.handle = g.sched.Add(g.frame)

	return g
}

// Bootstrap вход гостем (если токена нет), затем лента и баланс параллельно
func (g *Game) Bootstrap(ctx context.Context) error {
	if g.backend.Token() == "" {
		sess, err := g.backend.Guest(ctx)
		if err != nil {
			return err
		}
		g.log.Info("logged in as guest", zap.Int("user_id", sess.UserID))
	}

	var (
		symbols []int
		balance int
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		symbols, err = g.backend.FetchSequence(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		balance, err = g.backend.FetchBalance(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	seq, err := reel.NewSequence(symbols)
	if err != nil {
		return fmt.Errorf("sequence from backend: %w", err)
	}
	if err := g.reel.SetSequence(seq); err != nil {
		return err
	}
	g.balance = balance

	g.log.Info("game ready", zap.Int("sequence_length", seq.Len()), zap.Int("balance", balance))
	return nil
}

// Activate единственный вход пользователя: спин или просьба остановиться
func (g *Game) Activate() bool {
	return g.control.Activate()
}

// StartSpin списывает ставку локально, запускает барабан и подтверждение на сервере
func (g *Game) StartSpin() bool {
	if g.balance < g.params.Bet {
		g.message = ErrNotEnoughBalance.Error()
		return false
	}
	if !g.reel.Spin(g.onResult) {
		return false
	}

	g.spin = spinState{
		number:     g.spin.number + 1,
		preBalance: g.balance,
	}
	g.balance -= g.params.Bet
	g.lastWin = 0
	g.highlights = nil
	g.message = ""
	g.sound.SpinStarted()

	g.confirm(g.spin.number)
	return true
}

// RequestStop просит барабан остановиться. Во время разгона просьба
// откладывается и повторяется каждый кадр
func (g *Game) RequestStop() bool {
	if g.reel.Stop() {
		g.spin.stopQueued = false
		return true
	}
	g.spin.stopQueued = g.reel.State() == reel.Accelerating
	return false
}

func (g *Game) frame(deltaMS float64) {
	g.mailbox.Drain()
	if g.spin.stopQueued {
		g.RequestStop()
	}
	g.control.Frame(deltaMS)
}

func (g *Game) onResult(symbols []int) {
	g.control.Release()
	g.spin.stopQueued = false
	g.sound.ReelStopped()

	if g.spin.voided {
		return
	}

	res := outcome.Evaluate(symbols, g.params.Bet)
	g.log.Debug("reel stopped", zap.Ints("symbols", symbols), zap.Int("payout", res.Payout))
	if !res.Win() {
		return
	}

	g.balance += res.Payout
	g.lastWin = res.Payout
	g.highlights = res.Positions
	g.spin.win = res.Payout
	g.sound.Win(res.Symbol)

	// Без ID спина отчёт уйдёт после подтверждения
	if g.spin.id != "" {
		g.reportWin(g.spin.number)
	}
}

func (g *Game) confirm(n uint64) {
	ctx := g.ctx
	g.mailbox.Go(func() func() {
		conf, err := g.backend.ConfirmSpin(ctx)
		return func() { g.onConfirm(n, conf, err) }
	})
}

func (g *Game) onConfirm(n uint64, conf backend.Confirmation, err error) {
	if n != g.spin.number {
		g.log.Debug("stale confirmation dropped", zap.Uint64("spin", n))
		return
	}

	if err != nil {
		g.log.Error("spin confirmation failed", zap.Uint64("spin", n), zap.Error(err))
		// Спин аннулирован: ставка возвращается, выигрыша нет
		g.balance = g.spin.preBalance
		g.lastWin = 0
		g.highlights = nil
		g.spin.voided = true
		g.message = "spin failed: " + err.Error()
		g.RequestStop()
		if g.reel.State() == reel.Idle {
			g.control.Release()
		}
		return
	}

	g.spin.id = conf.SpinID
	predicted := g.spin.preBalance - g.params.Bet
	if conf.Balance != predicted {
		g.log.Warn("balance mismatch, server value wins",
			zap.Int("predicted", predicted),
			zap.Int("server", conf.Balance),
		)
		g.balance = conf.Balance + g.spin.win
		g.RequestStop()
	}

	if g.spin.win > 0 {
		g.reportWin(n)
	}
}

func (g *Game) reportWin(n uint64) {
	ctx := g.ctx
	spinID := g.spin.id
	amount := g.spin.win
	g.mailbox.Go(func() func() {
		ack, err := g.backend.ReportWin(ctx, spinID, amount)
		return func() { g.onWinAck(n, ack, err) }
	})
}

func (g *Game) onWinAck(n uint64, ack backend.WinAck, err error) {
	if n != g.spin.number {
		g.log.Debug("stale win ack dropped", zap.Uint64("spin", n))
		return
	}
	if err != nil {
		g.log.Error("win report failed", zap.Uint64("spin", n), zap.Error(err))
		g.message = "win not recorded: " + err.Error()
		return
	}
	g.balance = ack.Balance
}

// Close отменяет сетевые вызовы и снимается с тикера
func (g *Game) Close() {
	g.cancel()
	g.mailbox.Wait()
	g.sched.Remove(g.handle)
}

func (g *Game) Balance() int    { return g.balance }
func (g *Game) LastWin() int    { return g.lastWin }
func (g *Game) Message() string { return g.message }
func (g *Game) Available() bool { return g.control.Available() }
