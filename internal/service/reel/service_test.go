package reel

import (
	"context"
	"errors"
	"testing"
	"time"

	"slot_reel/internal/metrics"
	"slot_reel/internal/middleware"
	"slot_reel/internal/model"
	"slot_reel/internal/repository"
	"slot_reel/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type gameCfg struct {
	bet      int
	start    int
	visible  int
	sequence []int
}

func (c gameCfg) BetCost() int         { return c.bet }
func (c gameCfg) StartingBalance() int { return c.start }
func (c gameCfg) VisibleSymbols() int  { return c.visible }
func (c gameCfg) SequenceName() string { return "default" }
func (c gameCfg) Sequence() []int      { return append([]int(nil), c.sequence...) }

// store - общая память фейковых репозиториев, откатывается фейковой транзакцией
type store struct {
	balances  map[int]int
	spins     map[uuid.UUID]model.Spin
	sequences map[string][]int
}

func (s *store) clone() *store {
	cp := &store{
		balances:  make(map[int]int, len(s.balances)),
		spins:     make(map[uuid.UUID]model.Spin, len(s.spins)),
		sequences: make(map[string][]int, len(s.sequences)),
	}
	for k, v := range s.balances {
		cp.balances[k] = v
	}
	for k, v := range s.spins {
		cp.spins[k] = v
	}
	for k, v := range s.sequences {
		cp.sequences[k] = v
	}
	return cp
}

type fakeTx struct{ st *store }

func (tx fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	backup := tx.st.clone()
	if err := fn(ctx); err != nil {
		*tx.st = *backup
		return err
	}
	return nil
}

type userRepo struct{ st *store }

func (r userRepo) CreateUser(_ context.Context, user *model.User) (int, error) {
	id := len(r.st.balances) + 1
	r.st.balances[id] = user.Balance
	return id, nil
}

func (r userRepo) GetBalance(_ context.Context, id int) (int, error) {
	b, ok := r.st.balances[id]
	if !ok {
		return 0, repository.ErrNotFound
	}
	return b, nil
}

func (r userRepo) GetBalanceForUpdate(ctx context.Context, id int) (int, error) {
	return r.GetBalance(ctx, id)
}

func (r userRepo) UpdateBalance(_ context.Context, id int, amount int) error {
	if _, ok := r.st.balances[id]; !ok {
		return repository.ErrNotFound
	}
	r.st.balances[id] = amount
	return nil
}

type spinRepo struct{ st *store }

func (r spinRepo) CreateSpin(_ context.Context, spin *model.Spin) error {
	r.st.spins[spin.ID] = *spin
	return nil
}

func (r spinRepo) GetSpinForUpdate(_ context.Context, id uuid.UUID) (*model.Spin, error) {
	s, ok := r.st.spins[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (r spinRepo) SetWin(_ context.Context, id uuid.UUID, win int) error {
	s, ok := r.st.spins[id]
	if !ok {
		return repository.ErrNotFound
	}
	s.Win = win
	s.WinReported = true
	r.st.spins[id] = s
	return nil
}

type seqRepo struct {
	st    *store
	saves int
}

func (r *seqRepo) GetSequence(_ context.Context, name string) ([]int, error) {
	s, ok := r.st.sequences[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s, nil
}

func (r *seqRepo) SaveSequence(_ context.Context, seq model.ReelSequence) error {
	r.saves++
	r.st.sequences[seq.Name] = seq.Symbols
	return nil
}

func newTestService(t *testing.T) (*serv, *store, *seqRepo) {
	t.Helper()
	st := &store{
		balances:  map[int]int{1: 100, 2: 5},
		spins:     map[uuid.UUID]model.Spin{},
		sequences: map[string][]int{},
	}
	seq := &seqRepo{st: st}
	s := NewReelService(
		gameCfg{bet: 10, start: 100, visible: 4, sequence: []int{0, 4, 0, 2, 3}},
		userRepo{st: st},
		spinRepo{st: st},
		seq,
		fakeTx{st: st},
		metrics.Nop{},
		zap.NewNop(),
	).(*serv)
	s.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	return s, st, seq
}

func userCtx(id int) context.Context {
	return middleware.WithUserID(context.Background(), id)
}

func TestConfirmSpinDeductsBet(t *testing.T) {
	s, st, _ := newTestService(t)

	res, err := s.ConfirmSpin(userCtx(1))
	if err != nil {
		t.Fatal(err)
	}
	if res.Balance != 90 || res.Bet != 10 {
		t.Errorf("Unexpected confirmation %+v", res)
	}
	if st.balances[1] != 90 {
		t.Errorf("Expected stored balance 90, got %d", st.balances[1])
	}
	spin, ok := st.spins[res.SpinID]
	if !ok || spin.UserID != 1 || spin.Bet != 10 || spin.WinReported {
		t.Errorf("Unexpected stored spin %+v", spin)
	}
}

func TestConfirmSpinNotEnoughBalance(t *testing.T) {
	s, st, _ := newTestService(t)

	_, err := s.ConfirmSpin(userCtx(2))
	if !errors.Is(err, service.ErrNotEnoughBalance) {
		t.Fatalf("Expected ErrNotEnoughBalance, got %v", err)
	}
	if st.balances[2] != 5 || len(st.spins) != 0 {
		t.Error("Rejected spin must not change state")
	}
}

func TestConfirmSpinUnknownUser(t *testing.T) {
	s, _, _ := newTestService(t)

	if _, err := s.ConfirmSpin(userCtx(77)); !errors.Is(err, service.ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
	if _, err := s.ConfirmSpin(context.Background()); !errors.Is(err, service.ErrUnauthorized) {
		t.Errorf("Expected ErrUnauthorized, got %v", err)
	}
}

func TestReportWinEndToEnd(t *testing.T) {
	s, st, _ := newTestService(t)
	ctx := userCtx(1)

	conf, err := s.ConfirmSpin(ctx)
	if err != nil {
		t.Fatal(err)
	}

	ack, err := s.ReportWin(ctx, model.WinReport{SpinID: conf.SpinID, Amount: 30})
	if err != nil {
		t.Fatal(err)
	}
	if ack.Balance != 120 || st.balances[1] != 120 {
		t.Errorf("Expected balance 120, got ack=%d stored=%d", ack.Balance, st.balances[1])
	}

	_, err = s.ReportWin(ctx, model.WinReport{SpinID: conf.SpinID, Amount: 30})
	if !errors.Is(err, service.ErrWinAlreadyReported) {
		t.Errorf("Expected ErrWinAlreadyReported, got %v", err)
	}
	if st.balances[1] != 120 {
		t.Error("Second report must not credit again")
	}
}

func TestReportWinValidation(t *testing.T) {
	s, st, _ := newTestService(t)
	ctx := userCtx(1)

	conf, err := s.ConfirmSpin(ctx)
	if err != nil {
		t.Fatal(err)
	}

	for _, amount := range []int{0, -10, 10, 25, 50} {
		_, err := s.ReportWin(ctx, model.WinReport{SpinID: conf.SpinID, Amount: amount})
		if !errors.Is(err, service.ErrInvalidWin) {
			t.Errorf("amount %d: expected ErrInvalidWin, got %v", amount, err)
		}
	}
	if st.balances[1] != 90 {
		t.Errorf("Invalid reports must not credit, balance %d", st.balances[1])
	}

	if _, err := s.ReportWin(ctx, model.WinReport{SpinID: uuid.New(), Amount: 20}); !errors.Is(err, service.ErrSpinNotFound) {
		t.Errorf("Expected ErrSpinNotFound, got %v", err)
	}
	if _, err := s.ReportWin(userCtx(2), model.WinReport{SpinID: conf.SpinID, Amount: 20}); !errors.Is(err, service.ErrSpinNotFound) {
		t.Errorf("Foreign spin must look missing, got %v", err)
	}
}

func TestBalance(t *testing.T) {
	s, _, _ := newTestService(t)

	data, err := s.Balance(userCtx(1))
	if err != nil {
		t.Fatal(err)
	}
	if data.Balance != 100 {
		t.Errorf("Expected 100, got %d", data.Balance)
	}
	if _, err := s.Balance(userCtx(9)); !errors.Is(err, service.ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestEnsureSequence(t *testing.T) {
	s, _, seq := newTestService(t)
	ctx := context.Background()

	if _, err := s.Sequence(ctx); !errors.Is(err, service.ErrSequenceNotFound) {
		t.Fatalf("Expected ErrSequenceNotFound, got %v", err)
	}

	if err := s.EnsureSequence(ctx); err != nil {
		t.Fatal(err)
	}
	if err := s.EnsureSequence(ctx); err != nil {
		t.Fatal(err)
	}
	if seq.saves != 1 {
		t.Errorf("Expected one save for an unchanged sequence, got %d", seq.saves)
	}

	got, err := s.Sequence(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Symbols) != 5 || got.Symbols[1] != 4 || got.Name != "default" {
		t.Errorf("Unexpected sequence %+v", got)
	}
}
