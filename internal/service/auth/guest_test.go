package auth

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"slot_reel/internal/metrics"
	"slot_reel/internal/model"
	"slot_reel/pkg/token"

	"go.uber.org/zap"
)

type gameCfg struct{}

func (gameCfg) BetCost() int         { return 10 }
func (gameCfg) StartingBalance() int { return 100 }
func (gameCfg) VisibleSymbols() int  { return 4 }
func (gameCfg) SequenceName() string { return "default" }
func (gameCfg) Sequence() []int      { return []int{0, 1, 2} }

type jwtCfg struct{}

func (jwtCfg) AccessTokenSecretKey() []byte       { return []byte("secret") }
func (jwtCfg) AccessTokenDuration() time.Duration { return time.Hour }

type userRepo struct {
	users []model.User
	err   error
}

func (r *userRepo) CreateUser(_ context.Context, user *model.User) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.users = append(r.users, *user)
	return len(r.users), nil
}

func (r *userRepo) GetBalance(context.Context, int) (int, error)          { return 0, nil }
func (r *userRepo) GetBalanceForUpdate(context.Context, int) (int, error) { return 0, nil }
func (r *userRepo) UpdateBalance(context.Context, int, int) error         { return nil }

type countingRecorder struct {
	metrics.Nop
	guests int
}

func (c *countingRecorder) GuestCreated() { c.guests++ }

func TestGuest(t *testing.T) {
	repo := &userRepo{}
	rec := &countingRecorder{}
	s := NewAuthService(gameCfg{}, jwtCfg{}, repo, rec, zap.NewNop())

	data, err := s.Guest(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if data.UserID != 1 || data.Balance != 100 {
		t.Errorf("Unexpected auth data %+v", data)
	}
	if len(repo.users) != 1 || !strings.HasPrefix(repo.users[0].Name, "guest-") {
		t.Errorf("Unexpected stored users %+v", repo.users)
	}
	if rec.guests != 1 {
		t.Errorf("Expected one guest metric, got %d", rec.guests)
	}

	claims, err := token.VerifyToken(data.AccessToken, []byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	if claims.ID != strconv.Itoa(data.UserID) {
		t.Errorf("Expected token id %d, got %s", data.UserID, claims.ID)
	}
}

func TestGuestRepoError(t *testing.T) {
	boom := errors.New("db down")
	rec := &countingRecorder{}
	s := NewAuthService(gameCfg{}, jwtCfg{}, &userRepo{err: boom}, rec, zap.NewNop())

	if _, err := s.Guest(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Expected wrapped repo error, got %v", err)
	}
	if rec.guests != 0 {
		t.Error("Failed guest must not be counted")
	}
}
